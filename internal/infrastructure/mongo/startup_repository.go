package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/jhoicas/startnet-api/internal/domain"
	"github.com/jhoicas/startnet-api/internal/domain/entity"
	"github.com/jhoicas/startnet-api/internal/domain/repository"
)

var _ repository.StartupRepository = (*StartupRepo)(nil)

// startupFields todo lo que Update puede reemplazar.
type startupFields struct {
	StartupName      string              `bson:"startup_name"`
	StartupLogo      string              `bson:"startup_logo"`
	Industry         string              `bson:"industry"`
	Website          string              `bson:"website"`
	Founded          int                 `bson:"founded"`
	Description      string              `bson:"description"`
	Address          string              `bson:"address"`
	Email            string              `bson:"email"`
	Mobile           string              `bson:"mobile"`
	Problem          string              `bson:"problem"`
	Solution         string              `bson:"solution"`
	Traction         string              `bson:"traction"`
	TargetMarket     string              `bson:"target_market"`
	TAM              string              `bson:"tam"`
	Demand           string              `bson:"demand"`
	Scalability      string              `bson:"scalability"`
	Competitors      string              `bson:"competitors"`
	Advantage        string              `bson:"advantage"`
	RevenueStreams   string              `bson:"revenue_streams"`
	AnnualRevenue    bson.Decimal128     `bson:"annual_revenue"`
	ProjectedRevenue string              `bson:"projected_revenue"`
	FundingGoal      bson.Decimal128     `bson:"funding_goal"`
	RaisedSoFar      bson.Decimal128     `bson:"raised_so_far"`
	PreviousFunding  string              `bson:"previous_funding"`
	Seeking          string              `bson:"seeking"`
	InvestorROI      string              `bson:"investor_roi"`
	EquityAvailable  string              `bson:"equity_available"`
	Team             []entity.TeamMember `bson:"team"`
	UpdatedAt        time.Time           `bson:"updated_at"`
}

type startupDoc struct {
	ID            string    `bson:"_id"`
	UserID        string    `bson:"user_id"`
	CreatedAt     time.Time `bson:"created_at"`
	startupFields `bson:",inline"`
}

func newStartupFields(s *entity.Startup) (startupFields, error) {
	f := startupFields{
		StartupName: s.StartupName, StartupLogo: s.StartupLogo, Industry: s.Industry, Website: s.Website,
		Founded: s.Founded, Description: s.Description, Address: s.Address, Email: s.Email, Mobile: s.Mobile,
		Problem: s.Problem, Solution: s.Solution, Traction: s.Traction, TargetMarket: s.TargetMarket,
		TAM: s.TAM, Demand: s.Demand, Scalability: s.Scalability, Competitors: s.Competitors,
		Advantage: s.Advantage, RevenueStreams: s.RevenueStreams, ProjectedRevenue: s.ProjectedRevenue,
		PreviousFunding: s.PreviousFunding, Seeking: s.Seeking, InvestorROI: s.InvestorROI,
		EquityAvailable: s.EquityAvailable, Team: s.Team, UpdatedAt: s.UpdatedAt,
	}
	var err error
	if f.AnnualRevenue, err = toDecimal128(s.AnnualRevenue); err != nil {
		return f, fmt.Errorf("annual_revenue: %w", err)
	}
	if f.FundingGoal, err = toDecimal128(s.FundingGoal); err != nil {
		return f, fmt.Errorf("funding_goal: %w", err)
	}
	if f.RaisedSoFar, err = toDecimal128(s.RaisedSoFar); err != nil {
		return f, fmt.Errorf("raised_so_far: %w", err)
	}
	return f, nil
}

func (d startupDoc) entity() *entity.Startup {
	return &entity.Startup{
		ID: d.ID, UserID: d.UserID, StartupName: d.StartupName, StartupLogo: d.StartupLogo,
		Industry: d.Industry, Website: d.Website, Founded: d.Founded, Description: d.Description,
		Address: d.Address, Email: d.Email, Mobile: d.Mobile, Problem: d.Problem, Solution: d.Solution,
		Traction: d.Traction, TargetMarket: d.TargetMarket, TAM: d.TAM, Demand: d.Demand,
		Scalability: d.Scalability, Competitors: d.Competitors, Advantage: d.Advantage,
		RevenueStreams: d.RevenueStreams, AnnualRevenue: fromDecimal128(d.AnnualRevenue),
		ProjectedRevenue: d.ProjectedRevenue, FundingGoal: fromDecimal128(d.FundingGoal),
		RaisedSoFar: fromDecimal128(d.RaisedSoFar), PreviousFunding: d.PreviousFunding,
		Seeking: d.Seeking, InvestorROI: d.InvestorROI, EquityAvailable: d.EquityAvailable,
		Team: d.Team, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
	}
}

// StartupRepo fichas de startups en la colección startups.
type StartupRepo struct {
	c *mongo.Collection
}

// NewStartupRepository construye el repositorio sobre db.
func NewStartupRepository(db *mongo.Database) *StartupRepo {
	return &StartupRepo{c: db.Collection(collStartups)}
}

func (r *StartupRepo) Create(ctx context.Context, s *entity.Startup) error {
	fields, err := newStartupFields(s)
	if err != nil {
		return fmt.Errorf("insert startup: %w", err)
	}
	doc := startupDoc{ID: s.ID, UserID: s.UserID, CreatedAt: s.CreatedAt, startupFields: fields}
	if _, err := r.c.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert startup: %w", err)
	}
	return nil
}

func (r *StartupRepo) GetByID(ctx context.Context, id string) (*entity.Startup, error) {
	var d startupDoc
	if err := r.c.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get startup: %w", err)
	}
	return d.entity(), nil
}

func (r *StartupRepo) ListByOwner(ctx context.Context, userID string) ([]*entity.Startup, error) {
	return r.find(ctx, bson.D{{Key: "user_id", Value: userID}}, options.Find().SetSort(newestFirst))
}

func (r *StartupRepo) List(ctx context.Context, f entity.StartupFilter) ([]*entity.Startup, int64, error) {
	filter := bson.D{}
	if f.Search != "" {
		re := containsCI(f.Search)
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "startup_name", Value: re}},
			bson.D{{Key: "industry", Value: re}},
			bson.D{{Key: "description", Value: re}},
		}})
	}
	if f.Industry != "" {
		filter = append(filter, bson.E{Key: "industry", Value: f.Industry})
	}
	total, err := r.c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count startups: %w", err)
	}
	opts := options.Find().SetSort(newestFirst).SetSkip(int64(f.Offset))
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}
	list, err := r.find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Update reemplaza los campos editables; _id, user_id y created_at no se tocan.
func (r *StartupRepo) Update(ctx context.Context, s *entity.Startup) error {
	fields, err := newStartupFields(s)
	if err != nil {
		return fmt.Errorf("update startup: %w", err)
	}
	res, err := r.c.UpdateOne(ctx, bson.D{{Key: "_id", Value: s.ID}}, bson.D{{Key: "$set", Value: fields}})
	if err != nil {
		return fmt.Errorf("update startup: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *StartupRepo) Delete(ctx context.Context, id string) error {
	res, err := r.c.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("delete startup: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *StartupRepo) DeleteByOwner(ctx context.Context, userID string) error {
	if _, err := r.c.DeleteMany(ctx, bson.D{{Key: "user_id", Value: userID}}); err != nil {
		return fmt.Errorf("delete startups by owner: %w", err)
	}
	return nil
}

func (r *StartupRepo) find(ctx context.Context, filter bson.D, opts *options.FindOptionsBuilder) ([]*entity.Startup, error) {
	cur, err := r.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list startups: %w", err)
	}
	var docs []startupDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode startups: %w", err)
	}
	list := make([]*entity.Startup, 0, len(docs))
	for _, d := range docs {
		list = append(list, d.entity())
	}
	return list, nil
}
