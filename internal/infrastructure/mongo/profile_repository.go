package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/jhoicas/startnet-api/internal/domain/entity"
	"github.com/jhoicas/startnet-api/internal/domain/repository"
)

var (
	_ repository.EntrepreneurProfileRepository = (*EntrepreneurProfileRepo)(nil)
	_ repository.InvestorProfileRepository     = (*InvestorProfileRepo)(nil)
)

// profileFields campos editables comunes; van completos en $set.
type profileFields struct {
	FullName       string               `bson:"full_name"`
	Email          string               `bson:"email"`
	Phone          string               `bson:"phone"`
	Location       string               `bson:"location"`
	Bio            string               `bson:"bio"`
	ProfilePicture string               `bson:"profile_picture"`
	SocialMedia    []entity.SocialMedia `bson:"social_media"`
	Skills         []entity.Skill       `bson:"skills"`
	UpdatedAt      time.Time            `bson:"updated_at"`
}

// profileKeys campos fijados solo al insertar.
type profileKeys struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	CreatedAt time.Time `bson:"created_at"`
}

func newProfileFields(b entity.ProfileBase) profileFields {
	return profileFields{
		FullName: b.FullName, Email: b.Email, Phone: b.Phone, Location: b.Location, Bio: b.Bio,
		ProfilePicture: b.ProfilePicture, SocialMedia: b.SocialMedia, Skills: b.Skills, UpdatedAt: b.UpdatedAt,
	}
}

func (f profileFields) base(k profileKeys) entity.ProfileBase {
	return entity.ProfileBase{
		ID: k.ID, UserID: k.UserID, FullName: f.FullName, Email: f.Email, Phone: f.Phone,
		Location: f.Location, Bio: f.Bio, ProfilePicture: f.ProfilePicture,
		SocialMedia: f.SocialMedia, Skills: f.Skills, CreatedAt: k.CreatedAt, UpdatedAt: f.UpdatedAt,
	}
}

// upsertOptions devuelve el documento resultante para leer _id y created_at.
func upsertOptions() *options.FindOneAndUpdateOptionsBuilder {
	return options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
}

// keysUpdate arma $setOnInsert; user_id lo aporta el filtro.
func keysUpdate(b entity.ProfileBase) bson.D {
	return bson.D{{Key: "_id", Value: b.ID}, {Key: "created_at", Value: b.CreatedAt}}
}

type entrepreneurFields struct {
	profileFields `bson:",inline"`
	Expertise     []string `bson:"expertise"`
	Achievements  []string `bson:"achievements"`
}

type entrepreneurDoc struct {
	profileKeys        `bson:",inline"`
	entrepreneurFields `bson:",inline"`
}

func (d entrepreneurDoc) entity() *entity.EntrepreneurProfile {
	return &entity.EntrepreneurProfile{
		ProfileBase:  d.base(d.profileKeys),
		Expertise:    d.Expertise,
		Achievements: d.Achievements,
	}
}

// EntrepreneurProfileRepo perfiles de emprendedor.
type EntrepreneurProfileRepo struct {
	c *mongo.Collection
}

// NewEntrepreneurProfileRepository construye el repositorio sobre db.
func NewEntrepreneurProfileRepository(db *mongo.Database) *EntrepreneurProfileRepo {
	return &EntrepreneurProfileRepo{c: db.Collection(collEntrepreneurs)}
}

func (r *EntrepreneurProfileRepo) GetByUserID(ctx context.Context, userID string) (*entity.EntrepreneurProfile, error) {
	var d entrepreneurDoc
	if err := r.c.FindOne(ctx, bson.D{{Key: "user_id", Value: userID}}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entrepreneur profile: %w", err)
	}
	return d.entity(), nil
}

// Upsert un documento por user_id; ID y CreatedAt quedan con los valores guardados.
func (r *EntrepreneurProfileRepo) Upsert(ctx context.Context, p *entity.EntrepreneurProfile) error {
	update := bson.D{
		{Key: "$set", Value: entrepreneurFields{
			profileFields: newProfileFields(p.ProfileBase),
			Expertise:     p.Expertise,
			Achievements:  p.Achievements,
		}},
		{Key: "$setOnInsert", Value: keysUpdate(p.ProfileBase)},
	}
	var d entrepreneurDoc
	err := r.c.FindOneAndUpdate(ctx, bson.D{{Key: "user_id", Value: p.UserID}}, update, upsertOptions()).Decode(&d)
	if err != nil {
		return fmt.Errorf("upsert entrepreneur profile: %w", err)
	}
	p.ID, p.CreatedAt = d.ID, d.CreatedAt
	return nil
}

func (r *EntrepreneurProfileRepo) DeleteByUserID(ctx context.Context, userID string) error {
	if _, err := r.c.DeleteOne(ctx, bson.D{{Key: "user_id", Value: userID}}); err != nil {
		return fmt.Errorf("delete entrepreneur profile: %w", err)
	}
	return nil
}

type investorFields struct {
	profileFields         `bson:",inline"`
	InvestmentPreferences []string         `bson:"investment_preferences"`
	PortfolioSize         string           `bson:"portfolio_size"`
	InvestmentMin         *bson.Decimal128 `bson:"investment_min,omitempty"`
	InvestmentMax         *bson.Decimal128 `bson:"investment_max,omitempty"`
}

type investorDoc struct {
	profileKeys    `bson:",inline"`
	investorFields `bson:",inline"`
}

func (d investorDoc) entity() *entity.InvestorProfile {
	return &entity.InvestorProfile{
		ProfileBase:           d.base(d.profileKeys),
		InvestmentPreferences: d.InvestmentPreferences,
		PortfolioSize:         d.PortfolioSize,
		InvestmentRange: entity.InvestmentRange{
			Min: fromNullDecimal128(d.InvestmentMin),
			Max: fromNullDecimal128(d.InvestmentMax),
		},
	}
}

// InvestorProfileRepo perfiles de inversionista.
type InvestorProfileRepo struct {
	c *mongo.Collection
}

// NewInvestorProfileRepository construye el repositorio sobre db.
func NewInvestorProfileRepository(db *mongo.Database) *InvestorProfileRepo {
	return &InvestorProfileRepo{c: db.Collection(collInvestors)}
}

func (r *InvestorProfileRepo) GetByUserID(ctx context.Context, userID string) (*entity.InvestorProfile, error) {
	return r.findOne(ctx, bson.D{{Key: "user_id", Value: userID}})
}

func (r *InvestorProfileRepo) GetByID(ctx context.Context, id string) (*entity.InvestorProfile, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *InvestorProfileRepo) findOne(ctx context.Context, filter bson.D) (*entity.InvestorProfile, error) {
	var d investorDoc
	if err := r.c.FindOne(ctx, filter).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get investor profile: %w", err)
	}
	return d.entity(), nil
}

// Upsert igual que el de emprendedor; un extremo ausente del rango se quita con $unset.
func (r *InvestorProfileRepo) Upsert(ctx context.Context, p *entity.InvestorProfile) error {
	minAmount, err := toNullDecimal128(p.InvestmentRange.Min)
	if err != nil {
		return fmt.Errorf("upsert investor profile: investment_min: %w", err)
	}
	maxAmount, err := toNullDecimal128(p.InvestmentRange.Max)
	if err != nil {
		return fmt.Errorf("upsert investor profile: investment_max: %w", err)
	}
	update := bson.D{
		{Key: "$set", Value: investorFields{
			profileFields:         newProfileFields(p.ProfileBase),
			InvestmentPreferences: p.InvestmentPreferences,
			PortfolioSize:         p.PortfolioSize,
			InvestmentMin:         minAmount,
			InvestmentMax:         maxAmount,
		}},
		{Key: "$setOnInsert", Value: keysUpdate(p.ProfileBase)},
	}
	var unset bson.D
	if minAmount == nil {
		unset = append(unset, bson.E{Key: "investment_min", Value: ""})
	}
	if maxAmount == nil {
		unset = append(unset, bson.E{Key: "investment_max", Value: ""})
	}
	if len(unset) > 0 {
		update = append(update, bson.E{Key: "$unset", Value: unset})
	}

	var d investorDoc
	err = r.c.FindOneAndUpdate(ctx, bson.D{{Key: "user_id", Value: p.UserID}}, update, upsertOptions()).Decode(&d)
	if err != nil {
		return fmt.Errorf("upsert investor profile: %w", err)
	}
	p.ID, p.CreatedAt = d.ID, d.CreatedAt
	return nil
}

func (r *InvestorProfileRepo) DeleteByUserID(ctx context.Context, userID string) error {
	if _, err := r.c.DeleteOne(ctx, bson.D{{Key: "user_id", Value: userID}}); err != nil {
		return fmt.Errorf("delete investor profile: %w", err)
	}
	return nil
}

// List combina los filtros con AND; un extremo ausente no cumple el filtro sobre ese extremo.
func (r *InvestorProfileRepo) List(ctx context.Context, f entity.InvestorFilter) ([]*entity.InvestorProfile, int64, error) {
	filter := bson.D{}
	if f.Search != "" {
		re := containsCI(f.Search)
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "full_name", Value: re}},
			bson.D{{Key: "location", Value: re}},
			bson.D{{Key: "skills.name", Value: re}},
		}})
	}
	if f.PortfolioSize != "" {
		filter = append(filter, bson.E{Key: "portfolio_size", Value: f.PortfolioSize})
	}
	if f.MinInvestment != nil {
		v, err := toDecimal128(*f.MinInvestment)
		if err != nil {
			return nil, 0, fmt.Errorf("list investor profiles: %w", err)
		}
		filter = append(filter, bson.E{Key: "investment_min", Value: bson.D{{Key: "$gte", Value: v}}})
	}
	if f.MaxInvestment != nil {
		v, err := toDecimal128(*f.MaxInvestment)
		if err != nil {
			return nil, 0, fmt.Errorf("list investor profiles: %w", err)
		}
		filter = append(filter, bson.E{Key: "investment_max", Value: bson.D{{Key: "$lte", Value: v}}})
	}

	total, err := r.c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count investor profiles: %w", err)
	}
	opts := options.Find().SetSort(newestFirst).SetSkip(int64(f.Offset))
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}
	cur, err := r.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list investor profiles: %w", err)
	}
	var docs []investorDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode investor profiles: %w", err)
	}
	list := make([]*entity.InvestorProfile, 0, len(docs))
	for _, d := range docs {
		list = append(list, d.entity())
	}
	return list, total, nil
}
