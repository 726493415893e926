package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/startnet-api/internal/domain"
	"github.com/jhoicas/startnet-api/internal/domain/entity"
	"github.com/jhoicas/startnet-api/internal/domain/repository"
)

var _ repository.StartupRepository = (*StartupRepo)(nil)

const startupColumns = `id, user_id, startup_name, startup_logo, industry, website, founded, description,
	address, email, mobile, problem, solution, traction, target_market, tam, demand, scalability,
	competitors, advantage, revenue_streams, annual_revenue, projected_revenue, funding_goal,
	raised_so_far, previous_funding, seeking, investor_roi, equity_available, team,
	created_at, updated_at`

// StartupRepo implementación de StartupRepository sobre PostgreSQL (pool o tx).
type StartupRepo struct {
	q Querier
}

// NewStartupRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStartupRepository(q Querier) *StartupRepo {
	return &StartupRepo{q: q}
}

// Create persiste una startup nueva.
func (r *StartupRepo) Create(ctx context.Context, s *entity.Startup) error {
	team, err := toJSONB(s.Team)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO startups (` + startupColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32)`
	_, err = r.q.Exec(ctx, query,
		s.ID, s.UserID, s.StartupName, s.StartupLogo, s.Industry, s.Website, s.Founded, s.Description,
		s.Address, s.Email, s.Mobile, s.Problem, s.Solution, s.Traction, s.TargetMarket, s.TAM, s.Demand, s.Scalability,
		s.Competitors, s.Advantage, s.RevenueStreams, s.AnnualRevenue, s.ProjectedRevenue, s.FundingGoal,
		s.RaisedSoFar, s.PreviousFunding, s.Seeking, s.InvestorROI, s.EquityAvailable, team,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert startup: %w", err)
	}
	return nil
}

// GetByID obtiene una startup; (nil, nil) si no existe.
func (r *StartupRepo) GetByID(ctx context.Context, id string) (*entity.Startup, error) {
	s, err := scanStartup(r.q.QueryRow(ctx, `SELECT `+startupColumns+` FROM startups WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get startup: %w", err)
	}
	return s, nil
}

// ListByOwner startups de un usuario, más recientes primero.
func (r *StartupRepo) ListByOwner(ctx context.Context, userID string) ([]*entity.Startup, error) {
	return r.query(ctx, `SELECT `+startupColumns+` FROM startups WHERE user_id = $1 ORDER BY created_at DESC, id`, userID)
}

// List filtra por búsqueda e industria y pagina.
func (r *StartupRepo) List(ctx context.Context, f entity.StartupFilter) ([]*entity.Startup, int64, error) {
	var w where
	if f.Search != "" {
		ph := w.arg(f.Search)
		w.add(fmt.Sprintf("(%s OR %s OR %s)",
			containsCI("startup_name", ph), containsCI("industry", ph), containsCI("description", ph)))
	}
	if f.Industry != "" {
		w.add("industry = " + w.arg(f.Industry))
	}

	var total int64
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM startups`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count startups: %w", err)
	}
	query := `SELECT ` + startupColumns + ` FROM startups` + w.sql() +
		` ORDER BY created_at DESC, id LIMIT ` + w.arg(f.Limit) + ` OFFSET ` + w.arg(f.Offset)
	list, err := r.query(ctx, query, w.args...)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Update reemplaza los campos editables. user_id y created_at no se tocan.
func (r *StartupRepo) Update(ctx context.Context, s *entity.Startup) error {
	team, err := toJSONB(s.Team)
	if err != nil {
		return err
	}
	query := `
		UPDATE startups SET
			startup_name = $2, startup_logo = $3, industry = $4, website = $5, founded = $6,
			description = $7, address = $8, email = $9, mobile = $10, problem = $11, solution = $12,
			traction = $13, target_market = $14, tam = $15, demand = $16, scalability = $17,
			competitors = $18, advantage = $19, revenue_streams = $20, annual_revenue = $21,
			projected_revenue = $22, funding_goal = $23, raised_so_far = $24, previous_funding = $25,
			seeking = $26, investor_roi = $27, equity_available = $28, team = $29, updated_at = $30
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		s.ID, s.StartupName, s.StartupLogo, s.Industry, s.Website, s.Founded,
		s.Description, s.Address, s.Email, s.Mobile, s.Problem, s.Solution,
		s.Traction, s.TargetMarket, s.TAM, s.Demand, s.Scalability,
		s.Competitors, s.Advantage, s.RevenueStreams, s.AnnualRevenue,
		s.ProjectedRevenue, s.FundingGoal, s.RaisedSoFar, s.PreviousFunding,
		s.Seeking, s.InvestorROI, s.EquityAvailable, team, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update startup: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una startup por ID.
func (r *StartupRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM startups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete startup: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByOwner elimina todas las startups de un usuario.
func (r *StartupRepo) DeleteByOwner(ctx context.Context, userID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM startups WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete startups by owner: %w", err)
	}
	return nil
}

func (r *StartupRepo) query(ctx context.Context, query string, args ...any) ([]*entity.Startup, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list startups: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Startup, 0)
	for rows.Next() {
		s, err := scanStartup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan startup: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanStartup(row pgx.Row) (*entity.Startup, error) {
	var (
		s    entity.Startup
		team []byte
	)
	err := row.Scan(
		&s.ID, &s.UserID, &s.StartupName, &s.StartupLogo, &s.Industry, &s.Website, &s.Founded, &s.Description,
		&s.Address, &s.Email, &s.Mobile, &s.Problem, &s.Solution, &s.Traction, &s.TargetMarket, &s.TAM, &s.Demand, &s.Scalability,
		&s.Competitors, &s.Advantage, &s.RevenueStreams, &s.AnnualRevenue, &s.ProjectedRevenue, &s.FundingGoal,
		&s.RaisedSoFar, &s.PreviousFunding, &s.Seeking, &s.InvestorROI, &s.EquityAvailable, &team,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := fromJSONB(team, &s.Team); err != nil {
		return nil, err
	}
	return &s, nil
}
