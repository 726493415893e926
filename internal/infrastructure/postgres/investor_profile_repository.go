package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/startnet-api/internal/domain/entity"
	"github.com/jhoicas/startnet-api/internal/domain/repository"
)

var _ repository.InvestorProfileRepository = (*InvestorProfileRepo)(nil)

const investorColumns = `id, user_id, full_name, email, phone, location, bio, profile_picture,
	social_media, skills, investment_preferences, portfolio_size, investment_min, investment_max,
	created_at, updated_at`

// InvestorProfileRepo perfiles de inversionista. El rango de inversión va en dos NUMERIC nulos.
type InvestorProfileRepo struct {
	q Querier
}

// NewInvestorProfileRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvestorProfileRepository(q Querier) *InvestorProfileRepo {
	return &InvestorProfileRepo{q: q}
}

func (r *InvestorProfileRepo) GetByUserID(ctx context.Context, userID string) (*entity.InvestorProfile, error) {
	return r.getOne(ctx, `SELECT `+investorColumns+` FROM investor_profiles WHERE user_id = $1`, userID)
}

func (r *InvestorProfileRepo) GetByID(ctx context.Context, id string) (*entity.InvestorProfile, error) {
	return r.getOne(ctx, `SELECT `+investorColumns+` FROM investor_profiles WHERE id = $1`, id)
}

func (r *InvestorProfileRepo) getOne(ctx context.Context, query, arg string) (*entity.InvestorProfile, error) {
	p, err := scanInvestor(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get investor profile: %w", err)
	}
	return p, nil
}

// Upsert INSERT ... ON CONFLICT (user_id); ID y CreatedAt quedan con los valores guardados.
func (r *InvestorProfileRepo) Upsert(ctx context.Context, p *entity.InvestorProfile) error {
	social, err := toJSONB(p.SocialMedia)
	if err != nil {
		return err
	}
	skills, err := toJSONB(p.Skills)
	if err != nil {
		return err
	}
	prefs, err := toJSONB(p.InvestmentPreferences)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO investor_profiles (` + investorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			location = EXCLUDED.location,
			bio = EXCLUDED.bio,
			profile_picture = EXCLUDED.profile_picture,
			social_media = EXCLUDED.social_media,
			skills = EXCLUDED.skills,
			investment_preferences = EXCLUDED.investment_preferences,
			portfolio_size = EXCLUDED.portfolio_size,
			investment_min = EXCLUDED.investment_min,
			investment_max = EXCLUDED.investment_max,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`
	err = r.q.QueryRow(ctx, query,
		p.ID, p.UserID, p.FullName, p.Email, p.Phone, p.Location, p.Bio, p.ProfilePicture,
		social, skills, prefs, p.PortfolioSize, p.InvestmentRange.Min, p.InvestmentRange.Max,
		p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert investor profile: %w", err)
	}
	return nil
}

func (r *InvestorProfileRepo) DeleteByUserID(ctx context.Context, userID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM investor_profiles WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete investor profile: %w", err)
	}
	return nil
}

// List filtra con AND, ordena por created_at DESC y pagina con LIMIT/OFFSET.
func (r *InvestorProfileRepo) List(ctx context.Context, f entity.InvestorFilter) ([]*entity.InvestorProfile, int64, error) {
	var w where
	if f.Search != "" {
		ph := w.arg(f.Search)
		w.add(fmt.Sprintf(`(%s OR %s OR EXISTS (
			SELECT 1 FROM jsonb_array_elements(skills) AS s WHERE %s))`,
			containsCI("full_name", ph), containsCI("location", ph), containsCI("s->>'name'", ph)))
	}
	if f.PortfolioSize != "" {
		w.add("portfolio_size = " + w.arg(f.PortfolioSize))
	}
	if f.MinInvestment != nil {
		w.add("investment_min >= " + w.arg(*f.MinInvestment))
	}
	if f.MaxInvestment != nil {
		w.add("investment_max <= " + w.arg(*f.MaxInvestment))
	}

	var total int64
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM investor_profiles`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count investor profiles: %w", err)
	}

	query := `SELECT ` + investorColumns + ` FROM investor_profiles` + w.sql() +
		` ORDER BY created_at DESC, id LIMIT ` + w.arg(f.Limit) + ` OFFSET ` + w.arg(f.Offset)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list investor profiles: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.InvestorProfile, 0)
	for rows.Next() {
		p, err := scanInvestor(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan investor profile: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

func scanInvestor(row pgx.Row) (*entity.InvestorProfile, error) {
	var (
		p                     entity.InvestorProfile
		social, skills, prefs []byte
	)
	err := row.Scan(
		&p.ID, &p.UserID, &p.FullName, &p.Email, &p.Phone, &p.Location, &p.Bio, &p.ProfilePicture,
		&social, &skills, &prefs, &p.PortfolioSize, &p.InvestmentRange.Min, &p.InvestmentRange.Max,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := fromJSONB(social, &p.SocialMedia); err != nil {
		return nil, err
	}
	if err := fromJSONB(skills, &p.Skills); err != nil {
		return nil, err
	}
	if err := fromJSONB(prefs, &p.InvestmentPreferences); err != nil {
		return nil, err
	}
	return &p, nil
}
