package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/startnet-api/internal/domain/entity"
	"github.com/jhoicas/startnet-api/internal/domain/repository"
)

var _ repository.EntrepreneurProfileRepository = (*EntrepreneurProfileRepo)(nil)

const entrepreneurColumns = `id, user_id, full_name, email, phone, location, bio, profile_picture,
	social_media, skills, expertise, achievements, created_at, updated_at`

// EntrepreneurProfileRepo perfiles de emprendedor; listas en columnas JSONB.
type EntrepreneurProfileRepo struct {
	q Querier
}

// NewEntrepreneurProfileRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEntrepreneurProfileRepository(q Querier) *EntrepreneurProfileRepo {
	return &EntrepreneurProfileRepo{q: q}
}

// GetByUserID devuelve (nil, nil) si el usuario aún no tiene perfil.
func (r *EntrepreneurProfileRepo) GetByUserID(ctx context.Context, userID string) (*entity.EntrepreneurProfile, error) {
	row := r.q.QueryRow(ctx, `SELECT `+entrepreneurColumns+` FROM entrepreneur_profiles WHERE user_id = $1`, userID)
	p, err := scanEntrepreneur(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entrepreneur profile: %w", err)
	}
	return p, nil
}

// Upsert INSERT ... ON CONFLICT (user_id); ID y CreatedAt quedan con los valores guardados.
func (r *EntrepreneurProfileRepo) Upsert(ctx context.Context, p *entity.EntrepreneurProfile) error {
	social, err := toJSONB(p.SocialMedia)
	if err != nil {
		return err
	}
	skills, err := toJSONB(p.Skills)
	if err != nil {
		return err
	}
	expertise, err := toJSONB(p.Expertise)
	if err != nil {
		return err
	}
	achievements, err := toJSONB(p.Achievements)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO entrepreneur_profiles (` + entrepreneurColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			location = EXCLUDED.location,
			bio = EXCLUDED.bio,
			profile_picture = EXCLUDED.profile_picture,
			social_media = EXCLUDED.social_media,
			skills = EXCLUDED.skills,
			expertise = EXCLUDED.expertise,
			achievements = EXCLUDED.achievements,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`
	err = r.q.QueryRow(ctx, query,
		p.ID, p.UserID, p.FullName, p.Email, p.Phone, p.Location, p.Bio, p.ProfilePicture,
		social, skills, expertise, achievements, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert entrepreneur profile: %w", err)
	}
	return nil
}

// DeleteByUserID borra el perfil si existe.
func (r *EntrepreneurProfileRepo) DeleteByUserID(ctx context.Context, userID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM entrepreneur_profiles WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete entrepreneur profile: %w", err)
	}
	return nil
}

func scanEntrepreneur(row pgx.Row) (*entity.EntrepreneurProfile, error) {
	var (
		p                                       entity.EntrepreneurProfile
		social, skills, expertise, achievements []byte
	)
	err := row.Scan(
		&p.ID, &p.UserID, &p.FullName, &p.Email, &p.Phone, &p.Location, &p.Bio, &p.ProfilePicture,
		&social, &skills, &expertise, &achievements, &p.CreatedAt, &p.UpdatedAt,
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
	if err := fromJSONB(expertise, &p.Expertise); err != nil {
		return nil, err
	}
	if err := fromJSONB(achievements, &p.Achievements); err != nil {
		return nil, err
	}
	return &p, nil
}
