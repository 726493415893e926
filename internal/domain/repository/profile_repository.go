package repository

import (
	"context"

	"github.com/jhoicas/startnet-api/internal/domain/entity"
)

// EntrepreneurProfileRepository persistencia del perfil de emprendedor (uno por usuario).
type EntrepreneurProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*entity.EntrepreneurProfile, error)
	// Upsert crea o reemplaza el documento de UserID; rellena ID y CreatedAt con los valores guardados.
	Upsert(ctx context.Context, p *entity.EntrepreneurProfile) error
	DeleteByUserID(ctx context.Context, userID string) error
}

// InvestorProfileRepository persistencia del perfil de inversionista.
type InvestorProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*entity.InvestorProfile, error)
	GetByID(ctx context.Context, id string) (*entity.InvestorProfile, error)
	Upsert(ctx context.Context, p *entity.InvestorProfile) error
	DeleteByUserID(ctx context.Context, userID string) error
	// List aplica el filtro, ordena por creación descendente y devuelve el total sin paginar.
	List(ctx context.Context, f entity.InvestorFilter) ([]*entity.InvestorProfile, int64, error)
}
