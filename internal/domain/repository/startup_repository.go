package repository

import (
	"context"

	"github.com/jhoicas/startnet-api/internal/domain/entity"
)

// StartupRepository persistencia de startups. La verificación de dueño vive en el caso de uso.
type StartupRepository interface {
	Create(ctx context.Context, s *entity.Startup) error
	GetByID(ctx context.Context, id string) (*entity.Startup, error)
	ListByOwner(ctx context.Context, userID string) ([]*entity.Startup, error)
	List(ctx context.Context, f entity.StartupFilter) ([]*entity.Startup, int64, error)
	Update(ctx context.Context, s *entity.Startup) error
	Delete(ctx context.Context, id string) error
	DeleteByOwner(ctx context.Context, userID string) error
}
