package ports

import "github.com/jhoicas/startnet-api/internal/domain/entity"

// StartupSheetGenerator genera la ficha PDF de una startup.
type StartupSheetGenerator interface {
	Generate(s *entity.Startup) ([]byte, error)
}
