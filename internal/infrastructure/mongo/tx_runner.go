package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/jhoicas/startnet-api/internal/application/usecase"
	"github.com/jhoicas/startnet-api/internal/domain/repository"
)

var _ usecase.AccountTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta fn de forma secuencial con los repositorios normales.
// Un servidor standalone no soporta transacciones multi-documento; un fallo a mitad deja el borrado parcial.
type TxRunner struct {
	db *mongo.Database
}

// NewTxRunner construye el runner sobre db.
func NewTxRunner(db *mongo.Database) *TxRunner {
	return &TxRunner{db: db}
}

func (r *TxRunner) RunAccount(ctx context.Context, fn func(
	users repository.UserRepository,
	entrepreneurs repository.EntrepreneurProfileRepository,
	investors repository.InvestorProfileRepository,
	startups repository.StartupRepository,
) error) error {
	return fn(
		NewUserRepository(r.db),
		NewEntrepreneurProfileRepository(r.db),
		NewInvestorProfileRepository(r.db),
		NewStartupRepository(r.db),
	)
}
