package memory

import (
	"context"

	"github.com/jhoicas/startnet-api/internal/application/usecase"
	"github.com/jhoicas/startnet-api/internal/domain/repository"
)

var _ usecase.AccountTxRunner = (*TxRunner)(nil)

// TxRunner serializa las operaciones de cuenta y restaura una copia del store si fn falla.
// Las escrituras concurrentes fuera del runner durante un rollback se pierden.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre s.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

func (r *TxRunner) RunAccount(ctx context.Context, fn func(
	users repository.UserRepository,
	entrepreneurs repository.EntrepreneurProfileRepository,
	investors repository.InvestorProfileRepository,
	startups repository.StartupRepository,
) error) error {
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()

	snap := r.s.snapshot()
	err := fn(
		NewUserRepository(r.s),
		NewEntrepreneurProfileRepository(r.s),
		NewInvestorProfileRepository(r.s),
		NewStartupRepository(r.s),
	)
	if err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}
