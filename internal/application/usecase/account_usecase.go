package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/startnet-api/internal/domain"
	"github.com/jhoicas/startnet-api/internal/domain/repository"
)

// AccountTxRunner ejecuta fn con repositorios que comparten una transacción cuando el driver la soporta.
// Si fn retorna error, los cambios se descartan.
type AccountTxRunner interface {
	RunAccount(ctx context.Context, fn func(
		users repository.UserRepository,
		entrepreneurs repository.EntrepreneurProfileRepository,
		investors repository.InvestorProfileRepository,
		startups repository.StartupRepository,
	) error) error
}

// AccountUseCase baja de cuentas con borrado en cascada.
type AccountUseCase struct {
	tx AccountTxRunner
}

// NewAccountUseCase construye el caso de uso.
func NewAccountUseCase(tx AccountTxRunner) *AccountUseCase {
	return &AccountUseCase{tx: tx}
}

// DeleteAccount borra perfiles, startups y por último la cuenta.
func (uc *AccountUseCase) DeleteAccount(ctx context.Context, userID string) error {
	return uc.tx.RunAccount(ctx, func(
		users repository.UserRepository,
		entrepreneurs repository.EntrepreneurProfileRepository,
		investors repository.InvestorProfileRepository,
		startups repository.StartupRepository,
	) error {
		user, err := users.GetByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("delete account: get user: %w", err)
		}
		if user == nil {
			return domain.ErrUserNotFound
		}
		if err := investors.DeleteByUserID(ctx, userID); err != nil {
			return fmt.Errorf("delete account: investor profile: %w", err)
		}
		if err := entrepreneurs.DeleteByUserID(ctx, userID); err != nil {
			return fmt.Errorf("delete account: entrepreneur profile: %w", err)
		}
		if err := startups.DeleteByOwner(ctx, userID); err != nil {
			return fmt.Errorf("delete account: startups: %w", err)
		}
		if err := users.Delete(ctx, userID); err != nil {
			return fmt.Errorf("delete account: user: %w", err)
		}
		return nil
	})
}
