package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/startnet-api/internal/application/usecase"
	"github.com/jhoicas/startnet-api/internal/domain/entity"
	"github.com/jhoicas/startnet-api/internal/infrastructure/blob"
	"github.com/jhoicas/startnet-api/internal/infrastructure/memory"
)

// fixture agrupa los casos de uso sobre un store en memoria.
type fixture struct {
	store         *memory.Store
	users         *memory.UserRepo
	blobs         *blob.MemoryStorage
	entrepreneurs *usecase.EntrepreneurProfileUseCase
	investors     *usecase.InvestorProfileUseCase
	startups      *usecase.StartupUseCase
	accounts      *usecase.AccountUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	users := memory.NewUserRepository(store)
	blobs := blob.NewMemoryStorage()
	upload := usecase.UploadConfig{MaxBytes: 1024}
	return &fixture{
		store:         store,
		users:         users,
		blobs:         blobs,
		entrepreneurs: usecase.NewEntrepreneurProfileUseCase(users, memory.NewEntrepreneurProfileRepository(store), blobs, upload),
		investors:     usecase.NewInvestorProfileUseCase(users, memory.NewInvestorProfileRepository(store), blobs, upload),
		startups:      usecase.NewStartupUseCase(memory.NewStartupRepository(store), blobs, fakeSheet{}, upload),
		accounts:      usecase.NewAccountUseCase(memory.NewTxRunner(store)),
	}
}

func (f *fixture) user(t *testing.T, name, accountType string) *entity.User {
	t.Helper()
	u := &entity.User{
		ID:          uuid.New().String(),
		FullName:    name,
		Email:       uuid.New().String() + "@x.co",
		AccountType: accountType,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, f.users.Create(context.Background(), u))
	return u
}

type fakeSheet struct{}

func (fakeSheet) Generate(s *entity.Startup) ([]byte, error) {
	return []byte("%PDF-" + s.StartupName), nil
}

func ptr[T any](v T) *T { return &v }
