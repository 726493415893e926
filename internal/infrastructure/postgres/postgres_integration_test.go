package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/startnet-api/internal/domain"
	"github.com/jhoicas/startnet-api/internal/domain/entity"
	"github.com/jhoicas/startnet-api/internal/domain/repository"
	"github.com/jhoicas/startnet-api/internal/infrastructure/postgres"
	"github.com/jhoicas/startnet-api/pkg/config"
)

// startPostgres levanta postgres:16-alpine, aplica migraciones y devuelve el pool.
func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("integración: omitido con -short")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "startnet",
			"POSTGRES_PASSWORD": "startnet",
			"POSTGRES_DB":       "startnet",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("integración: no se pudo iniciar postgres: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminate postgres: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, config.DBConfig{
		DatabaseURL: fmt.Sprintf("postgres://startnet:startnet@%s:%s/startnet?sslmode=disable", host, port.Port()),
	})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.Migrate(pool))
	return pool
}

func TestPostgres_Repositorios(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()
	users := postgres.NewUserRepository(pool)
	investors := postgres.NewInvestorProfileRepository(pool)
	startups := postgres.NewStartupRepository(pool)

	now := time.Now().UTC().Truncate(time.Millisecond)
	u := &entity.User{ID: "u1", FullName: "Ana", Email: "ana@x.co", PasswordHash: "h", AccountType: entity.AccountInvestor, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, users.Create(ctx, u))
	dup := *u
	dup.ID = "u2"
	assert.ErrorIs(t, users.Create(ctx, &dup), domain.ErrEmailAlreadyExists)

	got, err := users.GetByEmail(ctx, "ana@x.co")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ana", got.FullName)

	// upsert conserva id y created_at del primer insert
	p := &entity.InvestorProfile{PortfolioSize: "Under $100K"}
	p.ID, p.UserID, p.FullName, p.CreatedAt, p.UpdatedAt = "p1", "u1", "Ana", now, now
	p.Skills = []entity.Skill{{Name: "FinTech"}}
	p.InvestmentRange = entity.InvestmentRange{Min: decimal.NewNullDecimal(decimal.NewFromInt(10000)), Max: decimal.NewNullDecimal(decimal.NewFromInt(50000))}
	require.NoError(t, investors.Upsert(ctx, p))

	again := *p
	again.ID = "otro"
	again.CreatedAt = now.Add(time.Hour)
	again.Location = "Madrid"
	require.NoError(t, investors.Upsert(ctx, &again))
	assert.Equal(t, "p1", again.ID)
	assert.True(t, again.CreatedAt.Equal(now))

	floor := decimal.NewFromInt(8000)
	list, total, err := investors.List(ctx, entity.InvestorFilter{Search: "fin", PortfolioSize: "Under $100K", MinInvestment: &floor, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, "Madrid", list[0].Location)
	assert.Equal(t, []entity.Skill{{Name: "FinTech"}}, list[0].Skills)

	s := &entity.Startup{
		ID: "s1", UserID: "u1", StartupName: "Acme", Industry: "Tech", Description: "d", Address: "a",
		Email: "a@b.com", Mobile: "1", FundingGoal: decimal.NewFromInt(500000),
		Team:      []entity.TeamMember{{Name: "A", Role: "CEO", Email: "a@b.com"}},
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, startups.Create(ctx, s))
	found, total, err := startups.List(ctx, entity.StartupFilter{Search: "ACME", Industry: "Tech", Limit: 9})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, found, 1)
	assert.True(t, found[0].RaisedSoFar.IsZero())

	// la cascada corre en una sola transacción
	tx := postgres.NewTxRunner(pool)
	err = tx.RunAccount(ctx, func(us repository.UserRepository, es repository.EntrepreneurProfileRepository, is repository.InvestorProfileRepository, ss repository.StartupRepository) error {
		require.NoError(t, is.DeleteByUserID(ctx, "u1"))
		require.NoError(t, ss.DeleteByOwner(ctx, "u1"))
		return us.Delete(ctx, "u1")
	})
	require.NoError(t, err)
	gone, err := users.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, gone)
	mine, err := startups.ListByOwner(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, mine)
}
