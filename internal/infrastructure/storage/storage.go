// Package storage arma el juego de repositorios según STORAGE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/startnet-api/internal/application/usecase"
	"github.com/jhoicas/startnet-api/internal/domain/repository"
	"github.com/jhoicas/startnet-api/internal/infrastructure/memory"
	"github.com/jhoicas/startnet-api/internal/infrastructure/mongo"
	"github.com/jhoicas/startnet-api/internal/infrastructure/postgres"
	"github.com/jhoicas/startnet-api/pkg/config"
	"github.com/jhoicas/startnet-api/pkg/logger"
)

// Repositories implementación de cada puerto más el runner de baja de cuentas.
type Repositories struct {
	Driver        string
	Users         repository.UserRepository
	Entrepreneurs repository.EntrepreneurProfileRepository
	Investors     repository.InvestorProfileRepository
	Startups      repository.StartupRepository
	Accounts      usecase.AccountTxRunner

	close func()
}

// Close libera pool o cliente.
func (r *Repositories) Close() {
	if r.close != nil {
		r.close()
	}
}

// Open conecta el driver configurado. Con postgres aplica migraciones si DB_AUTO_MIGRATE.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Repositories, error) {
	log = log.Component("storage")
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg.DB, log)
	case config.DriverMongo:
		return openMongo(ctx, cfg.Mongo, log)
	case config.DriverMemory:
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		return Memory(), nil
	default:
		return nil, fmt.Errorf("storage: driver desconocido %q", cfg.Storage.Driver)
	}
}

// Memory repositorios en memoria sobre un store nuevo (desarrollo y tests).
func Memory() *Repositories {
	st := memory.NewStore()
	return &Repositories{
		Driver:        config.DriverMemory,
		Users:         memory.NewUserRepository(st),
		Entrepreneurs: memory.NewEntrepreneurProfileRepository(st),
		Investors:     memory.NewInvestorProfileRepository(st),
		Startups:      memory.NewStartupRepository(st),
		Accounts:      memory.NewTxRunner(st),
	}
}

func openPostgres(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*Repositories, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.AutoMigrate {
		if err := postgres.Migrate(pool); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Msg("migraciones aplicadas")
	}
	log.Info().Msg("conectado a PostgreSQL")
	return &Repositories{
		Driver:        config.DriverPostgres,
		Users:         postgres.NewUserRepository(pool),
		Entrepreneurs: postgres.NewEntrepreneurProfileRepository(pool),
		Investors:     postgres.NewInvestorProfileRepository(pool),
		Startups:      postgres.NewStartupRepository(pool),
		Accounts:      postgres.NewTxRunner(pool),
		close:         pool.Close,
	}, nil
}

func openMongo(ctx context.Context, cfg config.MongoConfig, log *logger.Logger) (*Repositories, error) {
	st, err := mongo.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := st.EnsureIndexes(ctx); err != nil {
		_ = st.Close(context.Background())
		return nil, err
	}
	log.Info().Str("database", cfg.Database).Msg("conectado a MongoDB")
	db := st.Database()
	return &Repositories{
		Driver:        config.DriverMongo,
		Users:         mongo.NewUserRepository(db),
		Entrepreneurs: mongo.NewEntrepreneurProfileRepository(db),
		Investors:     mongo.NewInvestorProfileRepository(db),
		Startups:      mongo.NewStartupRepository(db),
		Accounts:      mongo.NewTxRunner(db),
		close: func() {
			if err := st.Close(context.Background()); err != nil {
				log.Error().Err(err).Msg("cerrando MongoDB")
			}
		},
	}, nil
}
