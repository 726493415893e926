package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/startnet-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, 5000, cfg.HTTP.Port)
	assert.Equal(t, 5<<20, cfg.Blob.MaxUploadBytes)
	assert.Equal(t, time.Minute, cfg.RateLimit.AuthWindow)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")
	t.Setenv("STORAGE_DRIVER", "Mongo")
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test ,")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DriverMongo, cfg.Storage.Driver)
	assert.Equal(t, 8081, cfg.HTTP.Port)
	assert.False(t, cfg.DB.AutoMigrate)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.HTTP.AllowedOrigins())
}

func TestValidate_Rechazos(t *testing.T) {
	base := func() *config.Config {
		return &config.Config{
			Storage: config.StorageConfig{Driver: config.DriverMemory},
			JWT:     config.JWTConfig{Secret: "s", Expiration: 60},
			Blob:    config.BlobConfig{Provider: config.BlobLocal},
		}
	}

	cfg := base()
	cfg.JWT.Secret = ""
	assert.Error(t, cfg.Validate(), "secret vacío")

	cfg = base()
	cfg.Storage.Driver = "sqlite"
	assert.Error(t, cfg.Validate(), "driver desconocido")

	cfg = base()
	cfg.Blob.Provider = config.BlobAzure
	assert.Error(t, cfg.Validate(), "azure sin connection string")

	assert.NoError(t, base().Validate())
}

func TestDBConfig_DSN_EscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "startnet", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/startnet?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
