package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/startnet-api/internal/infrastructure/storage"
	"github.com/jhoicas/startnet-api/pkg/config"
	"github.com/jhoicas/startnet-api/pkg/logger"
)

func TestOpen_Memory(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: config.DriverMemory}}
	repos, err := storage.Open(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer repos.Close()

	assert.Equal(t, config.DriverMemory, repos.Driver)
	assert.NotNil(t, repos.Users)
	assert.NotNil(t, repos.Entrepreneurs)
	assert.NotNil(t, repos.Investors)
	assert.NotNil(t, repos.Startups)
	assert.NotNil(t, repos.Accounts)
}

func TestOpen_DriverDesconocido(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: "sqlite"}}
	_, err := storage.Open(context.Background(), cfg, logger.Nop())
	assert.Error(t, err)
}
