package blob_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/startnet-api/internal/infrastructure/blob"
)

func TestLocalStorage_Upload(t *testing.T) {
	dir := t.TempDir()
	s, err := blob.NewLocalStorage(dir, "http://localhost:5000/uploads/")
	require.NoError(t, err)

	url, err := s.Upload(context.Background(), "startup-logos", "startup-logo-01H-logo.png", []byte("png"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000/uploads/startup-logos/startup-logo-01H-logo.png", url)

	got, err := os.ReadFile(filepath.Join(dir, "startup-logos", "startup-logo-01H-logo.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), got)
}

func TestLocalStorage_ReemplazaMismoNombre(t *testing.T) {
	dir := t.TempDir()
	s, err := blob.NewLocalStorage(dir, "http://x")
	require.NoError(t, err)

	_, err = s.Upload(context.Background(), "c", "a", []byte("v1"), "image/png")
	require.NoError(t, err)
	_, err = s.Upload(context.Background(), "c", "a", []byte("v2"), "image/png")
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dir, "c", "a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)
}

func TestLocalStorage_RechazaRutas(t *testing.T) {
	s, err := blob.NewLocalStorage(t.TempDir(), "http://x")
	require.NoError(t, err)

	_, err = s.Upload(context.Background(), "c", "../escape", []byte("x"), "image/png")
	assert.Error(t, err)
	_, err = s.Upload(context.Background(), "..", "a", []byte("x"), "image/png")
	assert.Error(t, err)
}

func TestMemoryStorage(t *testing.T) {
	s := blob.NewMemoryStorage()
	url, err := s.Upload(context.Background(), "c", "b", []byte("data"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "memory://c/b", url)

	o, ok := s.Get("c", "b")
	require.True(t, ok)
	assert.Equal(t, "image/jpeg", o.ContentType)
	assert.Equal(t, 1, s.Len())
}
