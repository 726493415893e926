package blob

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/startnet-api/internal/application/ports"
)

var _ ports.BlobStorage = (*LocalStorage)(nil)

// LocalStorage guarda los blobs en disco bajo dir/<container>/<blob> y los publica con baseURL.
// Pensado para desarrollo: el servidor HTTP sirve dir como estático.
type LocalStorage struct {
	dir     string
	baseURL string
}

// NewLocalStorage crea el directorio raíz si no existe.
func NewLocalStorage(dir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("local blob: crear %s: %w", dir, err)
	}
	return &LocalStorage{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Dir raíz en disco (para montar el estático).
func (s *LocalStorage) Dir() string { return s.dir }

// Upload escribe el archivo de forma atómica (tmp + rename) y devuelve la URL pública.
func (s *LocalStorage) Upload(_ context.Context, container, blobName string, data []byte, _ string) (string, error) {
	if !validSegment(container) || !validSegment(blobName) {
		return "", fmt.Errorf("local blob: nombre inválido %q/%q", container, blobName)
	}
	dir := filepath.Join(s.dir, container)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("local blob: crear contenedor: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("local blob: temp: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("local blob: escribir: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("local blob: cerrar: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(dir, blobName)); err != nil {
		return "", fmt.Errorf("local blob: rename: %w", err)
	}
	return s.baseURL + "/" + url.PathEscape(container) + "/" + url.PathEscape(blobName), nil
}

func validSegment(s string) bool {
	return s != "" && s != "." && s != ".." && !strings.ContainsAny(s, `/\`)
}
