package blob

import (
	"context"
	"sync"

	"github.com/jhoicas/startnet-api/internal/application/ports"
)

var _ ports.BlobStorage = (*MemoryStorage)(nil)

// Object blob guardado por MemoryStorage.
type Object struct {
	Data        []byte
	ContentType string
}

// MemoryStorage BlobStorage en memoria para tests y STORAGE_DRIVER=memory sin disco.
type MemoryStorage struct {
	mu      sync.RWMutex
	objects map[string]Object
}

// NewMemoryStorage crea un almacenamiento vacío.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{objects: map[string]Object{}}
}

func (s *MemoryStorage) Upload(_ context.Context, container, blobName string, data []byte, contentType string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := container + "/" + blobName
	s.objects[key] = Object{Data: append([]byte(nil), data...), ContentType: contentType}
	return "memory://" + key, nil
}

// Get devuelve el objeto guardado bajo container/blobName.
func (s *MemoryStorage) Get(container, blobName string) (Object, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.objects[container+"/"+blobName]
	return o, ok
}

// Len cantidad de objetos guardados.
func (s *MemoryStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
