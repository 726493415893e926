package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/startnet-api/internal/domain"
	"github.com/jhoicas/startnet-api/internal/domain/entity"
	"github.com/jhoicas/startnet-api/internal/domain/repository"
)

var _ repository.StartupRepository = (*StartupRepo)(nil)

// StartupRepo startups en memoria.
type StartupRepo struct {
	s *Store
}

// NewStartupRepository construye el repositorio sobre s.
func NewStartupRepository(s *Store) *StartupRepo {
	return &StartupRepo{s: s}
}

func (r *StartupRepo) Create(_ context.Context, st *entity.Startup) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.startups[st.ID] = cloneStartup(st)
	return nil
}

func (r *StartupRepo) GetByID(_ context.Context, id string) (*entity.Startup, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneStartup(r.s.startups[id]), nil
}

func (r *StartupRepo) ListByOwner(_ context.Context, userID string) ([]*entity.Startup, error) {
	r.s.mu.RLock()
	list := make([]*entity.Startup, 0)
	for _, st := range r.s.startups {
		if st.UserID == userID {
			list = append(list, cloneStartup(st))
		}
	}
	r.s.mu.RUnlock()
	sortNewestFirst(list)
	return list, nil
}

func (r *StartupRepo) List(_ context.Context, f entity.StartupFilter) ([]*entity.Startup, int64, error) {
	r.s.mu.RLock()
	var matched []*entity.Startup
	for _, st := range r.s.startups {
		if f.Industry != "" && st.Industry != f.Industry {
			continue
		}
		if f.Search != "" && !containsFold(st.StartupName, f.Search) &&
			!containsFold(st.Industry, f.Search) && !containsFold(st.Description, f.Search) {
			continue
		}
		matched = append(matched, cloneStartup(st))
	}
	r.s.mu.RUnlock()
	sortNewestFirst(matched)
	total := int64(len(matched))
	return paginate(matched, f.Offset, f.Limit), total, nil
}

// Update reemplaza el documento; el dueño guardado no cambia.
func (r *StartupRepo) Update(_ context.Context, st *entity.Startup) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.startups[st.ID]
	if !ok {
		return domain.ErrNotFound
	}
	c := cloneStartup(st)
	c.UserID = cur.UserID
	c.CreatedAt = cur.CreatedAt
	r.s.startups[st.ID] = c
	return nil
}

func (r *StartupRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.startups[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.startups, id)
	return nil
}

func (r *StartupRepo) DeleteByOwner(_ context.Context, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, st := range r.s.startups {
		if st.UserID == userID {
			delete(r.s.startups, id)
		}
	}
	return nil
}

func sortNewestFirst(list []*entity.Startup) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
}
