package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/startnet-api/internal/domain/entity"
	"github.com/jhoicas/startnet-api/internal/domain/repository"
)

var (
	_ repository.EntrepreneurProfileRepository = (*EntrepreneurProfileRepo)(nil)
	_ repository.InvestorProfileRepository     = (*InvestorProfileRepo)(nil)
)

// EntrepreneurProfileRepo perfiles de emprendedor en memoria.
type EntrepreneurProfileRepo struct {
	s *Store
}

// NewEntrepreneurProfileRepository construye el repositorio sobre s.
func NewEntrepreneurProfileRepository(s *Store) *EntrepreneurProfileRepo {
	return &EntrepreneurProfileRepo{s: s}
}

func (r *EntrepreneurProfileRepo) GetByUserID(_ context.Context, userID string) (*entity.EntrepreneurProfile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneEntrepreneur(r.s.entrepreneurs[userID]), nil
}

// Upsert conserva ID y CreatedAt del documento existente.
func (r *EntrepreneurProfileRepo) Upsert(_ context.Context, p *entity.EntrepreneurProfile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if cur, ok := r.s.entrepreneurs[p.UserID]; ok {
		p.ID = cur.ID
		p.CreatedAt = cur.CreatedAt
	}
	r.s.entrepreneurs[p.UserID] = cloneEntrepreneur(p)
	return nil
}

func (r *EntrepreneurProfileRepo) DeleteByUserID(_ context.Context, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.entrepreneurs, userID)
	return nil
}

// InvestorProfileRepo perfiles de inversionista en memoria.
type InvestorProfileRepo struct {
	s *Store
}

// NewInvestorProfileRepository construye el repositorio sobre s.
func NewInvestorProfileRepository(s *Store) *InvestorProfileRepo {
	return &InvestorProfileRepo{s: s}
}

func (r *InvestorProfileRepo) GetByUserID(_ context.Context, userID string) (*entity.InvestorProfile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneInvestor(r.s.investors[userID]), nil
}

func (r *InvestorProfileRepo) GetByID(_ context.Context, id string) (*entity.InvestorProfile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.investors {
		if p.ID == id {
			return cloneInvestor(p), nil
		}
	}
	return nil, nil
}

func (r *InvestorProfileRepo) Upsert(_ context.Context, p *entity.InvestorProfile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if cur, ok := r.s.investors[p.UserID]; ok {
		p.ID = cur.ID
		p.CreatedAt = cur.CreatedAt
	}
	r.s.investors[p.UserID] = cloneInvestor(p)
	return nil
}

func (r *InvestorProfileRepo) DeleteByUserID(_ context.Context, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.investors, userID)
	return nil
}

func (r *InvestorProfileRepo) List(_ context.Context, f entity.InvestorFilter) ([]*entity.InvestorProfile, int64, error) {
	r.s.mu.RLock()
	var matched []*entity.InvestorProfile
	for _, p := range r.s.investors {
		if matchInvestor(p, f) {
			matched = append(matched, cloneInvestor(p))
		}
	}
	r.s.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	total := int64(len(matched))
	return paginate(matched, f.Offset, f.Limit), total, nil
}

func matchInvestor(p *entity.InvestorProfile, f entity.InvestorFilter) bool {
	if f.Search != "" && !investorMatchesSearch(p, f.Search) {
		return false
	}
	if f.PortfolioSize != "" && p.PortfolioSize != f.PortfolioSize {
		return false
	}
	// un extremo ausente nunca cumple un filtro sobre ese extremo
	if f.MinInvestment != nil && (!p.InvestmentRange.Min.Valid || p.InvestmentRange.Min.Decimal.LessThan(*f.MinInvestment)) {
		return false
	}
	if f.MaxInvestment != nil && (!p.InvestmentRange.Max.Valid || p.InvestmentRange.Max.Decimal.GreaterThan(*f.MaxInvestment)) {
		return false
	}
	return true
}

func investorMatchesSearch(p *entity.InvestorProfile, q string) bool {
	if containsFold(p.FullName, q) || containsFold(p.Location, q) {
		return true
	}
	for _, sk := range p.Skills {
		if containsFold(sk.Name, q) {
			return true
		}
	}
	return false
}
