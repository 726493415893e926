// Package memory implementa los repositorios sobre mapas en memoria (desarrollo y tests).
package memory

import (
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/jhoicas/startnet-api/internal/domain/entity"
)

// Store datos compartidos por todos los repositorios en memoria.
type Store struct {
	mu            sync.RWMutex
	users         map[string]*entity.User
	entrepreneurs map[string]*entity.EntrepreneurProfile // por userID
	investors     map[string]*entity.InvestorProfile     // por userID
	startups      map[string]*entity.Startup

	txMu sync.Mutex
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		users:         map[string]*entity.User{},
		entrepreneurs: map[string]*entity.EntrepreneurProfile{},
		investors:     map[string]*entity.InvestorProfile{},
		startups:      map[string]*entity.Startup{},
	}
}

type snapshot struct {
	users         map[string]*entity.User
	entrepreneurs map[string]*entity.EntrepreneurProfile
	investors     map[string]*entity.InvestorProfile
	startups      map[string]*entity.Startup
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := snapshot{
		users:         make(map[string]*entity.User, len(s.users)),
		entrepreneurs: make(map[string]*entity.EntrepreneurProfile, len(s.entrepreneurs)),
		investors:     make(map[string]*entity.InvestorProfile, len(s.investors)),
		startups:      make(map[string]*entity.Startup, len(s.startups)),
	}
	for k, v := range s.users {
		snap.users[k] = cloneUser(v)
	}
	for k, v := range s.entrepreneurs {
		snap.entrepreneurs[k] = cloneEntrepreneur(v)
	}
	for k, v := range s.investors {
		snap.investors[k] = cloneInvestor(v)
	}
	for k, v := range s.startups {
		snap.startups[k] = cloneStartup(v)
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = snap.users
	s.entrepreneurs = snap.entrepreneurs
	s.investors = snap.investors
	s.startups = snap.startups
}

var folder = cases.Fold()

// containsFold substring sin distinguir mayúsculas (Unicode).
func containsFold(haystack, needle string) bool {
	return strings.Contains(folder.String(haystack), folder.String(needle))
}

func cloneUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

func cloneBase(b entity.ProfileBase) entity.ProfileBase {
	b.SocialMedia = slices.Clone(b.SocialMedia)
	b.Skills = slices.Clone(b.Skills)
	return b
}

func cloneEntrepreneur(p *entity.EntrepreneurProfile) *entity.EntrepreneurProfile {
	if p == nil {
		return nil
	}
	c := *p
	c.ProfileBase = cloneBase(p.ProfileBase)
	c.Expertise = slices.Clone(p.Expertise)
	c.Achievements = slices.Clone(p.Achievements)
	return &c
}

func cloneInvestor(p *entity.InvestorProfile) *entity.InvestorProfile {
	if p == nil {
		return nil
	}
	c := *p
	c.ProfileBase = cloneBase(p.ProfileBase)
	c.InvestmentPreferences = slices.Clone(p.InvestmentPreferences)
	return &c
}

func cloneStartup(s *entity.Startup) *entity.Startup {
	if s == nil {
		return nil
	}
	c := *s
	c.Team = slices.Clone(s.Team)
	return &c
}

// paginate recorta list según offset/limit (limit <= 0 = sin límite).
func paginate[T any](list []T, offset, limit int) []T {
	if offset < 0 || offset >= len(list) {
		return []T{}
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
