package scheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/rich365/rich365/internal/domain"
)

// UsedSet is the insertion-ordered set of template titles already assigned
// within one year for one profile.
type UsedSet struct {
	titles []string
	index  map[string]struct{}
}

// NewUsedSet builds a set from titles, dropping duplicates.
func NewUsedSet(titles ...string) *UsedSet {
	s := &UsedSet{index: make(map[string]struct{}, len(titles))}
	for _, t := range titles {
		s.Add(t)
	}
	return s
}

func (s *UsedSet) Has(title string) bool {
	_, ok := s.index[title]
	return ok
}

// Add inserts title and reports whether it was new.
func (s *UsedSet) Add(title string) bool {
	if s.Has(title) {
		return false
	}
	s.index[title] = struct{}{}
	s.titles = append(s.titles, title)
	return true
}

func (s *UsedSet) Len() int { return len(s.titles) }

// Titles returns the titles in insertion order.
func (s *UsedSet) Titles() []string {
	out := make([]string, len(s.titles))
	copy(out, s.titles)
	return out
}

// UsedActionStore persists UsedSets keyed by (year, personality, role).
// Implementations need not serialize concurrent writers for the same key.
type UsedActionStore interface {
	Get(ctx context.Context, year int, p domain.PersonalityType, r domain.Role) (*UsedSet, error)
	Set(ctx context.Context, year int, p domain.PersonalityType, r domain.Role, used *UsedSet) error
}

// UsedKey renders the storage key for a profile year.
func UsedKey(year int, p domain.PersonalityType, r domain.Role) string {
	return fmt.Sprintf("%d-%s-%s", year, p, r)
}

// MemoryUsedStore is an in-process UsedActionStore.
type MemoryUsedStore struct {
	mu   sync.Mutex
	sets map[string][]string
}

func NewMemoryUsedStore() *MemoryUsedStore {
	return &MemoryUsedStore{sets: make(map[string][]string)}
}

func (m *MemoryUsedStore) Get(_ context.Context, year int, p domain.PersonalityType, r domain.Role) (*UsedSet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return NewUsedSet(m.sets[UsedKey(year, p, r)]...), nil
}

func (m *MemoryUsedStore) Set(_ context.Context, year int, p domain.PersonalityType, r domain.Role, used *UsedSet) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets[UsedKey(year, p, r)] = used.Titles()
	return nil
}

type noopUsedStore struct{}

func (noopUsedStore) Get(context.Context, int, domain.PersonalityType, domain.Role) (*UsedSet, error) {
	return NewUsedSet(), nil
}

func (noopUsedStore) Set(context.Context, int, domain.PersonalityType, domain.Role, *UsedSet) error {
	return nil
}
