package profile

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore keeps profiles in memory. It backs the terminal preview and
// tests.
type MemoryStore struct {
	mu      sync.RWMutex
	details []Detail
	byID    map[string]int
}

// NewMemoryStore creates a store holding details, sorted by creation time.
func NewMemoryStore(details ...Detail) *MemoryStore {
	s := &MemoryStore{byID: make(map[string]int)}
	s.insert(details)
	return s
}

// Count implements Store.
func (s *MemoryStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.details), nil
}

// Items implements Store.
func (s *MemoryStore) Items(ctx context.Context) ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]Item, len(s.details))
	for i, d := range s.details {
		items[i] = d.Item
	}
	return items, nil
}

// Detail implements Store.
func (s *MemoryStore) Detail(ctx context.Context, id string) (*Detail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	d := s.details[i]
	d.Links = slices.Clone(d.Links)
	return &d, nil
}

// Insert implements Writer. Profiles with an existing id replace the stored
// record.
func (s *MemoryStore) Insert(ctx context.Context, details []Detail) error {
	s.insert(details)
	return nil
}

// Truncate removes the n most recently created profiles.
func (s *MemoryStore) Truncate(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	keep := max(len(s.details)-n, 0)
	for _, d := range s.details[keep:] {
		delete(s.byID, d.ID)
	}
	s.details = s.details[:keep]
}

func (s *MemoryStore) insert(details []Detail) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range details {
		if i, ok := s.byID[d.ID]; ok {
			s.details[i] = d
			continue
		}
		s.details = append(s.details, d)
		s.byID[d.ID] = len(s.details) - 1
	}
	slices.SortStableFunc(s.details, func(a, b Detail) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	for i, d := range s.details {
		s.byID[d.ID] = i
	}
}

var (
	_ Store  = (*MemoryStore)(nil)
	_ Writer = (*MemoryStore)(nil)
)
