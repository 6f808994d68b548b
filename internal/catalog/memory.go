package catalog

import (
	"context"
	"sync"

	"tally/internal/domain"
)

// MemStore is an in-memory Store used in tests and when no catalog file is
// configured. ListErr and CreateErr, when set, make the corresponding call
// fail so the silent-degradation paths can be exercised.
type MemStore struct {
	mu        sync.Mutex
	Templates []domain.Template
	ListErr   error
	CreateErr error
	nextID    int64
}

// NewMemStore returns a store preloaded with the given templates.
func NewMemStore(templates ...domain.Template) *MemStore {
	s := &MemStore{}
	for _, t := range templates {
		s.nextID++
		t.ID = s.nextID
		s.Templates = append(s.Templates, t)
	}
	return s
}

// List implements Store.
func (s *MemStore) List(ctx context.Context) ([]domain.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	out := make([]domain.Template, len(s.Templates))
	copy(out, s.Templates)
	return out, nil
}

// Create implements Store, assigning the next server id.
func (s *MemStore) Create(ctx context.Context, t domain.Template) (domain.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.CreateErr != nil {
		return domain.Template{}, s.CreateErr
	}
	s.nextID++
	t.ID = s.nextID
	s.Templates = append(s.Templates, t)
	return t, nil
}
