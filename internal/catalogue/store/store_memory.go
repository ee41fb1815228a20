package store

import (
	"context"
	"sort"
	"sync"

	"ims/internal/catalogue/models"
	"ims/pkg/domain"
	"ims/pkg/platform/sentinel"
)

type InMemoryStore struct {
	mu     sync.RWMutex
	nextID domain.AvailablePolicyID
	rows   map[domain.AvailablePolicyID]*models.AvailablePolicy
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{rows: make(map[domain.AvailablePolicyID]*models.AvailablePolicy)}
}

func (s *InMemoryStore) Create(_ context.Context, p *models.AvailablePolicy) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	p.ID = s.nextID
	cp := *p
	s.rows[p.ID] = &cp
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id domain.AvailablePolicyID) (*models.AvailablePolicy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.rows[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *InMemoryStore) Update(_ context.Context, p *models.AvailablePolicy) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[p.ID]; !ok {
		return sentinel.ErrNotFound
	}
	cp := *p
	s.rows[p.ID] = &cp
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, id domain.AvailablePolicyID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

func (s *InMemoryStore) ListAll(_ context.Context) ([]*models.AvailablePolicy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.AvailablePolicy, 0, len(s.rows))
	for _, p := range s.rows {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
