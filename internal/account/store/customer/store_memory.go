package customer

import (
	"context"
	"sort"
	"sync"

	"ims/internal/account/models"
	"ims/pkg/domain"
	"ims/pkg/platform/sentinel"
)

type InMemoryStore struct {
	mu     sync.RWMutex
	nextID domain.CustomerID
	rows   map[domain.CustomerID]*models.Customer
	byUser map[domain.UserID]domain.CustomerID
}

func New() *InMemoryStore {
	return &InMemoryStore{
		rows:   make(map[domain.CustomerID]*models.Customer),
		byUser: make(map[domain.UserID]domain.CustomerID),
	}
}

// Create assigns the next id and stores c. One profile per user.
func (s *InMemoryStore) Create(_ context.Context, c *models.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byUser[c.UserID]; ok {
		return sentinel.ErrAlreadyUsed
	}
	s.nextID++
	c.ID = s.nextID
	cp := *c
	s.rows[c.ID] = &cp
	s.byUser[c.UserID] = c.ID
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id domain.CustomerID) (*models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.rows[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *InMemoryStore) FindByUserID(ctx context.Context, userID domain.UserID) (*models.Customer, error) {
	s.mu.RLock()
	id, ok := s.byUser[userID]
	s.mu.RUnlock()
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return s.FindByID(ctx, id)
}

func (s *InMemoryStore) Update(_ context.Context, c *models.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.rows[c.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	cp := *c
	cp.UserID = existing.UserID
	s.rows[c.ID] = &cp
	return nil
}

// ListAll returns customers ordered by id.
func (s *InMemoryStore) ListAll(_ context.Context) ([]*models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Customer, 0, len(s.rows))
	for _, c := range s.rows {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
