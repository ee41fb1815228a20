package store

import (
	"context"
	"fmt"
	"sync"

	"ims/internal/claim/models"
	"ims/pkg/domain"
	"ims/pkg/platform/sentinel"
)

type InMemoryStore struct {
	mu     sync.RWMutex
	claims []*models.Claim
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Create(_ context.Context, c *models.Claim) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = domain.ClaimID(len(s.claims) + 1)
	s.claims = append(s.claims, clone(c))
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id domain.ClaimID) (*models.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.get(id)
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return clone(c), nil
}

// UpdateStatus moves a claim from one status to another under the write
// lock. A claim no longer in from returns sentinel.ErrInvalidState.
func (s *InMemoryStore) UpdateStatus(_ context.Context, id domain.ClaimID, from, to domain.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.get(id)
	if !ok {
		return sentinel.ErrNotFound
	}
	if c.Status != from {
		return fmt.Errorf("claim %d is %s: %w", id, c.Status, sentinel.ErrInvalidState)
	}
	if err := domain.Transition(from, to); err != nil {
		return fmt.Errorf("%w: %w", sentinel.ErrInvalidState, err)
	}
	c.Status = to
	return nil
}

func (s *InMemoryStore) ListByCustomer(_ context.Context, customerID domain.CustomerID) ([]*models.Claim, error) {
	return s.filter(func(c *models.Claim) bool { return c.CustomerID == customerID }), nil
}

func (s *InMemoryStore) ListByAgent(_ context.Context, agentID domain.AgentID) ([]*models.Claim, error) {
	return s.filter(func(c *models.Claim) bool { return c.AgentID != nil && *c.AgentID == agentID }), nil
}

func (s *InMemoryStore) ListAll(_ context.Context) ([]*models.Claim, error) {
	return s.filter(func(*models.Claim) bool { return true }), nil
}

func (s *InMemoryStore) get(id domain.ClaimID) (*models.Claim, bool) {
	if id < 1 || int(id) > len(s.claims) {
		return nil, false
	}
	return s.claims[id-1], true
}

func (s *InMemoryStore) filter(keep func(*models.Claim) bool) []*models.Claim {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Claim
	for _, c := range s.claims {
		if keep(c) {
			out = append(out, clone(c))
		}
	}
	return out
}

func clone(c *models.Claim) *models.Claim {
	cp := *c
	if c.AgentID != nil {
		a := *c.AgentID
		cp.AgentID = &a
	}
	return &cp
}
