package store

import (
	"context"
	"sync"

	"ims/internal/policy/models"
	"ims/pkg/domain"
	"ims/pkg/platform/sentinel"
)

// InMemoryStore keeps policies in issue order.
type InMemoryStore struct {
	mu       sync.RWMutex
	policies []*models.Policy
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Create(_ context.Context, p *models.Policy) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = domain.PolicyID(len(s.policies) + 1)
	cp := *p
	s.policies = append(s.policies, &cp)
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id domain.PolicyID) (*models.Policy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id < 1 || int(id) > len(s.policies) {
		return nil, sentinel.ErrNotFound
	}
	cp := *s.policies[id-1]
	return &cp, nil
}

func (s *InMemoryStore) ListByCustomer(_ context.Context, customerID domain.CustomerID) ([]*models.Policy, error) {
	return s.filter(func(p *models.Policy) bool { return p.CustomerID == customerID }), nil
}

func (s *InMemoryStore) ListByAgent(_ context.Context, agentID domain.AgentID) ([]*models.Policy, error) {
	return s.filter(func(p *models.Policy) bool { return p.AgentID == agentID }), nil
}

// CountByAvailablePolicy is used by tests to check issuance is exactly-once.
func (s *InMemoryStore) CountByAvailablePolicy(id domain.AvailablePolicyID) int {
	return len(s.filter(func(p *models.Policy) bool { return p.AvailablePolicyID == id }))
}

func (s *InMemoryStore) filter(keep func(*models.Policy) bool) []*models.Policy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Policy
	for _, p := range s.policies {
		if keep(p) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out
}
