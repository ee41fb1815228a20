package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"ims/internal/policyrequest/models"
	"ims/pkg/domain"
	"ims/pkg/platform/sentinel"
)

type InMemoryStore struct {
	mu       sync.RWMutex
	requests []*models.PolicyRequest
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Create(_ context.Context, r *models.PolicyRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = domain.PolicyRequestID(len(s.requests) + 1)
	cp := *r
	s.requests = append(s.requests, &cp)
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id domain.PolicyRequestID) (*models.PolicyRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.get(id)
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

// UpdateStatus moves a request from one status to another under the write
// lock. A request no longer in from returns sentinel.ErrInvalidState.
func (s *InMemoryStore) UpdateStatus(_ context.Context, id domain.PolicyRequestID, from, to domain.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.get(id)
	if !ok {
		return sentinel.ErrNotFound
	}
	if r.Status != from {
		return fmt.Errorf("policy request %d is %s: %w", id, r.Status, sentinel.ErrInvalidState)
	}
	if err := domain.Transition(from, to); err != nil {
		return fmt.Errorf("%w: %w", sentinel.ErrInvalidState, err)
	}
	r.Status = to
	return nil
}

func (s *InMemoryStore) ListByCustomer(_ context.Context, customerID domain.CustomerID) ([]*models.PolicyRequest, error) {
	return s.filter(func(r *models.PolicyRequest) bool { return r.CustomerID == customerID }), nil
}

// ListAll returns requests in id order, restricted to statuses when given.
func (s *InMemoryStore) ListAll(_ context.Context, statuses ...domain.Status) ([]*models.PolicyRequest, error) {
	return s.filter(func(r *models.PolicyRequest) bool {
		return len(statuses) == 0 || slices.Contains(statuses, r.Status)
	}), nil
}

func (s *InMemoryStore) get(id domain.PolicyRequestID) (*models.PolicyRequest, bool) {
	if id < 1 || int(id) > len(s.requests) {
		return nil, false
	}
	return s.requests[id-1], true
}

func (s *InMemoryStore) filter(keep func(*models.PolicyRequest) bool) []*models.PolicyRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.PolicyRequest
	for _, r := range s.requests {
		if keep(r) {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out
}
