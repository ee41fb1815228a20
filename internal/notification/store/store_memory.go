package store

import (
	"context"
	"sync"

	"ims/internal/notification/models"
	"ims/pkg/domain"
)

// InMemoryStore is append-only.
type InMemoryStore struct {
	mu    sync.RWMutex
	items []*models.Notification
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Append(_ context.Context, n *models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n.ID = domain.NotificationID(len(s.items) + 1)
	cp := *n
	s.items = append(s.items, &cp)
	return nil
}

// ListByCustomer returns newest first.
func (s *InMemoryStore) ListByCustomer(_ context.Context, customerID domain.CustomerID) ([]*models.Notification, error) {
	return s.newestFirst(func(n *models.Notification) bool {
		return n.CustomerID != nil && *n.CustomerID == customerID
	}), nil
}

// ListByAgent returns newest first.
func (s *InMemoryStore) ListByAgent(_ context.Context, agentID domain.AgentID) ([]*models.Notification, error) {
	return s.newestFirst(func(n *models.Notification) bool {
		return n.AgentID != nil && *n.AgentID == agentID
	}), nil
}

// All returns every notification in append order.
func (s *InMemoryStore) All() []*models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Notification, len(s.items))
	for i, n := range s.items {
		cp := *n
		out[i] = &cp
	}
	return out
}

func (s *InMemoryStore) newestFirst(keep func(*models.Notification) bool) []*models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Notification
	for i := len(s.items) - 1; i >= 0; i-- {
		if keep(s.items[i]) {
			cp := *s.items[i]
			out = append(out, &cp)
		}
	}
	return out
}
