package user

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"ims/internal/auth/models"
	"ims/pkg/domain"
	"ims/pkg/platform/sentinel"
)

// InMemoryUserStore keeps users keyed by id with a case-insensitive username index.
type InMemoryUserStore struct {
	mu         sync.RWMutex
	users      map[domain.UserID]*models.User
	byUsername map[string]domain.UserID
}

func New() *InMemoryUserStore {
	return &InMemoryUserStore{
		users:      make(map[domain.UserID]*models.User),
		byUsername: make(map[string]domain.UserID),
	}
}

// Create inserts a user; a taken username returns sentinel.ErrAlreadyUsed.
func (s *InMemoryUserStore) Create(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.ToLower(u.Username)
	if _, ok := s.byUsername[key]; ok {
		return fmt.Errorf("username %q: %w", u.Username, sentinel.ErrAlreadyUsed)
	}
	cp := *u
	s.users[u.ID] = &cp
	s.byUsername[key] = u.ID
	return nil
}

func (s *InMemoryUserStore) FindByID(_ context.Context, id domain.UserID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *InMemoryUserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byUsername[strings.ToLower(strings.TrimSpace(username))]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *s.users[id]
	return &cp, nil
}

// MarkDeleted soft-deletes a user; the username stays reserved.
func (s *InMemoryUserStore) MarkDeleted(_ context.Context, id domain.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return sentinel.ErrNotFound
	}
	u.Deleted = true
	return nil
}

// ListAll returns non-deleted users ordered by creation time.
func (s *InMemoryUserStore) ListAll(_ context.Context) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.User, 0, len(s.users))
	for _, u := range s.users {
		if u.Deleted {
			continue
		}
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Username < out[j].Username
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *InMemoryUserStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), nil
}
