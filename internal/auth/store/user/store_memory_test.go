package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"ims/internal/auth/models"
	"ims/pkg/domain"
	"ims/pkg/platform/sentinel"
)

type InMemoryUserStoreSuite struct {
	suite.Suite
	store *InMemoryUserStore
}

func TestInMemoryUserStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryUserStoreSuite))
}

func (s *InMemoryUserStoreSuite) SetupTest() {
	s.store = New()
}

func newUser(name string, role domain.Role) *models.User {
	return &models.User{
		ID:           domain.NewUserID(),
		Username:     name,
		PasswordHash: "hash",
		Role:         role,
		CreatedAt:    time.Now(),
	}
}

func (s *InMemoryUserStoreSuite) TestLookupBehavior() {
	ctx := context.Background()
	u := newUser("Jane", domain.RoleCustomer)
	s.Require().NoError(s.store.Create(ctx, u))

	s.Run("by id", func() {
		found, err := s.store.FindByID(ctx, u.ID)
		s.Require().NoError(err)
		s.Equal(u.Username, found.Username)
	})

	s.Run("by username is case-insensitive", func() {
		found, err := s.store.FindByUsername(ctx, "jane")
		s.Require().NoError(err)
		s.Equal(u.ID, found.ID)
	})

	s.Run("missing user returns ErrNotFound", func() {
		_, err := s.store.FindByID(ctx, domain.NewUserID())
		s.ErrorIs(err, sentinel.ErrNotFound)
		_, err = s.store.FindByUsername(ctx, "nobody")
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("duplicate username returns ErrAlreadyUsed", func() {
		err := s.store.Create(ctx, newUser("JANE", domain.RoleAgent))
		s.ErrorIs(err, sentinel.ErrAlreadyUsed)
	})
}

func (s *InMemoryUserStoreSuite) TestSoftDelete() {
	ctx := context.Background()
	u := newUser("gone", domain.RoleCustomer)
	s.Require().NoError(s.store.Create(ctx, u))
	s.Require().NoError(s.store.MarkDeleted(ctx, u.ID))

	found, err := s.store.FindByID(ctx, u.ID)
	s.Require().NoError(err)
	s.True(found.Deleted)

	all, err := s.store.ListAll(ctx)
	s.Require().NoError(err)
	s.Empty(all)

	s.ErrorIs(s.store.MarkDeleted(ctx, domain.NewUserID()), sentinel.ErrNotFound)
}
