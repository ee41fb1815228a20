package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ims/internal/identity"
	"ims/internal/policy/models"
	"ims/internal/policy/store"
	"ims/pkg/domain"
	dErrors "ims/pkg/domain-errors"
)

func scoped(role domain.Role, id int64) identity.Principal {
	return identity.Principal{SubjectID: domain.NewUserID(), Role: role, ScopedID: &id}
}

func TestListPolicies(t *testing.T) {
	ctx := context.Background()
	st := store.NewInMemory()
	now := time.Now().UTC()
	require.NoError(t, st.Create(ctx, models.Issue(1, 10, 100, now, 12)))
	require.NoError(t, st.Create(ctx, models.Issue(1, 11, 101, now, 24)))
	require.NoError(t, st.Create(ctx, models.Issue(2, 10, 100, now, 12)))

	svc, err := New(st)
	require.NoError(t, err)

	t.Run("customer sees own policies", func(t *testing.T) {
		res := svc.ListForCustomer(ctx, scoped(domain.RoleCustomer, 1))
		require.True(t, res.IsSuccess())
		assert.Len(t, res.Data, 2)
	})

	t.Run("agent sees assigned policies", func(t *testing.T) {
		res := svc.ListAssigned(ctx, scoped(domain.RoleAgent, 10))
		require.True(t, res.IsSuccess())
		assert.Len(t, res.Data, 2)
	})

	t.Run("no policies is not found", func(t *testing.T) {
		res := svc.ListForCustomer(ctx, scoped(domain.RoleCustomer, 3))
		assert.Equal(t, dErrors.CodeNotFound, res.Code())
	})

	t.Run("wrong role is forbidden", func(t *testing.T) {
		res := svc.ListAssigned(ctx, scoped(domain.RoleCustomer, 1))
		assert.Equal(t, dErrors.CodeForbidden, res.Code())
	})
}
