package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ims/pkg/domain"
	dErrors "ims/pkg/domain-errors"
)

func TestPrincipalRequire(t *testing.T) {
	five := int64(5)

	t.Run("customer with scoped id", func(t *testing.T) {
		p := Principal{Role: domain.RoleCustomer, ScopedID: &five}
		id, err := p.RequireCustomer()
		require.NoError(t, err)
		assert.Equal(t, domain.CustomerID(5), id)
	})

	t.Run("customer without scoped id", func(t *testing.T) {
		p := Principal{Role: domain.RoleCustomer}
		_, err := p.RequireCustomer()
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
		assert.Equal(t, MsgCannotResolveScopedID, dErrors.MessageOf(err))
	})

	t.Run("agent asked to act as customer", func(t *testing.T) {
		p := Principal{Role: domain.RoleAgent, ScopedID: &five}
		_, err := p.RequireCustomer()
		assert.True(t, dErrors.HasCode(err, dErrors.CodeForbidden))
		_, ok := p.CustomerID()
		assert.False(t, ok)
	})

	t.Run("admin", func(t *testing.T) {
		p := Principal{Role: domain.RoleAdmin}
		assert.NoError(t, p.RequireAdmin())
		assert.True(t, p.IsAdmin())
		_, err := p.RequireAgent()
		assert.True(t, dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	t.Run("non-admin", func(t *testing.T) {
		p := Principal{Role: domain.RoleCustomer, ScopedID: &five}
		assert.True(t, dErrors.HasCode(p.RequireAdmin(), dErrors.CodeForbidden))
		assert.True(t, p.HasRole(domain.RoleAgent, domain.RoleCustomer))
	})
}
