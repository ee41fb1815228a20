package adapters

import (
	"context"
	"errors"
	"fmt"

	accountModels "ims/internal/account/models"
	"ims/pkg/domain"
	"ims/pkg/platform/sentinel"
)

type CustomerFinder interface {
	FindByUserID(ctx context.Context, userID domain.UserID) (*accountModels.Customer, error)
}

type AgentFinder interface {
	FindByUserID(ctx context.Context, userID domain.UserID) (*accountModels.Agent, error)
}

// AccountAdapter resolves the profile row a login subject is scoped to. It
// lets the auth service embed the scoped id at issue time without importing
// the account service.
type AccountAdapter struct {
	customers CustomerFinder
	agents    AgentFinder
}

func NewAccountAdapter(customers CustomerFinder, agents AgentFinder) *AccountAdapter {
	return &AccountAdapter{customers: customers, agents: agents}
}

// ScopedIDForUser returns the customer or agent row id for userID. Admins
// have no scoped id and get (nil, nil).
func (a *AccountAdapter) ScopedIDForUser(ctx context.Context, userID domain.UserID, role domain.Role) (*int64, error) {
	switch role {
	case domain.RoleCustomer:
		c, err := a.customers.FindByUserID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("customer for user %s: %w", userID, err)
		}
		v := int64(c.ID)
		return &v, nil
	case domain.RoleAgent:
		ag, err := a.agents.FindByUserID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("agent for user %s: %w", userID, err)
		}
		v := int64(ag.ID)
		return &v, nil
	case domain.RoleAdmin:
		return nil, nil
	}
	return nil, errors.Join(sentinel.ErrInvalidState, fmt.Errorf("unknown role %q", role))
}
