package service

import (
	"context"
	"errors"

	"ims/internal/identity"
	"ims/internal/policy/models"
	"ims/pkg/domain"
	dErrors "ims/pkg/domain-errors"
	"ims/pkg/result"
)

type Store interface {
	ListByCustomer(ctx context.Context, customerID domain.CustomerID) ([]*models.Policy, error)
	ListByAgent(ctx context.Context, agentID domain.AgentID) ([]*models.Policy, error)
}

// Service is the read side of issued policies.
type Service struct {
	store Store
}

func New(store Store) (*Service, error) {
	if store == nil {
		return nil, errors.New("policy store is required")
	}
	return &Service{store: store}, nil
}

// ListForCustomer returns the acting customer's policies.
func (s *Service) ListForCustomer(ctx context.Context, actor identity.Principal) result.Result[[]*models.Policy] {
	id, err := actor.RequireCustomer()
	if err != nil {
		return result.Fail[[]*models.Policy](err)
	}
	return listed(s.store.ListByCustomer(ctx, id))
}

// ListAssigned returns the policies the acting agent services.
func (s *Service) ListAssigned(ctx context.Context, actor identity.Principal) result.Result[[]*models.Policy] {
	id, err := actor.RequireAgent()
	if err != nil {
		return result.Fail[[]*models.Policy](err)
	}
	return listed(s.store.ListByAgent(ctx, id))
}

func listed(policies []*models.Policy, err error) result.Result[[]*models.Policy] {
	if err != nil {
		return result.Fail[[]*models.Policy](dErrors.Wrap(err, dErrors.CodeInternal, "failed to list policies"))
	}
	if len(policies) == 0 {
		return result.Failf[[]*models.Policy](dErrors.CodeNotFound, "no policies found")
	}
	return result.OK(policies, "policies retrieved successfully")
}
