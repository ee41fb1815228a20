package service

import (
	"context"

	"ims/internal/account/models"
	"ims/internal/identity"
	"ims/pkg/domain"
	dErrors "ims/pkg/domain-errors"
	"ims/pkg/result"
)

// RegisterCustomer is the public sign-up: a Customer login and its profile row
// are created in one unit of work.
func (s *Service) RegisterCustomer(ctx context.Context, req models.RegisterCustomerRequest) result.Result[*models.Customer] {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return result.Fail[*models.Customer](err)
	}

	var created *models.Customer
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		userID, err := s.credentials.CreateUser(ctx, req.Username, req.Password, domain.RoleCustomer)
		if err != nil {
			return err
		}
		c := &models.Customer{
			UserID:  userID,
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Address: req.Address,
		}
		if err := s.customers.Create(ctx, c); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save customer")
		}
		created = c
		return nil
	})
	if err != nil {
		return result.Fail[*models.Customer](err)
	}
	s.logger.InfoContext(ctx, "customer registered", "customer_id", created.ID, "user_id", created.UserID.String())
	return result.OK(created, "customer registered successfully")
}

// AddCustomer registers a customer on behalf of an admin.
func (s *Service) AddCustomer(ctx context.Context, actor identity.Principal, req models.RegisterCustomerRequest) result.Result[*models.Customer] {
	if err := actor.RequireAdmin(); err != nil {
		return result.Fail[*models.Customer](err)
	}
	return s.RegisterCustomer(ctx, req)
}

// AddAgent creates an Agent login and its profile row.
func (s *Service) AddAgent(ctx context.Context, actor identity.Principal, req models.AddAgentRequest) result.Result[*models.Agent] {
	if err := actor.RequireAdmin(); err != nil {
		return result.Fail[*models.Agent](err)
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return result.Fail[*models.Agent](err)
	}

	var created *models.Agent
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		userID, err := s.credentials.CreateUser(ctx, req.Username, req.Password, domain.RoleAgent)
		if err != nil {
			return err
		}
		a := &models.Agent{UserID: userID, Name: req.Name, Email: req.Email, Phone: req.Phone}
		if err := s.agents.Create(ctx, a); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save agent")
		}
		created = a
		return nil
	})
	if err != nil {
		return result.Fail[*models.Agent](err)
	}
	s.logger.InfoContext(ctx, "agent added", "agent_id", created.ID, "user_id", created.UserID.String())
	return result.OK(created, "agent added successfully")
}
