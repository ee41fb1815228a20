package service

import (
	"context"
	"errors"

	"ims/internal/account/models"
	"ims/internal/identity"
	"ims/pkg/domain"
	dErrors "ims/pkg/domain-errors"
	"ims/pkg/paging"
	"ims/pkg/platform/sentinel"
	"ims/pkg/result"
)

func (s *Service) CustomerProfile(ctx context.Context, actor identity.Principal) result.Result[*models.Customer] {
	id, err := actor.RequireCustomer()
	if err != nil {
		return result.Fail[*models.Customer](err)
	}
	return s.findCustomer(ctx, id)
}

func (s *Service) UpdateCustomerProfile(ctx context.Context, actor identity.Principal, upd models.ProfileUpdate) result.Result[*models.Customer] {
	id, err := actor.RequireCustomer()
	if err != nil {
		return result.Fail[*models.Customer](err)
	}
	upd.Normalize()
	if err := upd.Validate(); err != nil {
		return result.Fail[*models.Customer](err)
	}
	found := s.findCustomer(ctx, id)
	if !found.IsSuccess() {
		return found
	}
	c := found.Data
	c.Name, c.Email, c.Phone, c.Address = upd.Name, upd.Email, upd.Phone, upd.Address
	if err := s.customers.Update(ctx, c); err != nil {
		return result.Fail[*models.Customer](storeErr(err, "customer not found", "failed to update customer"))
	}
	return result.OK(c, "profile updated successfully")
}

func (s *Service) AgentProfile(ctx context.Context, actor identity.Principal) result.Result[*models.Agent] {
	id, err := actor.RequireAgent()
	if err != nil {
		return result.Fail[*models.Agent](err)
	}
	return s.findAgent(ctx, id)
}

func (s *Service) UpdateAgentProfile(ctx context.Context, actor identity.Principal, upd models.ProfileUpdate) result.Result[*models.Agent] {
	id, err := actor.RequireAgent()
	if err != nil {
		return result.Fail[*models.Agent](err)
	}
	upd.Normalize()
	if err := upd.Validate(); err != nil {
		return result.Fail[*models.Agent](err)
	}
	found := s.findAgent(ctx, id)
	if !found.IsSuccess() {
		return found
	}
	a := found.Data
	a.Name, a.Email, a.Phone = upd.Name, upd.Email, upd.Phone
	if err := s.agents.Update(ctx, a); err != nil {
		return result.Fail[*models.Agent](storeErr(err, "agent not found", "failed to update agent"))
	}
	return result.OK(a, "profile updated successfully")
}

// GetCustomer is the admin lookup by row id.
func (s *Service) GetCustomer(ctx context.Context, actor identity.Principal, id domain.CustomerID) result.Result[*models.Customer] {
	if err := actor.RequireAdmin(); err != nil {
		return result.Fail[*models.Customer](err)
	}
	return s.findCustomer(ctx, id)
}

func (s *Service) GetAgent(ctx context.Context, actor identity.Principal, id domain.AgentID) result.Result[*models.Agent] {
	if err := actor.RequireAdmin(); err != nil {
		return result.Fail[*models.Agent](err)
	}
	return s.findAgent(ctx, id)
}

func (s *Service) ListCustomers(ctx context.Context, actor identity.Principal, page, size int) result.Result[paging.Page[*models.Customer]] {
	if err := actor.RequireAdmin(); err != nil {
		return result.Fail[paging.Page[*models.Customer]](err)
	}
	all, err := s.customers.ListAll(ctx)
	if err != nil {
		return result.Fail[paging.Page[*models.Customer]](dErrors.Wrap(err, dErrors.CodeInternal, "failed to list customers"))
	}
	p, err := paging.Paginate(all, page, size)
	if err != nil {
		return result.Fail[paging.Page[*models.Customer]](err)
	}
	return result.OK(p, "customers retrieved successfully")
}

func (s *Service) ListAgents(ctx context.Context, actor identity.Principal, page, size int) result.Result[paging.Page[*models.Agent]] {
	if err := actor.RequireAdmin(); err != nil {
		return result.Fail[paging.Page[*models.Agent]](err)
	}
	all, err := s.agents.ListAll(ctx)
	if err != nil {
		return result.Fail[paging.Page[*models.Agent]](dErrors.Wrap(err, dErrors.CodeInternal, "failed to list agents"))
	}
	p, err := paging.Paginate(all, page, size)
	if err != nil {
		return result.Fail[paging.Page[*models.Agent]](err)
	}
	return result.OK(p, "agents retrieved successfully")
}

func (s *Service) findCustomer(ctx context.Context, id domain.CustomerID) result.Result[*models.Customer] {
	if !domain.Valid(id) {
		return result.Failf[*models.Customer](dErrors.CodeValidation, "customer id must be positive")
	}
	c, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return result.Fail[*models.Customer](storeErr(err, "customer not found", "failed to load customer"))
	}
	return result.OK(c, "customer retrieved successfully")
}

func (s *Service) findAgent(ctx context.Context, id domain.AgentID) result.Result[*models.Agent] {
	if !domain.Valid(id) {
		return result.Failf[*models.Agent](dErrors.CodeValidation, "agent id must be positive")
	}
	a, err := s.agents.FindByID(ctx, id)
	if err != nil {
		return result.Fail[*models.Agent](storeErr(err, "agent not found", "failed to load agent"))
	}
	return result.OK(a, "agent retrieved successfully")
}

func storeErr(err error, notFound, internal string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, notFound)
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, internal)
}
