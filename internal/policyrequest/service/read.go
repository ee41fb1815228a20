package service

import (
	"context"

	"ims/internal/identity"
	"ims/internal/policyrequest/models"
	"ims/pkg/domain"
	dErrors "ims/pkg/domain-errors"
	"ims/pkg/paging"
	"ims/pkg/result"
)

// Get returns one request. Customers may only read their own.
func (s *Service) Get(ctx context.Context, actor identity.Principal, id domain.PolicyRequestID) result.Result[*models.PolicyRequest] {
	if !domain.Valid(id) {
		return result.Failf[*models.PolicyRequest](dErrors.CodeValidation, "policy request id must be positive")
	}
	var owner domain.CustomerID
	if !actor.IsAdmin() {
		cid, err := actor.RequireCustomer()
		if err != nil {
			return result.Fail[*models.PolicyRequest](err)
		}
		owner = cid
	}
	req, err := s.requests.FindByID(ctx, id)
	if err != nil {
		return result.Fail[*models.PolicyRequest](loadErr(err, msgRequestNotFound, "failed to load policy request"))
	}
	if owner != 0 && req.CustomerID != owner {
		// another customer's request reads as missing
		return result.Failf[*models.PolicyRequest](dErrors.CodeNotFound, msgRequestNotFound)
	}
	return result.OK(req, "policy request retrieved successfully")
}

// ListForCustomer returns the acting customer's requests.
func (s *Service) ListForCustomer(ctx context.Context, actor identity.Principal) result.Result[[]*models.PolicyRequest] {
	cid, err := actor.RequireCustomer()
	if err != nil {
		return result.Fail[[]*models.PolicyRequest](err)
	}
	reqs, err := s.requests.ListByCustomer(ctx, cid)
	if err != nil {
		return result.Fail[[]*models.PolicyRequest](dErrors.Wrap(err, dErrors.CodeInternal, "failed to list policy requests"))
	}
	if len(reqs) == 0 {
		return result.Failf[[]*models.PolicyRequest](dErrors.CodeNotFound, "no policy requests found")
	}
	return result.OK(reqs, "policy requests retrieved successfully")
}

// ListAll pages through every request for admins, optionally restricted to
// statuses.
func (s *Service) ListAll(ctx context.Context, actor identity.Principal, page, size int, statuses ...domain.Status) result.Result[paging.Page[*models.PolicyRequest]] {
	if err := actor.RequireAdmin(); err != nil {
		return result.Fail[paging.Page[*models.PolicyRequest]](err)
	}
	for _, st := range statuses {
		if !st.IsValid() {
			return result.Failf[paging.Page[*models.PolicyRequest]](dErrors.CodeValidation, "unknown status: "+string(st))
		}
	}
	reqs, err := s.requests.ListAll(ctx, statuses...)
	if err != nil {
		return result.Fail[paging.Page[*models.PolicyRequest]](dErrors.Wrap(err, dErrors.CodeInternal, "failed to list policy requests"))
	}
	p, err := paging.Paginate(reqs, page, size)
	if err != nil {
		return result.Fail[paging.Page[*models.PolicyRequest]](err)
	}
	return result.OK(p, "policy requests retrieved successfully")
}
