package service

import (
	"context"

	"ims/internal/claim/models"
	"ims/internal/identity"
	"ims/pkg/domain"
	dErrors "ims/pkg/domain-errors"
	"ims/pkg/paging"
	"ims/pkg/result"
)

// ListForCustomer returns the acting customer's claims, however filed.
func (s *Service) ListForCustomer(ctx context.Context, actor identity.Principal) result.Result[[]*models.Claim] {
	cid, err := actor.RequireCustomer()
	if err != nil {
		return result.Fail[[]*models.Claim](err)
	}
	return listed(s.claims.ListByCustomer(ctx, cid))
}

// ListFiledByAgent returns the claims the acting agent filed.
func (s *Service) ListFiledByAgent(ctx context.Context, actor identity.Principal) result.Result[[]*models.Claim] {
	aid, err := actor.RequireAgent()
	if err != nil {
		return result.Fail[[]*models.Claim](err)
	}
	return listed(s.claims.ListByAgent(ctx, aid))
}

func (s *Service) ListByCustomerID(ctx context.Context, actor identity.Principal, customerID domain.CustomerID) result.Result[[]*models.Claim] {
	if err := actor.RequireAdmin(); err != nil {
		return result.Fail[[]*models.Claim](err)
	}
	if !domain.Valid(customerID) {
		return result.Failf[[]*models.Claim](dErrors.CodeValidation, "customer id must be positive")
	}
	return listed(s.claims.ListByCustomer(ctx, customerID))
}

func (s *Service) ListAll(ctx context.Context, actor identity.Principal, page, size int) result.Result[paging.Page[*models.Claim]] {
	if err := actor.RequireAdmin(); err != nil {
		return result.Fail[paging.Page[*models.Claim]](err)
	}
	claims, err := s.claims.ListAll(ctx)
	if err != nil {
		return result.Fail[paging.Page[*models.Claim]](dErrors.Wrap(err, dErrors.CodeInternal, "failed to list claims"))
	}
	p, err := paging.Paginate(claims, page, size)
	if err != nil {
		return result.Fail[paging.Page[*models.Claim]](err)
	}
	return result.OK(p, "claims retrieved successfully")
}

func listed(claims []*models.Claim, err error) result.Result[[]*models.Claim] {
	if err != nil {
		return result.Fail[[]*models.Claim](dErrors.Wrap(err, dErrors.CodeInternal, "failed to list claims"))
	}
	if len(claims) == 0 {
		return result.Failf[[]*models.Claim](dErrors.CodeNotFound, "no claims found")
	}
	return result.OK(claims, "claims retrieved successfully")
}
