package service

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"ims/internal/identity"
	"ims/internal/policyrequest/models"
	"ims/pkg/domain"
	dErrors "ims/pkg/domain-errors"
	"ims/pkg/platform/audit"
	"ims/pkg/platform/tracing"
	"ims/pkg/requestcontext"
	"ims/pkg/result"
)

// Submit files a pending request for a catalogue policy. The acting customer
// may only request for themselves.
func (s *Service) Submit(ctx context.Context, actor identity.Principal, customerID domain.CustomerID, availablePolicyID domain.AvailablePolicyID) result.Result[*models.PolicyRequest] {
	ctx, span := tracing.Start(ctx, "policyrequest", "policyrequest.Submit",
		attribute.Int64("customer.id", int64(customerID)),
		attribute.Int64("available_policy.id", int64(availablePolicyID)),
	)
	return tracing.End(span, s.submit(ctx, actor, customerID, availablePolicyID))
}

func (s *Service) submit(ctx context.Context, actor identity.Principal, customerID domain.CustomerID, availablePolicyID domain.AvailablePolicyID) result.Result[*models.PolicyRequest] {
	scoped, err := actor.RequireCustomer()
	if err != nil {
		return result.Fail[*models.PolicyRequest](err)
	}
	if scoped != customerID {
		s.emit(ctx, audit.Event{
			UserID:    actor.SubjectID,
			Subject:   fmt.Sprintf("customer:%d", customerID),
			Action:    string(audit.EventScopeMismatch),
			Decision:  "denied",
			ActorRole: actor.Role.String(),
		})
		return result.Failf[*models.PolicyRequest](dErrors.CodeForbidden, "customer id mismatch")
	}
	if !domain.Valid(availablePolicyID) {
		return result.Failf[*models.PolicyRequest](dErrors.CodeValidation, "available policy id must be positive")
	}
	if _, err := s.catalogue.FindByID(ctx, availablePolicyID); err != nil {
		return result.Fail[*models.PolicyRequest](loadErr(err, msgAvailablePolicyAbsent, "failed to load available policy"))
	}

	req := models.NewPolicyRequest(customerID, availablePolicyID, requestcontext.Now(ctx))
	if err := s.requests.Create(ctx, req); err != nil {
		return result.Fail[*models.PolicyRequest](dErrors.Wrap(err, dErrors.CodeInternal, "failed to save policy request"))
	}

	if s.metrics != nil {
		s.metrics.Submitted.Inc()
	}
	s.emit(ctx, audit.Event{
		UserID:    actor.SubjectID,
		Subject:   fmt.Sprintf("policy_request:%d", req.ID),
		Action:    string(audit.EventPolicyRequestSubmitted),
		ActorRole: actor.Role.String(),
	})
	s.logger.InfoContext(ctx, "policy request submitted",
		"policy_request_id", req.ID,
		"customer_id", customerID,
		"available_policy_id", availablePolicyID,
	)
	return result.OK(req, "policy request submitted successfully")
}
