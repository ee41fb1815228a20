package service

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"ims/internal/claim/models"
	"ims/internal/identity"
	"ims/pkg/domain"
	dErrors "ims/pkg/domain-errors"
	"ims/pkg/platform/audit"
	"ims/pkg/platform/tracing"
	"ims/pkg/requestcontext"
	"ims/pkg/result"
)

// File records a pending claim. A customer files for themselves; an agent
// files on behalf of a customer whose policy they service, and is recorded
// as the filer.
func (s *Service) File(ctx context.Context, actor identity.Principal, req models.FileRequest, filedBy domain.Role) result.Result[*models.Claim] {
	ctx, span := tracing.Start(ctx, "claim", "claim.File",
		attribute.Int64("policy.id", int64(req.PolicyID)),
		attribute.String("claim.filed_by", filedBy.String()),
	)
	return tracing.End(span, s.file(ctx, actor, req, filedBy))
}

func (s *Service) file(ctx context.Context, actor identity.Principal, req models.FileRequest, filedBy domain.Role) result.Result[*models.Claim] {
	var agentID *domain.AgentID
	switch filedBy {
	case domain.RoleCustomer:
		cid, err := actor.RequireCustomer()
		if err != nil {
			return result.Fail[*models.Claim](err)
		}
		if cid != req.CustomerID {
			s.emit(ctx, audit.Event{
				UserID:    actor.SubjectID,
				Subject:   fmt.Sprintf("customer:%d", req.CustomerID),
				Action:    string(audit.EventScopeMismatch),
				Decision:  "denied",
				ActorRole: actor.Role.String(),
			})
			return result.Failf[*models.Claim](dErrors.CodeForbidden, "customer id mismatch")
		}
	case domain.RoleAgent:
		aid, err := actor.RequireAgent()
		if err != nil {
			return result.Fail[*models.Claim](err)
		}
		agentID = &aid
	default:
		return result.Failf[*models.Claim](dErrors.CodeValidation, "claims are filed by customers or agents")
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		return result.Fail[*models.Claim](err)
	}

	policy, err := s.policies.FindByID(ctx, req.PolicyID)
	if err != nil {
		return result.Fail[*models.Claim](loadErr(err, msgPolicyNotFound, "failed to load policy"))
	}
	if !policy.BelongsTo(req.CustomerID) {
		return result.Failf[*models.Claim](dErrors.CodeValidation, "policy does not belong to customer")
	}
	if agentID != nil && !policy.AssignedTo(*agentID) {
		return result.Failf[*models.Claim](dErrors.CodeForbidden, "policy is not assigned to this agent")
	}

	c := models.NewClaim(req, agentID, requestcontext.Now(ctx))
	if err := s.claims.Create(ctx, c); err != nil {
		return result.Fail[*models.Claim](dErrors.Wrap(err, dErrors.CodeInternal, "failed to save claim"))
	}

	if s.metrics != nil {
		s.metrics.Filed.WithLabelValues(filedBy.String()).Inc()
		s.metrics.Amount.Observe(c.Amount.InexactFloat64())
	}
	s.emit(ctx, audit.Event{
		UserID:    actor.SubjectID,
		Subject:   fmt.Sprintf("claim:%d", c.ID),
		Action:    string(audit.EventClaimFiled),
		ActorRole: actor.Role.String(),
	})
	s.logger.InfoContext(ctx, "claim filed",
		"claim_id", c.ID,
		"policy_id", c.PolicyID,
		"filed_by", filedBy.String(),
	)
	return result.OK(c, "claim filed successfully")
}
