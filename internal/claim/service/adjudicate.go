package service

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"ims/internal/claim/models"
	"ims/internal/identity"
	notificationModels "ims/internal/notification/models"
	"ims/pkg/domain"
	dErrors "ims/pkg/domain-errors"
	"ims/pkg/platform/audit"
	"ims/pkg/platform/tracing"
	"ims/pkg/requestcontext"
	"ims/pkg/result"
)

// Adjudicate approves or rejects a pending claim. Who is notified depends on
// who filed: a customer-filed claim notifies the customer; an agent-filed one
// notifies the agent first and then the customer. Notification failures are
// logged and do not fail the decision.
func (s *Service) Adjudicate(ctx context.Context, actor identity.Principal, claimID domain.ClaimID, decision models.Decision) result.Result[bool] {
	ctx, span := tracing.Start(ctx, "claim", "claim.Adjudicate",
		attribute.Int64("claim.id", int64(claimID)),
		attribute.String("claim.decision", string(decision)),
	)
	return tracing.End(span, s.adjudicate(ctx, actor, claimID, decision))
}

func (s *Service) adjudicate(ctx context.Context, actor identity.Principal, claimID domain.ClaimID, decision models.Decision) result.Result[bool] {
	if !domain.Valid(claimID) {
		return result.Failf[bool](dErrors.CodeValidation, "claim id must be positive")
	}
	if err := actor.RequireAdmin(); err != nil {
		return result.Fail[bool](err)
	}
	if decision != models.DecisionApprove && decision != models.DecisionReject {
		return result.Failf[bool](dErrors.CodeValidation, "decision must be approve or reject")
	}

	to := decision.Status()
	if err := s.claims.UpdateStatus(ctx, claimID, domain.StatusPending, to); err != nil {
		return result.Fail[bool](statusWriteErr(err))
	}
	c, err := s.claims.FindByID(ctx, claimID)
	if err != nil {
		return result.Fail[bool](loadErr(err, msgClaimNotFound, "failed to load claim"))
	}

	if s.metrics != nil {
		s.metrics.Adjudicated.WithLabelValues(string(to)).Inc()
	}
	action := audit.EventClaimApproved
	if to == domain.StatusRejected {
		action = audit.EventClaimRejected
	}
	s.emit(ctx, audit.Event{
		UserID:    actor.SubjectID,
		Subject:   fmt.Sprintf("claim:%d", claimID),
		Action:    string(action),
		Decision:  string(to),
		ActorRole: actor.Role.String(),
	})

	for _, n := range outcomeNotifications(c, decision, requestcontext.Now(ctx)) {
		if err := s.notifier.Dispatch(ctx, n); err != nil {
			s.logger.ErrorContext(ctx, "failed to notify claim outcome",
				"claim_id", claimID,
				"recipient", n.Recipient(),
				"error", err,
			)
		}
	}

	s.logger.InfoContext(ctx, "claim adjudicated", "claim_id", claimID, "decision", string(to))
	if decision == models.DecisionApprove {
		return result.OK(true, "claim approved successfully")
	}
	return result.OK(true, "claim rejected successfully")
}

// WasFiledByAgent reports whether an agent filed the claim.
func (s *Service) WasFiledByAgent(ctx context.Context, claimID domain.ClaimID) result.Result[bool] {
	if !domain.Valid(claimID) {
		return result.Failf[bool](dErrors.CodeValidation, "claim id must be positive")
	}
	c, err := s.claims.FindByID(ctx, claimID)
	if err != nil {
		return result.Fail[bool](loadErr(err, msgClaimNotFound, "failed to load claim"))
	}
	return result.OK(c.FiledByAgent(), "claim filer resolved")
}

func outcomeNotifications(c *models.Claim, decision models.Decision, now time.Time) []*notificationModels.Notification {
	approved := decision == models.DecisionApprove
	var out []*notificationModels.Notification
	if c.FiledByAgent() {
		msg := notificationModels.ClaimRejectedForAgent(c.PolicyID, c.CustomerID)
		if approved {
			msg = notificationModels.ClaimApprovedForAgent(c.PolicyID, c.CustomerID)
		}
		out = append(out, notificationModels.ForAgent(*c.AgentID, msg, now))
	}
	msg := notificationModels.ClaimRejectedForCustomer(c.PolicyID)
	if approved {
		msg = notificationModels.ClaimApprovedForCustomer(c.PolicyID)
	}
	return append(out, notificationModels.ForCustomer(c.CustomerID, msg, now))
}
