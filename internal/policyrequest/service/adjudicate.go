package service

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	catalogueModels "ims/internal/catalogue/models"
	"ims/internal/identity"
	notificationModels "ims/internal/notification/models"
	policyModels "ims/internal/policy/models"
	"ims/internal/policyrequest/models"
	"ims/pkg/domain"
	dErrors "ims/pkg/domain-errors"
	"ims/pkg/platform/audit"
	"ims/pkg/platform/sentinel"
	"ims/pkg/platform/tracing"
	"ims/pkg/requestcontext"
	"ims/pkg/result"
)

// MsgApprovedWithoutPolicy is the success message when the catalogue entry
// was deleted after the request was filed.
const MsgApprovedWithoutPolicy = "policy request approved; no policy was issued because the available policy no longer exists"

// Approve moves a pending request to approved and issues the policy in the
// same unit of work. The customer and the assigned agent are notified after
// commit; a notification failure is reported but does not undo the approval.
func (s *Service) Approve(ctx context.Context, actor identity.Principal, requestID domain.PolicyRequestID, agentID domain.AgentID) result.Result[*policyModels.Policy] {
	ctx, span := tracing.Start(ctx, "policyrequest", "policyrequest.Approve",
		attribute.Int64("policy_request.id", int64(requestID)),
		attribute.Int64("agent.id", int64(agentID)),
	)
	return tracing.End(span, s.approve(ctx, actor, requestID, agentID))
}

func (s *Service) approve(ctx context.Context, actor identity.Principal, requestID domain.PolicyRequestID, agentID domain.AgentID) result.Result[*policyModels.Policy] {
	if err := actor.RequireAdmin(); err != nil {
		return result.Fail[*policyModels.Policy](err)
	}
	if !domain.Valid(requestID) {
		return result.Failf[*policyModels.Policy](dErrors.CodeValidation, "policy request id must be positive")
	}
	if !domain.Valid(agentID) {
		return result.Failf[*policyModels.Policy](dErrors.CodeValidation, "agent id must be positive")
	}
	if _, err := s.agents.FindByID(ctx, agentID); err != nil {
		return result.Fail[*policyModels.Policy](loadErr(err, "agent not found", "failed to load agent"))
	}

	now := requestcontext.Now(ctx)
	var (
		req    *models.PolicyRequest
		item   *catalogueModels.AvailablePolicy
		policy *policyModels.Policy
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		req, err = s.requests.FindByID(ctx, requestID)
		if err != nil {
			return loadErr(err, msgRequestNotFound, "failed to load policy request")
		}
		if err := req.CanApprove(); err != nil {
			return err
		}
		item, err = s.catalogue.FindByID(ctx, req.AvailablePolicyID)
		if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load available policy")
		}
		if err := s.requests.UpdateStatus(ctx, requestID, domain.StatusPending, domain.StatusApproved); err != nil {
			return statusWriteErr(err)
		}
		req.Status = domain.StatusApproved
		if item == nil {
			return nil
		}
		policy = policyModels.Issue(req.CustomerID, agentID, req.AvailablePolicyID, now, item.ValidityPeriod)
		if err := s.policies.Create(ctx, policy); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue policy")
		}
		return nil
	})
	if err != nil {
		return result.Fail[*policyModels.Policy](err)
	}

	s.adjudicated(ctx, actor, req, domain.StatusApproved)

	if item == nil {
		s.logger.WarnContext(ctx, "approved policy request without issuing a policy",
			"policy_request_id", requestID,
			"available_policy_id", req.AvailablePolicyID,
		)
		return result.OK[*policyModels.Policy](nil, MsgApprovedWithoutPolicy)
	}

	if s.metrics != nil {
		s.metrics.Issued.Inc()
	}
	s.emit(ctx, audit.Event{
		UserID:    actor.SubjectID,
		Subject:   fmt.Sprintf("policy:%d", policy.ID),
		Action:    string(audit.EventPolicyIssued),
		ActorRole: actor.Role.String(),
	})

	customerErr := s.notifier.Dispatch(ctx, notificationModels.ForCustomer(req.CustomerID,
		notificationModels.PolicyRequestApprovedForCustomer(req.AvailablePolicyID, req.ID, agentID), now))
	agentErr := s.notifier.Dispatch(ctx, notificationModels.ForAgent(agentID,
		notificationModels.PolicyRequestApprovedForAgent(req.CustomerID, req.AvailablePolicyID, req.ID), now))
	if err := errors.Join(customerErr, agentErr); err != nil {
		s.logger.ErrorContext(ctx, "policy issued but notifications failed",
			"policy_request_id", requestID,
			"policy_id", policy.ID,
			"error", err,
		)
		return result.Fail[*policyModels.Policy](dErrors.Wrap(err, dErrors.CodeDependencyFailure, msgNotificationsFailed))
	}

	s.logger.InfoContext(ctx, "policy request approved",
		"policy_request_id", requestID,
		"policy_id", policy.ID,
		"agent_id", agentID,
	)
	return result.OK(policy, "policy request approved successfully")
}

// Reject moves a pending request to rejected and notifies the customer. The
// status write comes first; a request that vanishes before it can be read
// back is reported as not found.
func (s *Service) Reject(ctx context.Context, actor identity.Principal, requestID domain.PolicyRequestID) result.Result[bool] {
	ctx, span := tracing.Start(ctx, "policyrequest", "policyrequest.Reject",
		attribute.Int64("policy_request.id", int64(requestID)),
	)
	return tracing.End(span, s.reject(ctx, actor, requestID))
}

func (s *Service) reject(ctx context.Context, actor identity.Principal, requestID domain.PolicyRequestID) result.Result[bool] {
	if err := actor.RequireAdmin(); err != nil {
		return result.Fail[bool](err)
	}
	if !domain.Valid(requestID) {
		return result.Failf[bool](dErrors.CodeValidation, "policy request id must be positive")
	}
	if err := s.requests.UpdateStatus(ctx, requestID, domain.StatusPending, domain.StatusRejected); err != nil {
		return result.Fail[bool](statusWriteErr(err))
	}

	req, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return result.Fail[bool](loadErr(err, msgRequestNotFound, "failed to load policy request"))
	}
	s.adjudicated(ctx, actor, req, domain.StatusRejected)

	n := notificationModels.ForCustomer(req.CustomerID,
		notificationModels.PolicyRequestRejected(req.AvailablePolicyID, req.ID), requestcontext.Now(ctx))
	if err := s.notifier.Dispatch(ctx, n); err != nil {
		return result.Fail[bool](dErrors.Wrap(err, dErrors.CodeDependencyFailure, msgNotificationFailed))
	}

	s.logger.InfoContext(ctx, "policy request rejected", "policy_request_id", requestID)
	return result.OK(true, "policy request rejected successfully")
}

func (s *Service) adjudicated(ctx context.Context, actor identity.Principal, req *models.PolicyRequest, to domain.Status) {
	if s.metrics != nil {
		s.metrics.Adjudicated.WithLabelValues(string(to)).Inc()
	}
	action := audit.EventPolicyRequestApproved
	if to == domain.StatusRejected {
		action = audit.EventPolicyRequestRejected
	}
	s.emit(ctx, audit.Event{
		UserID:    actor.SubjectID,
		Subject:   fmt.Sprintf("policy_request:%d", req.ID),
		Action:    string(action),
		Decision:  string(to),
		ActorRole: actor.Role.String(),
	})
}
