package models

import (
	"time"

	"ims/pkg/domain"
)

// PolicyRequest is a customer's request for a catalogue policy. It moves
// from pending to approved or rejected exactly once.
type PolicyRequest struct {
	ID                domain.PolicyRequestID   `json:"id"`
	CustomerID        domain.CustomerID        `json:"customerId"`
	AvailablePolicyID domain.AvailablePolicyID `json:"availablePolicyId"`
	Status            domain.Status            `json:"status"`
	RequestedOn       time.Time                `json:"requestedOn"`
}

func NewPolicyRequest(customerID domain.CustomerID, availablePolicyID domain.AvailablePolicyID, now time.Time) *PolicyRequest {
	return &PolicyRequest{
		CustomerID:        customerID,
		AvailablePolicyID: availablePolicyID,
		Status:            domain.StatusPending,
		RequestedOn:       now,
	}
}

// CanApprove returns an invalid-transition error unless the request is pending.
// Rejection has no read-side guard: the store's conditional write decides.
func (r *PolicyRequest) CanApprove() error {
	return domain.Transition(r.Status, domain.StatusApproved)
}

// ApproveRequest names the agent an approved request is assigned to.
type ApproveRequest struct {
	AgentID domain.AgentID `json:"agentId"`
}

// SubmitRequest is the customer's request body.
type SubmitRequest struct {
	CustomerID        domain.CustomerID        `json:"customerId"`
	AvailablePolicyID domain.AvailablePolicyID `json:"availablePolicyId"`
}
