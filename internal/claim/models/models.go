package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ims/pkg/domain"
	dErrors "ims/pkg/domain-errors"
)

// Claim is filed against an issued policy by its customer or by an agent on
// the customer's behalf. AgentID is set only for agent-filed claims and is the
// sole record of who filed.
type Claim struct {
	ID         domain.ClaimID    `json:"id"`
	PolicyID   domain.PolicyID   `json:"policyId"`
	CustomerID domain.CustomerID `json:"customerId"`
	AgentID    *domain.AgentID   `json:"agentId,omitempty"`
	Amount     decimal.Decimal   `json:"amount"`
	Details    string            `json:"details"`
	Status     domain.Status     `json:"status"`
	FiledDate  time.Time         `json:"filedDate"`
}

// FiledByAgent reports whether an agent filed the claim.
func (c *Claim) FiledByAgent() bool {
	return c.AgentID != nil
}

// FileRequest is the body shared by customer and agent filing.
type FileRequest struct {
	PolicyID   domain.PolicyID   `json:"policyId"`
	CustomerID domain.CustomerID `json:"customerId"`
	Amount     decimal.Decimal   `json:"amount"`
	Details    string            `json:"details"`
}

const maxDetailsLength = 4000

func (r *FileRequest) Normalize() {
	r.Details = strings.TrimSpace(r.Details)
	r.Amount = r.Amount.Round(2)
}

func (r *FileRequest) Validate() error {
	if !domain.Valid(r.PolicyID) {
		return dErrors.New(dErrors.CodeValidation, "policy id must be positive")
	}
	if !domain.Valid(r.CustomerID) {
		return dErrors.New(dErrors.CodeValidation, "customer id must be positive")
	}
	if !r.Amount.IsPositive() {
		return dErrors.New(dErrors.CodeValidation, "claim amount must be positive")
	}
	if len(r.Details) > maxDetailsLength {
		return dErrors.New(dErrors.CodeValidation, "claim details are too long")
	}
	return nil
}

// NewClaim builds a pending claim. agentID is nil for customer-filed claims.
func NewClaim(req FileRequest, agentID *domain.AgentID, now time.Time) *Claim {
	return &Claim{
		PolicyID:   req.PolicyID,
		CustomerID: req.CustomerID,
		AgentID:    agentID,
		Amount:     req.Amount,
		Details:    req.Details,
		Status:     domain.StatusPending,
		FiledDate:  now,
	}
}

// Decision is an admin's verdict on a pending claim.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

func ParseDecision(s string) (Decision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "approve", "approved":
		return DecisionApprove, nil
	case "reject", "rejected":
		return DecisionReject, nil
	}
	return "", dErrors.New(dErrors.CodeValidation, "decision must be approve or reject")
}

// Status is the terminal status a decision moves a claim to.
func (d Decision) Status() domain.Status {
	if d == DecisionApprove {
		return domain.StatusApproved
	}
	return domain.StatusRejected
}
