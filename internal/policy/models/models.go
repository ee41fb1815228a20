package models

import (
	"time"

	"ims/pkg/domain"
)

// Policy is issued once, when a policy request is approved, and never changes.
type Policy struct {
	ID                domain.PolicyID          `json:"id"`
	CustomerID        domain.CustomerID        `json:"customerId"`
	AgentID           domain.AgentID           `json:"agentId"`
	AvailablePolicyID domain.AvailablePolicyID `json:"availablePolicyId"`
	IssuedDate        time.Time                `json:"issuedDate"`
	ExpiryDate        time.Time                `json:"expiryDate"`
}

// Issue builds a policy valid for validityMonths calendar months from issued.
// The catalogue stores ValidityPeriod as a month count, not years, so a
// seeded period of 24 expires two years after issue.
func Issue(customerID domain.CustomerID, agentID domain.AgentID, availablePolicyID domain.AvailablePolicyID, issued time.Time, validityMonths int) *Policy {
	return &Policy{
		CustomerID:        customerID,
		AgentID:           agentID,
		AvailablePolicyID: availablePolicyID,
		IssuedDate:        issued,
		ExpiryDate:        issued.AddDate(0, validityMonths, 0),
	}
}

// BelongsTo reports whether the policy was issued to customerID.
func (p *Policy) BelongsTo(customerID domain.CustomerID) bool {
	return p.CustomerID == customerID
}

// AssignedTo reports whether agentID services the policy.
func (p *Policy) AssignedTo(agentID domain.AgentID) bool {
	return p.AgentID == agentID
}
