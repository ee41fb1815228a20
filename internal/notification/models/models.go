package models

import (
	"time"

	"ims/pkg/domain"
)

// Notification is addressed to exactly one recipient. Build it through
// ForCustomer or ForAgent; a notification with both or neither recipient is a
// programming error and is not checked at runtime.
type Notification struct {
	ID         domain.NotificationID `json:"id"`
	CustomerID *domain.CustomerID    `json:"customerId,omitempty"`
	AgentID    *domain.AgentID       `json:"agentId,omitempty"`
	Message    string                `json:"message"`
	CreatedAt  time.Time             `json:"createdAt"`
}

func ForCustomer(customerID domain.CustomerID, message string, now time.Time) *Notification {
	return &Notification{CustomerID: &customerID, Message: message, CreatedAt: now}
}

func ForAgent(agentID domain.AgentID, message string, now time.Time) *Notification {
	return &Notification{AgentID: &agentID, Message: message, CreatedAt: now}
}

// Recipient renders the addressee as "customer:<id>" or "agent:<id>".
func (n *Notification) Recipient() string {
	switch {
	case n.CustomerID != nil:
		return "customer:" + itoa(int64(*n.CustomerID))
	case n.AgentID != nil:
		return "agent:" + itoa(int64(*n.AgentID))
	}
	return ""
}
