package audit

import (
	"context"
	"time"

	id "ims/pkg/domain"
)

// EventCategory classifies audit events by their primary purpose.
// This enables different retention policies and routing downstream.
type EventCategory string

const (
	// CategoryCompliance covers state changes with contractual significance:
	// policy issuance, claim adjudication. Long retention.
	CategoryCompliance EventCategory = "compliance"

	// CategorySecurity covers events relevant to security monitoring:
	// failed logins, rejected credentials, identity mismatches.
	CategorySecurity EventCategory = "security"

	// CategoryOperations covers routine activity useful for debugging.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Category  EventCategory
	Timestamp time.Time
	// UserID is the login subject who acted (zero for anonymous attempts).
	UserID id.UserID
	// Subject names the record acted on, e.g. "policy_request:42".
	Subject  string
	Action   string
	Decision string
	Reason   string
	// ActorRole is the acting principal's role at the time of the action.
	ActorRole string
	RequestID string
	ClientIP  string
	Device    string
}

type AuditEvent string

const (
	// Auth events
	EventLoginSucceeded AuditEvent = "login_succeeded"
	EventLoginFailed    AuditEvent = "login_failed"
	EventLoggedOut      AuditEvent = "logged_out"
	EventAuthFailed     AuditEvent = "auth_failed"
	EventScopeMismatch  AuditEvent = "scope_mismatch"

	// Policy request events
	EventPolicyRequestSubmitted AuditEvent = "policy_request_submitted"
	EventPolicyRequestApproved  AuditEvent = "policy_request_approved"
	EventPolicyRequestRejected  AuditEvent = "policy_request_rejected"
	EventPolicyIssued           AuditEvent = "policy_issued"

	// Claim events
	EventClaimFiled    AuditEvent = "claim_filed"
	EventClaimApproved AuditEvent = "claim_approved"
	EventClaimRejected AuditEvent = "claim_rejected"

	// Catalogue events
	EventCatalogueChanged AuditEvent = "catalogue_changed"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventPolicyRequestApproved: CategoryCompliance,
	EventPolicyRequestRejected: CategoryCompliance,
	EventPolicyIssued:          CategoryCompliance,
	EventClaimApproved:         CategoryCompliance,
	EventClaimRejected:         CategoryCompliance,
	EventCatalogueChanged:      CategoryCompliance,

	EventLoginFailed:   CategorySecurity,
	EventAuthFailed:    CategorySecurity,
	EventScopeMismatch: CategorySecurity,

	EventLoginSucceeded:         CategoryOperations,
	EventLoggedOut:              CategoryOperations,
	EventPolicyRequestSubmitted: CategoryOperations,
	EventClaimFiled:             CategoryOperations,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}

// Store persists audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
}
