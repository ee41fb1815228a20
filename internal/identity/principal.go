package identity

import (
	"time"

	"ims/pkg/domain"
	dErrors "ims/pkg/domain-errors"
)

// MsgCannotResolveScopedID is returned when a Customer or Agent credential
// lacks the row id claim for its role.
const MsgCannotResolveScopedID = "cannot resolve scoped id"

// Principal is the caller resolved for one request. It is immutable;
// ScopedID is the Customer or Agent row id embedded when the credential was
// issued and is never re-read from storage.
type Principal struct {
	SubjectID domain.UserID
	Role      domain.Role
	ScopedID  *int64

	// TokenID and ExpiresAt identify the credential for revocation on logout.
	TokenID   string
	ExpiresAt time.Time
}

func (p Principal) IsAdmin() bool { return p.Role == domain.RoleAdmin }

// CustomerID returns the scoped id when the principal is a customer carrying one.
func (p Principal) CustomerID() (domain.CustomerID, bool) {
	if p.Role != domain.RoleCustomer || p.ScopedID == nil {
		return 0, false
	}
	return domain.CustomerID(*p.ScopedID), true
}

// AgentID returns the scoped id when the principal is an agent carrying one.
func (p Principal) AgentID() (domain.AgentID, bool) {
	if p.Role != domain.RoleAgent || p.ScopedID == nil {
		return 0, false
	}
	return domain.AgentID(*p.ScopedID), true
}

// RequireCustomer returns the customer's scoped id or an authorization error.
func (p Principal) RequireCustomer() (domain.CustomerID, error) {
	if p.Role != domain.RoleCustomer {
		return 0, dErrors.New(dErrors.CodeForbidden, "customer role required")
	}
	id, ok := p.CustomerID()
	if !ok {
		return 0, dErrors.New(dErrors.CodeUnauthorized, MsgCannotResolveScopedID)
	}
	return id, nil
}

// RequireAgent returns the agent's scoped id or an authorization error.
func (p Principal) RequireAgent() (domain.AgentID, error) {
	if p.Role != domain.RoleAgent {
		return 0, dErrors.New(dErrors.CodeForbidden, "agent role required")
	}
	id, ok := p.AgentID()
	if !ok {
		return 0, dErrors.New(dErrors.CodeUnauthorized, MsgCannotResolveScopedID)
	}
	return id, nil
}

func (p Principal) RequireAdmin() error {
	if p.Role != domain.RoleAdmin {
		return dErrors.New(dErrors.CodeForbidden, "admin role required")
	}
	return nil
}

// HasRole reports whether the principal holds any of roles.
func (p Principal) HasRole(roles ...domain.Role) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}
