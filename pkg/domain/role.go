package domain

import (
	"strings"

	dErrors "ims/pkg/domain-errors"
)

// Role is the acting principal's role. It decides which scoped id, if any, a
// credential carries.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleAgent    Role = "Agent"
	RoleCustomer Role = "Customer"
)

// ParseRole accepts role names case-insensitively.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin, nil
	case "agent":
		return RoleAgent, nil
	case "customer":
		return RoleCustomer, nil
	}
	return "", dErrors.New(dErrors.CodeInvalidInput, "unknown role: "+s)
}

// IsScoped reports whether principals with this role carry a row id.
func (r Role) IsScoped() bool {
	return r == RoleAgent || r == RoleCustomer
}

func (r Role) String() string { return string(r) }
