package models

import (
	"strings"
	"time"

	"ims/pkg/domain"
	dErrors "ims/pkg/domain-errors"
)

// User is a login subject. The role decides which profile row (customer or
// agent) the user's credential is scoped to.
type User struct {
	ID           domain.UserID `json:"id"`
	Username     string        `json:"username"`
	PasswordHash string        `json:"-"`
	Role         domain.Role   `json:"role"`
	Deleted      bool          `json:"deleted"`
	CreatedAt    time.Time     `json:"created_at"`
}

// NewUser validates the invariants of a new user.
func NewUser(id domain.UserID, username, passwordHash string, role domain.Role, now time.Time) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "username is required")
	}
	if passwordHash == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "password hash is required")
	}
	if _, err := domain.ParseRole(role.String()); err != nil {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "invalid role")
	}
	return &User{ID: id, Username: username, PasswordHash: passwordHash, Role: role, CreatedAt: now}, nil
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
}

func (r *LoginRequest) Validate() error {
	if r.Username == "" {
		return dErrors.New(dErrors.CodeValidation, "username is required")
	}
	if r.Password == "" {
		return dErrors.New(dErrors.CodeValidation, "password is required")
	}
	return nil
}

// LoginResult is returned on successful login. Token is also set as the jwt
// cookie by the transport layer.
type LoginResult struct {
	Token     string        `json:"token"`
	Role      domain.Role   `json:"role"`
	UserID    domain.UserID `json:"userId"`
	ExpiresAt time.Time     `json:"expiresAt"`
}

// UserWithRole is the admin listing row.
type UserWithRole struct {
	ID        domain.UserID `json:"id"`
	Username  string        `json:"username"`
	Role      domain.Role   `json:"role"`
	CreatedAt time.Time     `json:"createdAt"`
}

// MinPasswordLength applies to new users only.
const MinPasswordLength = 8

func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return dErrors.New(dErrors.CodeValidation, "password must be at least 8 characters")
	}
	return nil
}
