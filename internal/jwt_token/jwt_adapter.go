package jwttoken

import (
	"errors"
	"fmt"

	"ims/internal/identity"
	"ims/pkg/domain"
	dErrors "ims/pkg/domain-errors"
)

// ToIdentityClaims maps signed claims to the resolver's view. A claim that
// does not match the role leaves ScopedID nil.
func ToIdentityClaims(claims *Claims) (*identity.Claims, error) {
	userID, err := domain.ParseUserID(claims.UserID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnauthorized, "invalid token subject")
	}
	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnauthorized, "invalid token role")
	}
	out := &identity.Claims{
		SubjectID: userID,
		Role:      role,
		TokenID:   claims.ID,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	switch role {
	case domain.RoleCustomer:
		out.ScopedID = claims.CustomerID
	case domain.RoleAgent:
		out.ScopedID = claims.AgentID
	}
	return out, nil
}

// Adapter exposes JWTService as an identity.CredentialValidator.
type Adapter struct {
	service *JWTService
}

func NewAdapter(service *JWTService) *Adapter {
	return &Adapter{service: service}
}

func (a *Adapter) Validate(token string) (*identity.Claims, error) {
	claims, err := a.service.ValidateToken(token)
	if errors.Is(err, ErrMalformed) {
		return nil, fmt.Errorf("%w: %w", identity.ErrMalformedCredential, err)
	}
	if err != nil {
		return nil, err
	}
	return ToIdentityClaims(claims)
}
