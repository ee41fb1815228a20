package jwttoken

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"ims/pkg/domain"
	dErrors "ims/pkg/domain-errors"
)

// ErrMalformed marks a credential that does not parse as a JWT at all.
var ErrMalformed = errors.New("malformed token")

// Claims represents the JWT claims for our access tokens. CustomerID or
// AgentID carries the scoped row id at issue time, matching Role.
type Claims struct {
	UserID     string `json:"user_id"`
	Role       string `json:"role"`
	CustomerID *int64 `json:"customer_id,omitempty"`
	AgentID    *int64 `json:"agent_id,omitempty"`
	jwt.RegisteredClaims
}

// JWTService handles JWT creation and validation
type JWTService struct {
	signingKey []byte
	issuer     string
	audience   string
	now        func() time.Time
}

func NewJWTService(signingKey string, issuer string, audience string) *JWTService {
	return &JWTService{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		audience:   audience,
		now:        time.Now,
	}
}

// GenerateAccessToken signs a credential for userID. scopedID is embedded as
// customer_id or agent_id according to role and ignored for admins.
func (s *JWTService) GenerateAccessToken(
	userID uuid.UUID,
	role domain.Role,
	scopedID *int64,
	expiresIn time.Duration) (string, *Claims, error) {
	now := s.now()
	claims := &Claims{
		UserID: userID.String(),
		Role:   role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Audience:  []string{s.audience},
			ID:        uuid.NewString(),
		},
	}
	if scopedID != nil {
		v := *scopedID
		switch role {
		case domain.RoleCustomer:
			claims.CustomerID = &v
		case domain.RoleAgent:
			claims.AgentID = &v
		}
	}

	signedToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return "", nil, err
	}
	return signedToken, claims, nil
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithTimeFunc(s.now),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, dErrors.Wrap(ErrMalformed, dErrors.CodeUnauthorized, "malformed token")
		}
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "token has expired")
		}
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}

	if !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}

	return claims, nil
}
