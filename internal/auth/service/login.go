package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"ims/internal/auth/models"
	"ims/internal/identity"
	"ims/pkg/domain"
	dErrors "ims/pkg/domain-errors"
	"ims/pkg/platform/audit"
	"ims/pkg/platform/sentinel"
)

const msgInvalidLogin = "invalid username or password"

// Login checks the password and issues a credential embedding the user's role
// and, for customers and agents, their scoped row id.
func (s *Service) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResult, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.loginFailed(ctx, domain.UserID{}, "unknown_user")
			return nil, dErrors.New(dErrors.CodeUnauthorized, msgInvalidLogin)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to lookup user")
	}
	if user.Deleted {
		s.loginFailed(ctx, user.ID, "deleted")
		return nil, dErrors.New(dErrors.CodeUnauthorized, msgInvalidLogin)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.loginFailed(ctx, user.ID, "bad_password")
		return nil, dErrors.New(dErrors.CodeUnauthorized, msgInvalidLogin)
	}

	scopedID, err := s.scopes.ScopedIDForUser(ctx, user.ID, user.Role)
	if err != nil {
		if !errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve scoped id")
		}
		// the credential still issues; scoped operations will be refused
		s.logger.WarnContext(ctx, "no profile row for scoped user",
			"user_id", user.ID.String(),
			"role", user.Role,
		)
		scopedID = nil
	}

	token, claims, err := s.tokens.GenerateAccessToken(uuid.UUID(user.ID), user.Role, scopedID, s.tokenTTL)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue token")
	}

	if s.metrics != nil {
		s.metrics.IncLogin("success")
	}
	s.emit(ctx, audit.Event{
		UserID:    user.ID,
		Action:    string(audit.EventLoginSucceeded),
		ActorRole: user.Role.String(),
		Decision:  "granted",
	})
	s.logger.InfoContext(ctx, "user logged in", "user_id", user.ID.String(), "role", user.Role)

	return &models.LoginResult{
		Token:     token,
		Role:      user.Role,
		UserID:    user.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (s *Service) loginFailed(ctx context.Context, userID domain.UserID, reason string) {
	if s.metrics != nil {
		s.metrics.IncLogin(reason)
	}
	s.emit(ctx, audit.Event{
		UserID:   userID,
		Action:   string(audit.EventLoginFailed),
		Decision: "denied",
		Reason:   reason,
	})
}

// Logout revokes the principal's credential for the rest of its lifetime.
func (s *Service) Logout(ctx context.Context, p identity.Principal) error {
	if err := s.revoke(ctx, p); err != nil {
		return err
	}
	if s.metrics != nil {
		s.metrics.IncLogout()
	}
	s.emit(ctx, audit.Event{
		UserID:    p.SubjectID,
		Action:    string(audit.EventLoggedOut),
		ActorRole: p.Role.String(),
	})
	return nil
}

func (s *Service) revoke(ctx context.Context, p identity.Principal) error {
	if p.TokenID == "" {
		return nil
	}
	ttl := p.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		// already expired, nothing left to revoke
		return nil
	}
	if err := s.revocations.RevokeToken(ctx, p.TokenID, ttl); err != nil {
		return dErrors.Wrap(err, dErrors.CodeDependencyFailure, "failed to revoke token")
	}
	return nil
}

// Role reports the role carried by the resolved principal.
func (s *Service) Role(p identity.Principal) domain.Role {
	return p.Role
}
