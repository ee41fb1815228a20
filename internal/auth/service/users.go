package service

import (
	"context"
	"errors"
	"sort"

	"golang.org/x/crypto/bcrypt"

	"ims/internal/auth/models"
	"ims/internal/identity"
	"ims/pkg/domain"
	dErrors "ims/pkg/domain-errors"
	"ims/pkg/platform/sentinel"
)

// CreateUser hashes the password and stores a new login subject. Callers
// creating a profile row run this inside their own unit of work.
func (s *Service) CreateUser(ctx context.Context, username, password string, role domain.Role) (domain.UserID, error) {
	if err := models.ValidatePassword(password); err != nil {
		return domain.UserID{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return domain.UserID{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to hash password")
	}
	user, err := models.NewUser(domain.NewUserID(), username, string(hash), role, s.now())
	if err != nil {
		return domain.UserID{}, dErrors.Wrap(err, dErrors.CodeValidation, dErrors.MessageOf(err))
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			return domain.UserID{}, dErrors.New(dErrors.CodeConflict, "username already taken")
		}
		return domain.UserID{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save user")
	}
	if s.metrics != nil {
		s.metrics.IncrementUsersCreated(role.String())
	}
	s.logger.InfoContext(ctx, "user created", "user_id", user.ID.String(), "role", role)
	return user.ID, nil
}

// ListUsers returns active users ordered by creation time. No users is
// reported as not found.
func (s *Service) ListUsers(ctx context.Context) ([]models.UserWithRole, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list users")
	}
	if len(users) == 0 {
		return nil, dErrors.New(dErrors.CodeNotFound, "no users found")
	}
	sort.SliceStable(users, func(i, j int) bool { return users[i].CreatedAt.Before(users[j].CreatedAt) })
	out := make([]models.UserWithRole, 0, len(users))
	for _, u := range users {
		out = append(out, models.UserWithRole{ID: u.ID, Username: u.Username, Role: u.Role, CreatedAt: u.CreatedAt})
	}
	return out, nil
}

// DeleteAccount soft-deletes the principal's user and revokes the credential
// used for the request. Profile rows and issued policies are kept.
func (s *Service) DeleteAccount(ctx context.Context, p identity.Principal) error {
	if p.SubjectID.IsNil() {
		return dErrors.New(dErrors.CodeBadRequest, "user ID required")
	}
	if err := s.users.MarkDeleted(ctx, p.SubjectID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete user")
	}
	if err := s.revoke(ctx, p); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "account deleted", "user_id", p.SubjectID.String())
	return nil
}

// SeedAdmin creates the bootstrap admin unless the username already exists.
func (s *Service) SeedAdmin(ctx context.Context, username, password string) error {
	if username == "" {
		return nil
	}
	_, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to lookup admin")
	}
	_, err = s.CreateUser(ctx, username, password, domain.RoleAdmin)
	return err
}
