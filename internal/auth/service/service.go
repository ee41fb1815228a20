package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"ims/internal/auth/metrics"
	"ims/internal/auth/models"
	jwttoken "ims/internal/jwt_token"
	"ims/pkg/domain"
	"ims/pkg/platform/audit"
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id domain.UserID) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	MarkDeleted(ctx context.Context, id domain.UserID) error
	ListAll(ctx context.Context) ([]*models.User, error)
}

// RevocationList records credentials that must no longer resolve.
type RevocationList interface {
	RevokeToken(ctx context.Context, jti string, ttl time.Duration) error
}

// ScopeResolver finds the customer or agent row a user is scoped to.
type ScopeResolver interface {
	ScopedIDForUser(ctx context.Context, userID domain.UserID, role domain.Role) (*int64, error)
}

type TokenGenerator interface {
	GenerateAccessToken(userID uuid.UUID, role domain.Role, scopedID *int64, expiresIn time.Duration) (string, *jwttoken.Claims, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service issues and revokes credentials and owns the user table.
type Service struct {
	users       UserStore
	revocations RevocationList
	scopes      ScopeResolver
	tokens      TokenGenerator
	auditor     AuditPublisher
	logger      *slog.Logger
	metrics     *metrics.Metrics
	tokenTTL    time.Duration
	hashCost    int
	now         func() time.Time
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAuditPublisher(p AuditPublisher) Option {
	return func(s *Service) {
		s.auditor = p
	}
}

func WithTokenTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.tokenTTL = ttl
		}
	}
}

// WithHashCost overrides the bcrypt cost; tests use bcrypt.MinCost.
func WithHashCost(cost int) Option {
	return func(s *Service) {
		s.hashCost = cost
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(users UserStore, revocations RevocationList, scopes ScopeResolver, tokens TokenGenerator, opts ...Option) (*Service, error) {
	if users == nil {
		return nil, errors.New("user store is required")
	}
	if revocations == nil {
		return nil, errors.New("revocation list is required")
	}
	if scopes == nil {
		return nil, errors.New("scope resolver is required")
	}
	if tokens == nil {
		return nil, errors.New("token generator is required")
	}
	s := &Service{
		users:       users,
		revocations: revocations,
		scopes:      scopes,
		tokens:      tokens,
		logger:      slog.Default(),
		tokenTTL:    time.Hour,
		hashCost:    bcrypt.DefaultCost,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.auditor == nil {
		return
	}
	if err := s.auditor.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event", "action", event.Action, "error", err)
	}
}
