package service

import (
	"context"
	"errors"
	"log/slog"

	"ims/internal/claim/metrics"
	"ims/internal/claim/models"
	notificationModels "ims/internal/notification/models"
	policyModels "ims/internal/policy/models"
	"ims/pkg/domain"
	"ims/pkg/platform/audit"
)

type Store interface {
	Create(ctx context.Context, c *models.Claim) error
	FindByID(ctx context.Context, id domain.ClaimID) (*models.Claim, error)
	UpdateStatus(ctx context.Context, id domain.ClaimID, from, to domain.Status) error
	ListByCustomer(ctx context.Context, customerID domain.CustomerID) ([]*models.Claim, error)
	ListByAgent(ctx context.Context, agentID domain.AgentID) ([]*models.Claim, error)
	ListAll(ctx context.Context) ([]*models.Claim, error)
}

type PolicyStore interface {
	FindByID(ctx context.Context, id domain.PolicyID) (*policyModels.Policy, error)
}

type Notifier interface {
	Dispatch(ctx context.Context, n *notificationModels.Notification) error
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service files claims against issued policies and adjudicates them.
type Service struct {
	claims   Store
	policies PolicyStore
	notifier Notifier
	auditor  AuditPublisher
	logger   *slog.Logger
	metrics  *metrics.Metrics
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

func New(claims Store, policies PolicyStore, notifier Notifier, opts ...Option) (*Service, error) {
	if claims == nil {
		return nil, errors.New("claim store is required")
	}
	if policies == nil {
		return nil, errors.New("policy store is required")
	}
	if notifier == nil {
		return nil, errors.New("notifier is required")
	}
	s := &Service{
		claims:   claims,
		policies: policies,
		notifier: notifier,
		logger:   slog.Default(),
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
