package service

import (
	"context"
	"errors"
	"log/slog"

	accountModels "ims/internal/account/models"
	catalogueModels "ims/internal/catalogue/models"
	notificationModels "ims/internal/notification/models"
	policyModels "ims/internal/policy/models"
	"ims/internal/policyrequest/metrics"
	"ims/internal/policyrequest/models"
	"ims/pkg/domain"
	"ims/pkg/platform/audit"
	txcontext "ims/pkg/platform/tx"
)

type Store interface {
	Create(ctx context.Context, r *models.PolicyRequest) error
	FindByID(ctx context.Context, id domain.PolicyRequestID) (*models.PolicyRequest, error)
	UpdateStatus(ctx context.Context, id domain.PolicyRequestID, from, to domain.Status) error
	ListByCustomer(ctx context.Context, customerID domain.CustomerID) ([]*models.PolicyRequest, error)
	ListAll(ctx context.Context, statuses ...domain.Status) ([]*models.PolicyRequest, error)
}

type CatalogueStore interface {
	FindByID(ctx context.Context, id domain.AvailablePolicyID) (*catalogueModels.AvailablePolicy, error)
}

type AgentStore interface {
	FindByID(ctx context.Context, id domain.AgentID) (*accountModels.Agent, error)
}

type PolicyStore interface {
	Create(ctx context.Context, p *policyModels.Policy) error
}

type Notifier interface {
	Dispatch(ctx context.Context, n *notificationModels.Notification) error
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service runs the policy request lifecycle: submission by customers,
// approval (which issues the policy) and rejection by admins.
type Service struct {
	requests  Store
	catalogue CatalogueStore
	agents    AgentStore
	policies  PolicyStore
	notifier  Notifier
	tx        txcontext.Runner
	auditor   AuditPublisher
	logger    *slog.Logger
	metrics   *metrics.Metrics
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

func New(
	requests Store,
	catalogue CatalogueStore,
	agents AgentStore,
	policies PolicyStore,
	notifier Notifier,
	tx txcontext.Runner,
	opts ...Option,
) (*Service, error) {
	if requests == nil {
		return nil, errors.New("policy request store is required")
	}
	if catalogue == nil {
		return nil, errors.New("catalogue store is required")
	}
	if agents == nil {
		return nil, errors.New("agent store is required")
	}
	if policies == nil {
		return nil, errors.New("policy store is required")
	}
	if notifier == nil {
		return nil, errors.New("notifier is required")
	}
	if tx == nil {
		return nil, errors.New("transaction runner is required")
	}
	s := &Service{
		requests:  requests,
		catalogue: catalogue,
		agents:    agents,
		policies:  policies,
		notifier:  notifier,
		tx:        tx,
		logger:    slog.Default(),
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
