package service

import (
	"context"
	"errors"
	"log/slog"

	"ims/internal/account/models"
	"ims/pkg/domain"
	txcontext "ims/pkg/platform/tx"
)

type CustomerStore interface {
	Create(ctx context.Context, c *models.Customer) error
	FindByID(ctx context.Context, id domain.CustomerID) (*models.Customer, error)
	FindByUserID(ctx context.Context, userID domain.UserID) (*models.Customer, error)
	Update(ctx context.Context, c *models.Customer) error
	ListAll(ctx context.Context) ([]*models.Customer, error)
}

type AgentStore interface {
	Create(ctx context.Context, a *models.Agent) error
	FindByID(ctx context.Context, id domain.AgentID) (*models.Agent, error)
	FindByUserID(ctx context.Context, userID domain.UserID) (*models.Agent, error)
	Update(ctx context.Context, a *models.Agent) error
	ListAll(ctx context.Context) ([]*models.Agent, error)
}

// Credentials creates the login subject behind a new profile.
type Credentials interface {
	CreateUser(ctx context.Context, username, password string, role domain.Role) (domain.UserID, error)
}

// Service owns customer and agent profiles.
type Service struct {
	customers   CustomerStore
	agents      AgentStore
	credentials Credentials
	tx          txcontext.Runner
	logger      *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func New(customers CustomerStore, agents AgentStore, credentials Credentials, tx txcontext.Runner, opts ...Option) (*Service, error) {
	if customers == nil {
		return nil, errors.New("customer store is required")
	}
	if agents == nil {
		return nil, errors.New("agent store is required")
	}
	if credentials == nil {
		return nil, errors.New("credentials are required")
	}
	if tx == nil {
		return nil, errors.New("transaction runner is required")
	}
	s := &Service{
		customers:   customers,
		agents:      agents,
		credentials: credentials,
		tx:          tx,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}
