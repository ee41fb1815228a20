package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"ims/internal/identity"
	"ims/internal/notification/metrics"
	"ims/internal/notification/models"
	"ims/pkg/domain"
	dErrors "ims/pkg/domain-errors"
	"ims/pkg/platform/circuit"
	"ims/pkg/result"
)

type Store interface {
	Append(ctx context.Context, n *models.Notification) error
	ListByCustomer(ctx context.Context, customerID domain.CustomerID) ([]*models.Notification, error)
	ListByAgent(ctx context.Context, agentID domain.AgentID) ([]*models.Notification, error)
}

// Publisher fans stored notifications out to a message broker.
type Publisher interface {
	Publish(ctx context.Context, topic string, key, value []byte) error
}

// Service stores notifications and publishes them as events. The store is
// the record of truth; publishing is best effort.
type Service struct {
	store     Store
	publisher Publisher
	topic     string
	breaker   *circuit.Breaker
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

type Option func(*Service)

func WithPublisher(p Publisher, topic string) Option {
	return func(s *Service) {
		s.publisher = p
		s.topic = topic
	}
}

func WithBreaker(b *circuit.Breaker) Option {
	return func(s *Service) {
		s.breaker = b
	}
}

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

func New(store Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("notification store is required")
	}
	s := &Service{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	if s.publisher != nil && s.breaker == nil {
		s.breaker = circuit.New(5, 30*time.Second)
	}
	return s, nil
}

// Event is the broker payload for a stored notification.
type Event struct {
	ID         domain.NotificationID `json:"id"`
	Recipient  string                `json:"recipient"`
	CustomerID *domain.CustomerID    `json:"customerId,omitempty"`
	AgentID    *domain.AgentID       `json:"agentId,omitempty"`
	Message    string                `json:"message"`
	CreatedAt  time.Time             `json:"createdAt"`
}

// Dispatch appends n to the store and then publishes it. Only a store failure
// is returned.
func (s *Service) Dispatch(ctx context.Context, n *models.Notification) error {
	if err := s.store.Append(ctx, n); err != nil {
		if s.metrics != nil {
			s.metrics.Failed.Inc()
		}
		s.logger.ErrorContext(ctx, "failed to store notification", "recipient", n.Recipient(), "error", err)
		return dErrors.Wrap(err, dErrors.CodeDependencyFailure, "failed to add notification")
	}
	if s.metrics != nil {
		kind := "customer"
		if n.AgentID != nil {
			kind = "agent"
		}
		s.metrics.Dispatched.WithLabelValues(kind).Inc()
	}
	s.publish(ctx, n)
	return nil
}

func (s *Service) publish(ctx context.Context, n *models.Notification) {
	if s.publisher == nil {
		return
	}
	if !s.breaker.Allow() {
		if s.metrics != nil {
			s.metrics.PublishSkipped.Inc()
		}
		return
	}
	payload, err := json.Marshal(Event{
		ID:         n.ID,
		Recipient:  n.Recipient(),
		CustomerID: n.CustomerID,
		AgentID:    n.AgentID,
		Message:    n.Message,
		CreatedAt:  n.CreatedAt,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to encode notification event", "error", err)
		return
	}
	if err := s.publisher.Publish(ctx, s.topic, []byte(n.Recipient()), payload); err != nil {
		s.breaker.RecordFailure()
		if s.metrics != nil {
			s.metrics.PublishFailed.Inc()
		}
		s.logger.WarnContext(ctx, "failed to publish notification event",
			"notification_id", n.ID,
			"topic", s.topic,
			"error", err,
		)
		return
	}
	s.breaker.RecordSuccess()
}

// ListForCustomer returns the acting customer's notifications, newest first.
func (s *Service) ListForCustomer(ctx context.Context, actor identity.Principal) result.Result[[]*models.Notification] {
	id, err := actor.RequireCustomer()
	if err != nil {
		return result.Fail[[]*models.Notification](err)
	}
	return listed(s.store.ListByCustomer(ctx, id))
}

// ListForAgent returns the acting agent's notifications, newest first.
func (s *Service) ListForAgent(ctx context.Context, actor identity.Principal) result.Result[[]*models.Notification] {
	id, err := actor.RequireAgent()
	if err != nil {
		return result.Fail[[]*models.Notification](err)
	}
	return listed(s.store.ListByAgent(ctx, id))
}

func listed(items []*models.Notification, err error) result.Result[[]*models.Notification] {
	if err != nil {
		return result.Fail[[]*models.Notification](dErrors.Wrap(err, dErrors.CodeInternal, "failed to list notifications"))
	}
	if len(items) == 0 {
		return result.Failf[[]*models.Notification](dErrors.CodeNotFound, "no notifications found")
	}
	return result.OK(items, "notifications retrieved successfully")
}
