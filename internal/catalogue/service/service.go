package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ims/internal/catalogue/models"
	"ims/internal/identity"
	"ims/pkg/domain"
	dErrors "ims/pkg/domain-errors"
	"ims/pkg/paging"
	"ims/pkg/platform/audit"
	"ims/pkg/platform/sentinel"
	"ims/pkg/result"
)

type Store interface {
	Create(ctx context.Context, p *models.AvailablePolicy) error
	FindByID(ctx context.Context, id domain.AvailablePolicyID) (*models.AvailablePolicy, error)
	Update(ctx context.Context, p *models.AvailablePolicy) error
	Delete(ctx context.Context, id domain.AvailablePolicyID) error
	ListAll(ctx context.Context) ([]*models.AvailablePolicy, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service manages the policy catalogue. Every role can browse it; only admins
// change it.
type Service struct {
	store   Store
	auditor AuditPublisher
	logger  *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(p AuditPublisher) Option {
	return func(s *Service) {
		s.auditor = p
	}
}

func New(store Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("catalogue store is required")
	}
	s := &Service{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Service) Create(ctx context.Context, actor identity.Principal, in models.AvailablePolicyInput) result.Result[*models.AvailablePolicy] {
	if err := actor.RequireAdmin(); err != nil {
		return result.Fail[*models.AvailablePolicy](err)
	}
	in.Normalize()
	if err := in.Validate(); err != nil {
		return result.Fail[*models.AvailablePolicy](err)
	}
	p := in.ToPolicy(0)
	if err := s.store.Create(ctx, p); err != nil {
		return result.Fail[*models.AvailablePolicy](dErrors.Wrap(err, dErrors.CodeInternal, "failed to save available policy"))
	}
	s.changed(ctx, actor, p.ID, "created")
	return result.OK(p, "available policy created successfully")
}

func (s *Service) Update(ctx context.Context, actor identity.Principal, id domain.AvailablePolicyID, in models.AvailablePolicyInput) result.Result[*models.AvailablePolicy] {
	if err := actor.RequireAdmin(); err != nil {
		return result.Fail[*models.AvailablePolicy](err)
	}
	if !domain.Valid(id) {
		return result.Failf[*models.AvailablePolicy](dErrors.CodeValidation, "available policy id must be positive")
	}
	in.Normalize()
	if err := in.Validate(); err != nil {
		return result.Fail[*models.AvailablePolicy](err)
	}
	p := in.ToPolicy(id)
	if err := s.store.Update(ctx, p); err != nil {
		return result.Fail[*models.AvailablePolicy](storeErr(err, "failed to update available policy"))
	}
	s.changed(ctx, actor, id, "updated")
	return result.OK(p, "available policy updated successfully")
}

// Delete removes a catalogue entry. Policies already issued from it keep
// their stored dates.
func (s *Service) Delete(ctx context.Context, actor identity.Principal, id domain.AvailablePolicyID) result.Result[bool] {
	if err := actor.RequireAdmin(); err != nil {
		return result.Fail[bool](err)
	}
	if !domain.Valid(id) {
		return result.Failf[bool](dErrors.CodeValidation, "available policy id must be positive")
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return result.Fail[bool](storeErr(err, "failed to delete available policy"))
	}
	s.changed(ctx, actor, id, "deleted")
	return result.OK(true, "available policy deleted successfully")
}

func (s *Service) Get(ctx context.Context, id domain.AvailablePolicyID) result.Result[*models.AvailablePolicy] {
	if !domain.Valid(id) {
		return result.Failf[*models.AvailablePolicy](dErrors.CodeValidation, "available policy id must be positive")
	}
	p, err := s.store.FindByID(ctx, id)
	if err != nil {
		return result.Fail[*models.AvailablePolicy](storeErr(err, "failed to load available policy"))
	}
	return result.OK(p, "available policy retrieved successfully")
}

func (s *Service) List(ctx context.Context, page, size int) result.Result[paging.Page[*models.AvailablePolicy]] {
	all, err := s.store.ListAll(ctx)
	if err != nil {
		return result.Fail[paging.Page[*models.AvailablePolicy]](dErrors.Wrap(err, dErrors.CodeInternal, "failed to list available policies"))
	}
	p, err := paging.Paginate(all, page, size)
	if err != nil {
		return result.Fail[paging.Page[*models.AvailablePolicy]](err)
	}
	return result.OK(p, "available policies retrieved successfully")
}

func (s *Service) changed(ctx context.Context, actor identity.Principal, id domain.AvailablePolicyID, what string) {
	s.logger.InfoContext(ctx, "catalogue changed", "available_policy_id", id, "change", what)
	if s.auditor == nil {
		return
	}
	err := s.auditor.Emit(ctx, audit.Event{
		UserID:    actor.SubjectID,
		Subject:   fmt.Sprintf("available_policy:%d", id),
		Action:    string(audit.EventCatalogueChanged),
		Decision:  what,
		ActorRole: actor.Role.String(),
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event", "action", audit.EventCatalogueChanged, "error", err)
	}
}

func storeErr(err error, internal string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "available policy not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, internal)
}
