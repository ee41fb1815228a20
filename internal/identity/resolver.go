// Package identity resolves the acting principal from a bearer credential,
// at most once per request.
package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"ims/internal/identity/metrics"
	"ims/pkg/domain"
	dErrors "ims/pkg/domain-errors"
	"ims/pkg/platform/audit"
)

var (
	// ErrNoCredential means the request carried no usable credential: none at
	// all, or one that is not a token.
	ErrNoCredential = errors.New("no credential")
	// ErrInvalidCredential covers bad signatures, expiry, bad claims and revoked tokens.
	ErrInvalidCredential = errors.New("invalid credential")
	// ErrMalformedCredential is returned by validators for input that does not
	// parse; Resolve reports it as ErrNoCredential.
	ErrMalformedCredential = errors.New("malformed credential")
)

// Claims is the validated content of a credential.
type Claims struct {
	SubjectID domain.UserID
	Role      domain.Role
	ScopedID  *int64
	TokenID   string
	ExpiresAt time.Time
}

type CredentialValidator interface {
	Validate(token string) (*Claims, error)
}

type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

type Resolver struct {
	validator   CredentialValidator
	revocations RevocationChecker
	auditor     AuditPublisher
	logger      *slog.Logger
	metrics     *metrics.Metrics
}

type Option func(*Resolver)

func WithRevocationChecker(rc RevocationChecker) Option {
	return func(r *Resolver) {
		r.revocations = rc
	}
}

func WithAuditPublisher(p AuditPublisher) Option {
	return func(r *Resolver) {
		r.auditor = p
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Resolver) {
		r.metrics = m
	}
}

func NewResolver(validator CredentialValidator, opts ...Option) *Resolver {
	r := &Resolver{validator: validator, logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the principal for the request scope in ctx. The first call
// validates the credential; later calls in the same request return the cached
// principal or failure.
func (r *Resolver) Resolve(ctx context.Context) (Principal, error) {
	sc := scopeFrom(ctx)
	if sc == nil {
		return Principal{}, noCredential()
	}
	sc.once.Do(func() {
		sc.principal, sc.err = r.resolve(ctx, sc.token)
	})
	return sc.principal, sc.err
}

func (r *Resolver) resolve(ctx context.Context, token string) (Principal, error) {
	start := time.Now()
	p, reason, err := r.validate(ctx, token)
	if r.metrics != nil {
		r.metrics.ObserveResolve(start)
		if err != nil {
			r.metrics.IncResolveFailure(reason)
		}
	}
	if err != nil && reason != "missing" {
		r.logger.WarnContext(ctx, "credential rejected", "reason", reason, "error", err)
		if r.auditor != nil {
			_ = r.auditor.Emit(ctx, audit.Event{
				Action:   string(audit.EventAuthFailed),
				Decision: "denied",
				Reason:   reason,
			})
		}
	}
	return p, err
}

func (r *Resolver) validate(ctx context.Context, token string) (Principal, string, error) {
	if strings.TrimSpace(token) == "" {
		return Principal{}, "missing", noCredential()
	}
	claims, err := r.validator.Validate(token)
	if errors.Is(err, ErrMalformedCredential) {
		return Principal{}, "malformed", dErrors.Wrap(fmt.Errorf("%w: %w", ErrNoCredential, err),
			dErrors.CodeUnauthorized, "missing credential")
	}
	if err != nil {
		return Principal{}, "invalid", dErrors.Wrap(fmt.Errorf("%w: %w", ErrInvalidCredential, err),
			dErrors.CodeUnauthorized, "invalid or expired credential")
	}
	if r.revocations != nil && claims.TokenID != "" {
		revoked, err := r.revocations.IsRevoked(ctx, claims.TokenID)
		if err != nil {
			return Principal{}, "revocation_check", dErrors.Wrap(err, dErrors.CodeInternal, "failed to validate credential")
		}
		if revoked {
			return Principal{}, "revoked", dErrors.Wrap(ErrInvalidCredential,
				dErrors.CodeUnauthorized, "credential has been revoked")
		}
	}
	return Principal{
		SubjectID: claims.SubjectID,
		Role:      claims.Role,
		ScopedID:  claims.ScopedID,
		TokenID:   claims.TokenID,
		ExpiresAt: claims.ExpiresAt,
	}, "", nil
}

func noCredential() error {
	return dErrors.Wrap(ErrNoCredential, dErrors.CodeUnauthorized, "missing credential")
}
