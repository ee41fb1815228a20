package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"ims/internal/ratelimit/metrics"
	"ims/internal/ratelimit/models"
	dErrors "ims/pkg/domain-errors"
	"ims/pkg/platform/httputil"
	"ims/pkg/requestcontext"
)

// BucketStore is the sliding-window backend, in memory or Redis.
type BucketStore interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (*models.RateLimitResult, error)
}

// Middleware enforces per-client budgets. Clients are keyed by the IP the
// metadata middleware placed in the context, so it must run after it.
type Middleware struct {
	buckets  BucketStore
	limits   map[models.EndpointClass]models.Limit
	logger   *slog.Logger
	metrics  *metrics.Metrics
	disabled bool
}

type Option func(*Middleware)

// WithDisabled turns every check into a pass-through.
func WithDisabled(disabled bool) Option {
	return func(m *Middleware) {
		m.disabled = disabled
	}
}

// WithLimit overrides the budget for one class. Non-positive values keep the default.
func WithLimit(class models.EndpointClass, limit models.Limit) Option {
	return func(m *Middleware) {
		if limit.Requests > 0 && limit.Window > 0 {
			m.limits[class] = limit
		}
	}
}

func WithMetrics(mt *metrics.Metrics) Option {
	return func(m *Middleware) {
		m.metrics = mt
	}
}

func New(buckets BucketStore, logger *slog.Logger, opts ...Option) *Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Middleware{
		buckets: buckets,
		limits:  models.DefaultLimits(),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.disabled {
		logger.Info("rate limiting disabled")
	}
	return m
}

// RateLimit limits every request through the handler.
func (m *Middleware) RateLimit(class models.EndpointClass) func(http.Handler) http.Handler {
	return m.limit(class, func(*http.Request) bool { return true })
}

// RateLimitWrites limits only mutating methods; reads pass straight through.
func (m *Middleware) RateLimitWrites(class models.EndpointClass) func(http.Handler) http.Handler {
	return m.limit(class, func(r *http.Request) bool {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return false
		}
		return true
	})
}

func (m *Middleware) limit(class models.EndpointClass, applies func(*http.Request) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if m.disabled || m.buckets == nil || !applies(r) {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			limit := m.limits[class]
			ip := requestcontext.ClientIP(ctx)

			result, err := m.buckets.Allow(ctx, models.BucketKey(class, ip), limit.Requests, limit.Window)
			if err != nil {
				// fail open: a broken limiter must not take the API down
				m.logger.ErrorContext(ctx, "rate limit check failed", "error", err, "class", class)
				if m.metrics != nil {
					m.metrics.IncrementCheckErrors()
				}
				next.ServeHTTP(w, r)
				return
			}

			addRateLimitHeaders(w, result)
			if !result.Allowed {
				if m.metrics != nil {
					m.metrics.IncrementRejected(string(class))
				}
				m.logger.WarnContext(ctx, "rate limit exceeded", "class", class, "retry_after", result.RetryAfter)
				w.Header().Set("Retry-After", strconv.Itoa(result.RetryAfter))
				httputil.WriteError(w, dErrors.New(dErrors.CodeRateLimited, "too many requests, try again later"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func addRateLimitHeaders(w http.ResponseWriter, result *models.RateLimitResult) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
}
