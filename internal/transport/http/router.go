package httptransport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ims/internal/identity"
	"ims/internal/platform/metrics"
	ratelimit "ims/internal/ratelimit/middleware"
	ratelimitModels "ims/internal/ratelimit/models"
	"ims/pkg/domain"
	dErrors "ims/pkg/domain-errors"
	"ims/pkg/platform/httputil"
	"ims/pkg/platform/middleware/metadata"
	"ims/pkg/platform/middleware/requesttime"
	"ims/pkg/requestcontext"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// Config holds transport-level settings.
type Config struct {
	CORSAllowedOrigins []string
	RequestTimeout     time.Duration
	// SecureCookies marks the jwt cookie Secure; off for plain-HTTP development.
	SecureCookies bool
	// RateLimit enforces per-client budgets; nil disables limiting.
	RateLimit *ratelimit.Middleware
	// HealthChecks are probed by GET /health, keyed by dependency name.
	HealthChecks map[string]func(context.Context) error
}

// Handler is the thin HTTP layer. It resolves the principal and delegates to
// the workflow services; it holds no business rules.
type Handler struct {
	services Services
	resolver *identity.Resolver
	logger   *slog.Logger
	cfg      Config
}

func NewHandler(services Services, resolver *identity.Resolver, logger *slog.Logger, cfg Config) (*Handler, error) {
	switch {
	case services.Auth == nil, services.Accounts == nil, services.Catalogue == nil, services.Policies == nil,
		services.PolicyRequests == nil, services.Claims == nil, services.Notifications == nil:
		return nil, errors.New("all services are required")
	case resolver == nil:
		return nil, errors.New("identity resolver is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{services: services, resolver: resolver, logger: logger, cfg: cfg}, nil
}

// NewRouter wires the middleware stack and every route. m and gatherer may be
// nil, in which case request metrics and /metrics are not mounted.
func NewRouter(h *Handler, m *metrics.Metrics, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(requestID)
	r.Use(requestLogger(h.logger))
	r.Use(chimw.Recoverer)
	if m != nil {
		r.Use(m.Middleware)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if h.cfg.RequestTimeout > 0 {
		r.Use(chimw.Timeout(h.cfg.RequestTimeout))
	}
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(identity.Middleware)

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	r.Get("/health", h.handleHealth)

	h.registerAuth(r)
	h.registerCatalogue(r)
	r.Route("/customer", func(r chi.Router) {
		r.Use(identity.RequireRole(h.resolver, h.logger, domain.RoleCustomer))
		r.Use(h.limitWrites())
		h.registerCustomer(r)
	})
	r.Route("/agent", func(r chi.Router) {
		r.Use(identity.RequireRole(h.resolver, h.logger, domain.RoleAgent))
		r.Use(h.limitWrites())
		h.registerAgent(r)
	})
	r.Route("/admin", func(r chi.Router) {
		r.Use(identity.RequireRole(h.resolver, h.logger, domain.RoleAdmin))
		r.Use(h.limitWrites())
		h.registerAdmin(r)
	})
	return r
}

func passThrough(next http.Handler) http.Handler { return next }

func (h *Handler) limitAuth() func(http.Handler) http.Handler {
	if h.cfg.RateLimit == nil {
		return passThrough
	}
	return h.cfg.RateLimit.RateLimit(ratelimitModels.ClassAuth)
}

func (h *Handler) limitWrites() func(http.Handler) http.Handler {
	if h.cfg.RateLimit == nil {
		return passThrough
	}
	return h.cfg.RateLimit.RateLimitWrites(ratelimitModels.ClassWrite)
}

// requestID copies chi's request id into requestcontext so loggers and audit
// events see it.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithRequestID(r.Context(), chimw.GetReqID(r.Context()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.InfoContext(r.Context(), "http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}

// principal returns the caller resolved by RequireRole earlier in the chain.
func (h *Handler) principal(w http.ResponseWriter, r *http.Request) (identity.Principal, bool) {
	p, err := h.resolver.Resolve(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return identity.Principal{}, false
	}
	return p, true
}

// pageParams reads ?page= and ?size=, defaulting to the first page of ten.
func pageParams(r *http.Request) (int, int, error) {
	page, err := intParam(r, "page", defaultPage)
	if err != nil {
		return 0, 0, err
	}
	size, err := intParam(r, "size", defaultPageSize)
	if err != nil {
		return 0, 0, err
	}
	return page, size, nil
}

func intParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeValidation, name+" must be an integer")
	}
	return v, nil
}

// pathID parses the {id} URL parameter with parse.
func pathID[T any](r *http.Request, parse func(string) (T, error)) (T, error) {
	return parse(chi.URLParam(r, "id"))
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	body := map[string]string{"status": "ok"}
	status := http.StatusOK
	for name, check := range h.cfg.HealthChecks {
		if err := check(r.Context()); err != nil {
			h.logger.WarnContext(r.Context(), "health check failed", "dependency", name, "error", err)
			body[name] = "unavailable"
			body["status"] = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		body[name] = "ok"
	}
	httputil.WriteJSON(w, status, body)
}
