package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	accountService "ims/internal/account/service"
	"ims/internal/auth/adapters"
	authMetrics "ims/internal/auth/metrics"
	authService "ims/internal/auth/service"
	catalogueService "ims/internal/catalogue/service"
	claimMetrics "ims/internal/claim/metrics"
	claimService "ims/internal/claim/service"
	"ims/internal/identity"
	identityMetrics "ims/internal/identity/metrics"
	jwttoken "ims/internal/jwt_token"
	notificationMetrics "ims/internal/notification/metrics"
	notificationService "ims/internal/notification/service"
	"ims/internal/platform/config"
	"ims/internal/platform/kafka"
	policyService "ims/internal/policy/service"
	policyRequestMetrics "ims/internal/policyrequest/metrics"
	policyRequestService "ims/internal/policyrequest/service"
	ratelimitMetrics "ims/internal/ratelimit/metrics"
	ratelimit "ims/internal/ratelimit/middleware"
	ratelimitModels "ims/internal/ratelimit/models"
	"ims/internal/ratelimit/store/bucket"
	httptransport "ims/internal/transport/http"
	"ims/pkg/platform/audit/publisher"
	"ims/pkg/platform/circuit"
)

type application struct {
	services httptransport.Services
	resolver *identity.Resolver
	limiter  *ratelimit.Middleware
}

// wire builds every workflow over st. producer may be nil, in which case
// notifications are stored but not published.
func wire(
	ctx context.Context,
	cfg config.Server,
	log *slog.Logger,
	reg prometheus.Registerer,
	st *stores,
	producer *kafka.Client,
	auditor *publisher.Publisher,
) (*application, error) {
	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTAudience)

	resolver := identity.NewResolver(jwttoken.NewAdapter(jwtService),
		identity.WithRevocationChecker(st.revocations),
		identity.WithAuditPublisher(auditor),
		identity.WithLogger(log),
		identity.WithMetrics(identityMetrics.New(reg)),
	)

	auth, err := authService.New(st.users, st.revocations,
		adapters.NewAccountAdapter(st.customers, st.agents), jwtService,
		authService.WithLogger(log),
		authService.WithMetrics(authMetrics.New(reg)),
		authService.WithAuditPublisher(auditor),
		authService.WithTokenTTL(cfg.TokenTTL),
	)
	if err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}
	if cfg.SeedAdminUsername != "" {
		if err := auth.SeedAdmin(ctx, cfg.SeedAdminUsername, cfg.SeedAdminPassword); err != nil {
			return nil, fmt.Errorf("seed admin: %w", err)
		}
	}

	accounts, err := accountService.New(st.customers, st.agents, auth, st.tx, accountService.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("account service: %w", err)
	}

	notifyOpts := []notificationService.Option{
		notificationService.WithLogger(log),
		notificationService.WithMetrics(notificationMetrics.New(reg)),
	}
	if producer != nil {
		notifyOpts = append(notifyOpts, notificationService.WithPublisher(producer, cfg.Kafka.NotificationsTopic),
			notificationService.WithBreaker(circuit.New(5, 30*time.Second)),
		)
	}
	notifications, err := notificationService.New(st.notifications, notifyOpts...)
	if err != nil {
		return nil, fmt.Errorf("notification service: %w", err)
	}

	catalogue, err := catalogueService.New(st.catalogue,
		catalogueService.WithLogger(log),
		catalogueService.WithAuditPublisher(auditor),
	)
	if err != nil {
		return nil, fmt.Errorf("catalogue service: %w", err)
	}

	policies, err := policyService.New(st.policies)
	if err != nil {
		return nil, fmt.Errorf("policy service: %w", err)
	}

	requests, err := policyRequestService.New(st.policyRequests, st.catalogue, st.agents, st.policies, notifications, st.tx,
		policyRequestService.WithLogger(log),
		policyRequestService.WithMetrics(policyRequestMetrics.New(reg)),
		policyRequestService.WithAuditPublisher(auditor),
	)
	if err != nil {
		return nil, fmt.Errorf("policy request service: %w", err)
	}

	claims, err := claimService.New(st.claims, st.policies, notifications,
		claimService.WithLogger(log),
		claimService.WithMetrics(claimMetrics.New(reg)),
		claimService.WithAuditPublisher(auditor),
	)
	if err != nil {
		return nil, fmt.Errorf("claim service: %w", err)
	}

	return &application{
		services: httptransport.Services{
			Auth:           auth,
			Accounts:       accounts,
			Catalogue:      catalogue,
			Policies:       policies,
			PolicyRequests: requests,
			Claims:         claims,
			Notifications:  notifications,
		},
		resolver: resolver,
		limiter:  newLimiter(cfg.RateLimit, log, reg, st),
	}, nil
}

// newLimiter shares budgets through Redis when it is configured.
func newLimiter(cfg config.RateLimitConfig, log *slog.Logger, reg prometheus.Registerer, st *stores) *ratelimit.Middleware {
	var buckets ratelimit.BucketStore = bucket.NewInMemoryBucketStore()
	if st.redis != nil {
		buckets = bucket.NewRedisBucketStore(st.redis.Client)
	}
	return ratelimit.New(buckets, log,
		ratelimit.WithDisabled(cfg.Disabled),
		ratelimit.WithMetrics(ratelimitMetrics.New(reg)),
		ratelimit.WithLimit(ratelimitModels.ClassAuth, ratelimitModels.Limit{Requests: cfg.AuthPerMinute, Window: time.Minute}),
		ratelimit.WithLimit(ratelimitModels.ClassWrite, ratelimitModels.Limit{Requests: cfg.WritePerMinute, Window: time.Minute}),
	)
}
