package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	accountService "ims/internal/account/service"
	agentStore "ims/internal/account/store/agent"
	customerStore "ims/internal/account/store/customer"
	"ims/internal/auth/adapters"
	authService "ims/internal/auth/service"
	"ims/internal/auth/store/revocation"
	userStore "ims/internal/auth/store/user"
	catalogueService "ims/internal/catalogue/service"
	catalogueStore "ims/internal/catalogue/store"
	claimService "ims/internal/claim/service"
	claimStore "ims/internal/claim/store"
	"ims/internal/identity"
	notificationService "ims/internal/notification/service"
	notificationStore "ims/internal/notification/store"
	"ims/internal/platform/config"
	"ims/internal/platform/postgres"
	"ims/internal/platform/redis"
	policyService "ims/internal/policy/service"
	policyStore "ims/internal/policy/store"
	policyRequestService "ims/internal/policyrequest/service"
	policyRequestStore "ims/internal/policyrequest/store"
	"ims/pkg/platform/audit/publisher"
	auditmemory "ims/pkg/platform/audit/store/memory"
	auditpostgres "ims/pkg/platform/audit/store/postgres"
	txcontext "ims/pkg/platform/tx"
)

// stores holds one backend per collaborator. Postgres when DATABASE_URL is
// set, in-memory otherwise; the revocation list prefers Redis when configured.
type stores struct {
	db *sql.DB

	users          authService.UserStore
	revocations    revocationList
	customers      customerBackend
	agents         agentBackend
	catalogue      catalogueBackend
	policies       policyBackend
	policyRequests policyRequestService.Store
	claims         claimService.Store
	notifications  notificationService.Store
	audit          publisher.Store
	// outbox is the audit relay source; nil without Postgres.
	outbox *auditpostgres.Store
	tx     txcontext.Runner

	redis *redis.Client
}

// Each backend satisfies every service view of the same table.
type (
	revocationList interface {
		authService.RevocationList
		identity.RevocationChecker
	}
	customerBackend interface {
		accountService.CustomerStore
		adapters.CustomerFinder
	}
	agentBackend interface {
		accountService.AgentStore
		adapters.AgentFinder
		policyRequestService.AgentStore
	}
	catalogueBackend interface {
		catalogueService.Store
		policyRequestService.CatalogueStore
	}
	policyBackend interface {
		policyService.Store
		policyRequestService.PolicyStore
		claimService.PolicyStore
	}
)

func openStores(ctx context.Context, cfg config.Server, logger *slog.Logger) (*stores, error) {
	s := &stores{}

	rc, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	s.redis = rc

	if cfg.DatabaseURL == "" {
		logger.Info("using in-memory stores")
		s.users = userStore.New()
		s.customers = customerStore.New()
		s.agents = agentStore.New()
		s.catalogue = catalogueStore.NewInMemory()
		s.policies = policyStore.NewInMemory()
		s.policyRequests = policyRequestStore.NewInMemory()
		s.claims = claimStore.NewInMemory()
		s.notifications = notificationStore.NewInMemory()
		s.audit = auditmemory.NewInMemoryStore()
		s.revocations = revocation.NewInMemoryTRL(time.Now)
		s.tx = txcontext.NewLockRunner()
	} else {
		db, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			s.close()
			return nil, err
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			_ = db.Close()
			s.close()
			return nil, err
		}
		logger.Info("using postgres stores")
		s.db = db
		s.users = userStore.NewPostgres(db)
		s.customers = customerStore.NewPostgres(db)
		s.agents = agentStore.NewPostgres(db)
		s.catalogue = catalogueStore.NewPostgres(db)
		s.policies = policyStore.NewPostgres(db)
		s.policyRequests = policyRequestStore.NewPostgres(db)
		s.claims = claimStore.NewPostgres(db)
		s.notifications = notificationStore.NewPostgres(db)
		s.outbox = auditpostgres.New(db)
		s.audit = s.outbox
		s.revocations = revocation.NewPostgresTRL(db, time.Now)
		s.tx = txcontext.NewSQLRunner(db)
	}

	if rc != nil {
		logger.Info("using redis token revocation list")
		s.revocations = revocation.NewRedisTRL(rc.Client)
	}
	return s, nil
}

func (s *stores) healthChecks() map[string]func(context.Context) error {
	checks := map[string]func(context.Context) error{}
	if s.db != nil {
		checks["postgres"] = s.db.PingContext
	}
	if s.redis != nil {
		checks["redis"] = s.redis.Check
	}
	return checks
}

func (s *stores) close() {
	if s.redis != nil {
		_ = s.redis.Close()
	}
	if s.db != nil {
		_ = s.db.Close()
	}
}
