package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"ims/internal/platform/config"
	"ims/internal/platform/httpserver"
	"ims/internal/platform/kafka"
	"ims/internal/platform/logger"
	"ims/internal/platform/metrics"
	httptransport "ims/internal/transport/http"
	"ims/pkg/platform/audit/outbox"
	"ims/pkg/platform/audit/publisher"
)

const shutdownTimeout = 10 * time.Second

// main wires the stores, workflows and HTTP router, then runs the server and
// the audit outbox relay until SIGINT or SIGTERM.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)
	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.close()

	producer, err := kafka.New(ctx, cfg.Kafka)
	if err != nil {
		return err
	}
	if producer != nil {
		defer producer.Close()
		if err := producer.EnsureTopics(ctx, 1, 1, cfg.Kafka.NotificationsTopic, cfg.Kafka.AuditTopic); err != nil {
			return err
		}
	}

	auditor := publisher.NewPublisher(st.audit, publisher.WithAsyncBuffer(1024), publisher.WithLogger(log))
	defer auditor.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app, err := wire(ctx, cfg, log, reg, st, producer, auditor)
	if err != nil {
		return err
	}

	handler, err := httptransport.NewHandler(app.services, app.resolver, log, httptransport.Config{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RequestTimeout:     cfg.RequestTimeout,
		SecureCookies:      cfg.SecureCookies,
		RateLimit:          app.limiter,
		HealthChecks:       st.healthChecks(),
	})
	if err != nil {
		return err
	}
	srv := httpserver.New(cfg.Addr, httptransport.NewRouter(handler, metrics.New(reg), reg),
		httpserver.WithRequestTimeout(cfg.RequestTimeout),
		httpserver.WithErrorLog(log),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting ims", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	if st.outbox != nil && producer != nil {
		relay := outbox.NewRelay(st.outbox, producer, cfg.Kafka.AuditTopic,
			outbox.WithLogger(log),
			outbox.WithInterval(cfg.Kafka.RelayInterval),
			outbox.WithBatchSize(cfg.Kafka.RelayBatchSize),
		)
		g.Go(func() error {
			return relay.Run(gctx)
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
