package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"trustedform/internal/account"
	"trustedform/internal/audit"
	"trustedform/internal/flow"
	"trustedform/internal/outbound"
	"trustedform/internal/platform/config"
	"trustedform/internal/platform/httpserver"
	"trustedform/internal/platform/logger"
	"trustedform/internal/platform/metrics"
	"trustedform/internal/platform/postgres"
	platformredis "trustedform/internal/platform/redis"
	"trustedform/internal/trustedform/exchange"
	"trustedform/internal/trustedform/modules"
	"trustedform/internal/trustedform/transport"
	"trustedform/internal/ui"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal packages.
func main() {
	configPath := flag.String("config", "", "config file (default ./trustedform.yaml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)
	ep := cfg.Endpoints()
	checks := map[string]ui.HealthCheck{}

	publisher, closeAudit, err := newAuditPublisher(ctx, cfg.Kafka, log)
	if err != nil {
		return err
	}
	defer closeAudit()

	registry := modules.Registry(ep, cfg.TrustedForm.DataServiceToken)
	exchangeService := exchange.New(
		registry,
		transport.New(transport.WithTimeout(cfg.TrustedForm.Timeout)),
		exchange.WithMetrics(m),
		exchange.WithAuditPublisher(publisher),
		exchange.WithLogger(log),
		exchange.WithCircuitBreaker(
			cfg.TrustedForm.Breaker.FailureThreshold,
			cfg.TrustedForm.Breaker.SuccessThreshold,
			cfg.TrustedForm.Breaker.Cooldown,
		),
	)

	var cache account.Cache = account.NewMemoryCache()
	redisClient, err := platformredis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
		cache = account.NewRedisCache(redisClient)
		checks["redis"] = redisClient.Health
		log.Info("account cache: redis")
	}
	accountService := account.NewService(
		ep.AccountURL,
		transport.New(transport.WithTimeout(cfg.Account.Timeout)),
		account.WithCache(cache, cfg.Account.CacheTTL),
		account.WithMetrics(m),
		account.WithLogger(log),
	)

	var store flow.Store = flow.NewInMemoryStore()
	pool, err := postgres.Connect(ctx, cfg.Postgres)
	if err != nil {
		return err
	}
	if pool != nil {
		defer pool.Close()
		if cfg.Postgres.Migrate {
			if err := postgres.Migrate(cfg.Postgres.URL, log); err != nil {
				return err
			}
		}
		store = flow.NewPostgresStore(pool)
		checks["postgres"] = pool.Ping
		log.Info("flow store: postgres")
	}
	flowService := flow.NewService(flow.NewBuilder(registry), store, log)

	router := ui.NewRouter(ui.Deps{
		Logger:   log,
		Metrics:  m,
		Gatherer: reg,
		Handlers: []ui.Registrar{
			account.NewHandler(accountService, log),
			flow.NewHandler(flowService, log),
			outbound.NewHandler(registry, exchangeService, log),
		},
		Checks: checks,
	})
	srv := httpserver.New(cfg.Server, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpserver.Run(gctx, srv, cfg.Server.ShutdownTimeout, log)
	})
	if async, ok := publisher.(*audit.AsyncPublisher); ok {
		g.Go(func() error {
			if err := async.Run(gctx); !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}
	log.Info("trustedform started",
		"environment", cfg.Env(),
		"addr", cfg.Server.Addr,
		"modules", len(registry.All()),
	)
	return g.Wait()
}

// newAuditPublisher streams audit events to Kafka when brokers are configured
// and logs them otherwise. The returned func flushes the stream.
func newAuditPublisher(ctx context.Context, cfg config.KafkaConfig, log *slog.Logger) (audit.Publisher, func(), error) {
	if len(cfg.Brokers) == 0 {
		log.Info("audit stream: log")
		return audit.NewLogPublisher(log), func() {}, nil
	}

	kafka, err := audit.NewKafkaPublisher(cfg.Brokers, cfg.Topic, log)
	if err != nil {
		return nil, nil, err
	}
	if err := kafka.EnsureTopic(ctx, cfg.Partitions, cfg.ReplicationFactor); err != nil {
		_ = kafka.Close(ctx)
		return nil, nil, err
	}
	log.Info("audit stream: kafka", "topic", cfg.Topic)

	closeFn := func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.DrainTimeout)
		defer cancel()
		if err := kafka.Close(flushCtx); err != nil {
			log.Warn("audit stream flush failed", "error", err)
		}
	}
	return audit.NewAsyncPublisher(kafka, cfg.Buffer, log, audit.WithDrainTimeout(cfg.DrainTimeout)), closeFn, nil
}
