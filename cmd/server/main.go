package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"beacon/internal/local/handler"
	localMetrics "beacon/internal/local/metrics"
	"beacon/internal/local/ports"
	"beacon/internal/local/publisher"
	"beacon/internal/local/service"
	configStore "beacon/internal/local/store/config"
	coverageStore "beacon/internal/local/store/coverage"
	"beacon/internal/local/store/migrations"
	signalStore "beacon/internal/local/store/signal"
	"beacon/internal/platform/config"
	"beacon/internal/platform/httpserver"
	"beacon/internal/platform/logger"
	httpMetrics "beacon/internal/platform/metrics"
	"beacon/internal/platform/middleware"
	"beacon/internal/platform/redis"
	"beacon/pkg/platform/middleware/request"
)

// main wires config, stores, the coverage service and the HTTP router, and
// keeps the server lifecycle small. Business logic lives in internal/local.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	m := localMetrics.New()

	signals, configs, coverage, closeStores, err := buildStores(ctx, cfg, log, m)
	if err != nil {
		return err
	}
	defer closeStores()

	opts := []service.Option{
		service.WithLogger(log),
		service.WithMetrics(m),
		service.WithBulkConcurrency(cfg.Coverage.BulkConcurrency),
	}
	if len(cfg.Kafka.Brokers) > 0 {
		client, err := publisher.NewClient(cfg.Kafka.Brokers, cfg.Kafka.IssuesTopic)
		if err != nil {
			return err
		}
		defer client.Close()
		if err := publisher.EnsureTopic(ctx, client, cfg.Kafka.IssuesTopic, 3, 1); err != nil {
			log.Warn("could not ensure issues topic", "topic", cfg.Kafka.IssuesTopic, "error", err)
		}
		opts = append(opts, service.WithIssuePublisher(publisher.New(client, cfg.Kafka.IssuesTopic, publisher.WithLogger(log))))
		log.Info("publishing local issues", "topic", cfg.Kafka.IssuesTopic)
	}

	svc, err := service.New(signals, configs, coverage, opts...)
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(request.RequestID)
	r.Use(request.Time)
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Metrics(httpMetrics.New()))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler.New(svc, log).Register(r)

	srv := httpserver.New(cfg.Addr, r)
	errCh := make(chan error, 1)
	go func() {
		log.Info("starting local coverage server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// buildStores picks Postgres when DATABASE_URL is set and memory otherwise.
// With REDIS_URL set the coverage cache moves to Redis.
func buildStores(ctx context.Context, cfg config.Server, log *slog.Logger, m *localMetrics.Metrics) (
	ports.SignalStore, ports.ConfigStore, ports.CoverageStore, func(), error,
) {
	var (
		signals  ports.SignalStore   = signalStore.NewInMemory()
		configs  ports.ConfigStore   = configStore.NewInMemory()
		coverage ports.CoverageStore = coverageStore.NewInMemory()
		closers  []func()
	)
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if cfg.DatabaseURL != "" {
		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		closers = append(closers, func() { _ = db.Close() })
		if err := db.PingContext(ctx); err != nil {
			closeAll()
			return nil, nil, nil, nil, err
		}
		if err := migrations.Apply(ctx, db); err != nil {
			closeAll()
			return nil, nil, nil, nil, err
		}
		signals = signalStore.NewPostgres(db)
		configs = configStore.NewPostgres(db)
		coverage = coverageStore.NewPostgres(db, m)
		log.Info("using postgres stores")
	}

	rc, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		closeAll()
		return nil, nil, nil, nil, err
	}
	if rc != nil {
		closers = append(closers, func() { _ = rc.Close() })
		coverage = coverageStore.NewRedis(rc.Client,
			coverageStore.WithTTL(cfg.Coverage.CacheTTL),
			coverageStore.WithMetrics(m))
		log.Info("using redis coverage cache", "ttl", cfg.Coverage.CacheTTL.String())
	}

	return signals, configs, coverage, closeAll, nil
}
