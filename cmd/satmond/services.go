package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"satellite-monitor-backend/config"
	"satellite-monitor-backend/internal/api"
	"satellite-monitor-backend/internal/db"
	"satellite-monitor-backend/internal/observability"
	"satellite-monitor-backend/internal/orbit"
	"satellite-monitor-backend/internal/publish"
	"satellite-monitor-backend/internal/status"
	"satellite-monitor-backend/internal/store"
	"satellite-monitor-backend/internal/telemetry"
	"satellite-monitor-backend/internal/users"
)

const shutdownTimeout = 5 * time.Second

// sharedDeps are created once per process and shared by every service in it.
type sharedDeps struct {
	collector *observability.Collector
	src       orbit.Source
}

func newSharedDeps() (*sharedDeps, error) {
	deps := &sharedDeps{src: orbit.NewSource(cfg.Simulation.Seed)}
	if cfg.Simulation.Seed != 0 {
		logger.Printf("simulation seeded with %d", cfg.Simulation.Seed)
	}
	if cfg.Metrics.Enabled {
		collector, err := observability.NewCollector(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		deps.collector = collector
	}
	return deps, nil
}

func (d *sharedDeps) routerOptions(srv config.ServerConfig) api.RouterOptions {
	return api.RouterOptions{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RateLimit:      rate.Limit(srv.RateLimitPerSec),
		RateBurst:      srv.RateLimitBurst,
		Metrics:        d.collector,
		MetricsPath:    cfg.Metrics.Path,
	}
}

// service is one HTTP listener plus the resources it owns.
type service struct {
	name    string
	server  *http.Server
	closers []func() error
}

type serviceBuilder func(*sharedDeps) (*service, error)

func newService(name string, port int, handler http.Handler, closers ...func() error) *service {
	return &service{
		name: name,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: handler,
		},
		closers: closers,
	}
}

func (s *service) close() {
	for _, c := range s.closers {
		if err := c(); err != nil {
			logger.Printf("%s: close: %v", s.name, err)
		}
	}
}

func newStatusService(d *sharedDeps) (*service, error) {
	gormDB, err := db.Init(&cfg.Status.Database, db.StatusModels()...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize status database: %w", err)
	}
	svc := status.NewService(store.NewGormStatusStore(gormDB), d.src)
	router := api.NewStatusRouter(svc, d.routerOptions(cfg.Status.Server))
	return newService("status", cfg.Status.Server.Port, router, dbCloser(gormDB)), nil
}

func newTelemetryService(d *sharedDeps) (*service, error) {
	gormDB, err := db.Init(&cfg.Telemetry.Database, db.TelemetryModels()...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telemetry database: %w", err)
	}

	pub := publish.New(cfg.Kafka)
	opts := []telemetry.Option{telemetry.WithPublisher(pub)}
	if cfg.Kafka.Enabled {
		logger.Printf("publishing telemetry to %v topic %s", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}
	if d.collector != nil {
		opts = append(opts, telemetry.WithRecorder(d.collector))
	}

	svc := telemetry.NewService(store.NewGormTelemetryStore(gormDB), d.src, opts...)
	router := api.NewTelemetryRouter(svc, d.routerOptions(cfg.Telemetry.Server))
	return newService("telemetry", cfg.Telemetry.Server.Port, router, pub.Close, dbCloser(gormDB)), nil
}

func newUsersService(d *sharedDeps) (*service, error) {
	gormDB, err := db.Init(&cfg.Users.Database, db.UserModels()...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize users database: %w", err)
	}
	svc := users.NewService(store.NewGormUserStore(gormDB))
	opts := d.routerOptions(cfg.Users.Server)
	opts.CacheTTL = cfg.Users.CacheTTL
	router := api.NewUsersRouter(svc, opts)
	return newService("users", cfg.Users.Server.Port, router, dbCloser(gormDB)), nil
}

// serve runs every server until ctx is cancelled or one of them fails, then
// shuts all of them down.
func serve(ctx context.Context, services ...*service) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, svc := range services {
		g.Go(func() error {
			logger.Printf("%s HTTP server starting on %s", svc.name, svc.server.Addr)
			if err := svc.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("%s HTTP server ListenAndServe: %w", svc.name, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Println("Shutdown signal received, stopping services...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		for _, svc := range services {
			if err := svc.server.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, fmt.Errorf("%s HTTP server Shutdown: %w", svc.name, err))
			}
		}
		if len(errs) == 0 {
			logger.Println("Servers gracefully stopped")
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}

func dbCloser(gormDB *gorm.DB) func() error {
	return func() error {
		sqlDB, err := gormDB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
}

func closeDB(gormDB *gorm.DB) {
	if err := dbCloser(gormDB)(); err != nil {
		logger.Printf("failed to close database: %v", err)
	}
}
