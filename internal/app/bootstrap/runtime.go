package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/xviridev-art/Portofolio/internal/adapters/cache"
	httpadapter "github.com/xviridev-art/Portofolio/internal/adapters/http"
	"github.com/xviridev-art/Portofolio/internal/adapters/postgres"
	"github.com/xviridev-art/Portofolio/internal/adapters/security"
	"github.com/xviridev-art/Portofolio/internal/application"
	"github.com/xviridev-art/Portofolio/internal/ports"
)

// Runtime owns the wired service graph and the process lifecycle.
type Runtime struct {
	cfg     Config
	logger  *slog.Logger
	service *application.Service
	handler http.Handler
	cleanup func()
}

// NewRuntime builds the full dependency graph from configuration.
// It connects infrastructure eagerly so startup fails fast on broken wiring.
func NewRuntime(ctx context.Context, configPath string) (*Runtime, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})).
		With("service", cfg.ServiceID)
	slog.SetDefault(logger)

	db, err := postgres.Connect(ctx, cfg.DatabaseURL, cfg.MaxDBConns)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := postgres.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	repos := postgres.NewRepositories(db)

	cleanup := func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	}

	signer, err := security.NewJWTSigner(cfg.JWTSecret)
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("token signer: %w", err)
	}
	hasher := security.NewBcryptHasher(cfg.BcryptCost)

	deps := application.Dependencies{
		Config: application.Config{
			TokenTTL:             cfg.TokenTTL,
			FailedLoginThreshold: cfg.FailedThreshold,
			LockoutDuration:      cfg.LockoutDuration,
			ServerLockoutEnabled: cfg.ServerLockoutEnabled,
		},
		Admins:        repos.Admins,
		LoginAttempts: repos.LoginAttempts,
		Comments:      repos.Comments,
		Messages:      repos.Messages,
		Portfolios:    repos.Portfolios,
		Certificates:  repos.Certificates,
		Hasher:        hasher,
		TokenSigner:   signer,
	}

	if cfg.ServerLockoutEnabled {
		redisClient, redisErr := cache.Connect(ctx, cfg.RedisURL)
		if redisErr != nil {
			cleanup()
			return nil, fmt.Errorf("connect redis: %w", redisErr)
		}
		deps.Lockouts = cache.NewRedisLockoutStore(redisClient)
		prev := cleanup
		cleanup = func() {
			_ = redisClient.Close()
			prev()
		}
	}

	svc := application.NewService(deps)

	if err := seedAdmin(ctx, cfg, repos.Admins, hasher); err != nil {
		cleanup()
		return nil, fmt.Errorf("seed admin: %w", err)
	}

	handler := httpadapter.NewHandler(svc)

	return &Runtime{
		cfg:     cfg,
		logger:  logger,
		service: svc,
		handler: httpadapter.NewRouter(handler),
		cleanup: cleanup,
	}, nil
}

// seedAdmin provisions the configured admin account on first boot.
// The upsert never rotates an existing password hash, so redeploys are safe.
func seedAdmin(ctx context.Context, cfg Config, admins ports.AdminRepository, hasher ports.PasswordHasher) error {
	if cfg.AdminPassword == "" {
		slog.Warn("admin seeding skipped", "reason", "ADMIN_PASSWORD not set")
		return nil
	}
	hash, err := hasher.Hash(cfg.AdminPassword)
	if err != nil {
		return err
	}
	_, err = admins.Upsert(ctx, cfg.AdminUsername, hash, time.Now().UTC())
	return err
}

// RunAPI serves HTTP traffic and a gRPC health endpoint until a shutdown signal arrives.
func (r *Runtime) RunAPI(ctx context.Context) error {
	defer r.cleanup()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", r.cfg.HTTPPort),
		Handler:           r.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	errCh := make(chan error, 2)

	go func() {
		r.logger.Info("http server listening", "port", r.cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	go func() {
		lis, err := net.Listen("tcp", fmt.Sprintf(":%d", r.cfg.GRPCPort))
		if err != nil {
			errCh <- fmt.Errorf("grpc listen: %w", err)
			return
		}
		r.logger.Info("grpc health server listening", "port", r.cfg.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			errCh <- fmt.Errorf("grpc server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		r.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		r.logger.Error("http shutdown failed", "error", err)
	}
	grpcServer.GracefulStop()

	r.logger.Info("shutdown complete")
	return nil
}
