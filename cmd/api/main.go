package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/ashkanani/agency/internal/app"
	"github.com/ashkanani/agency/internal/auth"
	"github.com/ashkanani/agency/internal/fixture"
	"github.com/ashkanani/agency/internal/guard"
	"github.com/ashkanani/agency/internal/handler"
	"github.com/ashkanani/agency/internal/infra"
	"github.com/ashkanani/agency/internal/service"
	"github.com/ashkanani/agency/internal/store"
	"github.com/ashkanani/agency/internal/store/memory"
	"github.com/ashkanani/agency/internal/store/postgres"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := infra.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	clock := clockwork.NewRealClock()

	// Store driver
	var (
		st     *store.Store
		health handler.Pinger
	)
	switch cfg.StoreDriver {
	case "postgres":
		if cfg.RunMigrations {
			if err := infra.RunMigrations(cfg.DSN(), logger); err != nil {
				return fmt.Errorf("run migrations: %w", err)
			}
		}
		pool, err := infra.NewPostgresPool(ctx, cfg)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer pool.Close()
		st = postgres.New(pool)
		health = pool
		logger.Info("store ready", "driver", "postgres")
	default:
		st = memory.New()
		if cfg.SeedDemo {
			if err := fixture.Seed(ctx, st); err != nil {
				return fmt.Errorf("seed demo data: %w", err)
			}
			logger.Info("demo data seeded")
		}
		logger.Info("store ready", "driver", "memory")
	}

	// JWT
	expiry, err := time.ParseDuration(cfg.JWTExpiry)
	if err != nil {
		return fmt.Errorf("parse JWT expiry: %w", err)
	}
	jwtMgr := auth.NewJWTManager(cfg.JWTSecret, expiry)

	// Login throttling
	window, err := time.ParseDuration(cfg.LoginRateWindow)
	if err != nil {
		return fmt.Errorf("parse login rate window: %w", err)
	}
	limiter := guard.NewRateLimiter(clock, cfg.LoginRateLimit, window)

	// Audit events
	producer := infra.NewKafkaProducer(cfg.KafkaBrokers, cfg.KafkaEnabled, logger)
	defer producer.Close()
	audit := service.NewAuditPublisher(producer, cfg.KafkaAuditTopic, logger)

	authSvc := service.NewAuthService(st.Users, jwtMgr, limiter)

	r := app.NewRouter(app.RouterDeps{
		Store:   st,
		JWTMgr:  jwtMgr,
		Clock:   clock,
		Logger:  logger,
		AuthSvc: authSvc,
		Audit:   audit,
		Health:  health,
	})

	// Start server
	addr := fmt.Sprintf(":%d", cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		logger.Info("api server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("server stopped gracefully")
	return nil
}
