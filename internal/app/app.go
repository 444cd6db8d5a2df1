// Package app wires configuration, storage, sessions, messaging and the HTTP server
// into a runnable service.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/egannguyen/seller-dashboard/internal/config"
	delivery "github.com/egannguyen/seller-dashboard/internal/delivery/http"
	identityredis "github.com/egannguyen/seller-dashboard/internal/identity/redis"
	"github.com/egannguyen/seller-dashboard/internal/logger"
	"github.com/egannguyen/seller-dashboard/internal/messaging"
	"github.com/egannguyen/seller-dashboard/internal/messaging/kafka"
	"github.com/egannguyen/seller-dashboard/internal/messaging/watermill"
	"github.com/egannguyen/seller-dashboard/internal/repository/postgres"
	"github.com/egannguyen/seller-dashboard/internal/service"
)

const serviceName = "seller-dashboard"

// Setup loads the configuration and installs the default logger.
func Setup(configPath string) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	logger.New(logger.Options{
		Service: serviceName,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
	return cfg, nil
}

// NewPublisher returns the publisher selected by messaging.driver.
func NewPublisher(cfg config.Config) (messaging.Publisher, error) {
	switch cfg.MessagingDriver {
	case config.MessagingKafka:
		return kafka.NewKafkaBroker(cfg.KafkaBrokers), nil
	case config.MessagingWatermill:
		return watermill.NewPublisher(cfg.KafkaBrokers, cfg.KafkaClientID, slog.Default())
	case config.MessagingNone, "":
		return messaging.Nop{}, nil
	default:
		return nil, fmt.Errorf("unknown messaging driver %q", cfg.MessagingDriver)
	}
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down gracefully.
func Serve(ctx context.Context, cfg config.Config) error {
	db, err := postgres.InitDB(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	redisClient, err := identityredis.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return err
	}
	defer redisClient.Close()
	sessions := identityredis.NewSessionStore(redisClient)

	publisher, err := NewPublisher(cfg)
	if err != nil {
		return err
	}
	defer publisher.Close()

	productRepo := postgres.NewProductRepository(db)
	dashboardSvc := service.NewDashboardService(productRepo, publisher,
		service.WithTopLimit(cfg.DashboardTopLimit),
		service.WithRevenueTopic(cfg.KafkaTopic),
	)
	navSvc := service.NewNavService(productRepo, cfg.NavSearchEnabled)

	e, err := delivery.NewServer(delivery.NewHandler(dashboardSvc, navSvc, db), sessions, cfg.SessionCookie)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("🚀 HTTP server starting", "addr", cfg.HTTPAddr, "messaging", cfg.MessagingDriver)
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down http server: %w", err)
		}
		return nil
	})
	return g.Wait()
}
