package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	appintegration "github.com/commercehub/console/internal/application/integration"
	appnotification "github.com/commercehub/console/internal/application/notification"
	apporderstatus "github.com/commercehub/console/internal/application/orderstatus"
	"github.com/commercehub/console/internal/domain/notification"
	"github.com/commercehub/console/internal/domain/orderstatus"
	"github.com/commercehub/console/internal/infrastructure/auth"
	"github.com/commercehub/console/internal/infrastructure/cache"
	"github.com/commercehub/console/internal/infrastructure/config"
	"github.com/commercehub/console/internal/infrastructure/logger"
	"github.com/commercehub/console/internal/infrastructure/platform"
	"github.com/commercehub/console/internal/interfaces/http/handler"
	"github.com/commercehub/console/internal/interfaces/http/router"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting console API",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("platform", cfg.Platform.BaseURL),
	)

	// Platform API clients
	client := platform.NewClient(cfg.Platform, log)
	integrationsClient := platform.NewIntegrationsClient(client)
	orderStatusClient := platform.NewOrderStatusClient(client)
	notificationClient := platform.NewNotificationClient(client)

	// Lookup-catalog cache over the platform clients
	var notificationRepo notification.Repository = notificationClient
	var orderStatusRepo orderstatus.Repository = orderStatusClient
	if cfg.Cache.Enabled {
		store, err := cache.NewStoreFactory(cfg.Redis, cache.WithLogger(log)).CreateStore()
		if err != nil {
			log.Fatal("Failed to create lookup cache", zap.Error(err))
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Error("Error closing lookup cache", zap.Error(err))
			}
		}()
		notificationRepo = cache.NewCachingNotificationRepository(notificationClient, store, cfg.Cache.TTL, log)
		orderStatusRepo = cache.NewCachingOrderStatusRepository(orderStatusClient, store, cfg.Cache.TTL, log)
	}

	// Application services
	integrationService := appintegration.NewIntegrationService(integrationsClient, integrationsClient)
	typeService := appintegration.NewTypeService(integrationsClient)
	statusService := apporderstatus.NewStatusService(orderStatusRepo)
	configService := appnotification.NewConfigService(notificationRepo)

	// Session verification
	sessions := auth.NewSessionService(cfg.Session)

	engine := router.New(cfg, log, sessions, router.Handlers{
		Health:             handler.NewHealthHandler(cfg.App.Name, version),
		Integration:        handler.NewIntegrationHandler(integrationService),
		IntegrationType:    handler.NewIntegrationTypeHandler(typeService),
		OrderStatus:        handler.NewOrderStatusHandler(statusService),
		NotificationConfig: handler.NewNotificationConfigHandler(configService),
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
