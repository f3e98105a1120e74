// Package router assembles the gin engine: global middleware, the public
// health probe, and the session-guarded console API.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/commercehub/console/internal/infrastructure/auth"
	"github.com/commercehub/console/internal/infrastructure/config"
	"github.com/commercehub/console/internal/infrastructure/logger"
	"github.com/commercehub/console/internal/interfaces/http/handler"
	"github.com/commercehub/console/internal/interfaces/http/middleware"
)

// Handlers bundles every handler the router mounts
type Handlers struct {
	Health             *handler.HealthHandler
	Integration        *handler.IntegrationHandler
	IntegrationType    *handler.IntegrationTypeHandler
	OrderStatus        *handler.OrderStatusHandler
	NotificationConfig *handler.NotificationConfigHandler
}

// New builds the gin engine with all middleware and routes mounted
func New(cfg *config.Config, log *zap.Logger, sessions *auth.SessionService, h Handlers) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(cfg.HTTP.TrustedProxies)
	}

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}

	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORSWithConfig(corsCfg),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)

	engine.GET("/health", h.Health.Health)

	api := engine.Group("/api/v1")
	api.Use(middleware.Session(sessions, cfg.Session))

	integrations := api.Group("/integrations")
	{
		integrations.GET("", h.Integration.List)
		integrations.POST("", h.Integration.Create)
		integrations.GET("/:id", h.Integration.Get)
		integrations.PUT("/:id", h.Integration.Update)
		integrations.DELETE("/:id", h.Integration.Delete)
		integrations.POST("/:id/active", h.Integration.SetActive)

		integrations.GET("/:id/webhooks", h.Integration.ListWebhooks)
		integrations.POST("/:id/webhooks", h.Integration.CreateWebhook)
		integrations.POST("/:id/webhooks/:webhookID/rotate", h.Integration.RotateWebhookSecret)
		integrations.DELETE("/:id/webhooks/:webhookID", h.Integration.DeleteWebhook)

		integrations.GET("/:id/notification-settings", h.NotificationConfig.GetEditor)
		integrations.PUT("/:id/notification-settings", h.NotificationConfig.SaveRules)
	}

	types := api.Group("/integration-types")
	{
		types.GET("", h.IntegrationType.List)
		types.GET("/:id", h.IntegrationType.Get)
		types.POST("", h.IntegrationType.Create)
		types.PUT("/:id", h.IntegrationType.Update)
		types.DELETE("/:id", h.IntegrationType.Delete)
	}

	api.GET("/order-statuses", h.OrderStatus.ListStatuses)

	mappings := api.Group("/order-status-mappings")
	{
		mappings.GET("", h.OrderStatus.ListMappings)
		mappings.POST("", h.OrderStatus.CreateMapping)
		mappings.PUT("/:id", h.OrderStatus.UpdateMapping)
		mappings.DELETE("/:id", h.OrderStatus.DeleteMapping)
	}

	channels := api.Group("/notification-channels")
	{
		channels.GET("", h.NotificationConfig.ListChannels)
		channels.GET("/:id/event-types", h.NotificationConfig.ListEventTypes)
	}

	return engine
}
