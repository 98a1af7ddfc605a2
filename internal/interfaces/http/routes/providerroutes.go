package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/smmpanel/panel/internal/interfaces/http/handlers/admin/provider"
	"github.com/smmpanel/panel/internal/interfaces/http/middleware"
	"github.com/smmpanel/panel/internal/shared/authorization"
	"github.com/smmpanel/panel/internal/shared/constants"
)

// ProviderRouteConfig holds dependencies for the provider admin routes.
type ProviderRouteConfig struct {
	Handler              *provider.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	RateLimiter          *middleware.RateLimiter // may be nil
}

// SetupProviderRoutes configures /api/admin/providers.
func SetupProviderRoutes(engine *gin.Engine, cfg *ProviderRouteConfig) {
	providers := engine.Group("/api/admin/providers")
	if cfg.RateLimiter != nil {
		providers.Use(cfg.RateLimiter.Limit())
	}
	providers.Use(
		cfg.AuthMiddleware.RequireAuth(),
		authorization.RequireAdmin(),
		cfg.PermissionMiddleware.RequireMethodPermission(constants.ResourceProvider),
	)
	{
		providers.GET("", cfg.Handler.List)
		providers.POST("", cfg.Handler.Create)
		providers.PUT("", cfg.Handler.Update)
		providers.PATCH("", cfg.Handler.Restore)
		providers.DELETE("", cfg.Handler.Delete)
	}
}
