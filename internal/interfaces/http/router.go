package http

import (
	"github.com/smmpanel/panel/internal/interfaces/http/middleware"
	"github.com/smmpanel/panel/internal/interfaces/http/routes"
)

// SetupRoutes configures all HTTP routes.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.CustomLogger(c.log))
	c.engine.Use(middleware.Recovery())
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())

	c.engine.GET("/health", c.hdlrs.healthHandler.Check)

	routes.SetupProviderRoutes(c.engine, &routes.ProviderRouteConfig{
		Handler:              c.hdlrs.providerHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
		RateLimiter:          c.rateLimiter,
	})
}
