// Package health serves the liveness endpoint.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smmpanel/panel/internal/shared/logger"
)

const serviceName = "smm-panel"

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	db      Pinger
	timeout time.Duration
	logger  logger.Interface
}

func NewHandler(db Pinger, logger logger.Interface) *Handler {
	return &Handler{
		db:      db,
		timeout: 2 * time.Second,
		logger:  logger,
	}
}

// Check handles GET /health
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Errorw("health check database ping failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"service":  serviceName,
			"database": "unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"service":  serviceName,
		"database": "ok",
	})
}
