package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/smmpanel/panel/internal/shared/constants"
)

// RequestID reuses the caller's X-Request-ID or assigns a new one, and echoes it back.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(constants.HeaderXRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Set(constants.ContextKeyRequestID, id)
		c.Header(constants.HeaderXRequestID, id)
		c.Next()
	}
}
