package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/smmpanel/panel/internal/shared/constants"
	"github.com/smmpanel/panel/internal/shared/errors"
	"github.com/smmpanel/panel/internal/shared/logger"
	"github.com/smmpanel/panel/internal/shared/utils"
)

// PermissionChecker decides whether a subject may perform action on resource.
type PermissionChecker interface {
	Enforce(subject, resource, action string) (bool, error)
}

type PermissionMiddleware struct {
	checker PermissionChecker
	logger  logger.Interface
}

func NewPermissionMiddleware(checker PermissionChecker, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		checker: checker,
		logger:  logger,
	}
}

// RequirePermission checks the caller's role against the policy store.
// A denial answers 401 like every other failed admin check.
func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(constants.ContextKeyUserRole)
		if role == "" {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
			c.Abort()
			return
		}

		allowed, err := m.checker.Enforce(role, resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "role", role, "resource", resource, "action", action)
			utils.ErrorResponseWithError(c, errors.NewInternalError("permission check failed"))
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied",
				"user_id", c.GetUint(constants.ContextKeyUserID),
				"role", role,
				"resource", resource,
				"action", action)
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("Unauthorized"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireMethodPermission picks read for safe methods and write for the rest.
func (m *PermissionMiddleware) RequireMethodPermission(resource string) gin.HandlerFunc {
	read := m.RequirePermission(resource, constants.ActionRead)
	write := m.RequirePermission(resource, constants.ActionWrite)

	return func(c *gin.Context) {
		switch c.Request.Method {
		case "GET", "HEAD", "OPTIONS":
			read(c)
		default:
			write(c)
		}
	}
}
