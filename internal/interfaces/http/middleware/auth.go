package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/smmpanel/panel/internal/infrastructure/auth"
	"github.com/smmpanel/panel/internal/shared/constants"
	"github.com/smmpanel/panel/internal/shared/errors"
	"github.com/smmpanel/panel/internal/shared/logger"
	"github.com/smmpanel/panel/internal/shared/utils"
)

// TokenVerifier resolves a bearer token into its claims.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
	logger   logger.Interface
}

func NewAuthMiddleware(verifier TokenVerifier, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

// RequireAuth resolves the session from the Authorization header and stores
// the user id and role for the guards that follow.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("missing authorization token"))
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("invalid authorization header format"))
			c.Abort()
			return
		}

		claims, err := m.verifier.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err, "client_ip", c.ClientIP())
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("invalid or expired token"))
			c.Abort()
			return
		}

		if claims.TokenType != auth.TokenTypeAccess {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("invalid token type"))
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUserRole, string(claims.Role))

		c.Next()
	}
}
