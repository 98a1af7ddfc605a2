package authorization

import (
	"github.com/gin-gonic/gin"

	"github.com/smmpanel/panel/internal/shared/constants"
	"github.com/smmpanel/panel/internal/shared/errors"
	"github.com/smmpanel/panel/internal/shared/utils"
)

// RequireAdmin rejects any caller whose role is not admin.
// Non-admin callers get the same 401 as anonymous ones.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := ParseUserRole(c.GetString(constants.ContextKeyUserRole))
		if !role.IsAdmin() {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("Unauthorized"))
			c.Abort()
			return
		}
		c.Next()
	}
}
