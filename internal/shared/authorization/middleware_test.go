package authorization

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/smmpanel/panel/internal/shared/constants"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		wantStatus int
	}{
		{name: "admin passes", role: "admin", wantStatus: http.StatusOK},
		{name: "user rejected", role: "user", wantStatus: http.StatusUnauthorized},
		{name: "unknown role rejected", role: "root", wantStatus: http.StatusUnauthorized},
		{name: "anonymous rejected", role: "", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/", func(c *gin.Context) {
				if tt.role != "" {
					c.Set(constants.ContextKeyUserRole, tt.role)
				}
				c.Next()
			}, RequireAdmin(), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"success":false,"error":"Unauthorized","data":null}`, w.Body.String())
			}
		})
	}
}

func TestParseUserRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseUserRole("admin"))
	assert.Equal(t, RoleUser, ParseUserRole("user"))
	assert.Equal(t, RoleUser, ParseUserRole("superuser"))
}
