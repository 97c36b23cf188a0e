package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"stayhub/constants"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func runRoleMiddleware(role int, hasRole bool, allowed ...int) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if hasRole {
		c.Set("userRole", role)
	}
	RoleMiddleware(allowed...)(c)
	return c, w
}

func TestRoleMiddleware(t *testing.T) {
	t.Run("đúng role thì đi tiếp", func(t *testing.T) {
		c, _ := runRoleMiddleware(constants.RoleAdmin, true, constants.RoleAdmin)
		assert.False(t, c.IsAborted())
	})

	t.Run("sai role thì bị chặn", func(t *testing.T) {
		c, w := runRoleMiddleware(constants.RoleGuest, true, constants.RoleAdmin)
		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("chưa qua xác thực thì unauthorized", func(t *testing.T) {
		c, w := runRoleMiddleware(0, false, constants.RoleAdmin)
		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
