package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hairquiz-backend/internal/shared/server/respond"
)

// AdminAuth gates routes behind a shared admin token supplied in the
// X-Admin-Token header. An empty configured token leaves the routes open,
// which is the dev default.
func AdminAuth(token string) gin.HandlerFunc {
	expected := strings.TrimSpace(token)
	return func(c *gin.Context) {
		if expected == "" {
			c.Next()
			return
		}
		got := strings.TrimSpace(c.GetHeader("X-Admin-Token"))
		if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(expected)) != 1 {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid admin token", nil)
			return
		}
		c.Next()
	}
}
