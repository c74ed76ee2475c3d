package middleware

import (
	"net/http"

	"github.com/adeeb-debug/baitussalambookingapp/services/user"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware gates admin endpoints. It must run after
// SessionAuthMiddleware and re-checks the isAdmin flag from storage on
// every request so a revoked flag takes effect immediately.
func AdminAuthMiddleware(users user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		isAdmin, err := users.IsAdmin(c.Request.Context(), email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify admin access"})
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access denied"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
