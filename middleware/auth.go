package middleware

import (
	"net/http"
	"strings"

	"github.com/adeeb-debug/baitussalambookingapp/utils"

	"github.com/gin-gonic/gin"
)

// SessionAuthMiddleware validates the portal session token and stores the
// requester's email and display name on the context.
func SessionAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		email, name, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil || email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}

		c.Set("email", email)
		c.Set("displayName", name)
		c.Next()
	}
}
