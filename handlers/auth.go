package handlers

import (
	"net/http"
	"time"

	"github.com/adeeb-debug/baitussalambookingapp/config"
	"github.com/adeeb-debug/baitussalambookingapp/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateSession exchanges a verified sign-in ID token for a portal session
// token. The account record is upserted on every successful sign-in.
func CreateSession(c *gin.Context) {
	logger := utils.GetLogger().Named("auth-handler")

	var input struct {
		IDToken string `json:"idToken"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.IDToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "idToken is required"})
		return
	}

	token, err := utils.AuthClient.VerifyIDToken(c.Request.Context(), input.IDToken)
	if err != nil {
		logger.Warn("ID token verification failed", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid sign-in token"})
		return
	}

	email, _ := token.Claims["email"].(string)
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "sign-in token carries no email"})
		return
	}
	name, _ := token.Claims["name"].(string)
	provider := ""
	if token.Firebase.SignInProvider != "" {
		provider = token.Firebase.SignInProvider
	}

	account, err := UserService.EnsureUser(c.Request.Context(), email, name, provider)
	if err != nil {
		logger.Error("Failed to upsert account", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	ttl := time.Duration(config.AppConfig.SessionTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	sessionToken, err := utils.GenerateToken(account.Email, account.DisplayName, ttl)
	if err != nil {
		logger.Error("Failed to sign session token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": sessionToken,
		"user": gin.H{
			"email":       account.Email,
			"displayName": account.DisplayName,
			"isAdmin":     account.IsAdmin,
		},
	})
}

// DeleteSession ends the session. Session tokens are stateless, so this
// only confirms the sign-out; the client drops the token.
func DeleteSession(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
