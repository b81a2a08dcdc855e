package handler

import (
	"log"
	"strings"

	"studyhub/middleware"
	"studyhub/repository"
	"studyhub/services"
	"studyhub/utils"

	"github.com/gin-gonic/gin"
)

// LogoutHandler blacklists the presented token pair and deactivates the
// session named in X-Session-ID, if any.
func LogoutHandler(c *gin.Context, sessionsRepo *repository.SessionsRepo) {
	userID := c.GetString(middleware.ContextUserIDKey)

	accessToken := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	// Body is optional; logout works with just the access token
	_ = c.ShouldBindJSON(&body)

	if err := services.BlacklistTokens(accessToken, body.RefreshToken); err != nil {
		log.Printf("failed to blacklist tokens for user %s: %v", userID, err)
		utils.InternalError(c, "Failed to log out")
		return
	}

	if sessionID := c.GetHeader("X-Session-ID"); sessionID != "" {
		if err := sessionsRepo.DeactivateSession(c.Request.Context(), sessionID, userID); err != nil {
			log.Printf("failed to deactivate session %s: %v", sessionID, err)
		}
	}

	utils.Success(c, "Logged out successfully", nil)
}
