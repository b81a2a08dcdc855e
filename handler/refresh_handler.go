package handler

import (
	"log"

	"studyhub/services"
	"studyhub/utils"

	"github.com/gin-gonic/gin"
)

// RefreshHandler rotates a refresh token: the old pair is blacklisted and a
// fresh pair issued.
func RefreshHandler(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Refresh token is required")
		return
	}

	if services.IsTokenBlacklisted(req.RefreshToken) {
		utils.TrackAuthAttempt("failure", "refresh")
		utils.Unauthorized(c, "Token has been invalidated")
		return
	}

	userID, err := services.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		utils.TrackAuthAttempt("failure", "refresh")
		utils.Unauthorized(c, "Invalid refresh token")
		return
	}

	token, err := services.GenerateToken(userID)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}
	refreshToken, err := services.GenerateRefreshToken(userID)
	if err != nil {
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}

	if err := services.BlacklistTokens("", req.RefreshToken); err != nil {
		log.Printf("failed to blacklist rotated refresh token: %v", err)
	}

	utils.TrackAuthAttempt("success", "refresh")
	utils.Success(c, "Token refreshed", gin.H{
		"token":   token,
		"refresh": refreshToken,
	})
}
