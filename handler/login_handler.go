package handler

import (
	"fmt"
	"log"
	"time"

	"studyhub/dto"
	"studyhub/model"
	"studyhub/repository"
	"studyhub/services"
	"studyhub/usecase"
	"studyhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/mileusna/useragent"
)

func LoginHandler(c *gin.Context, userService *usecase.UsersService, sessionsRepo *repository.SessionsRepo, sessionTTL time.Duration) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackAuthAttempt("failure", "login")
		utils.BadRequest(c, "Invalid login request")
		return
	}

	user, err := userService.Authenticate(c.Request.Context(), &req)
	if err != nil {
		utils.TrackAuthAttempt("failure", "login")
		respondServiceError(c, err)
		return
	}

	token, err := services.GenerateToken(user.UserID)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}
	refreshToken, err := services.GenerateRefreshToken(user.UserID)
	if err != nil {
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}

	session := newSession(c, user.UserID, sessionTTL)
	if err := sessionsRepo.CreateSession(c.Request.Context(), session); err != nil {
		// A lost audit record should not block a valid login
		log.Printf("failed to record session for user %s: %v", user.UserID, err)
	}

	utils.TrackAuthAttempt("success", "login")
	utils.Success(c, "Login successful", gin.H{
		"user":       dto.ToUserProfileResponse(user),
		"token":      token,
		"refresh":    refreshToken,
		"session_id": session.SessionID,
	})
}

func newSession(c *gin.Context, userID string, ttl time.Duration) *model.Session {
	now := time.Now()
	return &model.Session{
		SessionID:      utils.NewID(),
		UserID:         userID,
		CreatedAt:      now,
		ExpiresAt:      now.Add(ttl),
		LastActivityAt: now,
		DeviceInfo:     describeClient(c.Request.UserAgent()),
		IPAddress:      c.ClientIP(),
		IsActive:       true,
	}
}

func describeClient(uaString string) string {
	ua := useragent.Parse(uaString)
	switch {
	case ua.Name == "" && ua.OS == "":
		return "Unknown device"
	case ua.OS == "":
		return ua.Name
	default:
		return fmt.Sprintf("%s %s on %s", ua.Name, ua.Version, ua.OS)
	}
}
