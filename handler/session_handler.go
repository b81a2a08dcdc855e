package handler

import (
	"studyhub/middleware"
	"studyhub/repository"
	"studyhub/utils"

	"github.com/gin-gonic/gin"
)

func GetActiveSessionsHandler(c *gin.Context, sessionsRepo *repository.SessionsRepo) {
	userID := c.GetString(middleware.ContextUserIDKey)

	sessions, err := sessionsRepo.GetActiveSessions(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, "", gin.H{"sessions": sessions})
}

func LogoutAllSessionsHandler(c *gin.Context, sessionsRepo *repository.SessionsRepo) {
	userID := c.GetString(middleware.ContextUserIDKey)

	count, err := sessionsRepo.DeactivateAllSessions(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, "All sessions logged out", gin.H{"sessions_ended": count})
}
