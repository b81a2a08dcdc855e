package handler

import (
	"studyhub/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler is the liveness probe. The process answering at all is the
// signal; store reachability is reported as detail.
func HealthHandler(c *gin.Context) {
	database := "up"
	if err := utils.PingMongo(c.Request.Context()); err != nil {
		database = "down"
	}

	utils.Success(c, "StudyHub API is running", gin.H{"database": database})
}

// PublicHandler is the connectivity probe the frontend pings on load.
func PublicHandler(c *gin.Context) {
	utils.Success(c, "Connection established", nil)
}

// NotFoundHandler answers every unmatched path.
func NotFoundHandler(c *gin.Context) {
	utils.NotFound(c, "API endpoint not found")
}
