package middleware

import (
	"log"

	"studyhub/repository"

	"github.com/gin-gonic/gin"
)

// SessionActivity refreshes the last-activity stamp of the session named in
// the X-Session-ID header. Informational only: a failed touch never blocks
// the request.
func SessionActivity(sessions *repository.SessionsRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessionID := c.GetHeader("X-Session-ID"); sessionID != "" {
			if err := sessions.TouchSession(c.Request.Context(), sessionID); err != nil {
				log.Printf("failed to touch session %s: %v", sessionID, err)
			}
		}
		c.Next()
	}
}
