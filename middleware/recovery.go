package middleware

import (
	"log"
	"net/http"

	"studyhub/utils"

	"github.com/gin-gonic/gin"
)

// Recovery converts panics anywhere in the handler chain into a 500 envelope
// so a single bad request never takes the process down.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic recovered: %v", err)
				utils.TrackError("panic", c.FullPath())
				c.AbortWithStatusJSON(http.StatusInternalServerError, &utils.Response{
					Success: false,
					Message: "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
