package middleware

import "github.com/gin-gonic/gin"

// CacheControl marks a public response cacheable for the given max-age.
func CacheControl(maxAge string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "public, max-age="+maxAge)
		c.Next()
	}
}
