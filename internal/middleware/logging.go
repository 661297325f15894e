package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogging logs each HTTP request with method, path, status and
// duration.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start)
		log.Printf(
			"%s %s %d %v %s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			duration,
			c.ClientIP(),
		)
	}
}
