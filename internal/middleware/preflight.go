package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	preflightAllowMethods = "GET,PUT,POST,DELETE,OPTIONS"
	preflightAllowHeaders = "Content-Type, Authorization, Content-Length, X-Requested-With"
)

// PreflightMiddleware answers every OPTIONS request with 200 before the CORS
// policy runs, so browser preflights succeed on any path.
func PreflightMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodOptions {
			c.Next()
			return
		}

		origin := c.GetHeader("Origin")
		if origin == "" {
			origin = "*"
		}

		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Set("Access-Control-Allow-Methods", preflightAllowMethods)
		h.Set("Access-Control-Allow-Headers", preflightAllowHeaders)
		h.Set("Access-Control-Allow-Credentials", "true")
		if origin != "*" {
			h.Add("Vary", "Origin")
		}

		c.AbortWithStatus(http.StatusOK)
	}
}
