package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feeddigital/cursos-api/internal/constants"
	"github.com/feeddigital/cursos-api/internal/types/responses"
)

// DefaultMaxBodySize bounds form submissions.
const DefaultMaxBodySize int64 = 64 << 10

// BodyLimitMiddleware rejects declared oversized bodies with 413 and caps
// the reader for bodies without a Content-Length.
func BodyLimitMiddleware(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 {
			c.Next()
			return
		}
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, responses.ErrorResponse{Error: constants.ErrBodyTooLarge})
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
