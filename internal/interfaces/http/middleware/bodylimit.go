package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/commercehub/console/internal/interfaces/http/dto"
)

// BodyLimit rejects requests whose declared body size exceeds maxBytes and
// caps streaming bodies at the same limit. The console only moves JSON, so
// anything oversized is a client bug rather than a legitimate upload.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				dto.NewErrorResponse(dto.ErrCodeRequestTooLarge, "Request body exceeds maximum allowed size"))
			return
		}

		// Requests without a Content-Length still get bounded while streaming
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
