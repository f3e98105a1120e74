package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/commercehub/console/internal/infrastructure/auth"
	"github.com/commercehub/console/internal/infrastructure/config"
	"github.com/commercehub/console/internal/infrastructure/logger"
	"github.com/commercehub/console/internal/interfaces/http/dto"
)

// Context keys set by the session middleware
const (
	// BusinessIDKey holds the authenticated tenant ID
	BusinessIDKey = "business_id"
	// UserIDKey holds the authenticated user ID
	UserIDKey = "user_id"
	// SessionEmailKey holds the authenticated user's email
	SessionEmailKey = "session_email"
)

// Session returns a middleware that authenticates requests with a platform
// session token. The token is read from the session cookie or, for API
// clients, from the Authorization header. On success the raw token is placed
// on the request context so downstream platform calls can forward it.
func Session(svc *auth.SessionService, cfg config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c, cfg.CookieName)
		if token == "" {
			abortUnauthorized(c, dto.ErrCodeUnauthorized, "Authentication required")
			return
		}

		claims, err := svc.Validate(token)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, dto.ErrCodeTokenExpired, "Session has expired")
				return
			}
			abortUnauthorized(c, dto.ErrCodeTokenInvalid, "Invalid session token")
			return
		}

		c.Set(BusinessIDKey, claims.BusinessID)
		c.Set(UserIDKey, claims.UserID)
		c.Set(SessionEmailKey, claims.Email)

		// Forward the raw token and tenant scope on the request context
		ctx := auth.WithToken(c.Request.Context(), token)
		ctx, _ = logger.WithBusinessID(ctx, logger.FromContext(ctx), claims.BusinessID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// extractToken reads the session token from the cookie or the Authorization
// header. The cookie wins when both are present.
func extractToken(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}

	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func abortUnauthorized(c *gin.Context, code, message string) {
	requestID := c.GetString("request_id")
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponseWithRequestID(code, message, requestID))
}

// GetBusinessID returns the authenticated tenant ID set by the session
// middleware, or zero when unauthenticated
func GetBusinessID(c *gin.Context) int64 {
	if v, ok := c.Get(BusinessIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// GetUserID returns the authenticated user ID, or zero when unauthenticated
func GetUserID(c *gin.Context) int64 {
	if v, ok := c.Get(UserIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
