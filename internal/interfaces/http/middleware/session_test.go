package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commercehub/console/internal/infrastructure/auth"
	"github.com/commercehub/console/internal/infrastructure/config"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func sessionConfig() config.SessionConfig {
	return config.SessionConfig{
		Secret:     testSecret,
		CookieName: "console_session",
		Issuer:     "commercehub",
	}
}

func mintToken(t *testing.T, businessID, userID int64, expires time.Time) string {
	t.Helper()
	claims := &auth.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "commercehub",
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID:     userID,
		BusinessID: businessID,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func sessionRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	svc := auth.NewSessionService(sessionConfig())

	engine.GET("/protected", Session(svc, sessionConfig()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"business_id": GetBusinessID(c),
			"user_id":     GetUserID(c),
			"token":       auth.TokenFrom(c.Request.Context()),
		})
	})
	return engine
}

func TestSession_CookieToken(t *testing.T) {
	engine := sessionRouter()
	token := mintToken(t, 42, 11, time.Now().Add(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "console_session", Value: token})
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"business_id":42`)
	assert.Contains(t, rec.Body.String(), `"user_id":11`)
	assert.Contains(t, rec.Body.String(), token)
}

func TestSession_BearerToken(t *testing.T) {
	engine := sessionRouter()
	token := mintToken(t, 42, 11, time.Now().Add(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSession_MissingToken(t *testing.T) {
	engine := sessionRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "ERR_UNAUTHORIZED")
}

func TestSession_ExpiredToken(t *testing.T) {
	engine := sessionRouter()
	token := mintToken(t, 42, 11, time.Now().Add(-time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "ERR_TOKEN_EXPIRED")
}

func TestSession_GarbageToken(t *testing.T) {
	engine := sessionRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "ERR_TOKEN_INVALID")
}
