package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("unknown"))
}

func TestNewForEnvironment(t *testing.T) {
	dev, err := NewForEnvironment("development")
	require.NoError(t, err)
	assert.NotNil(t, dev)

	prod, err := NewForEnvironment("production")
	require.NoError(t, err)
	assert.NotNil(t, prod)
}

func TestContextPropagation(t *testing.T) {
	base := zap.NewNop()
	ctx := context.Background()

	ctx, enriched := WithRequestID(ctx, base, "req-1")
	assert.NotNil(t, enriched)
	assert.Equal(t, "req-1", GetRequestID(ctx))

	ctx, _ = WithBusinessID(ctx, enriched, 42)
	assert.Equal(t, int64(42), GetBusinessID(ctx))

	assert.NotNil(t, FromContext(ctx))
	assert.Equal(t, int64(0), GetBusinessID(context.Background()))
}

func TestRecovery_ConvertsPanicTo500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(zap.NewNop()))
	r.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetGinLogger_FallsBackToNop(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.NotNil(t, GetGinLogger(c))
}
