package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/commercehub/console/internal/domain/shared"
	"github.com/commercehub/console/internal/infrastructure/platform"
)

func serveError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := &BaseHandler{}
	engine.GET("/", func(c *gin.Context) {
		h.HandleError(c, err)
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	return rec
}

func TestHandleError_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		code       string
		wantStatus int
		wantCode   string
	}{
		{"NOT_FOUND", http.StatusNotFound, "ERR_NOT_FOUND"},
		{"ALREADY_EXISTS", http.StatusConflict, "ERR_ALREADY_EXISTS"},
		{"VALIDATION_ERROR", http.StatusBadRequest, "ERR_VALIDATION"},
		{"DUPLICATE_RULE", http.StatusUnprocessableEntity, "ERR_DUPLICATE_RULE"},
		{"UNAUTHORIZED", http.StatusUnauthorized, "ERR_UNAUTHORIZED"},
		{"SOME_PLATFORM_CODE", http.StatusInternalServerError, "SOME_PLATFORM_CODE"},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			rec := serveError(shared.NewDomainError(tc.code, "boom"))
			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantCode)
		})
	}
}

func TestHandleError_TransportErrorsMapTo502(t *testing.T) {
	for _, err := range []error{
		platform.ErrUnavailable,
		platform.ErrInvalidResponse,
		fmt.Errorf("wrapped: %w", platform.ErrRequestFailed),
	} {
		rec := serveError(err)
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), "ERR_UPSTREAM")
	}
}

func TestHandleError_UnknownError(t *testing.T) {
	rec := serveError(errors.New("something odd"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "ERR_INTERNAL")
	assert.NotContains(t, rec.Body.String(), "something odd")
}

func TestHandleError_NilIsNoop(t *testing.T) {
	rec := serveError(nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
