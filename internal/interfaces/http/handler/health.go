package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves liveness probes
type HealthHandler struct {
	appName string
	version string
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(appName, version string) *HealthHandler {
	return &HealthHandler{appName: appName, version: version}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": h.appName,
		"version": h.version,
	})
}
