package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appintegration "github.com/commercehub/console/internal/application/integration"
	"github.com/commercehub/console/internal/domain/integration"
	"github.com/commercehub/console/internal/interfaces/http/middleware"
)

// IntegrationHandler serves the integration CRUD and webhook endpoints
type IntegrationHandler struct {
	BaseHandler
	service *appintegration.IntegrationServiceImpl
}

// NewIntegrationHandler creates a new IntegrationHandler
func NewIntegrationHandler(service *appintegration.IntegrationServiceImpl) *IntegrationHandler {
	return &IntegrationHandler{service: service}
}

// parseIDParam parses an int64 path parameter
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// List handles GET /integrations
func (h *IntegrationHandler) List(c *gin.Context) {
	var filter integration.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	businessID := middleware.GetBusinessID(c)
	items, total, err := h.service.ListIntegrations(c.Request.Context(), businessID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	h.SuccessWithMeta(c, items, total, page, pageSize)
}

// Get handles GET /integrations/:id
func (h *IntegrationHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid integration ID")
		return
	}

	item, err := h.service.GetIntegration(c.Request.Context(), middleware.GetBusinessID(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// createIntegrationRequest is the body of POST /integrations
type createIntegrationRequest struct {
	Name   string `json:"name" binding:"required,max=120"`
	TypeID int64  `json:"integration_type_id" binding:"required,gt=0"`
}

// Create handles POST /integrations
func (h *IntegrationHandler) Create(c *gin.Context) {
	var req createIntegrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	created, err := h.service.CreateIntegration(c.Request.Context(), middleware.GetBusinessID(c), integration.CreateInput{
		Name:   req.Name,
		TypeID: req.TypeID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// updateIntegrationRequest is the body of PUT /integrations/:id
type updateIntegrationRequest struct {
	Name   string `json:"name" binding:"required,max=120"`
	Active *bool  `json:"active"`
}

// Update handles PUT /integrations/:id
func (h *IntegrationHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid integration ID")
		return
	}

	var req updateIntegrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	updated, err := h.service.UpdateIntegration(c.Request.Context(), middleware.GetBusinessID(c), id, integration.UpdateInput{
		Name:   req.Name,
		Active: req.Active,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, updated)
}

// Delete handles DELETE /integrations/:id
func (h *IntegrationHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid integration ID")
		return
	}

	if err := h.service.DeleteIntegration(c.Request.Context(), middleware.GetBusinessID(c), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// setActiveRequest is the body of POST /integrations/:id/active
type setActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// SetActive handles POST /integrations/:id/active
func (h *IntegrationHandler) SetActive(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid integration ID")
		return
	}

	var req setActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	updated, err := h.service.SetIntegrationActive(c.Request.Context(), middleware.GetBusinessID(c), id, *req.Active)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, updated)
}

// ListWebhooks handles GET /integrations/:id/webhooks
func (h *IntegrationHandler) ListWebhooks(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid integration ID")
		return
	}

	webhooks, err := h.service.ListWebhooks(c.Request.Context(), middleware.GetBusinessID(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, webhooks)
}

// createWebhookRequest is the body of POST /integrations/:id/webhooks
type createWebhookRequest struct {
	URL string `json:"url" binding:"required,url"`
}

// CreateWebhook handles POST /integrations/:id/webhooks
func (h *IntegrationHandler) CreateWebhook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid integration ID")
		return
	}

	var req createWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	created, err := h.service.RegisterWebhook(c.Request.Context(), middleware.GetBusinessID(c), id, req.URL)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// RotateWebhookSecret handles POST /integrations/:id/webhooks/:webhookID/rotate
func (h *IntegrationHandler) RotateWebhookSecret(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid integration ID")
		return
	}
	webhookID, ok := parseIDParam(c, "webhookID")
	if !ok {
		h.BadRequest(c, "Invalid webhook ID")
		return
	}

	rotated, err := h.service.RotateWebhookSecret(c.Request.Context(), middleware.GetBusinessID(c), id, webhookID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rotated)
}

// DeleteWebhook handles DELETE /integrations/:id/webhooks/:webhookID
func (h *IntegrationHandler) DeleteWebhook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid integration ID")
		return
	}
	webhookID, ok := parseIDParam(c, "webhookID")
	if !ok {
		h.BadRequest(c, "Invalid webhook ID")
		return
	}

	if err := h.service.DeleteWebhook(c.Request.Context(), middleware.GetBusinessID(c), id, webhookID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
