package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apporderstatus "github.com/commercehub/console/internal/application/orderstatus"
	"github.com/commercehub/console/internal/domain/orderstatus"
	"github.com/commercehub/console/internal/interfaces/http/middleware"
)

// OrderStatusHandler serves the order-status catalog and mapping endpoints
type OrderStatusHandler struct {
	BaseHandler
	service *apporderstatus.StatusServiceImpl
}

// NewOrderStatusHandler creates a new OrderStatusHandler
func NewOrderStatusHandler(service *apporderstatus.StatusServiceImpl) *OrderStatusHandler {
	return &OrderStatusHandler{service: service}
}

// ListStatuses handles GET /order-statuses
func (h *OrderStatusHandler) ListStatuses(c *gin.Context) {
	statuses, err := h.service.ListStatuses(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, statuses)
}

// ListMappings handles GET /order-status-mappings
func (h *OrderStatusHandler) ListMappings(c *gin.Context) {
	var integrationTypeID int64
	if raw := c.Query("integration_type_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			h.BadRequest(c, "Invalid integration type ID")
			return
		}
		integrationTypeID = parsed
	}

	mappings, err := h.service.ListMappings(c.Request.Context(), middleware.GetBusinessID(c), integrationTypeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, mappings)
}

// mappingRequest is the body of mapping writes
type mappingRequest struct {
	IntegrationTypeID int64  `json:"integration_type_id" binding:"required,gt=0"`
	ExternalCode      string `json:"external_code" binding:"required,max=120"`
	StatusID          int64  `json:"order_status_id" binding:"required,gt=0"`
}

// CreateMapping handles POST /order-status-mappings
func (h *OrderStatusHandler) CreateMapping(c *gin.Context) {
	var req mappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	created, err := h.service.CreateMapping(c.Request.Context(), middleware.GetBusinessID(c), orderstatus.MappingInput{
		IntegrationTypeID: req.IntegrationTypeID,
		ExternalCode:      req.ExternalCode,
		StatusID:          req.StatusID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// UpdateMapping handles PUT /order-status-mappings/:id
func (h *OrderStatusHandler) UpdateMapping(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid mapping ID")
		return
	}

	var req mappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	updated, err := h.service.UpdateMapping(c.Request.Context(), middleware.GetBusinessID(c), id, orderstatus.MappingInput{
		IntegrationTypeID: req.IntegrationTypeID,
		ExternalCode:      req.ExternalCode,
		StatusID:          req.StatusID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, updated)
}

// DeleteMapping handles DELETE /order-status-mappings/:id
func (h *OrderStatusHandler) DeleteMapping(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid mapping ID")
		return
	}

	if err := h.service.DeleteMapping(c.Request.Context(), middleware.GetBusinessID(c), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
