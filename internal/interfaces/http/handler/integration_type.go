package handler

import (
	"github.com/gin-gonic/gin"

	appintegration "github.com/commercehub/console/internal/application/integration"
	"github.com/commercehub/console/internal/domain/integration"
)

// IntegrationTypeHandler serves the integration-type catalog endpoints
type IntegrationTypeHandler struct {
	BaseHandler
	service *appintegration.TypeServiceImpl
}

// NewIntegrationTypeHandler creates a new IntegrationTypeHandler
func NewIntegrationTypeHandler(service *appintegration.TypeServiceImpl) *IntegrationTypeHandler {
	return &IntegrationTypeHandler{service: service}
}

// List handles GET /integration-types
func (h *IntegrationTypeHandler) List(c *gin.Context) {
	types, err := h.service.ListTypes(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, types)
}

// Get handles GET /integration-types/:id
func (h *IntegrationTypeHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid type ID")
		return
	}

	typ, err := h.service.GetType(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, typ)
}

// typeRequest is the body of type catalog writes
type typeRequest struct {
	Code     string `json:"code" binding:"required,max=60"`
	Name     string `json:"name" binding:"required,max=120"`
	Category string `json:"category" binding:"omitempty,max=60"`
	Enabled  bool   `json:"enabled"`
}

// Create handles POST /integration-types
func (h *IntegrationTypeHandler) Create(c *gin.Context) {
	var req typeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	created, err := h.service.CreateType(c.Request.Context(), integration.TypeInput{
		Code:     req.Code,
		Name:     req.Name,
		Category: req.Category,
		Enabled:  req.Enabled,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// Update handles PUT /integration-types/:id
func (h *IntegrationTypeHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid type ID")
		return
	}

	var req typeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	updated, err := h.service.UpdateType(c.Request.Context(), id, integration.TypeInput{
		Code:     req.Code,
		Name:     req.Name,
		Category: req.Category,
		Enabled:  req.Enabled,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, updated)
}

// Delete handles DELETE /integration-types/:id
func (h *IntegrationTypeHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid type ID")
		return
	}

	if err := h.service.DeleteType(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
