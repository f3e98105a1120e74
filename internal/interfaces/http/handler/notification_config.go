package handler

import (
	"github.com/gin-gonic/gin"

	appnotification "github.com/commercehub/console/internal/application/notification"
	"github.com/commercehub/console/internal/domain/notification"
	"github.com/commercehub/console/internal/interfaces/http/middleware"
)

// NotificationConfigHandler serves the notification-settings endpoints: the
// rule editor, the channel and event-type catalogs, and the batch save
type NotificationConfigHandler struct {
	BaseHandler
	service *appnotification.ConfigServiceImpl
}

// NewNotificationConfigHandler creates a new NotificationConfigHandler
func NewNotificationConfigHandler(service *appnotification.ConfigServiceImpl) *NotificationConfigHandler {
	return &NotificationConfigHandler{service: service}
}

// GetEditor handles GET /integrations/:id/notification-settings
func (h *NotificationConfigHandler) GetEditor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid integration ID")
		return
	}

	editor, err := h.service.LoadEditor(c.Request.Context(), middleware.GetBusinessID(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, editor)
}

// ListChannels handles GET /notification-channels
func (h *NotificationConfigHandler) ListChannels(c *gin.Context) {
	channels, err := h.service.ListChannels(c.Request.Context(), middleware.GetBusinessID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, channels)
}

// ListEventTypes handles GET /notification-channels/:id/event-types
func (h *NotificationConfigHandler) ListEventTypes(c *gin.Context) {
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid channel ID")
		return
	}

	events, err := h.service.ListEventTypes(c.Request.Context(), middleware.GetBusinessID(c), channelID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, events)
}

// saveRulesRequest is the body of PUT /integrations/:id/notification-settings.
// The client submits its entire draft list; rows marked deleted are dropped
// from the synced set, which is what deletes them on the platform.
type saveRulesRequest struct {
	Rules []notification.Draft `json:"rules" binding:"required"`
}

// SaveRules handles PUT /integrations/:id/notification-settings
func (h *NotificationConfigHandler) SaveRules(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid integration ID")
		return
	}

	var req saveRulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	outcome, err := h.service.SaveRules(c.Request.Context(), middleware.GetBusinessID(c), id, req.Rules)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, outcome)
}
