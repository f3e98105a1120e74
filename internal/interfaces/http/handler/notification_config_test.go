package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appnotification "github.com/commercehub/console/internal/application/notification"
	"github.com/commercehub/console/internal/domain/notification"
	"github.com/commercehub/console/internal/domain/shared"
	"github.com/commercehub/console/internal/interfaces/http/middleware"
)

// fakeNotificationRepo is a hand-rolled repository double holding canned data
type fakeNotificationRepo struct {
	rules      []notification.Rule
	channels   []notification.Channel
	eventTypes map[int64][]notification.EventType
	syncResult *notification.SyncResult
	syncErr    error
	lastSync   *notification.SyncRequest
}

func (f *fakeNotificationRepo) ListRules(ctx context.Context, businessID, integrationID int64) ([]notification.Rule, error) {
	return f.rules, nil
}

func (f *fakeNotificationRepo) SyncRules(ctx context.Context, businessID int64, req notification.SyncRequest) (*notification.SyncResult, error) {
	f.lastSync = &req
	if f.syncErr != nil {
		return nil, f.syncErr
	}
	return f.syncResult, nil
}

func (f *fakeNotificationRepo) ListChannels(ctx context.Context, businessID int64) ([]notification.Channel, error) {
	return f.channels, nil
}

func (f *fakeNotificationRepo) ListEventTypes(ctx context.Context, businessID, channelID int64) ([]notification.EventType, error) {
	return f.eventTypes[channelID], nil
}

var _ notification.Repository = (*fakeNotificationRepo)(nil)

func newFakeRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{
		rules: []notification.Rule{
			{ID: 101, IntegrationID: 7, ChannelID: 1, EventTypeID: 10, Enabled: true, Description: "New orders"},
		},
		channels: []notification.Channel{
			{ID: 1, Code: "whatsapp", Name: "WhatsApp", Enabled: true},
		},
		eventTypes: map[int64][]notification.EventType{
			1: {
				{ID: 10, ChannelID: 1, Code: "order.created", Name: "Order Created"},
				{ID: 11, ChannelID: 1, Code: "order.shipped", Name: "Order Shipped"},
			},
		},
		syncResult: &notification.SyncResult{Created: 0, Updated: 1, Deleted: 0},
	}
}

func notificationEngine(repo *fakeNotificationRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewNotificationConfigHandler(appnotification.NewConfigService(repo))

	engine := gin.New()
	// Stand-in for the session middleware
	engine.Use(func(c *gin.Context) {
		c.Set(middleware.BusinessIDKey, int64(42))
		c.Next()
	})
	engine.GET("/integrations/:id/notification-settings", h.GetEditor)
	engine.PUT("/integrations/:id/notification-settings", h.SaveRules)
	engine.GET("/notification-channels", h.ListChannels)
	engine.GET("/notification-channels/:id/event-types", h.ListEventTypes)
	return engine
}

func TestGetEditor(t *testing.T) {
	engine := notificationEngine(newFakeRepo())

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/integrations/7/notification-settings", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Drafts   []notification.Draft   `json:"drafts"`
			Channels []notification.Channel `json:"channels"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Data.Drafts, 1)
	assert.NotEmpty(t, body.Data.Drafts[0].TempID)
	assert.Len(t, body.Data.Channels, 1)
}

func TestSaveRules_OK(t *testing.T) {
	repo := newFakeRepo()
	engine := notificationEngine(repo)

	payload := `{"rules":[
		{"temp_id":"aaaaaaaaaa","id":101,"channel_id":1,"event_type_id":10,"enabled":true,"description":"New orders","order_status_ids":[]},
		{"temp_id":"bbbbbbbbbb","channel_id":1,"event_type_id":11,"enabled":true,"description":"","order_status_ids":[],"marked_deleted":false}
	]}`

	req := httptest.NewRequest(http.MethodPut, "/integrations/7/notification-settings", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotNil(t, repo.lastSync)
	assert.Equal(t, int64(7), repo.lastSync.IntegrationID)
	assert.Len(t, repo.lastSync.Rules, 2)
	assert.Contains(t, rec.Body.String(), `"summary":"0 created, 1 updated, 0 deleted"`)
}

func TestSaveRules_ValidationError(t *testing.T) {
	repo := newFakeRepo()
	engine := notificationEngine(repo)

	payload := `{"rules":[{"temp_id":"aaaaaaaaaa","channel_id":0,"event_type_id":0}]}`
	req := httptest.NewRequest(http.MethodPut, "/integrations/7/notification-settings", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "ERR_VALIDATION")
	assert.Contains(t, rec.Body.String(), "Rule 1: select a channel")
	assert.Nil(t, repo.lastSync)
}

func TestSaveRules_DuplicateMapsTo422(t *testing.T) {
	repo := newFakeRepo()
	engine := notificationEngine(repo)

	payload := `{"rules":[
		{"temp_id":"aaaaaaaaaa","channel_id":1,"event_type_id":10},
		{"temp_id":"bbbbbbbbbb","channel_id":1,"event_type_id":10}
	]}`
	req := httptest.NewRequest(http.MethodPut, "/integrations/7/notification-settings", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "ERR_DUPLICATE_RULE")
}

func TestSaveRules_PlatformErrorSurfacedVerbatim(t *testing.T) {
	repo := newFakeRepo()
	repo.syncErr = shared.NewDomainError("NOT_FOUND", "Integration not found")
	engine := notificationEngine(repo)

	payload := `{"rules":[{"temp_id":"aaaaaaaaaa","channel_id":1,"event_type_id":10}]}`
	req := httptest.NewRequest(http.MethodPut, "/integrations/7/notification-settings", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Integration not found")
}

func TestSaveRules_InvalidIntegrationID(t *testing.T) {
	engine := notificationEngine(newFakeRepo())

	req := httptest.NewRequest(http.MethodPut, "/integrations/abc/notification-settings", strings.NewReader(`{"rules":[]}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListEventTypes(t *testing.T) {
	engine := notificationEngine(newFakeRepo())

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/notification-channels/1/event-types", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "order.shipped")
}
