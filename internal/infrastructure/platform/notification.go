package platform

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/commercehub/console/internal/domain/notification"
)

// NotificationClient implements notification.Repository against the platform API
type NotificationClient struct {
	*Client
}

// NewNotificationClient creates a new notification-config repository
func NewNotificationClient(c *Client) *NotificationClient {
	return &NotificationClient{Client: c}
}

// ListRules returns the persisted notification rules of one integration
func (c *NotificationClient) ListRules(ctx context.Context, businessID, integrationID int64) ([]notification.Rule, error) {
	query := url.Values{}
	query.Set("business_id", strconv.FormatInt(businessID, 10))
	query.Set("integration_id", strconv.FormatInt(integrationID, 10))

	var rules []notification.Rule
	if _, err := c.get(ctx, "/notification-configs", query, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

type syncPayload struct {
	BusinessID    int64                        `json:"business_id"`
	IntegrationID int64                        `json:"integration_id"`
	Rules         []notification.SyncRuleEntry `json:"rules"`
}

// SyncRules submits the desired final rule set in one replace-collection call.
// The platform diffs the set against its stored rules, deletes what is absent,
// and reports per-operation counts.
func (c *NotificationClient) SyncRules(ctx context.Context, businessID int64, req notification.SyncRequest) (*notification.SyncResult, error) {
	payload := syncPayload{
		BusinessID:    businessID,
		IntegrationID: req.IntegrationID,
		Rules:         req.Rules,
	}

	var result notification.SyncResult
	if err := c.put(ctx, fmt.Sprintf("/notification-configs/%d/sync", req.IntegrationID), payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListChannels returns the available delivery channels
func (c *NotificationClient) ListChannels(ctx context.Context, businessID int64) ([]notification.Channel, error) {
	query := url.Values{}
	query.Set("business_id", strconv.FormatInt(businessID, 10))

	var channels []notification.Channel
	if _, err := c.get(ctx, "/notification-types", query, &channels); err != nil {
		return nil, err
	}
	return channels, nil
}

// ListEventTypes returns the event types available on one channel
func (c *NotificationClient) ListEventTypes(ctx context.Context, businessID, channelID int64) ([]notification.EventType, error) {
	query := url.Values{}
	query.Set("business_id", strconv.FormatInt(businessID, 10))

	var events []notification.EventType
	if _, err := c.get(ctx, fmt.Sprintf("/notification-types/%d/event-types", channelID), query, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Interface guard
var _ notification.Repository = (*NotificationClient)(nil)
