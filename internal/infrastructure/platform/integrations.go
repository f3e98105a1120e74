package platform

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/commercehub/console/internal/domain/integration"
)

// IntegrationsClient implements integration.Repository and
// integration.TypeRepository against the platform API
type IntegrationsClient struct {
	*Client
}

// NewIntegrationsClient creates a new integrations repository
func NewIntegrationsClient(c *Client) *IntegrationsClient {
	return &IntegrationsClient{Client: c}
}

// List returns the integrations of a business matching the filter
func (c *IntegrationsClient) List(ctx context.Context, businessID int64, filter integration.Filter) ([]integration.Integration, int64, error) {
	query := url.Values{}
	query.Set("business_id", strconv.FormatInt(businessID, 10))
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.TypeID != 0 {
		query.Set("type_id", strconv.FormatInt(filter.TypeID, 10))
	}
	if filter.Active != nil {
		query.Set("active", strconv.FormatBool(*filter.Active))
	}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.PageSize > 0 {
		query.Set("page_size", strconv.Itoa(filter.PageSize))
	}

	var integrations []integration.Integration
	meta, err := c.get(ctx, "/integrations", query, &integrations)
	if err != nil {
		return nil, 0, err
	}

	total := int64(len(integrations))
	if meta != nil {
		total = meta.Total
	}
	return integrations, total, nil
}

// Get returns one integration by ID
func (c *IntegrationsClient) Get(ctx context.Context, businessID, id int64) (*integration.Integration, error) {
	query := url.Values{}
	query.Set("business_id", strconv.FormatInt(businessID, 10))

	var result integration.Integration
	if _, err := c.get(ctx, fmt.Sprintf("/integrations/%d", id), query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type createIntegrationPayload struct {
	BusinessID int64  `json:"business_id"`
	Name       string `json:"name"`
	TypeID     int64  `json:"integration_type_id"`
}

// Create connects a new integration for a business
func (c *IntegrationsClient) Create(ctx context.Context, businessID int64, in integration.CreateInput) (*integration.Integration, error) {
	payload := createIntegrationPayload{
		BusinessID: businessID,
		Name:       in.Name,
		TypeID:     in.TypeID,
	}

	var result integration.Integration
	if err := c.post(ctx, "/integrations", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type updateIntegrationPayload struct {
	BusinessID int64  `json:"business_id"`
	Name       string `json:"name"`
	Active     *bool  `json:"active,omitempty"`
}

// Update changes an integration's mutable fields
func (c *IntegrationsClient) Update(ctx context.Context, businessID, id int64, in integration.UpdateInput) (*integration.Integration, error) {
	payload := updateIntegrationPayload{
		BusinessID: businessID,
		Name:       in.Name,
		Active:     in.Active,
	}

	var result integration.Integration
	if err := c.put(ctx, fmt.Sprintf("/integrations/%d", id), payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Delete disconnects an integration
func (c *IntegrationsClient) Delete(ctx context.Context, businessID, id int64) error {
	query := url.Values{}
	query.Set("business_id", strconv.FormatInt(businessID, 10))
	return c.delete(ctx, fmt.Sprintf("/integrations/%d", id), query)
}

type setActivePayload struct {
	BusinessID int64 `json:"business_id"`
	Active     bool  `json:"active"`
}

// SetActive toggles the integration's active flag
func (c *IntegrationsClient) SetActive(ctx context.Context, businessID, id int64, active bool) (*integration.Integration, error) {
	payload := setActivePayload{BusinessID: businessID, Active: active}

	var result integration.Integration
	if err := c.post(ctx, fmt.Sprintf("/integrations/%d/active", id), payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ---------------------------------------------------------------------------
// Webhooks
// ---------------------------------------------------------------------------

// ListWebhooks returns the webhooks registered on an integration
func (c *IntegrationsClient) ListWebhooks(ctx context.Context, businessID, integrationID int64) ([]integration.Webhook, error) {
	query := url.Values{}
	query.Set("business_id", strconv.FormatInt(businessID, 10))

	var webhooks []integration.Webhook
	if _, err := c.get(ctx, fmt.Sprintf("/integrations/%d/webhooks", integrationID), query, &webhooks); err != nil {
		return nil, err
	}
	return webhooks, nil
}

type createWebhookPayload struct {
	BusinessID int64  `json:"business_id"`
	URL        string `json:"url"`
}

// CreateWebhook registers a webhook endpoint; the returned record carries the
// generated secret exactly once
func (c *IntegrationsClient) CreateWebhook(ctx context.Context, businessID, integrationID int64, webhookURL string) (*integration.Webhook, error) {
	payload := createWebhookPayload{BusinessID: businessID, URL: webhookURL}

	var result integration.Webhook
	if err := c.post(ctx, fmt.Sprintf("/integrations/%d/webhooks", integrationID), payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RotateWebhookSecret regenerates a webhook's signing secret
func (c *IntegrationsClient) RotateWebhookSecret(ctx context.Context, businessID, integrationID, webhookID int64) (*integration.Webhook, error) {
	payload := struct {
		BusinessID int64 `json:"business_id"`
	}{BusinessID: businessID}

	var result integration.Webhook
	path := fmt.Sprintf("/integrations/%d/webhooks/%d/rotate", integrationID, webhookID)
	if err := c.post(ctx, path, payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteWebhook unregisters a webhook endpoint
func (c *IntegrationsClient) DeleteWebhook(ctx context.Context, businessID, integrationID, webhookID int64) error {
	query := url.Values{}
	query.Set("business_id", strconv.FormatInt(businessID, 10))
	return c.delete(ctx, fmt.Sprintf("/integrations/%d/webhooks/%d", integrationID, webhookID), query)
}

// ---------------------------------------------------------------------------
// Integration-type catalog
// ---------------------------------------------------------------------------

// ListTypes returns the integration-type catalog
func (c *IntegrationsClient) ListTypes(ctx context.Context) ([]integration.Type, error) {
	var types []integration.Type
	if _, err := c.get(ctx, "/integration-types", nil, &types); err != nil {
		return nil, err
	}
	return types, nil
}

// GetType returns one catalog entry
func (c *IntegrationsClient) GetType(ctx context.Context, id int64) (*integration.Type, error) {
	var result integration.Type
	if _, err := c.get(ctx, fmt.Sprintf("/integration-types/%d", id), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateType adds a catalog entry
func (c *IntegrationsClient) CreateType(ctx context.Context, in integration.TypeInput) (*integration.Type, error) {
	var result integration.Type
	if err := c.post(ctx, "/integration-types", in, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateType changes a catalog entry
func (c *IntegrationsClient) UpdateType(ctx context.Context, id int64, in integration.TypeInput) (*integration.Type, error) {
	var result integration.Type
	if err := c.put(ctx, fmt.Sprintf("/integration-types/%d", id), in, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteType removes a catalog entry
func (c *IntegrationsClient) DeleteType(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/integration-types/%d", id), nil)
}

// Interface guards
var (
	_ integration.Repository     = (*IntegrationsClient)(nil)
	_ integration.TypeRepository = (*IntegrationsClient)(nil)
)
