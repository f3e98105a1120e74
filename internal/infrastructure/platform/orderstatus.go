package platform

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/commercehub/console/internal/domain/orderstatus"
)

// OrderStatusClient implements orderstatus.Repository against the platform API
type OrderStatusClient struct {
	*Client
}

// NewOrderStatusClient creates a new order-status repository
func NewOrderStatusClient(c *Client) *OrderStatusClient {
	return &OrderStatusClient{Client: c}
}

// ListStatuses returns the internal order-status catalog
func (c *OrderStatusClient) ListStatuses(ctx context.Context) ([]orderstatus.Status, error) {
	var statuses []orderstatus.Status
	if _, err := c.get(ctx, "/order-statuses", nil, &statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}

// ListMappings returns the external-to-internal status mappings of a business,
// optionally narrowed to one integration type
func (c *OrderStatusClient) ListMappings(ctx context.Context, businessID, integrationTypeID int64) ([]orderstatus.Mapping, error) {
	query := url.Values{}
	query.Set("business_id", strconv.FormatInt(businessID, 10))
	if integrationTypeID != 0 {
		query.Set("integration_type_id", strconv.FormatInt(integrationTypeID, 10))
	}

	var mappings []orderstatus.Mapping
	if _, err := c.get(ctx, "/order-status-mappings", query, &mappings); err != nil {
		return nil, err
	}
	return mappings, nil
}

type mappingPayload struct {
	BusinessID        int64  `json:"business_id"`
	IntegrationTypeID int64  `json:"integration_type_id"`
	ExternalCode      string `json:"external_code"`
	StatusID          int64  `json:"order_status_id"`
}

// CreateMapping adds a status mapping
func (c *OrderStatusClient) CreateMapping(ctx context.Context, businessID int64, in orderstatus.MappingInput) (*orderstatus.Mapping, error) {
	payload := mappingPayload{
		BusinessID:        businessID,
		IntegrationTypeID: in.IntegrationTypeID,
		ExternalCode:      in.ExternalCode,
		StatusID:          in.StatusID,
	}

	var result orderstatus.Mapping
	if err := c.post(ctx, "/order-status-mappings", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateMapping changes a status mapping
func (c *OrderStatusClient) UpdateMapping(ctx context.Context, businessID, id int64, in orderstatus.MappingInput) (*orderstatus.Mapping, error) {
	payload := mappingPayload{
		BusinessID:        businessID,
		IntegrationTypeID: in.IntegrationTypeID,
		ExternalCode:      in.ExternalCode,
		StatusID:          in.StatusID,
	}

	var result orderstatus.Mapping
	if err := c.put(ctx, fmt.Sprintf("/order-status-mappings/%d", id), payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteMapping removes a status mapping. The platform rejects deletion of a
// mapping whose internal status is still referenced; that error is surfaced
// verbatim.
func (c *OrderStatusClient) DeleteMapping(ctx context.Context, businessID, id int64) error {
	query := url.Values{}
	query.Set("business_id", strconv.FormatInt(businessID, 10))
	return c.delete(ctx, fmt.Sprintf("/order-status-mappings/%d", id), query)
}

// Interface guard
var _ orderstatus.Repository = (*OrderStatusClient)(nil)
