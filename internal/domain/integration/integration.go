package integration

import (
	"time"

	"github.com/commercehub/console/internal/domain/shared"
)

// Integration domain errors
var (
	ErrIntegrationNotFound = shared.NewDomainError("NOT_FOUND", "Integration not found")
	ErrTypeNotFound        = shared.NewDomainError("NOT_FOUND", "Integration type not found")
	ErrWebhookNotFound     = shared.NewDomainError("NOT_FOUND", "Webhook not found")
	ErrDuplicateWebhook    = shared.NewDomainError("ALREADY_EXISTS", "Webhook already registered for this integration")
)

// Integration represents one connected e-commerce/ERP integration of a
// business, as stored by the platform API
type Integration struct {
	// ID is the platform identifier of the integration
	ID int64 `json:"id"`
	// BusinessID is the owning tenant
	BusinessID int64 `json:"business_id"`
	// Name is the operator-chosen display name
	Name string `json:"name"`
	// TypeID references the integration type catalog
	TypeID int64 `json:"integration_type_id"`
	// TypeName is the denormalized type name for list rendering
	TypeName string `json:"integration_type_name,omitempty"`
	// Category groups types, e.g. "marketplace", "erp", "logistics"
	Category string `json:"category"`
	// Active indicates whether the integration is currently running
	Active bool `json:"active"`
	// CreatedAt is when the integration was connected
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is when it was last changed
	UpdatedAt time.Time `json:"updated_at"`
}

// Type is one entry of the integration-type catalog
type Type struct {
	ID       int64  `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Category string `json:"category"`
	// Enabled indicates whether new integrations of this type may be created
	Enabled bool `json:"enabled"`
}

// Webhook is an endpoint registered on an integration for inbound platform
// callbacks. The secret is generated by the platform and only returned on
// creation or rotation.
type Webhook struct {
	ID            int64     `json:"id"`
	IntegrationID int64     `json:"integration_id"`
	URL           string    `json:"url"`
	Secret        string    `json:"secret,omitempty"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
}

// Filter defines list filtering for integrations
type Filter struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	TypeID   int64  `form:"type_id"`
	Active   *bool  `form:"active"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}
