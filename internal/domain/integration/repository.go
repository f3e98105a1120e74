package integration

import "context"

// CreateInput carries the fields needed to connect a new integration
type CreateInput struct {
	Name   string `json:"name"`
	TypeID int64  `json:"integration_type_id"`
}

// UpdateInput carries the mutable fields of an integration
type UpdateInput struct {
	Name   string `json:"name"`
	Active *bool  `json:"active,omitempty"`
}

// Repository defines the platform API surface for integrations. Every call is
// scoped to a business; the platform enforces ownership.
type Repository interface {
	List(ctx context.Context, businessID int64, filter Filter) ([]Integration, int64, error)
	Get(ctx context.Context, businessID, id int64) (*Integration, error)
	Create(ctx context.Context, businessID int64, in CreateInput) (*Integration, error)
	Update(ctx context.Context, businessID, id int64, in UpdateInput) (*Integration, error)
	Delete(ctx context.Context, businessID, id int64) error
	SetActive(ctx context.Context, businessID, id int64, active bool) (*Integration, error)

	ListWebhooks(ctx context.Context, businessID, integrationID int64) ([]Webhook, error)
	CreateWebhook(ctx context.Context, businessID, integrationID int64, url string) (*Webhook, error)
	RotateWebhookSecret(ctx context.Context, businessID, integrationID, webhookID int64) (*Webhook, error)
	DeleteWebhook(ctx context.Context, businessID, integrationID, webhookID int64) error
}

// TypeInput carries the fields of an integration-type catalog entry
type TypeInput struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Enabled  bool   `json:"enabled"`
}

// TypeRepository defines the platform API surface for the integration-type
// catalog. The catalog is global reference data; writes are admin-only and
// enforced by the platform.
type TypeRepository interface {
	ListTypes(ctx context.Context) ([]Type, error)
	GetType(ctx context.Context, id int64) (*Type, error)
	CreateType(ctx context.Context, in TypeInput) (*Type, error)
	UpdateType(ctx context.Context, id int64, in TypeInput) (*Type, error)
	DeleteType(ctx context.Context, id int64) error
}
