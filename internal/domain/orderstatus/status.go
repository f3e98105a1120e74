package orderstatus

import (
	"context"

	"github.com/commercehub/console/internal/domain/shared"
)

// Order-status domain errors
var (
	ErrStatusNotFound  = shared.NewDomainError("NOT_FOUND", "Order status not found")
	ErrMappingNotFound = shared.NewDomainError("NOT_FOUND", "Order-status mapping not found")
)

// Status is one entry of the internal order-status catalog
type Status struct {
	ID int64 `json:"id"`
	// Code is the stable machine code, e.g. "awaiting_shipment"
	Code string `json:"code"`
	// Name is the human-readable status name
	Name string `json:"name"`
	// SortOrder controls display ordering in selectors
	SortOrder int `json:"sort_order"`
}

// Mapping translates an external order-status code reported by one
// integration type into an internal status
type Mapping struct {
	ID int64 `json:"id"`
	// IntegrationTypeID scopes the mapping to one integration type
	IntegrationTypeID int64 `json:"integration_type_id"`
	// ExternalCode is the status code as the external platform reports it
	ExternalCode string `json:"external_code"`
	// StatusID is the internal status the external code maps to
	StatusID int64 `json:"order_status_id"`
}

// MappingInput carries the fields of a mapping write
type MappingInput struct {
	IntegrationTypeID int64  `json:"integration_type_id"`
	ExternalCode      string `json:"external_code"`
	StatusID          int64  `json:"order_status_id"`
}

// Repository defines the platform API surface for the order-status catalog
// and its mappings
type Repository interface {
	// ListStatuses returns the internal order-status catalog
	ListStatuses(ctx context.Context) ([]Status, error)

	ListMappings(ctx context.Context, businessID, integrationTypeID int64) ([]Mapping, error)
	CreateMapping(ctx context.Context, businessID int64, in MappingInput) (*Mapping, error)
	UpdateMapping(ctx context.Context, businessID, id int64, in MappingInput) (*Mapping, error)
	DeleteMapping(ctx context.Context, businessID, id int64) error
}

// Resolve returns the internal status ID for an external code, falling back
// to zero when no mapping exists
func Resolve(mappings []Mapping, integrationTypeID int64, externalCode string) int64 {
	for _, m := range mappings {
		if m.IntegrationTypeID == integrationTypeID && m.ExternalCode == externalCode {
			return m.StatusID
		}
	}
	return 0
}
