package orderstatus

import (
	"context"
	"strings"

	"github.com/commercehub/console/internal/domain/orderstatus"
	"github.com/commercehub/console/internal/domain/shared"
)

// StatusServiceImpl implements the order-status catalog and mapping use cases
type StatusServiceImpl struct {
	repo orderstatus.Repository
}

// NewStatusService creates a new StatusServiceImpl
func NewStatusService(repo orderstatus.Repository) *StatusServiceImpl {
	return &StatusServiceImpl{repo: repo}
}

// ListStatuses lists the internal order-status catalog
func (s *StatusServiceImpl) ListStatuses(ctx context.Context) ([]orderstatus.Status, error) {
	return s.repo.ListStatuses(ctx)
}

// ListMappings lists a business's status mappings, optionally narrowed to one
// integration type
func (s *StatusServiceImpl) ListMappings(ctx context.Context, businessID, integrationTypeID int64) ([]orderstatus.Mapping, error) {
	return s.repo.ListMappings(ctx, businessID, integrationTypeID)
}

// CreateMapping adds a status mapping after checking the target internal
// status exists
func (s *StatusServiceImpl) CreateMapping(ctx context.Context, businessID int64, in orderstatus.MappingInput) (*orderstatus.Mapping, error) {
	if err := s.validateMappingInput(ctx, &in); err != nil {
		return nil, err
	}
	return s.repo.CreateMapping(ctx, businessID, in)
}

// UpdateMapping changes a status mapping
func (s *StatusServiceImpl) UpdateMapping(ctx context.Context, businessID, id int64, in orderstatus.MappingInput) (*orderstatus.Mapping, error) {
	if err := s.validateMappingInput(ctx, &in); err != nil {
		return nil, err
	}
	return s.repo.UpdateMapping(ctx, businessID, id, in)
}

// DeleteMapping removes a status mapping
func (s *StatusServiceImpl) DeleteMapping(ctx context.Context, businessID, id int64) error {
	return s.repo.DeleteMapping(ctx, businessID, id)
}

func (s *StatusServiceImpl) validateMappingInput(ctx context.Context, in *orderstatus.MappingInput) error {
	in.ExternalCode = strings.TrimSpace(in.ExternalCode)
	if in.ExternalCode == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "External status code is required")
	}
	if in.IntegrationTypeID == 0 {
		return shared.NewDomainError("VALIDATION_ERROR", "Integration type is required")
	}
	if in.StatusID == 0 {
		return shared.NewDomainError("VALIDATION_ERROR", "Internal order status is required")
	}

	statuses, err := s.repo.ListStatuses(ctx)
	if err != nil {
		return err
	}
	for _, st := range statuses {
		if st.ID == in.StatusID {
			return nil
		}
	}
	return orderstatus.ErrStatusNotFound
}
