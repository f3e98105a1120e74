package integration

import (
	"context"
	"strings"

	"github.com/commercehub/console/internal/domain/integration"
	"github.com/commercehub/console/internal/domain/shared"
)

// TypeServiceImpl implements the integration-type catalog use cases. The
// catalog is global reference data; write access is admin-only and enforced by
// the platform.
type TypeServiceImpl struct {
	typeRepo integration.TypeRepository
}

// NewTypeService creates a new TypeServiceImpl
func NewTypeService(typeRepo integration.TypeRepository) *TypeServiceImpl {
	return &TypeServiceImpl{typeRepo: typeRepo}
}

// ListTypes lists the integration-type catalog
func (s *TypeServiceImpl) ListTypes(ctx context.Context) ([]integration.Type, error) {
	return s.typeRepo.ListTypes(ctx)
}

// GetType retrieves one catalog entry
func (s *TypeServiceImpl) GetType(ctx context.Context, id int64) (*integration.Type, error) {
	return s.typeRepo.GetType(ctx, id)
}

// CreateType adds a catalog entry
func (s *TypeServiceImpl) CreateType(ctx context.Context, in integration.TypeInput) (*integration.Type, error) {
	if err := validateTypeInput(&in); err != nil {
		return nil, err
	}
	return s.typeRepo.CreateType(ctx, in)
}

// UpdateType changes a catalog entry
func (s *TypeServiceImpl) UpdateType(ctx context.Context, id int64, in integration.TypeInput) (*integration.Type, error) {
	if err := validateTypeInput(&in); err != nil {
		return nil, err
	}
	return s.typeRepo.UpdateType(ctx, id, in)
}

// DeleteType removes a catalog entry. The platform rejects deletion of a type
// that still has connected integrations; that error is surfaced verbatim.
func (s *TypeServiceImpl) DeleteType(ctx context.Context, id int64) error {
	return s.typeRepo.DeleteType(ctx, id)
}

func validateTypeInput(in *integration.TypeInput) error {
	in.Code = strings.TrimSpace(in.Code)
	in.Name = strings.TrimSpace(in.Name)
	if in.Code == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Type code is required")
	}
	if in.Name == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Type name is required")
	}
	return nil
}
