package integration

import (
	"context"
	"strings"

	"github.com/commercehub/console/internal/domain/integration"
	"github.com/commercehub/console/internal/domain/shared"
)

// IntegrationServiceImpl implements the integration use cases
type IntegrationServiceImpl struct {
	repo     integration.Repository
	typeRepo integration.TypeRepository
}

// NewIntegrationService creates a new IntegrationServiceImpl
func NewIntegrationService(repo integration.Repository, typeRepo integration.TypeRepository) *IntegrationServiceImpl {
	return &IntegrationServiceImpl{
		repo:     repo,
		typeRepo: typeRepo,
	}
}

// ListIntegrations lists a business's integrations with filtering
func (s *IntegrationServiceImpl) ListIntegrations(ctx context.Context, businessID int64, filter integration.Filter) ([]integration.Integration, int64, error) {
	// Set defaults
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.PageSize > 100 {
		filter.PageSize = 100
	}

	return s.repo.List(ctx, businessID, filter)
}

// GetIntegration retrieves one integration
func (s *IntegrationServiceImpl) GetIntegration(ctx context.Context, businessID, id int64) (*integration.Integration, error) {
	return s.repo.Get(ctx, businessID, id)
}

// CreateIntegration connects a new integration after checking the requested
// type is known and currently enabled
func (s *IntegrationServiceImpl) CreateIntegration(ctx context.Context, businessID int64, in integration.CreateInput) (*integration.Integration, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Integration name is required")
	}
	if in.TypeID == 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Integration type is required")
	}

	typ, err := s.typeRepo.GetType(ctx, in.TypeID)
	if err != nil {
		return nil, err
	}
	if !typ.Enabled {
		return nil, shared.NewDomainError("TYPE_DISABLED", "Integration type is not available for new connections")
	}

	return s.repo.Create(ctx, businessID, in)
}

// UpdateIntegration changes an integration's mutable fields
func (s *IntegrationServiceImpl) UpdateIntegration(ctx context.Context, businessID, id int64, in integration.UpdateInput) (*integration.Integration, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Integration name is required")
	}
	return s.repo.Update(ctx, businessID, id, in)
}

// DeleteIntegration disconnects an integration
func (s *IntegrationServiceImpl) DeleteIntegration(ctx context.Context, businessID, id int64) error {
	return s.repo.Delete(ctx, businessID, id)
}

// SetIntegrationActive toggles the active flag
func (s *IntegrationServiceImpl) SetIntegrationActive(ctx context.Context, businessID, id int64, active bool) (*integration.Integration, error) {
	return s.repo.SetActive(ctx, businessID, id, active)
}

// ---------------------------------------------------------------------------
// Webhooks
// ---------------------------------------------------------------------------

// ListWebhooks lists the webhooks registered on an integration
func (s *IntegrationServiceImpl) ListWebhooks(ctx context.Context, businessID, integrationID int64) ([]integration.Webhook, error) {
	return s.repo.ListWebhooks(ctx, businessID, integrationID)
}

// RegisterWebhook registers a webhook endpoint. The same URL may only be
// registered once per integration.
func (s *IntegrationServiceImpl) RegisterWebhook(ctx context.Context, businessID, integrationID int64, url string) (*integration.Webhook, error) {
	url = strings.TrimSpace(url)
	if !strings.HasPrefix(url, "https://") && !strings.HasPrefix(url, "http://") {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Webhook URL must be an http(s) URL")
	}

	existing, err := s.repo.ListWebhooks(ctx, businessID, integrationID)
	if err != nil {
		return nil, err
	}
	for _, w := range existing {
		if w.URL == url {
			return nil, integration.ErrDuplicateWebhook
		}
	}

	return s.repo.CreateWebhook(ctx, businessID, integrationID, url)
}

// RotateWebhookSecret regenerates a webhook's signing secret
func (s *IntegrationServiceImpl) RotateWebhookSecret(ctx context.Context, businessID, integrationID, webhookID int64) (*integration.Webhook, error) {
	return s.repo.RotateWebhookSecret(ctx, businessID, integrationID, webhookID)
}

// DeleteWebhook unregisters a webhook endpoint
func (s *IntegrationServiceImpl) DeleteWebhook(ctx context.Context, businessID, integrationID, webhookID int64) error {
	return s.repo.DeleteWebhook(ctx, businessID, integrationID, webhookID)
}
