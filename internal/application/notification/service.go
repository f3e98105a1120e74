// Package notification implements the notification-settings use cases: loading
// the rule editor, navigating the channel/event/status catalogs, and saving a
// draft list back to the platform in one sync call.
package notification

import (
	"context"
	"fmt"

	"github.com/commercehub/console/internal/domain/notification"
	"github.com/commercehub/console/internal/domain/shared"
)

// Editor is the state the rule editor opens with: the persisted rules mapped
// into drafts, plus the channel catalog for the selectors
type Editor struct {
	Drafts   []notification.Draft   `json:"drafts"`
	Channels []notification.Channel `json:"channels"`
}

// SaveOutcome carries the result of a successful save: the platform's
// per-operation counts, the operator-facing summary line, and the rules as
// refetched after the sync
type SaveOutcome struct {
	Result  notification.SyncResult `json:"result"`
	Summary string                  `json:"summary"`
	Rules   []notification.Rule     `json:"rules"`
}

// ConfigServiceImpl implements the notification-settings use cases
type ConfigServiceImpl struct {
	repo notification.Repository
}

// NewConfigService creates a new ConfigServiceImpl
func NewConfigService(repo notification.Repository) *ConfigServiceImpl {
	return &ConfigServiceImpl{repo: repo}
}

// LoadEditor returns an integration's rules as editable drafts together with
// the channel catalog
func (s *ConfigServiceImpl) LoadEditor(ctx context.Context, businessID, integrationID int64) (*Editor, error) {
	rules, err := s.repo.ListRules(ctx, businessID, integrationID)
	if err != nil {
		return nil, err
	}

	channels, err := s.repo.ListChannels(ctx, businessID)
	if err != nil {
		return nil, err
	}

	set := notification.NewRuleSet()
	set.Load(rules)

	return &Editor{
		Drafts:   set.All(),
		Channels: channels,
	}, nil
}

// ListChannels lists the delivery-channel catalog
func (s *ConfigServiceImpl) ListChannels(ctx context.Context, businessID int64) ([]notification.Channel, error) {
	return s.repo.ListChannels(ctx, businessID)
}

// ListEventTypes lists the event types available on one channel
func (s *ConfigServiceImpl) ListEventTypes(ctx context.Context, businessID, channelID int64) ([]notification.EventType, error) {
	return s.repo.ListEventTypes(ctx, businessID, channelID)
}

// SaveRules validates the submitted draft list and, when sound, replaces the
// integration's rule set on the platform in one batch call. Rows the client
// marked deleted are simply omitted from the submitted set; their absence is
// what deletes them. After a successful sync the rules are refetched so the
// caller renders the platform's own post-sync state.
func (s *ConfigServiceImpl) SaveRules(ctx context.Context, businessID, integrationID int64, rows []notification.Draft) (*SaveOutcome, error) {
	set := notification.NewRuleSet()
	set.LoadDrafts(rows)

	if err := set.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkAgainstCatalog(ctx, businessID, set.Visible()); err != nil {
		return nil, err
	}

	result, err := s.repo.SyncRules(ctx, businessID, set.BuildSyncRequest(integrationID))
	if err != nil {
		return nil, err
	}

	rules, err := s.repo.ListRules(ctx, businessID, integrationID)
	if err != nil {
		// The sync itself succeeded; report the counts with an empty rule list
		// rather than failing the whole save
		rules = nil
	}

	return &SaveOutcome{
		Result:  *result,
		Summary: result.Summary(),
		Rules:   rules,
	}, nil
}

// checkAgainstCatalog verifies every draft's selections against the platform
// catalogs: the channel must exist and be enabled, the event must belong to
// the selected channel, and every chosen order status must be on the event's
// allow-list. Event-type lookups are batched per channel.
func (s *ConfigServiceImpl) checkAgainstCatalog(ctx context.Context, businessID int64, drafts []notification.Draft) error {
	channels, err := s.repo.ListChannels(ctx, businessID)
	if err != nil {
		return err
	}
	channelByID := make(map[int64]notification.Channel, len(channels))
	for _, ch := range channels {
		channelByID[ch.ID] = ch
	}

	eventsByChannel := make(map[int64]map[int64]notification.EventType)

	for i, d := range drafts {
		ch, ok := channelByID[d.ChannelID]
		if !ok {
			return notification.ErrChannelNotFound
		}
		if !ch.Enabled {
			return shared.NewDomainError("CHANNEL_DISABLED",
				fmt.Sprintf("Rule %d: channel %q is not available", i+1, ch.Name))
		}

		events, ok := eventsByChannel[d.ChannelID]
		if !ok {
			list, err := s.repo.ListEventTypes(ctx, businessID, d.ChannelID)
			if err != nil {
				return err
			}
			events = make(map[int64]notification.EventType, len(list))
			for _, ev := range list {
				events[ev.ID] = ev
			}
			eventsByChannel[d.ChannelID] = events
		}

		ev, ok := events[d.EventTypeID]
		if !ok {
			return shared.NewDomainError("VALIDATION_ERROR",
				fmt.Sprintf("Rule %d: event does not belong to the selected channel", i+1))
		}

		for _, statusID := range d.OrderStatusIDs {
			if !ev.AllowsStatus(statusID) {
				return shared.NewDomainError("VALIDATION_ERROR",
					fmt.Sprintf("Rule %d: order status %d is not allowed for event %q", i+1, statusID, ev.Name))
			}
		}
	}
	return nil
}
