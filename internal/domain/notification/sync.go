package notification

import "fmt"

// SyncRuleEntry is one rule in the replace-collection payload sent to the
// platform. Field names match the platform's persisted rule records so an
// unedited round trip is byte-stable.
type SyncRuleEntry struct {
	// ID is present only for rules that already exist on the platform
	ID *int64 `json:"id,omitempty"`
	// ChannelID is the delivery channel (platform field: notification_type_id)
	ChannelID int64 `json:"notification_type_id"`
	// EventTypeID is the triggering event (platform field: notification_event_type_id)
	EventTypeID int64 `json:"notification_event_type_id"`
	// Enabled indicates whether the rule fires
	Enabled bool `json:"enabled"`
	// Description is free text
	Description string `json:"description"`
	// OrderStatusIDs narrows triggering order states; empty means all allowed
	OrderStatusIDs []int64 `json:"order_status_ids"`
}

// SyncRequest declares the desired final rule set for one integration. The
// semantics are replace-collection: the platform diffs this set against its
// stored rules and deletes whatever is absent. The client never issues
// per-rule delete instructions.
type SyncRequest struct {
	IntegrationID int64           `json:"integration_id"`
	Rules         []SyncRuleEntry `json:"rules"`
}

// BuildSyncRequest converts a validated draft list into the single batch
// payload for the platform's sync endpoint. Soft-deleted rows are excluded;
// their absence from the set is what deletes them on the platform.
func BuildSyncRequest(integrationID int64, drafts []Draft) SyncRequest {
	entries := make([]SyncRuleEntry, 0, len(drafts))
	for _, d := range drafts {
		if d.MarkedDeleted {
			continue
		}
		statuses := d.OrderStatusIDs
		if statuses == nil {
			statuses = []int64{}
		}
		entries = append(entries, SyncRuleEntry{
			ID:             d.ID,
			ChannelID:      d.ChannelID,
			EventTypeID:    d.EventTypeID,
			Enabled:        d.Enabled,
			Description:    d.Description,
			OrderStatusIDs: append([]int64(nil), statuses...),
		})
	}
	return SyncRequest{IntegrationID: integrationID, Rules: entries}
}

// BuildSyncRequest builds the batch payload from the rule set's current state
func (s *RuleSet) BuildSyncRequest(integrationID int64) SyncRequest {
	return BuildSyncRequest(integrationID, s.drafts)
}

// SyncResult carries the per-operation counts reported by the platform after
// a sync submission
type SyncResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Deleted int `json:"deleted"`
}

// Summary renders the human-readable outcome shown to the operator
func (r SyncResult) Summary() string {
	return fmt.Sprintf("%d created, %d updated, %d deleted", r.Created, r.Updated, r.Deleted)
}
