package notification

import (
	"time"

	"github.com/commercehub/console/internal/domain/shared"
)

// Notification domain errors
var (
	ErrRuleNotFound     = shared.NewDomainError("NOT_FOUND", "Notification rule not found")
	ErrChannelNotFound  = shared.NewDomainError("NOT_FOUND", "Notification channel not found")
	ErrDuplicateRule    = shared.NewDomainError("DUPLICATE_RULE", "Two rules share the same channel and event combination")
	ErrRuleIndexInvalid = shared.NewDomainError("INVALID_INPUT", "Rule index out of range")
)

// Rule represents a notification rule as persisted by the platform API.
// A rule attaches one (channel, event type) pair to an integration, optionally
// narrowed to a set of order statuses.
type Rule struct {
	// ID is the platform identifier of the rule
	ID int64 `json:"id"`
	// IntegrationID is the integration this rule belongs to
	IntegrationID int64 `json:"integration_id"`
	// ChannelID identifies the delivery channel (platform field: notification_type_id)
	ChannelID int64 `json:"notification_type_id"`
	// EventTypeID identifies the triggering event (platform field: notification_event_type_id)
	EventTypeID int64 `json:"notification_event_type_id"`
	// Enabled indicates whether the rule currently fires
	Enabled bool `json:"enabled"`
	// Description is free text attached by the operator
	Description string `json:"description"`
	// OrderStatusIDs narrows which order states trigger the rule; empty means
	// every status permitted by the event type's own allow-list
	OrderStatusIDs []int64 `json:"order_status_ids"`
	// CreatedAt is when the rule was created on the platform
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is when the rule was last changed on the platform
	UpdatedAt time.Time `json:"updated_at"`
}

// Key identifies the (channel, event type) pair of a rule. No two non-deleted
// rules on the same integration may share a Key.
type Key struct {
	ChannelID   int64
	EventTypeID int64
}

// Key returns the rule's (channel, event type) identity
func (r Rule) Key() Key {
	return Key{ChannelID: r.ChannelID, EventTypeID: r.EventTypeID}
}
