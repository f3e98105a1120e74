package notification

// Channel represents a notification delivery channel (WhatsApp, email, SMS, ...)
// offered by the platform. Channels are reference data owned by the platform
// API; the console only reads them.
type Channel struct {
	// ID is the platform identifier of the channel
	ID int64 `json:"id"`
	// Code is the stable machine code, e.g. "whatsapp"
	Code string `json:"code"`
	// Name is the human-readable channel name
	Name string `json:"name"`
	// Enabled indicates whether the channel can be selected for new rules
	Enabled bool `json:"enabled"`
}

// EventType represents a triggering event available on a specific channel,
// e.g. "order.created" on WhatsApp. Event types belong to exactly one channel;
// selecting a different channel invalidates a previously chosen event type.
type EventType struct {
	// ID is the platform identifier of the event type
	ID int64 `json:"id"`
	// ChannelID is the channel this event type belongs to
	ChannelID int64 `json:"notification_type_id"`
	// Code is the stable machine code, e.g. "order.created"
	Code string `json:"code"`
	// Name is the human-readable event name
	Name string `json:"name"`
	// AllowedOrderStatusIDs narrows which order statuses may be attached to a
	// rule for this event. An empty list means every status is selectable.
	AllowedOrderStatusIDs []int64 `json:"allowed_order_status_ids"`
}

// AllowsStatus reports whether the given order status may be attached to a
// rule for this event type. An empty allow-list permits every status.
func (e EventType) AllowsStatus(statusID int64) bool {
	if len(e.AllowedOrderStatusIDs) == 0 {
		return true
	}
	for _, id := range e.AllowedOrderStatusIDs {
		if id == statusID {
			return true
		}
	}
	return false
}
