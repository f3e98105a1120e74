package notification

import (
	"math/rand/v2"
)

// tempIDAlphabet is the character set for client-side draft identifiers
const tempIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// tempIDLength keeps collision probability negligible for editor-scoped lists
// of at most a few dozen rows
const tempIDLength = 10

// NewTempID returns a short random alphanumeric identifier for a draft row.
// The identifier is never persisted; it only keys rows that do not yet exist
// on the platform.
func NewTempID() string {
	buf := make([]byte, tempIDLength)
	for i := range buf {
		buf[i] = tempIDAlphabet[rand.IntN(len(tempIDAlphabet))]
	}
	return string(buf)
}

// Draft is an in-memory editable copy of a notification rule. Drafts exist
// only for the lifetime of one editor session: they are created from persisted
// rules when the editor opens, or from scratch when the operator adds a row,
// and are discarded after a successful sync.
type Draft struct {
	// TempID is the session-scoped handle for this row
	TempID string `json:"temp_id"`
	// ID is set only once the rule has been persisted by the platform
	ID *int64 `json:"id,omitempty"`
	// ChannelID is the selected delivery channel; zero means not selected yet
	ChannelID int64 `json:"channel_id"`
	// EventTypeID is the selected event; depends on ChannelID, zero means unselected
	EventTypeID int64 `json:"event_type_id"`
	// Enabled defaults to true for new drafts
	Enabled bool `json:"enabled"`
	// Description is free text
	Description string `json:"description"`
	// OrderStatusIDs is the selected status narrowing; empty means all allowed
	OrderStatusIDs []int64 `json:"order_status_ids"`
	// MarkedDeleted soft-deletes a persisted row until the next sync
	MarkedDeleted bool `json:"marked_deleted"`
}

// NewDraft returns a blank draft with a fresh TempID and Enabled set
func NewDraft() Draft {
	return Draft{
		TempID:  NewTempID(),
		Enabled: true,
	}
}

// DraftFromRule maps a persisted rule into an editable draft
func DraftFromRule(r Rule) Draft {
	id := r.ID
	return Draft{
		TempID:         NewTempID(),
		ID:             &id,
		ChannelID:      r.ChannelID,
		EventTypeID:    r.EventTypeID,
		Enabled:        r.Enabled,
		Description:    r.Description,
		OrderStatusIDs: append([]int64(nil), r.OrderStatusIDs...),
	}
}

// Persisted reports whether the draft corresponds to a rule that already
// exists on the platform
func (d Draft) Persisted() bool {
	return d.ID != nil
}

// Key returns the draft's (channel, event type) identity
func (d Draft) Key() Key {
	return Key{ChannelID: d.ChannelID, EventTypeID: d.EventTypeID}
}

// WithChannel is the transition function for the dependent field chain
// channel -> event -> status set: selecting a different channel invalidates
// the downstream selections, so both are zeroed in the same step.
func (d Draft) WithChannel(channelID int64) Draft {
	if d.ChannelID == channelID {
		return d
	}
	d.ChannelID = channelID
	d.EventTypeID = 0
	d.OrderStatusIDs = nil
	return d
}

// RuleSet holds the draft list for one open rule editor. The raw list may
// contain soft-deleted persisted rows; all index-based operations address the
// visible (non-deleted) projection so that UI row indices stay stable.
type RuleSet struct {
	drafts []Draft
}

// NewRuleSet returns an empty rule set
func NewRuleSet() *RuleSet {
	return &RuleSet{}
}

// Load replaces the whole list with drafts mapped from persisted rules
func (s *RuleSet) Load(existing []Rule) {
	s.drafts = make([]Draft, 0, len(existing))
	for _, r := range existing {
		s.drafts = append(s.drafts, DraftFromRule(r))
	}
}

// LoadDrafts replaces the list with rows submitted by a client, normalizing
// them: rows that were never persisted and are marked deleted are dropped
// outright, and blank temp IDs are filled in.
func (s *RuleSet) LoadDrafts(rows []Draft) {
	s.drafts = make([]Draft, 0, len(rows))
	for _, d := range rows {
		if d.MarkedDeleted && !d.Persisted() {
			continue
		}
		if d.TempID == "" {
			d.TempID = NewTempID()
		}
		s.drafts = append(s.drafts, d)
	}
}

// Add appends a blank draft and returns it
func (s *RuleSet) Add() Draft {
	d := NewDraft()
	s.drafts = append(s.drafts, d)
	return d
}

// Visible returns the non-deleted projection of the list
func (s *RuleSet) Visible() []Draft {
	visible := make([]Draft, 0, len(s.drafts))
	for _, d := range s.drafts {
		if !d.MarkedDeleted {
			visible = append(visible, d)
		}
	}
	return visible
}

// Len returns the raw list length, soft-deleted rows included
func (s *RuleSet) Len() int {
	return len(s.drafts)
}

// rawIndex translates a visible-list index into a raw-list index
func (s *RuleSet) rawIndex(visibleIdx int) (int, bool) {
	if visibleIdx < 0 {
		return 0, false
	}
	seen := 0
	for i, d := range s.drafts {
		if d.MarkedDeleted {
			continue
		}
		if seen == visibleIdx {
			return i, true
		}
		seen++
	}
	return 0, false
}

// Update replaces the editable fields of the visible row at idx with those of
// patch. The row's identity (TempID, ID) is preserved.
func (s *RuleSet) Update(idx int, patch Draft) error {
	raw, ok := s.rawIndex(idx)
	if !ok {
		return ErrRuleIndexInvalid
	}
	cur := s.drafts[raw]
	patch.TempID = cur.TempID
	patch.ID = cur.ID
	patch.MarkedDeleted = cur.MarkedDeleted
	s.drafts[raw] = patch
	return nil
}

// ChangeChannel applies the channel transition to the visible row at idx,
// clearing the dependent event and status selections
func (s *RuleSet) ChangeChannel(idx int, channelID int64) error {
	raw, ok := s.rawIndex(idx)
	if !ok {
		return ErrRuleIndexInvalid
	}
	s.drafts[raw] = s.drafts[raw].WithChannel(channelID)
	return nil
}

// Remove deletes the visible row at idx. Rows that were never persisted are
// dropped from the list; persisted rows are soft-deleted so the editor can
// keep stable indices, and disappear from the platform on the next sync by
// being omitted from the submitted set.
func (s *RuleSet) Remove(idx int) error {
	raw, ok := s.rawIndex(idx)
	if !ok {
		return ErrRuleIndexInvalid
	}
	if !s.drafts[raw].Persisted() {
		s.drafts = append(s.drafts[:raw], s.drafts[raw+1:]...)
		return nil
	}
	s.drafts[raw].MarkedDeleted = true
	return nil
}

// All returns the raw list, soft-deleted rows included
func (s *RuleSet) All() []Draft {
	return append([]Draft(nil), s.drafts...)
}
