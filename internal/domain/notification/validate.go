package notification

import (
	"fmt"

	"github.com/commercehub/console/internal/domain/shared"
)

// Validate checks a draft list for structural soundness before a sync is
// allowed. The checks run in order over the non-deleted rows:
//  1. every rule has a channel selected (positional message)
//  2. every rule has an event selected (positional message)
//  3. no two rules share the same (channel, event) pair
//
// Validation is a pure inspection: it mutates nothing, caches nothing, and is
// re-run in full on every submit attempt.
func Validate(drafts []Draft) error {
	visible := make([]Draft, 0, len(drafts))
	for _, d := range drafts {
		if !d.MarkedDeleted {
			visible = append(visible, d)
		}
	}

	for i, d := range visible {
		if d.ChannelID == 0 {
			return shared.NewDomainError("VALIDATION_ERROR", fmt.Sprintf("Rule %d: select a channel", i+1))
		}
	}
	for i, d := range visible {
		if d.EventTypeID == 0 {
			return shared.NewDomainError("VALIDATION_ERROR", fmt.Sprintf("Rule %d: select an event", i+1))
		}
	}

	seen := make(map[Key]struct{}, len(visible))
	for _, d := range visible {
		if _, dup := seen[d.Key()]; dup {
			return ErrDuplicateRule
		}
		seen[d.Key()] = struct{}{}
	}
	return nil
}

// Validate runs the pre-sync validation pass over the rule set
func (s *RuleSet) Validate() error {
	return Validate(s.drafts)
}
