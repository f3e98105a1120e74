package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTempID_Distinct(t *testing.T) {
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		id := NewTempID()
		assert.Len(t, id, tempIDLength)
		_, dup := seen[id]
		require.False(t, dup, "duplicate temp ID after %d calls: %s", i, id)
		seen[id] = struct{}{}
	}
}

func TestNewDraft_Defaults(t *testing.T) {
	d := NewDraft()

	assert.NotEmpty(t, d.TempID)
	assert.Nil(t, d.ID)
	assert.True(t, d.Enabled)
	assert.Zero(t, d.ChannelID)
	assert.Zero(t, d.EventTypeID)
	assert.Empty(t, d.OrderStatusIDs)
	assert.False(t, d.MarkedDeleted)
}

func TestDraftFromRule_MapsAllFields(t *testing.T) {
	rule := Rule{
		ID:             7,
		IntegrationID:  3,
		ChannelID:      2,
		EventTypeID:    5,
		Enabled:        true,
		Description:    "x",
		OrderStatusIDs: []int64{1, 2},
	}

	d := DraftFromRule(rule)

	require.NotNil(t, d.ID)
	assert.Equal(t, int64(7), *d.ID)
	assert.Equal(t, int64(2), d.ChannelID)
	assert.Equal(t, int64(5), d.EventTypeID)
	assert.True(t, d.Enabled)
	assert.Equal(t, "x", d.Description)
	assert.Equal(t, []int64{1, 2}, d.OrderStatusIDs)
	assert.NotEmpty(t, d.TempID)
	assert.True(t, d.Persisted())
}

func TestDraft_WithChannel_ClearsDependents(t *testing.T) {
	d := NewDraft()
	d.ChannelID = 2
	d.EventTypeID = 5
	d.OrderStatusIDs = []int64{1, 3}

	changed := d.WithChannel(4)

	assert.Equal(t, int64(4), changed.ChannelID)
	assert.Zero(t, changed.EventTypeID)
	assert.Empty(t, changed.OrderStatusIDs)
}

func TestDraft_WithChannel_SameChannelKeepsDependents(t *testing.T) {
	d := NewDraft()
	d.ChannelID = 2
	d.EventTypeID = 5
	d.OrderStatusIDs = []int64{1, 3}

	same := d.WithChannel(2)

	assert.Equal(t, int64(5), same.EventTypeID)
	assert.Equal(t, []int64{1, 3}, same.OrderStatusIDs)
}

func TestRuleSet_Load(t *testing.T) {
	s := NewRuleSet()
	s.Load([]Rule{
		{ID: 1, ChannelID: 2, EventTypeID: 5},
		{ID: 2, ChannelID: 3, EventTypeID: 6},
	})

	visible := s.Visible()
	require.Len(t, visible, 2)
	assert.True(t, visible[0].Persisted())
	assert.Equal(t, int64(1), *visible[0].ID)
	assert.NotEqual(t, visible[0].TempID, visible[1].TempID)
}

func TestRuleSet_Add(t *testing.T) {
	s := NewRuleSet()

	d := s.Add()

	assert.Equal(t, 1, s.Len())
	assert.True(t, d.Enabled)
	assert.False(t, d.Persisted())
}

func TestRuleSet_Remove_NeverPersisted_HardDeletes(t *testing.T) {
	s := NewRuleSet()
	s.Add()
	s.Add()

	require.NoError(t, s.Remove(0))

	assert.Equal(t, 1, s.Len())
	assert.Len(t, s.Visible(), 1)
}

func TestRuleSet_Remove_Persisted_SoftDeletes(t *testing.T) {
	s := NewRuleSet()
	s.Load([]Rule{{ID: 9, ChannelID: 2, EventTypeID: 5}})

	require.NoError(t, s.Remove(0))

	assert.Equal(t, 1, s.Len(), "raw list keeps the soft-deleted row")
	assert.Empty(t, s.Visible(), "visible projection hides it")
}

func TestRuleSet_Remove_IndexOutOfRange(t *testing.T) {
	s := NewRuleSet()
	s.Add()

	assert.ErrorIs(t, s.Remove(1), ErrRuleIndexInvalid)
	assert.ErrorIs(t, s.Remove(-1), ErrRuleIndexInvalid)
}

func TestRuleSet_IndicesAddressVisibleRows(t *testing.T) {
	// Raw list: [persisted A (soft-deleted), new B, new C].
	// Visible index 0 must address B, not A.
	s := NewRuleSet()
	s.Load([]Rule{{ID: 1, ChannelID: 2, EventTypeID: 5}})
	require.NoError(t, s.Remove(0))
	s.Add()
	s.Add()

	patch := NewDraft()
	patch.ChannelID = 7
	require.NoError(t, s.Update(0, patch))

	visible := s.Visible()
	require.Len(t, visible, 2)
	assert.Equal(t, int64(7), visible[0].ChannelID)

	raw := s.All()
	require.Len(t, raw, 3)
	assert.True(t, raw[0].MarkedDeleted)
	assert.Equal(t, int64(2), raw[0].ChannelID, "soft-deleted row untouched")
}

func TestRuleSet_Update_PreservesIdentity(t *testing.T) {
	s := NewRuleSet()
	s.Load([]Rule{{ID: 4, ChannelID: 2, EventTypeID: 5}})
	before := s.Visible()[0]

	patch := Draft{ChannelID: 3, EventTypeID: 8, Enabled: true, Description: "changed"}
	require.NoError(t, s.Update(0, patch))

	after := s.Visible()[0]
	assert.Equal(t, before.TempID, after.TempID)
	require.NotNil(t, after.ID)
	assert.Equal(t, int64(4), *after.ID)
	assert.Equal(t, int64(3), after.ChannelID)
	assert.Equal(t, "changed", after.Description)
}

func TestRuleSet_ChangeChannel_CascadesReset(t *testing.T) {
	s := NewRuleSet()
	s.Load([]Rule{{ID: 1, ChannelID: 2, EventTypeID: 5, OrderStatusIDs: []int64{1, 3}}})

	require.NoError(t, s.ChangeChannel(0, 9))

	d := s.Visible()[0]
	assert.Equal(t, int64(9), d.ChannelID)
	assert.Zero(t, d.EventTypeID)
	assert.Empty(t, d.OrderStatusIDs)
}

func TestRuleSet_LoadDrafts_DropsNeverPersistedDeleted(t *testing.T) {
	id := int64(5)
	s := NewRuleSet()
	s.LoadDrafts([]Draft{
		{ChannelID: 1, EventTypeID: 2},
		{MarkedDeleted: true}, // never persisted: nothing to delete remotely
		{ID: &id, ChannelID: 3, EventTypeID: 4, MarkedDeleted: true},
	})

	assert.Equal(t, 2, s.Len())
	assert.Len(t, s.Visible(), 1)

	for _, d := range s.All() {
		assert.NotEmpty(t, d.TempID, "normalization assigns missing temp IDs")
	}
}

func TestEventType_AllowsStatus(t *testing.T) {
	unrestricted := EventType{ID: 1}
	assert.True(t, unrestricted.AllowsStatus(42))

	restricted := EventType{ID: 2, AllowedOrderStatusIDs: []int64{1, 3}}
	assert.True(t, restricted.AllowsStatus(3))
	assert.False(t, restricted.AllowsStatus(2))
}
