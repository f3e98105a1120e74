package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/commercehub/console/internal/domain/notification"
	"github.com/commercehub/console/internal/domain/orderstatus"
)

type mockNotificationRepo struct {
	mock.Mock
	notification.Repository
}

func (m *mockNotificationRepo) ListChannels(ctx context.Context, businessID int64) ([]notification.Channel, error) {
	args := m.Called(ctx, businessID)
	return args.Get(0).([]notification.Channel), args.Error(1)
}

func (m *mockNotificationRepo) ListEventTypes(ctx context.Context, businessID, channelID int64) ([]notification.EventType, error) {
	args := m.Called(ctx, businessID, channelID)
	return args.Get(0).([]notification.EventType), args.Error(1)
}

type mockOrderStatusRepo struct {
	mock.Mock
	orderstatus.Repository
}

func (m *mockOrderStatusRepo) ListStatuses(ctx context.Context) ([]orderstatus.Status, error) {
	args := m.Called(ctx)
	return args.Get(0).([]orderstatus.Status), args.Error(1)
}

func TestCachingNotificationRepository_ListChannels(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	channels := []notification.Channel{{ID: 1, Code: "whatsapp", Name: "WhatsApp", Enabled: true}}

	repo := new(mockNotificationRepo)
	repo.On("ListChannels", mock.Anything, int64(42)).Return(channels, nil).Once()

	cached := NewCachingNotificationRepository(repo, store, time.Minute, nil)

	got, err := cached.ListChannels(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, channels, got)

	// Second read is served from cache; the mock only allows one call
	got, err = cached.ListChannels(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, channels, got)

	repo.AssertExpectations(t)
}

func TestCachingNotificationRepository_TenantScopedKeys(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	repo := new(mockNotificationRepo)
	repo.On("ListChannels", mock.Anything, int64(1)).
		Return([]notification.Channel{{ID: 1, Code: "email"}}, nil).Once()
	repo.On("ListChannels", mock.Anything, int64(2)).
		Return([]notification.Channel{{ID: 2, Code: "sms"}}, nil).Once()

	cached := NewCachingNotificationRepository(repo, store, time.Minute, nil)

	first, err := cached.ListChannels(context.Background(), 1)
	require.NoError(t, err)
	second, err := cached.ListChannels(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, "email", first[0].Code)
	assert.Equal(t, "sms", second[0].Code)
	repo.AssertExpectations(t)
}

func TestCachingNotificationRepository_ListEventTypes(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	events := []notification.EventType{{ID: 8, ChannelID: 5, Code: "order.shipped"}}

	repo := new(mockNotificationRepo)
	repo.On("ListEventTypes", mock.Anything, int64(42), int64(5)).Return(events, nil).Once()

	cached := NewCachingNotificationRepository(repo, store, time.Minute, nil)

	for i := 0; i < 2; i++ {
		got, err := cached.ListEventTypes(context.Background(), 42, 5)
		require.NoError(t, err)
		assert.Equal(t, events, got)
	}
	repo.AssertExpectations(t)
}

func TestCachingOrderStatusRepository_ListStatuses(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	statuses := []orderstatus.Status{{ID: 3, Code: "shipped", Name: "Shipped", SortOrder: 30}}

	repo := new(mockOrderStatusRepo)
	repo.On("ListStatuses", mock.Anything).Return(statuses, nil).Once()

	cached := NewCachingOrderStatusRepository(repo, store, time.Minute, nil)

	for i := 0; i < 2; i++ {
		got, err := cached.ListStatuses(context.Background())
		require.NoError(t, err)
		assert.Equal(t, statuses, got)
	}
	repo.AssertExpectations(t)
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "k", []byte("v"), 10*time.Millisecond))

	_, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)

	time.Sleep(20 * time.Millisecond)

	_, found, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))
	require.NoError(t, store.Delete(ctx, "k"))

	_, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}
