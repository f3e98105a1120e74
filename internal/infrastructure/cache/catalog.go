package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/commercehub/console/internal/domain/notification"
	"github.com/commercehub/console/internal/domain/orderstatus"
)

// CachingNotificationRepository wraps a notification repository and caches the
// channel and event-type catalogs. Rule reads and writes pass through
// untouched; stale rules on a settings page are unacceptable, stale catalogs
// are not.
type CachingNotificationRepository struct {
	notification.Repository
	store  Store
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachingNotificationRepository wraps the given repository
func NewCachingNotificationRepository(repo notification.Repository, store Store, ttl time.Duration, logger *zap.Logger) *CachingNotificationRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachingNotificationRepository{
		Repository: repo,
		store:      store,
		ttl:        ttl,
		logger:     logger,
	}
}

// ListChannels returns the channel catalog, served from cache when warm
func (r *CachingNotificationRepository) ListChannels(ctx context.Context, businessID int64) ([]notification.Channel, error) {
	key := fmt.Sprintf("channels:%d", businessID)

	var channels []notification.Channel
	if hit := r.load(ctx, key, &channels); hit {
		return channels, nil
	}

	channels, err := r.Repository.ListChannels(ctx, businessID)
	if err != nil {
		return nil, err
	}
	r.save(ctx, key, channels)
	return channels, nil
}

// ListEventTypes returns one channel's event types, served from cache when warm
func (r *CachingNotificationRepository) ListEventTypes(ctx context.Context, businessID, channelID int64) ([]notification.EventType, error) {
	key := fmt.Sprintf("event-types:%d:%d", businessID, channelID)

	var events []notification.EventType
	if hit := r.load(ctx, key, &events); hit {
		return events, nil
	}

	events, err := r.Repository.ListEventTypes(ctx, businessID, channelID)
	if err != nil {
		return nil, err
	}
	r.save(ctx, key, events)
	return events, nil
}

// load reads and decodes a cached value. Cache failures count as misses.
func (r *CachingNotificationRepository) load(ctx context.Context, key string, out any) bool {
	raw, found, err := r.store.Get(ctx, key)
	if err != nil {
		r.logger.Warn("Lookup cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if !found {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		r.logger.Warn("Lookup cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// save encodes and stores a value. Failures are logged, never surfaced.
func (r *CachingNotificationRepository) save(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := r.store.Set(ctx, key, raw, r.ttl); err != nil {
		r.logger.Warn("Lookup cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// CachingOrderStatusRepository wraps an order-status repository and caches the
// status catalog. Mapping reads and writes pass through untouched.
type CachingOrderStatusRepository struct {
	orderstatus.Repository
	store  Store
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachingOrderStatusRepository wraps the given repository
func NewCachingOrderStatusRepository(repo orderstatus.Repository, store Store, ttl time.Duration, logger *zap.Logger) *CachingOrderStatusRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachingOrderStatusRepository{
		Repository: repo,
		store:      store,
		ttl:        ttl,
		logger:     logger,
	}
}

// ListStatuses returns the order-status catalog, served from cache when warm.
// The catalog is global reference data, so the key carries no tenant scope.
func (r *CachingOrderStatusRepository) ListStatuses(ctx context.Context) ([]orderstatus.Status, error) {
	const key = "order-statuses"

	raw, found, err := r.store.Get(ctx, key)
	if err == nil && found {
		var statuses []orderstatus.Status
		if err := json.Unmarshal(raw, &statuses); err == nil {
			return statuses, nil
		}
		r.logger.Warn("Lookup cache entry corrupt", zap.String("key", key))
	} else if err != nil {
		r.logger.Warn("Lookup cache read failed", zap.String("key", key), zap.Error(err))
	}

	statuses, err := r.Repository.ListStatuses(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(statuses); err == nil {
		if err := r.store.Set(ctx, key, raw, r.ttl); err != nil {
			r.logger.Warn("Lookup cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return statuses, nil
}

// Interface guards
var (
	_ notification.Repository = (*CachingNotificationRepository)(nil)
	_ orderstatus.Repository  = (*CachingOrderStatusRepository)(nil)
)
