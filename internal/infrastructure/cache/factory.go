package cache

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/commercehub/console/internal/infrastructure/config"
)

// StoreFactory creates lookup-cache stores based on configuration
type StoreFactory struct {
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// StoreFactoryOption is a functional option for configuring the factory
type StoreFactoryOption func(*StoreFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) StoreFactoryOption {
	return func(f *StoreFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to an in-memory store
// when Redis is unavailable. Default is true.
func WithInMemoryFallback(allow bool) StoreFactoryOption {
	return func(f *StoreFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewStoreFactory creates a new factory
func NewStoreFactory(cfg config.RedisConfig, opts ...StoreFactoryOption) *StoreFactory {
	f := &StoreFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateRedisStore creates a Redis-backed store
func (f *StoreFactory) CreateRedisStore() (Store, error) {
	store, err := NewRedisStore(RedisConfig{
		Host:     f.redisConfig.Host,
		Port:     f.redisConfig.Port,
		Password: f.redisConfig.Password,
		DB:       f.redisConfig.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis cache store: %w", err)
	}
	return store, nil
}

// CreateStore tries Redis first and falls back to the in-memory store when
// Redis is unreachable and fallback is allowed. A cold catalog cache only
// costs extra platform calls, so falling back is safe.
func (f *StoreFactory) CreateStore() (Store, error) {
	store, err := f.CreateRedisStore()
	if err == nil {
		f.logger.Info("Using Redis lookup cache",
			zap.String("addr", f.redisConfig.RedisAddr()))
		return store, nil
	}

	if !f.allowInMemoryFallback {
		return nil, err
	}

	f.logger.Warn("Redis unavailable, using in-memory lookup cache",
		zap.String("addr", f.redisConfig.RedisAddr()),
		zap.Error(err))
	return NewMemoryStore(), nil
}
