package controllers

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CacheManager wraps the Redis client used for the product list cache.
// All failures degrade to the database path; the cache is never load
// bearing for correctness.
type CacheManager struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCacheManager(redis *redis.Client) *CacheManager {
	return &CacheManager{redis: redis, ttl: DefaultCacheTTL}
}

// GetProductList returns the cached list payload, if any.
func (cm *CacheManager) GetProductList(ctx context.Context) ([]byte, bool) {
	data, err := cm.redis.Get(ctx, ProductListCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			zap.L().Warn("Failed to read product list cache", zap.Error(err))
		}
		return nil, false
	}
	return data, true
}

// SetProductList stores the serialized list payload with the TTL.
// Concurrent misses may both write the key; last write wins.
func (cm *CacheManager) SetProductList(ctx context.Context, payload []byte) {
	if err := cm.redis.Set(ctx, ProductListCacheKey, payload, cm.ttl).Err(); err != nil {
		zap.L().Warn("Failed to cache product list", zap.Error(err))
	}
}

// Invalidate drops the cached list after a product or category write.
func (cm *CacheManager) Invalidate(ctx context.Context) {
	if err := cm.redis.Del(ctx, ProductListCacheKey).Err(); err != nil {
		zap.L().Warn("Failed to invalidate product list cache", zap.Error(err))
	}
}
