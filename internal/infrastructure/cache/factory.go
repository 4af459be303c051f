package cache

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewStore returns a Redis-backed store when a client is available,
// falling back to an in-memory store otherwise. The fallback keeps
// single-instance deployments working without Redis.
func NewStore(client *redis.Client, keyPrefix string, logger *zap.Logger) Store {
	if client != nil {
		logger.Info("Using Redis cache store", zap.String("key_prefix", keyPrefix))
		return NewRedisStore(client, keyPrefix)
	}

	logger.Warn("Redis unavailable, using in-memory cache store")
	return NewMemoryStore()
}
