package session

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Backends accepted in configuration
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// DefaultTTL is how long an idle session is kept
const DefaultTTL = 12 * time.Hour

// StoreConfig selects and configures the session backend
type StoreConfig struct {
	Backend string
	TTL     time.Duration
	Redis   RedisConfig
	// AllowMemoryFallback uses the in-memory store when Redis is unreachable
	AllowMemoryFallback bool
}

// NewStore creates the configured store.
// A Redis backend falls back to memory only when AllowMemoryFallback is set.
func NewStore(cfg StoreConfig, logger *zap.Logger) (Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch cfg.Backend {
	case "", BackendMemory:
		logger.Info("using in-memory session store", zap.Duration("ttl", cfg.TTL))
		return NewMemoryStore(cfg.TTL), nil
	case BackendRedis:
		store, err := NewRedisStore(cfg.Redis, cfg.TTL)
		if err == nil {
			logger.Info("using Redis session store",
				zap.String("host", cfg.Redis.Host),
				zap.Int("port", cfg.Redis.Port))
			return store, nil
		}
		if !cfg.AllowMemoryFallback {
			return nil, fmt.Errorf("Redis session store unavailable: %w", err)
		}
		logger.Warn("Redis unavailable, falling back to in-memory session store. "+
			"Sessions will not be shared between instances.",
			zap.Error(err))
		return NewMemoryStore(cfg.TTL), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Backend)
	}
}
