package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/JobEconomy_Go/internal/config"
	"github.com/osse101/JobEconomy_Go/internal/handler"
	"github.com/osse101/JobEconomy_Go/internal/presence"
)

// InitializePresence selects the presence store. Redis is used when
// REDIS_URL is set; a nil check means the backend has nothing to probe.
func InitializePresence(ctx context.Context, cfg *config.Config) (presence.Store, handler.HealthCheck, error) {
	backend := cfg.PresenceBackend()
	if backend != config.PresenceRedis {
		slog.Info(LogMsgPresenceSelected, "backend", backend)
		return presence.NewMemoryStore(), nil, nil
	}

	client, err := presence.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgOpenPresence, err)
	}
	slog.Info(LogMsgPresenceSelected, "backend", backend, "key_prefix", cfg.RedisKeyPrefix)

	check := func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
	return presence.NewRedisStore(client, cfg.RedisKeyPrefix), check, nil
}
