// Package redis records consumed device sync tokens in Redis.
package redis

import (
	"context"
	"log/slog"
	"time"

	"accounts/config"
	"accounts/internal/domain/lifecycle"
	"accounts/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const keyPrefix = "sync-token:"

// redisGuard implements service.SyncTokenGuard with SET NX.
type redisGuard struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisGuard creates a guard over an existing client.
func NewRedisGuard(client *redis.Client, logger *slog.Logger) service.SyncTokenGuard {
	return &redisGuard{client: client, logger: logger}
}

// Consume marks tokenID as used for ttl.
func (g *redisGuard) Consume(ctx context.Context, tokenID string, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		ttl = time.Minute
	}

	ok, err := g.client.SetNX(ctx, keyPrefix+tokenID, time.Now().Unix(), ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to record sync token")
	}

	if !ok {
		g.logger.WarnContext(ctx, "Sync token replay rejected", slog.String("tokenID", tokenID))
	}

	return ok, nil
}

func (g *redisGuard) Close() error {
	return g.client.Close()
}

// noopGuard accepts every token when Redis is not configured. Tokens then remain
// reusable until they expire.
type noopGuard struct {
	logger *slog.Logger
}

func (g *noopGuard) Consume(ctx context.Context, tokenID string, _ time.Duration) (bool, error) {
	g.logger.DebugContext(ctx, "[NoopGuard] Sync token replay tracking disabled",
		slog.String("tokenID", tokenID),
	)

	return true, nil
}

func (g *noopGuard) Close() error {
	return nil
}

// GuardParams holds dependencies for SyncTokenGuard, injected by Fx
type GuardParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewSyncTokenGuard creates a SyncTokenGuard based on configuration
func NewSyncTokenGuard(params GuardParams) (service.SyncTokenGuard, error) {
	cfg := params.Config.Redis
	logger := params.Logger

	if cfg == nil || cfg.URL == "" {
		logger.Info("Redis not configured, sync tokens are not single-use")

		return &noopGuard{logger: logger}, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "parse redis url")
	}

	guard := NewRedisGuard(redis.NewClient(opts), logger).(*redisGuard)

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(guard.client.Ping(ctx).Err(), "connect to redis")
		},
		OnStop: func(_ context.Context) error {
			logger.Info("Closing SyncTokenGuard")

			return guard.Close()
		},
	})

	return guard, nil
}

// Module provides the sync token guard FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSyncTokenGuard),
)
