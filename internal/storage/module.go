// Package storage selects and wires the persistence backends.
package storage

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"github.com/polkiloo/gpsolutions/internal/config"
	"github.com/polkiloo/gpsolutions/internal/domain/repository"
	"github.com/polkiloo/gpsolutions/internal/storage/memory"
	"github.com/polkiloo/gpsolutions/internal/storage/postgres"
	"github.com/polkiloo/gpsolutions/internal/storage/redis"
)

// Module wires PostgreSQL repositories and the staging store.
var Module = fx.Options(
	postgres.Module,
	fx.Provide(newStagingRepository),
)

var newRedisStaging = func(ctx context.Context, cfg *config.Config) (*redis.StagingStore, error) {
	return redis.NewStagingStore(ctx, cfg.RedisAddress, cfg.RedisPassword, cfg.StagingTTL)
}

type stagingParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	LC     fx.Lifecycle
}

type stagingResult struct {
	fx.Out

	Staging repository.StagingRepository
	Health  []repository.HealthChecker `group:"health,flatten"`
}

// newStagingRepository uses Redis when an address is configured and process memory otherwise.
func newStagingRepository(p stagingParams) (stagingResult, error) {
	if p.Config.RedisAddress != "" {
		store, err := newRedisStaging(p.Ctx, p.Config)
		if err != nil {
			return stagingResult{}, err
		}
		p.LC.Append(fx.Hook{
			OnStop: func(context.Context) error { return store.Close() },
		})
		p.Logger.Info("staging store ready", "backend", "redis", "address", p.Config.RedisAddress)
		return stagingResult{Staging: store, Health: []repository.HealthChecker{store}}, nil
	}

	store := memory.NewStagingStore(p.Config.StagingTTL)
	registerExpiry(p.LC, store, p.Config.StagingTTL)
	p.Logger.Info("staging store ready", "backend", "memory", "ttl", p.Config.StagingTTL)
	return stagingResult{Staging: store}, nil
}

// registerExpiry ties background eviction of idle sessions to the app lifecycle.
func registerExpiry(lc fx.Lifecycle, store *memory.StagingStore, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			store.Start()
			return nil
		},
		OnStop: func(context.Context) error {
			store.Stop()
			return nil
		},
	})
}
