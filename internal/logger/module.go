package logger

import (
	"log/slog"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/polkiloo/gpsolutions/internal/config"
)

// Module provides the slog logger and routes fx lifecycle events through it.
var Module = fx.Options(
	fx.Provide(New),
	fx.WithLogger(func(l *slog.Logger) fxevent.Logger {
		fl := &fxevent.SlogLogger{Logger: l.With(slog.String("component", "fx"))}
		fl.UseLogLevel(slog.LevelDebug)
		return fl
	}),
	fx.Invoke(logConfig),
)

// logConfig records the effective non-secret settings once at startup.
func logConfig(cfg *config.Config, l *slog.Logger) {
	staging := "memory"
	if cfg.RedisAddress != "" {
		staging = "redis"
	}
	l.Info("configuration loaded",
		slog.String("addr", cfg.RunAddress),
		slog.String("site_url", cfg.SiteURL),
		slog.String("currency", cfg.Currency),
		slog.String("staging_backend", staging),
		slog.Bool("admin_enabled", cfg.AdminKeyHash != ""),
		slog.Duration("reconcile_interval", cfg.ReconcileInterval),
		slog.Int("worker_pool", cfg.WorkerPoolSize),
	)
}
