package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/gpsolutions/internal/adapter/payment"
	"github.com/polkiloo/gpsolutions/internal/app"
	"github.com/polkiloo/gpsolutions/internal/catalog"
	"github.com/polkiloo/gpsolutions/internal/config"
	"github.com/polkiloo/gpsolutions/internal/logger"
	"github.com/polkiloo/gpsolutions/internal/pkg/auth"
	"github.com/polkiloo/gpsolutions/internal/server/http/handlers"
	"github.com/polkiloo/gpsolutions/internal/server/http/router"
	"github.com/polkiloo/gpsolutions/internal/storage"
	"github.com/polkiloo/gpsolutions/internal/usecase"
)

// Module assembles the full application graph; opts are appended last so callers can
// replace any provided value.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		storage.Module,
		payment.Module,
		catalog.Module,
		usecase.Module,
		fx.Provide(func(f *app.QuoteFacade) handlers.QuoteFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
