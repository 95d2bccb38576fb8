package payment

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/gpsolutions/internal/config"
)

// Module exposes the payment client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.PaymentAPIAddress, p.Config.PaymentSecretKey, p.Logger)
}
