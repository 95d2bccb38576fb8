package auth

import (
	"go.uber.org/fx"

	"github.com/polkiloo/gpsolutions/internal/config"
)

// Module provides session and admin authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newTokenStrategy),
	fx.Provide(newAdminVerifier),
)

func newPasswordHasher() PasswordHasher {
	return NewBcryptHasher(0)
}

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newTokenStrategy(p strategyParams) Strategy {
	return NewHMACStrategy(p.Config.SessionSecret, Options{TTL: p.Config.SessionTTL})
}

type adminParams struct {
	fx.In

	Config *config.Config
	Hasher PasswordHasher
}

func newAdminVerifier(p adminParams) *AdminVerifier {
	return NewAdminVerifier(p.Config.AdminKeyHash, p.Hasher)
}
