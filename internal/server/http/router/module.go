package router

import (
	"go.uber.org/fx"

	"github.com/polkiloo/gpsolutions/internal/pkg/auth"
	"github.com/polkiloo/gpsolutions/internal/server/http/middleware"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Options(
	fx.Provide(
		func(s auth.Strategy) middleware.SessionIssuer { return s },
		func(v *auth.AdminVerifier) middleware.AdminVerifier { return v },
	),
	fx.Provide(Setup),
)
