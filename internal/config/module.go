package config

import "go.uber.org/fx"

// Module supplies *Config, read once from flags, the environment and an optional .env file.
var Module = fx.Provide(Load)
