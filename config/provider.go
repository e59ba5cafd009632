package config

import (
	"github.com/google/wire"
	logcfg "github.com/ncobase/feature/logging/logger/config"
)

// ProviderSet is the wire provider set for the config package.
// It extracts sub-configurations from a loaded *Config.
//
// Available configurations:
//   - *logger/config.Config: Logger configuration
//   - *Observes: Sentry and tracer configuration
var ProviderSet = wire.NewSet(
	ProvideLoggerConfig,
	ProvideObservesConfig,
)

// ProvideLoggerConfig provides the logger configuration.
func ProvideLoggerConfig(cfg *Config) *logcfg.Config {
	if cfg == nil {
		return nil
	}
	return cfg.Logger
}

// ProvideObservesConfig provides the observability configuration.
func ProvideObservesConfig(cfg *Config) *Observes {
	if cfg == nil {
		return nil
	}
	return cfg.Observes
}
