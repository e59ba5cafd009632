package feature

import (
	"github.com/google/wire"
	"github.com/ncobase/feature/core"
	"github.com/ncobase/feature/logging/logger"
)

// ProviderSet is the wire provider set for a single feature. Combined with
// core.ProviderSet and logger.ProviderSet it builds a *Service from a
// *Config, binding the logger to the core service it wraps.
var ProviderSet = wire.NewSet(
	ProvideCoreConfig,
	ProvideLoggingOptions,
	ProvideService,
	wire.Bind(new(CoreService), new(*core.Service)),
	wire.Bind(new(Logger), new(*logger.Logger)),
	wire.Bind(new(logger.Source), new(*core.Service)),
)

// ProvideCoreConfig provides the core service configuration.
func ProvideCoreConfig(cfg *Config) *core.Config {
	if cfg == nil {
		return nil
	}
	return &cfg.Core
}

// ProvideLoggingOptions provides the feature's logger options.
func ProvideLoggingOptions(cfg *Config) logger.Options {
	if cfg == nil {
		return logger.Options{}
	}
	return cfg.Logging
}

// ProvideService provides the feature named by cfg.
func ProvideService(coreSvc CoreService, log Logger, cfg *Config) (*Service, error) {
	if cfg == nil {
		return New(coreSvc, log, "")
	}
	return New(coreSvc, log, cfg.FeatureName)
}
