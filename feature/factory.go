package feature

import (
	"github.com/ncobase/feature/core"
	"github.com/ncobase/feature/logging/logger"
)

// Config is a core service configuration plus the feature's own settings.
type Config struct {
	Core        core.Config    `mapstructure:",squash"`
	FeatureName string         `json:"name" mapstructure:"name"`
	Logging     logger.Options `json:"-" mapstructure:"-"`
	DependsOn   []string       `json:"depends_on" mapstructure:"depends_on"`
}

// CreateFeature builds the core service from cfg, binds a logger to it and
// returns the feature. Construction errors are returned unchanged.
func CreateFeature(cfg *Config) (*Service, error) {
	if cfg == nil {
		return nil, core.ErrNilConfig
	}
	coreSvc, err := core.New(&cfg.Core)
	if err != nil {
		return nil, err
	}
	log, err := logger.New(coreSvc, cfg.Logging)
	if err != nil {
		return nil, err
	}
	return New(coreSvc, log, cfg.FeatureName)
}
