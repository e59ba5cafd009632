package config

import (
	"fmt"

	"github.com/ncobase/feature/core"
	"github.com/ncobase/feature/feature"
	"github.com/ncobase/feature/logging/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DefaultFeatureLogLevel is the verbosity of a feature that does not set one.
const DefaultFeatureLogLevel = logger.LevelInfo

// Feature feature config struct
type Feature struct {
	Name      string       `json:"name" mapstructure:"name"`
	LogLevel  logger.Level `json:"log_level" mapstructure:"log_level"`
	DependsOn []string     `json:"depends_on" mapstructure:"depends_on"`
}

// getFeatureConfigs reads the features list and checks names
func getFeatureConfigs(v *viper.Viper) ([]*Feature, error) {
	var features []*Feature
	if err := v.UnmarshalKey("features", &features); err != nil {
		return nil, fmt.Errorf("failed to decode features: %w", err)
	}

	seen := make(map[string]bool, len(features))
	for i, f := range features {
		if f == nil || f.Name == "" {
			return nil, fmt.Errorf("features[%d]: name is required", i)
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("features[%d]: duplicate name %q", i, f.Name)
		}
		seen[f.Name] = true
		if f.LogLevel == "" {
			f.LogLevel = DefaultFeatureLogLevel
		}
	}
	return features, nil
}

// FeatureConfigs builds one feature config per configured feature. Each
// shares the application's core fields and the base logger options, with
// the feature's own level.
func (c *Config) FeatureConfigs(base logger.Options) []*feature.Config {
	out := make([]*feature.Config, 0, len(c.Features))
	for _, f := range c.Features {
		logging := base
		logging.Level = f.LogLevel
		logging.Hooks = append([]logrus.Hook(nil), base.Hooks...)

		out = append(out, &feature.Config{
			Core: core.Config{
				AppName:     c.AppName,
				Version:     c.Version,
				Environment: c.Environment,
			},
			FeatureName: f.Name,
			Logging:     logging,
			DependsOn:   append([]string(nil), f.DependsOn...),
		})
	}
	return out
}
