//go:build wireinject

package commands

import (
	"github.com/google/wire"
	"github.com/ncobase/feature/config"
	"github.com/ncobase/feature/core"
	"github.com/ncobase/feature/feature"
	"github.com/ncobase/feature/logging/logger"
)

// initializeApp builds the logger options, telemetry and every configured
// feature from cfg. The cleanup function closes log outputs and flushes
// telemetry.
func initializeApp(cfg *config.Config) (*app, func(), error) {
	panic(wire.Build(
		config.ProviderSet,
		logger.OptionsFromConfig,
		provideTelemetry,
		newApp,
	))
}

// newFeature builds one feature: its core service, a logger bound to that
// core and the feature wrapping both.
func newFeature(cfg *feature.Config) (*featureUnit, error) {
	panic(wire.Build(
		feature.ProviderSet,
		core.ProviderSet,
		logger.ProviderSet,
		newFeatureUnit,
	))
}
