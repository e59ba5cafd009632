package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/ncobase/feature/config"
	"github.com/ncobase/feature/feature"
	"github.com/ncobase/feature/logging/logger"
	"github.com/ncobase/feature/logging/observes"
	"github.com/sirupsen/logrus"
)

// featureUnit is a feature together with the logger bound to its core.
type featureUnit struct {
	service *feature.Service
	logger  *logger.Logger
}

func newFeatureUnit(svc *feature.Service, log *logger.Logger) *featureUnit {
	return &featureUnit{service: svc, logger: log}
}

// app holds the features built from one configuration.
type app struct {
	manager *feature.Manager
	loggers map[string]*logger.Logger
}

// newApp builds and registers every configured feature. Telemetry hooks are
// appended to the shared logger options.
func newApp(cfg *config.Config, opts logger.Options, hooks []logrus.Hook) (*app, error) {
	opts.Hooks = append(opts.Hooks[:len(opts.Hooks):len(opts.Hooks)], hooks...)

	a := &app{
		manager: feature.NewManager(),
		loggers: make(map[string]*logger.Logger, len(cfg.Features)),
	}
	for _, fc := range cfg.FeatureConfigs(opts) {
		unit, err := newFeature(fc)
		if err != nil {
			return nil, fmt.Errorf("failed to create feature %s: %w", fc.FeatureName, err)
		}
		if err := a.manager.Register(unit.service, fc.DependsOn...); err != nil {
			return nil, err
		}
		a.loggers[fc.FeatureName] = unit.logger
	}
	return a, nil
}

// provideTelemetry starts Sentry and the tracer when configured. The
// returned hooks forward error entries to Sentry.
func provideTelemetry(cfg *config.Config, obs *config.Observes) ([]logrus.Hook, func(), error) {
	var (
		hooks    []logrus.Hook
		cleanups []func()
	)
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}
	if obs == nil {
		return nil, cleanup, nil
	}

	if s := obs.Sentry; s != nil {
		flush, err := observes.NewSentry(&observes.SentryOptions{
			Dsn:         s.Dsn,
			Name:        cfg.AppName,
			Release:     s.Release,
			Environment: s.Environment,
			SampleRate:  s.SampleRate,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to set up sentry: %w", err)
		}
		cleanups = append(cleanups, flush)
		hooks = append(hooks, logger.NewSentryHook(nil))
	}

	if t := obs.Tracer; t != nil {
		shutdown, err := observes.NewTracer(&observes.TracerOption{
			URL:                t.Endpoint,
			Insecure:           t.Insecure,
			Name:               cfg.AppName,
			Version:            cfg.Version,
			Environment:        cfg.Environment,
			SamplingRate:       t.SamplingRate,
			BatchTimeout:       t.BatchTimeout,
			ExportTimeout:      t.ExportTimeout,
			MaxExportBatchSize: t.MaxExportBatchSize,
		})
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to set up tracer: %w", err)
		}
		cleanups = append(cleanups, func() { _ = shutdown(context.Background()) })
	}

	return hooks, cleanup, nil
}

// applyLevels sets each running feature's log level from next. Features
// that are not running are ignored.
func (a *app) applyLevels(next *config.Config) error {
	var errs []error
	for _, f := range next.Features {
		l, ok := a.loggers[f.Name]
		if !ok {
			continue
		}
		if err := l.SetLevel(f.LogLevel); err != nil {
			errs = append(errs, fmt.Errorf("feature %s: %w", f.Name, err))
		}
	}
	return errors.Join(errs...)
}

// watch applies log levels from every later change of cfg's file.
func (a *app) watch(cfg *config.Config, onError func(error)) {
	cfg.Watch(func(next *config.Config) {
		if err := a.applyLevels(next); err != nil {
			onError(err)
		}
	}, onError)
}
