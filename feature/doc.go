// Package feature composes a core service and a logger into a startable
// feature, and starts sets of features in dependency order.
//
// Collaborators can be injected directly:
//
//	svc, err := feature.New(coreSvc, log, "billing")
//
// or built from configuration, with the verbosity stated by the caller:
//
//	svc, err := feature.CreateFeature(&feature.Config{
//	    Core:        core.Config{AppName: "shop"},
//	    FeatureName: "billing",
//	    Logging:     logger.Options{Level: logger.LevelInfo},
//	})
//	if err != nil {
//	    return err
//	}
//	return svc.Start(ctx)
package feature
