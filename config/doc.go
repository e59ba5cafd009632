// Package config loads application configuration with viper.
//
// A minimal config.yaml:
//
//	app_name: shop
//	version: 1.4.0
//	environment: production
//	logger:
//	  format: json
//	  output: stdout
//	features:
//	  - name: accounts
//	  - name: billing
//	    log_level: debug
//	    depends_on: [accounts]
//
// Every key can be overridden from the environment with the FEATURE_
// prefix, e.g. FEATURE_LOGGER_LEVEL=debug.
package config
