package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	logcfg "github.com/ncobase/feature/logging/logger/config"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. FEATURE_LOGGER_LEVEL.
const EnvPrefix = "FEATURE"

// Config represents the configuration implementation.
type Config struct {
	AppName     string
	RunMode     string
	Version     string
	Environment string
	Logger      *logcfg.Config
	Observes    *Observes
	Features    []*Feature
	Viper       *viper.Viper
}

// LoadConfig loads the configuration from the file. An empty path searches
// the default locations for config.{yaml,json,toml}.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.featured")
		v.AddConfigPath("/etc/featured")
		if ex, err := os.Executable(); err == nil {
			v.AddConfigPath(filepath.Dir(ex))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return fromViper(v)
}

// fromViper builds a Config from already loaded settings.
func fromViper(v *viper.Viper) (*Config, error) {
	features, err := getFeatureConfigs(v)
	if err != nil {
		return nil, err
	}

	return &Config{
		AppName:     v.GetString("app_name"),
		RunMode:     v.GetString("run_mode"),
		Version:     v.GetString("version"),
		Environment: v.GetString("environment"),
		Logger:      logcfg.GetConfig(v),
		Observes:    getObservesConfig(v),
		Features:    features,
		Viper:       v,
	}, nil
}

// Watch reloads the configuration whenever its file changes and passes
// the result to callback. Reload errors go to onError when it is set.
func (c *Config) Watch(callback func(*Config), onError func(error)) {
	v := c.Viper
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		reloaded, err := fromViper(v)
		if err != nil {
			if onError != nil {
				onError(fmt.Errorf("failed to reload config: %w", err))
			}
			return
		}
		callback(reloaded)
	})
	v.WatchConfig()
}
