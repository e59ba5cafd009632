package core

import (
	"github.com/google/uuid"
	"github.com/ncobase/feature/validator"
	"github.com/ncobase/feature/version"
)

// Environments accepted by Config.Environment.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Config holds what a core service needs to be constructed.
type Config struct {
	AppName     string `json:"app_name" mapstructure:"app_name" validate:"required,max=64"`
	Version     string `json:"version" mapstructure:"version"`
	Environment string `json:"environment" mapstructure:"environment" validate:"omitempty,oneof=development staging production"`
	InstanceID  string `json:"instance_id" mapstructure:"instance_id" validate:"omitempty,uuid"`
}

// normalize returns a copy of c with defaults applied.
func (c Config) normalize() Config {
	if c.Version == "" {
		c.Version = version.Get().Version
	}
	if c.Environment == "" {
		c.Environment = EnvDevelopment
	}
	if c.InstanceID == "" {
		c.InstanceID = uuid.NewString()
	}
	return c
}

// Validate checks c against its field rules.
func (c *Config) Validate() error {
	if c == nil {
		return ErrNilConfig
	}
	if errs := validator.ValidateStruct(c); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
