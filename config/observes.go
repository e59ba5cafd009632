package config

import (
	"time"

	"github.com/spf13/viper"
)

// Sentry config struct
type Sentry struct {
	Dsn         string  `json:"dsn" yaml:"dsn"`
	Environment string  `json:"environment" yaml:"environment"`
	Release     string  `json:"release" yaml:"release"`
	SampleRate  float64 `json:"sample_rate" yaml:"sample_rate"`
}

// getSentryConfig returns nil when no DSN is configured
func getSentryConfig(v *viper.Viper) *Sentry {
	if v.GetString("observes.sentry.dsn") == "" {
		return nil
	}
	return &Sentry{
		Dsn:         v.GetString("observes.sentry.dsn"),
		Environment: v.GetString("observes.sentry.environment"),
		Release:     v.GetString("observes.sentry.release"),
		SampleRate:  getFloat64OrDefault(v, "observes.sentry.sample_rate", 1.0),
	}
}

// Tracer config struct for OpenTelemetry
type Tracer struct {
	Endpoint           string        `json:"endpoint" yaml:"endpoint"` // OTLP gRPC endpoint
	Insecure           bool          `json:"insecure" yaml:"insecure"`
	SamplingRate       float64       `json:"sampling_rate" yaml:"sampling_rate"` // 0.0 to 1.0
	MaxExportBatchSize int           `json:"max_export_batch_size" yaml:"max_export_batch_size"`
	BatchTimeout       time.Duration `json:"batch_timeout" yaml:"batch_timeout"`
	ExportTimeout      time.Duration `json:"export_timeout" yaml:"export_timeout"`
}

// getTracerConfig returns nil when no endpoint is configured
func getTracerConfig(v *viper.Viper) *Tracer {
	if v.GetString("observes.tracer.endpoint") == "" {
		return nil
	}
	return &Tracer{
		Endpoint:           v.GetString("observes.tracer.endpoint"),
		Insecure:           v.GetBool("observes.tracer.insecure"),
		SamplingRate:       getFloat64OrDefault(v, "observes.tracer.sampling_rate", 1.0),
		MaxExportBatchSize: getIntOrDefault(v, "observes.tracer.max_export_batch_size", 512),
		BatchTimeout:       getDurationOrDefault(v, "observes.tracer.batch_timeout", 5*time.Second),
		ExportTimeout:      getDurationOrDefault(v, "observes.tracer.export_timeout", 30*time.Second),
	}
}

// Observes config struct
type Observes struct {
	Sentry *Sentry
	Tracer *Tracer
}

func getObservesConfig(v *viper.Viper) *Observes {
	return &Observes{
		Sentry: getSentryConfig(v),
		Tracer: getTracerConfig(v),
	}
}
