package observes

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// TracerOption configures the OTLP tracer provider.
type TracerOption struct {
	URL                string
	Insecure           bool
	Name               string
	Version            string
	Environment        string
	SamplingRate       float64
	BatchTimeout       time.Duration
	ExportTimeout      time.Duration
	MaxExportBatchSize int
}

// NewTracer installs a global tracer provider exporting over OTLP gRPC and
// returns its shutdown function.
func NewTracer(opt *TracerOption) (func(context.Context) error, error) {
	if opt == nil {
		return nil, fmt.Errorf("tracer config is nil")
	}

	clientOpts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(opt.URL)}
	if opt.Insecure {
		clientOpts = append(clientOpts, otlptracegrpc.WithInsecure())
	}
	exp, err := otlptracegrpc.New(context.Background(), clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(opt.SamplingRate))),
		sdktrace.WithBatcher(exp, batchOptions(opt)...),
		sdktrace.WithResource(newResource(opt)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	return tp.Shutdown, nil
}

func newResource(opt *TracerOption) *resource.Resource {
	return resource.NewSchemaless(
		attribute.String("service.name", opt.Name),
		attribute.String("service.version", opt.Version),
		attribute.String("deployment.environment", opt.Environment),
	)
}

func batchOptions(opt *TracerOption) []sdktrace.BatchSpanProcessorOption {
	var opts []sdktrace.BatchSpanProcessorOption
	if opt.MaxExportBatchSize > 0 {
		opts = append(opts, sdktrace.WithMaxExportBatchSize(opt.MaxExportBatchSize))
	}
	if opt.BatchTimeout > 0 {
		opts = append(opts, sdktrace.WithBatchTimeout(opt.BatchTimeout))
	}
	if opt.ExportTimeout > 0 {
		opts = append(opts, sdktrace.WithExportTimeout(opt.ExportTimeout))
	}
	return opts
}
