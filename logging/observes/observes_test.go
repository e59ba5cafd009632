package observes

import (
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
)

func TestNewSentryNilOptions(t *testing.T) {
	flush, err := NewSentry(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	flush()
}

func TestNewSentryInvalidDsn(t *testing.T) {
	if _, err := NewSentry(&SentryOptions{Dsn: "not a dsn"}); err == nil {
		t.Error("expected error for invalid dsn")
	}
}

func TestNewTracerNilOptions(t *testing.T) {
	if _, err := NewTracer(nil); err == nil {
		t.Error("expected error for nil options")
	}
}

func TestNewResource(t *testing.T) {
	res := newResource(&TracerOption{Name: "shop", Version: "1.4.0", Environment: "staging"})
	v, ok := res.Set().Value(attribute.Key("service.name"))
	if !ok || v.AsString() != "shop" {
		t.Errorf("unexpected service.name %v", v)
	}
}

func TestBatchOptions(t *testing.T) {
	if got := batchOptions(&TracerOption{}); len(got) != 0 {
		t.Errorf("expected no options for zero values, got %d", len(got))
	}
	got := batchOptions(&TracerOption{MaxExportBatchSize: 10, BatchTimeout: time.Second, ExportTimeout: time.Second})
	if len(got) != 3 {
		t.Errorf("expected 3 options, got %d", len(got))
	}
}
