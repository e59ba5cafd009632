package feature

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ncobase/feature/core"
	"github.com/ncobase/feature/logging/logger"
)

func TestCreateFeature(t *testing.T) {
	var buf bytes.Buffer
	svc, err := CreateFeature(&Config{
		Core:        core.Config{AppName: "core-service", Version: "1"},
		FeatureName: "billing",
		Logging:     logger.Options{Level: logger.LevelInfo, Output: &buf},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.Name() != "billing" {
		t.Errorf("expected name billing, got %q", svc.Name())
	}

	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var msgs []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("invalid log line %q: %v", line, err)
		}
		if entry["feature"] != "billing" || entry["service"] != "core-service" {
			t.Errorf("unexpected fields %v", entry)
		}
		msgs = append(msgs, entry["msg"].(string))
	}

	want := []string{"Feature billing started", "core-service v1 ready"}
	if len(msgs) != 2 || msgs[0] != want[0] || msgs[1] != want[1] {
		t.Errorf("expected %v, got %v", want, msgs)
	}
}

func TestCreateFeatureCoreFailure(t *testing.T) {
	svc, err := CreateFeature(&Config{
		FeatureName: "billing",
		Logging:     logger.Options{Level: logger.LevelInfo},
	})
	if svc != nil {
		t.Error("expected no service")
	}
	if !errors.Is(err, core.ErrInvalidConfig) {
		t.Fatalf("expected core config error, got %v", err)
	}
}

func TestCreateFeatureNilConfig(t *testing.T) {
	if _, err := CreateFeature(nil); !errors.Is(err, core.ErrNilConfig) {
		t.Errorf("expected ErrNilConfig, got %v", err)
	}
}

func TestCreateFeatureLoggerFailure(t *testing.T) {
	svc, err := CreateFeature(&Config{
		Core:        core.Config{AppName: "core-service"},
		FeatureName: "billing",
	})
	if svc != nil {
		t.Error("expected no service")
	}
	if !errors.Is(err, logger.ErrLevelRequired) {
		t.Fatalf("expected logger level error, got %v", err)
	}
}

func TestCreateFeatureErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	svc, err := CreateFeature(&Config{
		Core:        core.Config{AppName: "core-service"},
		FeatureName: "billing",
		Logging:     logger.Options{Level: logger.LevelError, Output: &buf},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected info lines filtered at error level, got %q", buf.String())
	}
}
