package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ncobase/feature/ctxutil"
	"github.com/sirupsen/logrus"
)

type stubSource struct {
	name string
	info string
}

func (s *stubSource) Name() string        { return s.name }
func (s *stubSource) ServiceInfo() string { return s.info }

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid json line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestNewErrors(t *testing.T) {
	src := &stubSource{name: "billing"}

	if _, err := New(nil, Options{Level: LevelInfo}); !errors.Is(err, ErrNilSource) {
		t.Errorf("expected ErrNilSource, got %v", err)
	}
	if _, err := New(src, Options{}); !errors.Is(err, ErrLevelRequired) {
		t.Errorf("expected ErrLevelRequired, got %v", err)
	}
	if _, err := New(src, Options{Level: "loud"}); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("expected ErrUnknownLevel, got %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[Level]logrus.Level{
		LevelDebug: logrus.DebugLevel,
		LevelInfo:  logrus.InfoLevel,
		LevelWarn:  logrus.WarnLevel,
		LevelError: logrus.ErrorLevel,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
}

func TestLogWritesServiceAndContextFields(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&stubSource{name: "billing"}, Options{Level: LevelInfo, Output: &buf})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := ctxutil.SetTraceID(context.Background(), "trace-1")
	ctx = ctxutil.SetFeature(ctx, "invoices")
	if err := l.Log(ctx, "Feature invoices started"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	line := lines[0]
	if line["msg"] != "Feature invoices started" {
		t.Errorf("unexpected msg %v", line["msg"])
	}
	if line["level"] != "info" {
		t.Errorf("unexpected level %v", line["level"])
	}
	if line[ServiceKey] != "billing" {
		t.Errorf("unexpected service %v", line[ServiceKey])
	}
	if line[ctxutil.TraceIDKey] != "trace-1" || line[ctxutil.FeatureKey] != "invoices" {
		t.Errorf("missing context fields: %v", line)
	}
}

func TestLogCanceledContext(t *testing.T) {
	var buf bytes.Buffer
	l, _ := New(&stubSource{name: "billing"}, Options{Level: LevelInfo, Output: &buf})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := l.Log(ctx, "dropped"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected nothing written, got %q", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l, _ := New(&stubSource{name: "billing"}, Options{Level: LevelWarn, Output: &buf})

	ctx := context.Background()
	if err := l.Log(ctx, "info is filtered"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l.Debugf(ctx, "debug %d", 1)
	l.Warnf(ctx, "warn %d", 2)

	lines := decodeLines(t, &buf)
	if len(lines) != 1 || lines[0]["msg"] != "warn 2" {
		t.Errorf("expected only the warning, got %v", lines)
	}
	if l.Level() != logrus.WarnLevel {
		t.Errorf("unexpected level %v", l.Level())
	}
}

func TestGetServiceInfoReadsSourceAtCallTime(t *testing.T) {
	src := &stubSource{name: "billing", info: "billing v1 not initialized"}
	l, _ := New(src, Options{Level: LevelInfo, Output: &bytes.Buffer{}})

	if got := l.GetServiceInfo(); got != "billing v1 not initialized" {
		t.Errorf("unexpected info %q", got)
	}
	src.info = "billing v1 ready"
	if got := l.GetServiceInfo(); got != "billing v1 ready" {
		t.Errorf("unexpected info %q", got)
	}
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	l, _ := New(&stubSource{name: "billing"}, Options{Level: LevelInfo, Format: "text", Output: &buf})
	_ = l.Log(context.Background(), "hello")
	if !strings.Contains(buf.String(), "msg=hello") || !strings.Contains(buf.String(), "service=billing") {
		t.Errorf("unexpected text output %q", buf.String())
	}
}

type recordingHook struct {
	entries []*logrus.Entry
}

func (h *recordingHook) Levels() []logrus.Level { return logrus.AllLevels }
func (h *recordingHook) Fire(e *logrus.Entry) error {
	h.entries = append(h.entries, e)
	return nil
}

func TestOptionsHooksFire(t *testing.T) {
	hook := &recordingHook{}
	l, _ := New(&stubSource{name: "billing"}, Options{Level: LevelInfo, Output: &bytes.Buffer{}, Hooks: []logrus.Hook{hook}})

	l.WithFields(context.Background(), logrus.Fields{"k": "v"}).Info("with fields")
	if len(hook.entries) != 1 || hook.entries[0].Data["k"] != "v" {
		t.Errorf("expected hook to see the entry, got %v", hook.entries)
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l, _ := New(&stubSource{name: "billing"}, Options{Level: LevelInfo, Output: &buf})
	ctx := context.Background()

	if err := l.SetLevel(LevelError); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = l.Log(ctx, "filtered")
	if buf.Len() != 0 {
		t.Errorf("expected info filtered after SetLevel, got %q", buf.String())
	}

	if err := l.SetLevel(""); !errors.Is(err, ErrLevelRequired) {
		t.Errorf("expected ErrLevelRequired, got %v", err)
	}
	if err := l.SetLevel("loud"); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("expected ErrUnknownLevel, got %v", err)
	}
	if l.Level() != logrus.ErrorLevel {
		t.Errorf("expected level unchanged by invalid input, got %v", l.Level())
	}
}
