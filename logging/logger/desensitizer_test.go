package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/ncobase/feature/logging/logger/config"
	"github.com/sirupsen/logrus"
)

func TestDesensitizeFields(t *testing.T) {
	d := NewDesensitizer(&config.Desensitization{
		Enabled:         true,
		SensitiveFields: []string{"password", "token"},
		MaskChar:        "*",
		PreserveSuffix:  2,
	})

	out := d.DesensitizeFields(logrus.Fields{
		"user":         "alice",
		"password":     "hunter22",
		"Access_Token": "abcdef",
		"attempts":     3,
		"nested":       map[string]any{"password": "pw", "ok": "yes"},
	})

	if out["user"] != "alice" || out["attempts"] != 3 {
		t.Errorf("expected plain fields untouched, got %v", out)
	}
	if out["password"] != "******22" {
		t.Errorf("unexpected masked password %v", out["password"])
	}
	if out["Access_Token"] != "****ef" {
		t.Errorf("unexpected masked token %v", out["Access_Token"])
	}
	nested := out["nested"].(map[string]any)
	if nested["password"] != "**" || nested["ok"] != "yes" {
		t.Errorf("unexpected nested fields %v", nested)
	}
}

func TestDesensitizeMultiByte(t *testing.T) {
	d := NewDesensitizer(&config.Desensitization{
		Enabled:         true,
		SensitiveFields: []string{"password"},
		MaskChar:        "*",
		PreserveSuffix:  2,
	})

	out := d.DesensitizeFields(logrus.Fields{"password": "pässwörd密码"})
	got, _ := out["password"].(string)
	if got != "********密码" {
		t.Errorf("unexpected masked value %q", got)
	}
	if !utf8.ValidString(got) {
		t.Errorf("expected valid UTF-8, got %q", got)
	}

	out = d.DesensitizeFields(logrus.Fields{"password": "密码"})
	if out["password"] != "**" {
		t.Errorf("expected one mask char per rune, got %v", out["password"])
	}
}

func TestDesensitizeNonString(t *testing.T) {
	d := NewDesensitizer(nil)
	out := d.DesensitizeFields(logrus.Fields{"secret": 42})
	if out["secret"] != "******" {
		t.Errorf("expected fixed mask, got %v", out["secret"])
	}
}

func TestDesensitizerHookMasksOutput(t *testing.T) {
	var buf bytes.Buffer
	l, _ := New(&stubSource{name: "billing"}, Options{
		Level:  LevelInfo,
		Output: &buf,
		Hooks:  []logrus.Hook{NewDesensitizer(nil)},
	})

	l.WithFields(context.Background(), logrus.Fields{"api_key": "sk-123"}).Info("calling")
	if strings.Contains(buf.String(), "sk-123") {
		t.Errorf("expected api key masked, got %q", buf.String())
	}
}

func TestDesensitizerDisabled(t *testing.T) {
	d := NewDesensitizer(&config.Desensitization{Enabled: false, SensitiveFields: []string{"password"}, MaskChar: "*"})
	e := &logrus.Entry{Data: logrus.Fields{"password": "pw"}}
	if err := d.Fire(e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Data["password"] != "pw" {
		t.Errorf("expected value untouched, got %v", e.Data["password"])
	}
}
