package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func newJSONLogger(buf *bytes.Buffer, level string) *Logger {
	return NewWithWriter(&Config{Level: level, Format: "json"}, buf, "svc")
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := newJSONLogger(&buf, "debug")

	l.Info("loaded", Fields("url", "http://x", "status", 200))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON line, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "loaded" {
		t.Errorf("expected message 'loaded', got %v", entry["message"])
	}
	if entry["service"] != "svc" {
		t.Errorf("expected service 'svc', got %v", entry["service"])
	}
	if entry["status"] != float64(200) {
		t.Errorf("expected status 200, got %v", entry["status"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := newJSONLogger(&buf, "warn")

	l.Debug("hidden")
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected nothing below warn, got %q", buf.String())
	}
	l.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected warn entry, got %q", buf.String())
	}
}

func TestInvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := newJSONLogger(&buf, "nope")

	l.Debug("hidden")
	l.Info("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected info level, got %q", buf.String())
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := newJSONLogger(&buf, "info").WithComponent("webservice")
	l.Info("x")
	if !strings.Contains(buf.String(), `"component":"webservice"`) {
		t.Errorf("expected component field, got %q", buf.String())
	}
	if l.service != "svc" {
		t.Errorf("service should be preserved, got %q", l.service)
	}
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	l := newJSONLogger(&buf, "info").WithFields(map[string]interface{}{"env": "test"})
	l.Info("x")
	if !strings.Contains(buf.String(), `"env":"test"`) {
		t.Errorf("expected env field, got %q", buf.String())
	}
}

func TestFields(t *testing.T) {
	m := Fields("a", 1, "b", "two", 3, "skipped", "dangling")
	if len(m) != 2 {
		t.Fatalf("expected 2 fields, got %v", m)
	}
	if m["a"] != 1 || m["b"] != "two" {
		t.Errorf("unexpected fields %v", m)
	}
}

func TestErrorFieldsAndMerge(t *testing.T) {
	err := errors.New("boom")
	f := ErrorFields("load", err)
	if f[FieldOperation] != "load" || f[FieldError] != "boom" {
		t.Errorf("unexpected fields %v", f)
	}
	merged := MergeWithError(nil, err)
	if merged[FieldError] != "boom" {
		t.Errorf("expected error field, got %v", merged)
	}
}

func TestConfigDefaultsAndValidate(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Level != "info" || cfg.Format != "console" || cfg.Output != "stdout" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}

	cfg.Level = "loud"
	if err := cfg.Validate(); err == nil {
		t.Error("expected invalid level error")
	}
}

func TestGetRegistered(t *testing.T) {
	var buf bytes.Buffer
	l := newJSONLogger(&buf, "info")
	Register("registered-test", l)
	if Get("registered-test") != l {
		t.Error("expected registered logger")
	}
	if Get("unregistered-test") == nil {
		t.Error("expected fallback logger")
	}
}
