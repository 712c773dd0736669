package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	line := strings.TrimSpace(buf.String())
	var out map[string]interface{}
	if err := json.Unmarshal([]byte(line), &out); err != nil {
		t.Fatalf("expected a JSON log line, got %q: %v", line, err)
	}
	return out
}

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.Service() != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.Service())
	}
}

func TestNewWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "debug", Format: FormatJSON}, &buf, "utilkit")
	l.Info("hello", Fields("key", "value"))

	out := decodeLine(t, &buf)
	if out["message"] != "hello" {
		t.Errorf("expected message 'hello', got %v", out["message"])
	}
	if out["key"] != "value" {
		t.Errorf("expected key=value, got %v", out["key"])
	}
	if out[FieldService] != "utilkit" {
		t.Errorf("expected service=utilkit, got %v", out[FieldService])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "warn", Format: FormatJSON}, &buf, "")
	l.Debug("hidden")
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected debug/info to be filtered, got %q", buf.String())
	}
	l.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected warn line, got %q", buf.String())
	}
}

func TestNewInvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "invalid-level", Format: FormatJSON}, &buf, "")
	l.Info("still logs at info")
	if !strings.Contains(buf.String(), "still logs at info") {
		t.Error("expected invalid level to fall back to info")
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "info", Format: FormatJSON}, &buf, "test")
	cl := l.WithComponent("util")
	if cl.Service() != "test" {
		t.Errorf("service should be preserved, got %q", cl.Service())
	}
	cl.Info("tagged")
	out := decodeLine(t, &buf)
	if out[FieldComponent] != "util" {
		t.Errorf("expected component=util, got %v", out[FieldComponent])
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "info", Format: FormatJSON}, &buf, "")
	l.WithError(errors.New("boom")).Error("failed")
	out := decodeLine(t, &buf)
	if out["error"] != "boom" {
		t.Errorf("expected error=boom, got %v", out["error"])
	}
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "info", Format: FormatConsole, NoColor: true}, &buf, "utilkit")
	l.Info("console line")
	got := buf.String()
	if !strings.Contains(got, "[UTI][INF]") {
		t.Errorf("expected service and level tags, got %q", got)
	}
	if !strings.Contains(got, "console line") {
		t.Errorf("expected message, got %q", got)
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error("nothing happens")
}

func TestGlobalLogger(t *testing.T) {
	prev := globalLogger
	defer SetGlobalLogger(prev)

	globalLogger = nil
	if GetGlobalLogger() == nil {
		t.Fatal("expected default global logger to be created")
	}

	custom := Nop()
	SetGlobalLogger(custom)
	if GetGlobalLogger() != custom {
		t.Error("expected SetGlobalLogger to set the global logger")
	}

	Init(&Config{Level: "error", Format: FormatJSON, Output: "discard"}, "init-svc")
	if GetGlobalLogger().Service() != "init-svc" {
		t.Errorf("expected Init to replace the global logger")
	}
	Debug("debug msg")
	Info("info msg")
	Warn("warn msg")
	Error("error msg")
}

func TestRegistry(t *testing.T) {
	l := Nop()
	Register("custom-component", l)
	if Get("custom-component") != l {
		t.Error("expected registered logger to be returned")
	}
	if Get("unregistered-component") == nil {
		t.Error("expected fallback logger for unregistered name")
	}
	found := false
	for _, name := range Registered() {
		if name == "custom-component" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected custom-component in %v", Registered())
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("expected level 'info', got %q", cfg.Level)
	}
	if cfg.Format != FormatConsole {
		t.Errorf("expected format 'console', got %q", cfg.Format)
	}
	if cfg.Output != "stderr" {
		t.Errorf("expected output 'stderr', got %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected Timestamp to be true")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "info", Format: "json", Output: "stdout"}, false},
		{"valid console", Config{Level: "debug", Format: "console", Output: "stderr"}, false},
		{"invalid level", Config{Level: "bad", Format: "json", Output: "stdout"}, true},
		{"invalid format", Config{Level: "info", Format: "xml", Output: "stdout"}, true},
		{"invalid output", Config{Level: "info", Format: "json", Output: "file"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestFieldsHelpers(t *testing.T) {
	f := Fields("a", 1, "b")
	if len(f) != 1 || f["a"] != 1 {
		t.Errorf("expected odd trailing key to be dropped, got %v", f)
	}
	ef := ErrorFields("decode", errors.New("bad"))
	if ef[FieldOperation] != "decode" || ef[FieldError] != "bad" {
		t.Errorf("unexpected error fields %v", ef)
	}
	df := DurationFields("countdown", 1500*time.Millisecond)
	if df[FieldDuration] != int64(1500) {
		t.Errorf("expected duration_ms=1500, got %v", df[FieldDuration])
	}
}
