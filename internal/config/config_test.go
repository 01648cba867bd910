package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/cells/internal/errors"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Executor.Kind != DefaultExecutor {
		t.Errorf("Executor.Kind = %q, want %q", cfg.Executor.Kind, DefaultExecutor)
	}
	if cfg.Executor.Workers != DefaultWorkers {
		t.Errorf("Executor.Workers = %d, want %d", cfg.Executor.Workers, DefaultWorkers)
	}
	if !cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled should default to true")
	}
	if cfg.Metrics.Namespace != DefaultNamespace {
		t.Errorf("Metrics.Namespace = %q, want %q", cfg.Metrics.Namespace, DefaultNamespace)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeConfig(t, `{
  "executor": {
    "kind": "go"
  },
  "metrics": {
    "namespace": "demo"
  },
  "log": {
    "level": "debug",
    "format": "json"
  }
}
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Executor.Kind != ExecutorGo {
		t.Errorf("Executor.Kind = %q, want %q", cfg.Executor.Kind, ExecutorGo)
	}
	if cfg.Executor.Queue != DefaultQueue {
		t.Errorf("Executor.Queue = %d, want default %d", cfg.Executor.Queue, DefaultQueue)
	}
	if !cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled should keep its default")
	}
	if cfg.Metrics.Namespace != "demo" {
		t.Errorf("Metrics.Namespace = %q, want %q", cfg.Metrics.Namespace, "demo")
	}
	if cfg.LogLevel() != slog.LevelDebug {
		t.Errorf("LogLevel() = %v, want debug", cfg.LogLevel())
	}
	if cfg.Path() != filepath.Join(dir, ConfigFileName) {
		t.Errorf("Path() = %q", cfg.Path())
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing config")
	}
	if e := errors.Classify(err); e.Code != "C021" {
		t.Errorf("Code = %q, want C021", e.Code)
	}
}

func TestLoadSyntaxErrorHasLocation(t *testing.T) {
	dir := writeConfig(t, "{\n  \"executor\": {\n    \"workers\": 4,,\n  }\n}\n")

	_, err := Load(dir)
	e := errors.Classify(err)
	if e.Code != "C022" {
		t.Fatalf("Code = %q, want C022", e.Code)
	}
	if e.Location == nil || e.Location.Line != 3 {
		t.Fatalf("Location = %v, want line 3", e.Location)
	}
	if len(e.Context) == 0 {
		t.Error("expected context lines")
	}
}

func TestLoadTypeError(t *testing.T) {
	dir := writeConfig(t, `{"executor": {"workers": "four"}}`)

	_, err := Load(dir)
	e := errors.Classify(err)
	if e.Code != "C022" {
		t.Fatalf("Code = %q, want C022", e.Code)
	}
	if e.Location == nil || e.Location.Line != 1 {
		t.Errorf("Location = %v, want line 1", e.Location)
	}
}

func TestLoadUnknownField(t *testing.T) {
	dir := writeConfig(t, `{"executr": {}}`)

	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		detail string
	}{
		{"unknown executor", func(c *Config) { c.Executor.Kind = "threads" }, "executor.kind"},
		{"no workers", func(c *Config) { c.Executor.Workers = 0 }, "executor.workers"},
		{"negative queue", func(c *Config) { c.Executor.Queue = -1 }, "executor.queue"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.modify(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			e := errors.Classify(err)
			if e.Code != "C020" {
				t.Errorf("Code = %q, want C020", e.Code)
			}
			if !strings.Contains(e.Detail, tt.detail) {
				t.Errorf("Detail = %q, want mention of %q", e.Detail, tt.detail)
			}
		})
	}
}

func TestLoadValidates(t *testing.T) {
	dir := writeConfig(t, `{"executor": {"workers": -2}}`)
	if _, err := Load(dir); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := New()
	cfg.Executor.Kind = ExecutorInline
	cfg.Tracing.Enabled = true

	if err := cfg.Save(); err == nil {
		t.Error("Save() without a path should fail")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}
	if !Exists(dir) {
		t.Fatal("Exists() = false after SaveTo")
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if loaded.Executor.Kind != ExecutorInline || !loaded.Tracing.Enabled {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestLogger(t *testing.T) {
	cfg := New()
	cfg.Log.Format = "json"
	cfg.Log.Level = "warn"

	var buf bytes.Buffer
	logger := cfg.Logger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "cell", "cell#1")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info record should be filtered at warn level")
	}
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"cell":"cell#1"`) {
		t.Errorf("unexpected log output: %s", out)
	}
}
