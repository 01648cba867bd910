package config

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vango-dev/cells/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "cells.json"

	// DefaultExecutor is the default asynchronous listener executor.
	DefaultExecutor = ExecutorPool

	// DefaultWorkers is the default number of pool workers.
	DefaultWorkers = 4

	// DefaultQueue is the default pool queue length.
	DefaultQueue = 64

	// DefaultNamespace is the default Prometheus namespace.
	DefaultNamespace = "cells"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the default log format.
	DefaultLogFormat = "text"
)

// Executor kinds.
const (
	ExecutorPool   = "pool"
	ExecutorGo     = "go"
	ExecutorInline = "inline"
)

// Config represents the complete cells.json configuration.
type Config struct {
	// Executor configures where asynchronous listeners run.
	Executor ExecutorConfig `json:"executor"`

	// Metrics configures the Prometheus collectors.
	Metrics MetricsConfig `json:"metrics"`

	// Tracing configures OpenTelemetry spans.
	Tracing TracingConfig `json:"tracing"`

	// Log configures the slog logger.
	Log LogConfig `json:"log"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ExecutorConfig selects the executor used by asynchronous listeners.
type ExecutorConfig struct {
	// Kind is "pool", "go" or "inline".
	Kind string `json:"kind,omitempty"`

	// Workers is the number of pool goroutines.
	Workers int `json:"workers,omitempty"`

	// Queue is the number of tasks a pool buffers before extra tasks run on
	// goroutines of their own.
	Queue int `json:"queue,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	Enabled bool `json:"enabled"`

	// Namespace prefixes every metric name.
	Namespace string `json:"namespace,omitempty"`

	// Subsystem is inserted between namespace and metric name.
	Subsystem string `json:"subsystem,omitempty"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	Enabled bool `json:"enabled"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	// Level is "debug", "info", "warn" or "error".
	Level string `json:"level,omitempty"`

	// Format is "text" or "json".
	Format string `json:"format,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Executor: ExecutorConfig{
			Kind:    DefaultExecutor,
			Workers: DefaultWorkers,
			Queue:   DefaultQueue,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: DefaultNamespace,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Load reads cells.json from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path. Syntax errors
// carry the line and column of the offending byte.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("C021").
				WithDetail("No " + filepath.Base(path) + " found in " + filepath.Dir(path)).
				WithSuggestion("Run 'cells demo' without --config to use the defaults")
		}
		return nil, errors.New("C021").Wrap(err)
	}

	cfg := New()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		e := errors.New("C022").Wrap(err)
		if offset, ok := errorOffset(err); ok {
			line, col := position(data, offset)
			e = e.WithLocation(path, line, col)
		}
		return nil, e
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// errorOffset returns the input offset a decoding error points at.
func errorOffset(err error) (int64, bool) {
	var syntaxErr *json.SyntaxError
	if stderrors.As(err, &syntaxErr) {
		return syntaxErr.Offset, true
	}
	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		return typeErr.Offset, true
	}
	return 0, false
}

// position converts a byte offset into a 1-based line and column.
func position(data []byte, offset int64) (line, col int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	prefix := data[:offset]
	line = bytes.Count(prefix, []byte("\n")) + 1
	col = int(offset) - bytes.LastIndexByte(prefix, '\n')
	return line, col
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("C020").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("C021").Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Executor.Kind == "" {
		c.Executor.Kind = DefaultExecutor
	}
	if c.Executor.Workers == 0 {
		c.Executor.Workers = DefaultWorkers
	}
	if c.Executor.Queue == 0 {
		c.Executor.Queue = DefaultQueue
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Executor.Kind {
	case ExecutorPool, ExecutorGo, ExecutorInline:
	default:
		return errors.New("C020").
			WithDetail("executor.kind must be \"pool\", \"go\" or \"inline\", got \"" + c.Executor.Kind + "\"")
	}
	if c.Executor.Workers < 1 {
		return errors.New("C020").
			WithDetail("executor.workers must be at least 1")
	}
	if c.Executor.Queue < 0 {
		return errors.New("C020").
			WithDetail("executor.queue must not be negative")
	}
	if _, ok := parseLevel(c.Log.Level); !ok {
		return errors.New("C020").
			WithDetail("log.level must be debug, info, warn or error, got \"" + c.Log.Level + "\"")
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("C020").
			WithDetail("log.format must be \"text\" or \"json\", got \"" + c.Log.Format + "\"")
	}
	return nil
}

// LogLevel returns the configured slog level.
func (c *Config) LogLevel() slog.Level {
	level, _ := parseLevel(c.Log.Level)
	return level
}

// Logger builds the configured logger writing to w.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel()}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, bool) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelInfo, false
	}
	return level, true
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}
