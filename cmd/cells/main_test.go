package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/cells/internal/config"
	"github.com/vango-dev/cells/internal/errors"
	"github.com/vango-dev/cells/pkg/numeric"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	out, err := run(t, "parse", "10", "10L", "0x1F", "1.5F")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"10", "int", "10"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"10L", "long", "10"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"0x1F", "int", "31"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"1.5F", "float", "1.5"}, strings.Fields(lines[3]))
}

func TestParseCommandError(t *testing.T) {
	_, err := run(t, "parse", "ten")
	require.ErrorIs(t, err, numeric.ErrParse)
	assert.Equal(t, "C010", errors.Classify(err).Code)
}

func TestCalcCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"1", "+", "2.0"}, "3.0 (double)"},
		{[]string{"1", "+", "2L"}, "3 (long)"},
		{[]string{"2F", "*", "3"}, "6.0 (float)"},
		{[]string{"1", "<<", "4"}, "16 (int)"},
		{[]string{"7", "cmp", "7.5"}, "-1 (int)"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := run(t, append([]string{"calc"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}

func TestCalcCommandErrors(t *testing.T) {
	_, err := run(t, "calc", "1", "**", "2")
	assert.Equal(t, "C030", errors.Classify(err).Code)

	_, err = run(t, "calc", "1", "/", "0")
	assert.ErrorIs(t, err, numeric.ErrDivideByZero)

	_, err = run(t, "calc", "1", "+")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, version, strings.TrimSpace(out))
}

func TestDemo(t *testing.T) {
	for _, kind := range []string{config.ExecutorPool, config.ExecutorGo, config.ExecutorInline} {
		t.Run(kind, func(t *testing.T) {
			cfg := config.New()
			cfg.Executor.Kind = kind
			cfg.Log.Level = "error"

			var out, logs bytes.Buffer
			require.NoError(t, runDemo(context.Background(), &out, &logs, cfg, 20))

			text := out.String()
			assert.Contains(t, text, "a = 10, b = 50")
			assert.Contains(t, text, "after unbind, b toggles to false")
			assert.Contains(t, text, `text = "20", parsed = 20 (int)`)
			assert.Contains(t, text, "cells_assignments_total")
			if kind == config.ExecutorPool {
				assert.Contains(t, text, `cells_executor_tasks_completed_total{pool="listeners"} 20`)
			}
		})
	}
}

func TestDemoWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(`{
  "executor": {"kind": "inline"},
  "metrics": {"enabled": false},
  "tracing": {"enabled": true},
  "log": {"level": "error"}
}`), 0644))

	out, err := run(t, "demo", "--config", path, "--updates", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "5 updates, 5 listener calls finished")
	assert.NotContains(t, out, "metrics")
}

func TestDemoBadConfig(t *testing.T) {
	_, err := run(t, "demo", "--config", filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, "C021", errors.Classify(err).Code)
}
