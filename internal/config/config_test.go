package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, cfg.Include)
	assert.Empty(t, cfg.Exclude)
	assert.Equal(t, "any", cfg.Combinator)
	assert.Equal(t, "tests.yaml", cfg.Catalog)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.File)
	assert.NoError(t, cfg.Validate())
}

func TestLoadDefaultFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, DefaultFile, "include:\n  - priority gt 2\n")
	t.Chdir(dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"priority gt 2"}, cfg.Include)
	assert.Equal(t, DefaultFile, cfg.File)
}

func TestLoadExplicitFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "sel.yaml", `
include:
  - priority gt 2
  - with tags smoke, fast
exclude:
  - unstable
combinator: all
catalog: suite/tests.json
workers: 4
log-level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"priority gt 2", "with tags smoke, fast"}, cfg.Include)
	assert.Equal(t, []string{"unstable"}, cfg.Exclude)
	assert.Equal(t, "all", cfg.Combinator)
	assert.Equal(t, "suite/tests.json", cfg.Catalog)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, path, cfg.File)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "sel.yaml", "combinator: all\nworkers: 2\n")
	t.Setenv("TESTSEL_COMBINATOR", "any")
	t.Setenv("TESTSEL_LOG_LEVEL", "error")
	t.Setenv("TESTSEL_INCLUDE", "tags is smoke, fast")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "any", cfg.Combinator)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "error", cfg.LogLevel)
	// one rule, not split on commas or spaces
	assert.Equal(t, []string{"tags is smoke, fast"}, cfg.Include)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yaml", "include: [\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{Combinator: "any", Workers: 1, LogLevel: "info"}

	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{"valid", func(*Config) {}, ""},
		{"and alias", func(c *Config) { c.Combinator = "AND" }, ""},
		{"bad combinator", func(c *Config) { c.Combinator = "xor" }, "combinator"},
		{"zero workers", func(c *Config) { c.Workers = 0 }, "workers"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "log-level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var ve ValidationError
			require.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}
