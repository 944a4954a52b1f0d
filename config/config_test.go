package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/envgate/envgate/config"
)

func TestLoad_Defaults(t *testing.T) {
	// Load with no config files should use defaults
	cfg, err := config.Load(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "env.yaml", cfg.Manifest.Path)
	assert.Equal(t, "NEXT_PUBLIC_", cfg.Prefix)
	assert.Equal(t, "SKIP_ENV_VALIDATION", cfg.SkipVar)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_ConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "envgate.yaml")

	configContent := `
manifest:
  path: schemas/env.yaml
prefix: PUBLIC_
skip_var: CI_SKIP_ENV
log:
  level: debug
  format: json
`
	err := os.WriteFile(configPath, []byte(configContent), 0o644)
	require.NoError(t, err)

	cfg, err := config.Load([]string{configPath}, nil)
	require.NoError(t, err)

	assert.Equal(t, "schemas/env.yaml", cfg.Manifest.Path)
	assert.Equal(t, "PUBLIC_", cfg.Prefix)
	assert.Equal(t, "CI_SKIP_ENV", cfg.SkipVar)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_ConfigFileMerge(t *testing.T) {
	tmpDir := t.TempDir()

	basePath := filepath.Join(tmpDir, "base.yaml")
	baseContent := `
manifest:
  path: env.yaml
prefix: NEXT_PUBLIC_
log:
  level: info
  format: text
`
	require.NoError(t, os.WriteFile(basePath, []byte(baseContent), 0o644))

	overridePath := filepath.Join(tmpDir, "override.yaml")
	overrideContent := `
log:
  level: debug
`
	require.NoError(t, os.WriteFile(overridePath, []byte(overrideContent), 0o644))

	// Load with merge (later files override earlier)
	cfg, err := config.Load([]string{basePath, overridePath}, nil)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "NEXT_PUBLIC_", cfg.Prefix)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ENVGATE_PREFIX", "VITE_")
	t.Setenv("ENVGATE_LOG_LEVEL", "warn")

	cfg, err := config.Load(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "VITE_", cfg.Prefix)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("ENVGATE_LOG_LEVEL", "verbose")

	_, err := config.Load(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate config")
}
