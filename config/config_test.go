package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/leave-planner/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 25, cfg.Planner.StandardAllocation)
	assert.Equal(t, "england-and-wales", cfg.Planner.DefaultRegion)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
server:
  port: 9000
  allowed_origins: ["https://planner.example.com"]
database:
  path: ":memory:"
planner:
  standard_allocation: 28
  default_region: scotland
logging:
  level: debug
  format: console
metrics:
  enabled: true
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, []string{"https://planner.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.Equal(t, 28, cfg.Planner.StandardAllocation)
	assert.Equal(t, "scotland", cfg.Planner.DefaultRegion)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_JSONWithEnvOverride(t *testing.T) {
	path := writeFile(t, "config.json", `{"server":{"port":9000},"planner":{"standard_allocation":28}}`)
	t.Setenv("LEAVE_SERVER__PORT", "9443")
	t.Setenv("LEAVE_SERVER__ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9443, cfg.Server.Port)
	assert.Equal(t, 28, cfg.Planner.StandardAllocation)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.AllowedOrigins)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(writeFile(t, "config.toml", "port = 1"))
	assert.ErrorContains(t, err, "unsupported config format")

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "bad.yaml", "logging:\n  level: loud\n"))
	assert.ErrorContains(t, err, "invalid config")

	_, err = config.Load(writeFile(t, "neg.yaml", "planner:\n  standard_allocation: -5\n"))
	assert.ErrorContains(t, err, "invalid config")
}

func TestLoggingConfig_NewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := config.LoggingConfig{Level: "warn", Format: "json"}.NewLogger(&buf)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"shown"`)
	assert.Contains(t, buf.String(), `"service":"leave-planner"`)
}
