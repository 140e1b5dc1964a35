package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })
}

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "netassets.db", cfg.Store.Path)
	assert.Equal(t, 8, cfg.Analyze.Concurrency)
	assert.False(t, cfg.Analyze.LogDevices)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadFromYAML(t *testing.T) {
	chdirTemp(t)

	yaml := `
store:
  driver: postgres
  database_url: postgres://localhost/netassets
log:
  level: debug
  format: console
server:
  port: 9090
analyze:
  concurrency: 16
`
	cwd, _ := os.Getwd()
	require.NoError(t, os.WriteFile(filepath.Join(cwd, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, "postgres://localhost/netassets", cfg.Store.DatabaseURL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 16, cfg.Analyze.Concurrency)
	// Defaults still apply for unset values
	assert.Equal(t, "netassets.db", cfg.Store.Path)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	chdirTemp(t)

	yaml := `
store:
  driver: sqlite
log:
  level: debug
`
	cwd, _ := os.Getwd()
	require.NoError(t, os.WriteFile(filepath.Join(cwd, "config.yaml"), []byte(yaml), 0644))

	t.Setenv("NETASSETS_STORE_DRIVER", "postgres")
	t.Setenv("NETASSETS_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	// Env overrides file
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	chdirTemp(t)

	t.Setenv("NETASSETS_SERVER_PORT", "3000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	t.Run("sqlite defaults pass", func(t *testing.T) {
		cfg := &Config{}
		cfg.Store.Driver = "sqlite"
		cfg.Store.Path = "netassets.db"
		assert.NoError(t, cfg.Validate("analyze"))
	})

	t.Run("postgres requires database url", func(t *testing.T) {
		cfg := &Config{}
		cfg.Store.Driver = "postgres"
		err := cfg.Validate("analyze")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "store.database_url")
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := &Config{}
		cfg.Store.Driver = "mysql"
		assert.Error(t, cfg.Validate("analyze"))
	})

	t.Run("serve checks port", func(t *testing.T) {
		cfg := &Config{}
		cfg.Store.Driver = "sqlite"
		cfg.Store.Path = "netassets.db"
		cfg.Server.Port = 0
		err := cfg.Validate("serve")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.port")
	})
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}
