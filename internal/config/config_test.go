package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	return &Config{
		App:    AppConfig{Environment: "development"},
		Logger: LoggerConfig{Level: "info"},
		Data:   DataConfig{Path: "/tmp/storefront-test"},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Catalog: CatalogConfig{
			MaxCacheAge: time.Hour,
			MinLatency:  200 * time.Millisecond,
			MaxLatency:  500 * time.Millisecond,
		},
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := validTestConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidate_RejectsBadEnvironment(t *testing.T) {
	cfg := validTestConfig()
	cfg.App.Environment = "testing"
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsBadLogLevel(t *testing.T) {
	cfg := validTestConfig()
	cfg.Logger.Level = "verbose"
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsEmptyDataPath(t *testing.T) {
	cfg := validTestConfig()
	cfg.Data.Path = ""
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsInvertedLatencyBounds(t *testing.T) {
	cfg := validTestConfig()
	cfg.Catalog.MinLatency = time.Second
	cfg.Catalog.MaxLatency = 100 * time.Millisecond
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsNonPositiveCacheAge(t *testing.T) {
	cfg := validTestConfig()
	cfg.Catalog.MaxCacheAge = 0
	assert.Error(t, cfg.Validate())
}

func TestExpandPath(t *testing.T) {
	p, err := expandPath("", "/fallback")
	require.NoError(t, err)
	assert.Equal(t, "/fallback", p)

	p, err = expandPath("/already/absolute", "")
	require.NoError(t, err)
	assert.Equal(t, "/already/absolute", p)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	p, err = expandPath("~/store", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "store"), p)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	content := "# comment\nSTOREFRONT_TEST_KEY=from_file\n"
	require.NoError(t, os.WriteFile(envPath, []byte(content), 0o600))
	t.Cleanup(func() { os.Unsetenv("STOREFRONT_TEST_KEY") })

	require.NoError(t, loadEnvFile(envPath))
	assert.Equal(t, "from_file", os.Getenv("STOREFRONT_TEST_KEY"))
}

func TestLoadEnvFile_EnvVarWins(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("STOREFRONT_PRESET=file\n"), 0o600))

	t.Setenv("STOREFRONT_PRESET", "env")
	require.NoError(t, loadEnvFile(envPath))
	assert.Equal(t, "env", os.Getenv("STOREFRONT_PRESET"))
}
