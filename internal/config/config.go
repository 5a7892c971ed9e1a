// Package config provides application configuration management with support for environment variables, command-line flags, and .env files.
package config

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config holds the application configuration.
type Config struct {
	App     AppConfig
	Logger  LoggerConfig
	Data    DataConfig
	Server  ServerConfig
	Catalog CatalogConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// DataConfig holds local data storage configuration.
type DataConfig struct {
	// Path is the directory for the embedded database.
	Path string
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         string        // Server port (default: 8080)
	ReadTimeout  time.Duration // HTTP read timeout (default: 15s)
	WriteTimeout time.Duration // HTTP write timeout (default: 15s)
	IdleTimeout  time.Duration // HTTP idle timeout (default: 60s)
}

// CatalogConfig holds catalog provider and cache configuration.
type CatalogConfig struct {
	// MaxCacheAge is how long a stored catalog snapshot stays fresh (default: 1h).
	MaxCacheAge time.Duration
	// MinLatency/MaxLatency bound the mock provider's simulated network delay.
	// Set both to zero to disable (tests do).
	MinLatency time.Duration
	MaxLatency time.Duration
}

// LoadConfig loads configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func LoadConfig() (*Config, error) {
	env := flag.String("env", "", "Environment (development, staging, production)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	dataPath := flag.String("data-path", "", "Directory for the local database")

	serverPort := flag.String("port", "", "Server port (default: 8080)")
	readTimeout := flag.String("read-timeout", "", "HTTP read timeout (default: 15s)")
	writeTimeout := flag.String("write-timeout", "", "HTTP write timeout (default: 15s)")
	idleTimeout := flag.String("idle-timeout", "", "HTTP idle timeout (default: 60s)")

	maxCacheAge := flag.String("catalog-max-age", "", "Catalog cache max age (default: 1h)")
	minLatency := flag.String("catalog-min-latency", "", "Mock provider min latency (default: 200ms)")
	maxLatency := flag.String("catalog-max-latency", "", "Mock provider max latency (default: 500ms)")

	envFile := flag.String("env-file", ".env", "Path to .env file")

	flag.Parse()

	// Load .env file if it exists (silently ignore if not found).
	_ = loadEnvFile(*envFile)

	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(*env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(*logLevel, "LOG_LEVEL", "info"),
		},
		Data: DataConfig{
			Path: getConfigValue(*dataPath, "DATA_PATH", ""),
		},
		Server: ServerConfig{
			Port: getConfigValue(*serverPort, "SERVER_PORT", "8080"),
		},
	}

	var err error
	cfg.Server.ReadTimeout, err = parseDurationValue(*readTimeout, "SERVER_READ_TIMEOUT", "15s")
	if err != nil {
		return nil, err
	}
	cfg.Server.WriteTimeout, err = parseDurationValue(*writeTimeout, "SERVER_WRITE_TIMEOUT", "15s")
	if err != nil {
		return nil, err
	}
	cfg.Server.IdleTimeout, err = parseDurationValue(*idleTimeout, "SERVER_IDLE_TIMEOUT", "60s")
	if err != nil {
		return nil, err
	}

	cfg.Catalog.MaxCacheAge, err = parseDurationValue(*maxCacheAge, "CATALOG_MAX_AGE", "1h")
	if err != nil {
		return nil, err
	}
	cfg.Catalog.MinLatency, err = parseDurationValue(*minLatency, "CATALOG_MIN_LATENCY", "200ms")
	if err != nil {
		return nil, err
	}
	cfg.Catalog.MaxLatency, err = parseDurationValue(*maxLatency, "CATALOG_MAX_LATENCY", "500ms")
	if err != nil {
		return nil, err
	}

	if err := cfg.expandDataPath(); err != nil {
		return nil, fmt.Errorf("invalid data path: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Data.Path == "" {
		return errors.New("data path cannot be empty after expansion")
	}

	if c.Catalog.MaxCacheAge <= 0 {
		return errors.New("catalog max age must be positive")
	}
	if c.Catalog.MinLatency < 0 || c.Catalog.MaxLatency < c.Catalog.MinLatency {
		return errors.New("catalog latency bounds are inverted")
	}

	return nil
}

// expandDataPath expands ~ and makes the path absolute, defaulting to
// ~/Storefront/data when unset.
func (c *Config) expandDataPath() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	defaultPath := filepath.Join(homeDir, "Storefront", "data")

	expanded, err := expandPath(c.Data.Path, defaultPath)
	if err != nil {
		return err
	}
	c.Data.Path = expanded
	return nil
}

// expandPath expands ~ and makes the path absolute.
// If path is empty and defaultPath is provided, uses the default.
func expandPath(path, defaultPath string) (string, error) {
	if path == "" {
		return defaultPath, nil
	}

	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = absPath
	}

	return filepath.Clean(path), nil
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

// parseDurationValue resolves a duration from flag, env var, or default.
func parseDurationValue(flagValue, envKey, defaultValue string) (time.Duration, error) {
	raw := getConfigValue(flagValue, envKey, defaultValue)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s %q: %w", envKey, raw, err)
	}
	return d, nil
}

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- Config file path from user input is expected
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		value = strings.Trim(value, `"'`)

		// Env vars take precedence over .env file.
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
