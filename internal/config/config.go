package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultServerURL is used when neither the config file nor the environment set one
	DefaultServerURL = "http://localhost:8080"

	// DefaultRequestTimeoutSeconds bounds a single backend call
	DefaultRequestTimeoutSeconds = 30

	configDirName  = ".payctl"
	configFileName = "config.json"
)

// Config represents the application configuration
type Config struct {
	// API server URL
	ServerURL string `json:"server_url"`

	// User information (populated after login)
	UserID string `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`

	// Logging level (debug, info, warn, error)
	LogLevel string `json:"log_level,omitempty"`

	// Per-request timeout in seconds
	RequestTimeoutSeconds int `json:"request_timeout_seconds,omitempty"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		ServerURL:             DefaultServerURL,
		LogLevel:              "info",
		RequestTimeoutSeconds: DefaultRequestTimeoutSeconds,
	}
}

// RequestTimeout returns the configured timeout as a duration
func (c *Config) RequestTimeout() time.Duration {
	if c.RequestTimeoutSeconds <= 0 {
		return DefaultRequestTimeoutSeconds * time.Second
	}
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// ClearUser forgets the logged in user
func (c *Config) ClearUser() {
	c.UserID = ""
	c.Email = ""
	c.Name = ""
}

// Load loads the configuration from the given file path and applies
// environment overrides
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	// If config file doesn't exist, use the defaults
	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	applyEnv(cfg)
	return cfg, nil
}

// Save saves the configuration to the given file path
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetGlobalConfigDir returns the directory holding the config file, token and log.
// PAYCTL_HOME overrides the default ~/.payctl.
func GetGlobalConfigDir() (string, error) {
	if dir := os.Getenv("PAYCTL_HOME"); dir != "" {
		return dir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configDirName), nil
}

// GetGlobalConfigPath returns the path to the global configuration file
func GetGlobalConfigPath() (string, error) {
	dir, err := GetGlobalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// LoadGlobalConfig loads the global configuration file
func LoadGlobalConfig() (*Config, error) {
	path, err := GetGlobalConfigPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// SaveGlobalConfig saves the global configuration file
func SaveGlobalConfig(cfg *Config) error {
	path, err := GetGlobalConfigPath()
	if err != nil {
		return err
	}
	return cfg.Save(path)
}

func applyEnv(cfg *Config) {
	cfg.ServerURL = getEnv("PAYCTL_SERVER_URL", cfg.ServerURL)
	cfg.LogLevel = getEnv("PAYCTL_LOG_LEVEL", cfg.LogLevel)
	cfg.RequestTimeoutSeconds = getIntEnv("PAYCTL_REQUEST_TIMEOUT_SECONDS", cfg.RequestTimeoutSeconds)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
