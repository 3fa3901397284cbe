// Package clientconfig loads the CLI configuration from YAML with
// environment overrides.
package clientconfig

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"classsync/internal/reconciler"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// ServerURL is empty until the backend is configured.
	ServerURL          string        `yaml:"server_url"`
	DeviceDir          string        `yaml:"device_dir"`
	UndoWindow         time.Duration `yaml:"undo_window"`
	WriteFailurePolicy string        `yaml:"write_failure_policy"`
	RequestTimeout     time.Duration `yaml:"request_timeout"`
	LogLevel           string        `yaml:"log_level"`
}

// Load reads path, or the first config file found when path is empty. A
// missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = getConfigPath()
	}

	var cfg Config
	data, err := os.ReadFile(path) //nolint:gosec // config path from env/flag
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	setDefaults(&cfg)
	overrideFromEnv(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func getConfigPath() string {
	if path := os.Getenv("CLASSSYNC_CONFIG"); path != "" {
		return path
	}

	possiblePaths := []string{"./classsync.yaml"}
	if dir, err := os.UserConfigDir(); err == nil {
		possiblePaths = append(possiblePaths, filepath.Join(dir, "classsync", "config.yaml"))
	}
	possiblePaths = append(possiblePaths, "/etc/classsync/config.yaml")

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return "classsync.yaml"
}

func setDefaults(cfg *Config) {
	if cfg.DeviceDir == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			cfg.DeviceDir = filepath.Join(dir, "classsync")
		} else {
			cfg.DeviceDir = ".classsync"
		}
	}
	if cfg.UndoWindow == 0 {
		cfg.UndoWindow = reconciler.DefaultUndoWindow
	}
	if cfg.WriteFailurePolicy == "" {
		cfg.WriteFailurePolicy = "retain"
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 10 * time.Second
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
}

func overrideFromEnv(cfg *Config) {
	if val := os.Getenv("CLASSSYNC_SERVER_URL"); val != "" {
		cfg.ServerURL = val
	}
	if val := os.Getenv("CLASSSYNC_DEVICE_DIR"); val != "" {
		cfg.DeviceDir = val
	}
	if val := os.Getenv("CLASSSYNC_UNDO_WINDOW"); val != "" {
		if d, ok := parseDuration(val); ok {
			cfg.UndoWindow = d
		}
	}
	if val := os.Getenv("CLASSSYNC_WRITE_FAILURE_POLICY"); val != "" {
		cfg.WriteFailurePolicy = val
	}
	if val := os.Getenv("CLASSSYNC_REQUEST_TIMEOUT"); val != "" {
		if d, ok := parseDuration(val); ok {
			cfg.RequestTimeout = d
		}
	}
	if val := os.Getenv("CLASSSYNC_LOG_LEVEL"); val != "" {
		cfg.LogLevel = val
	}
}

// parseDuration accepts Go durations or a plain number of seconds.
func parseDuration(s string) (time.Duration, bool) {
	if d, err := time.ParseDuration(s); err == nil {
		return d, true
	}
	if n, err := strconv.Atoi(s); err == nil {
		return time.Duration(n) * time.Second, true
	}
	return 0, false
}

func validateConfig(cfg *Config) error {
	if cfg.ServerURL != "" {
		u, err := url.Parse(cfg.ServerURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("server_url must be an http(s) URL, got %q", cfg.ServerURL)
		}
	}
	if _, ok := reconciler.ParsePolicy(cfg.WriteFailurePolicy); !ok {
		return fmt.Errorf("write_failure_policy must be retain or rollback, got %q", cfg.WriteFailurePolicy)
	}
	if cfg.UndoWindow < 0 {
		return fmt.Errorf("undo_window must not be negative")
	}
	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive")
	}
	return nil
}

// Configured reports whether a backend is set up.
func (c *Config) Configured() bool {
	return c.ServerURL != ""
}

func (c *Config) Policy() reconciler.Policy {
	p, _ := reconciler.ParsePolicy(c.WriteFailurePolicy)
	return p
}

// DeviceFile is the on-device store location.
func (c *Config) DeviceFile() string {
	return filepath.Join(c.DeviceDir, "device.json")
}
