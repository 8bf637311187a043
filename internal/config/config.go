// Package config loads the CLI configuration. Values come from a YAML file
// with ${VAR:-default} environment expansion, so the same config file works
// across machines.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the full CLI configuration.
type Config struct {
	// BaseURL is the notes backend root. Empty means offline mode: the
	// repositories are served from the local JSON mirror instead.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// DataDir holds the token file and the offline mirror.
	// Defaults to the user config directory.
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`

	// TimeoutSeconds bounds each request. Zero keeps the backend's
	// historical behavior: no timeout at all.
	TimeoutSeconds int `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`

	// RateLimitRPS caps outgoing requests per second. Zero disables.
	RateLimitRPS   int `mapstructure:"rate_limit_rps" yaml:"rate_limit_rps"`
	RateLimitBurst int `mapstructure:"rate_limit_burst" yaml:"rate_limit_burst"`
}

// DefaultDir returns the per-user directory for config, token and mirror.
func DefaultDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".notectl"
	}
	return filepath.Join(base, "notectl")
}

// DefaultPath returns the default config file location, overridable via
// NOTECTL_CONFIG.
func DefaultPath() string {
	if p := os.Getenv("NOTECTL_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(DefaultDir(), "config.yaml")
}

// Default returns the built-in configuration: offline mode, data under the
// user config directory.
func Default() Config {
	return Config{
		DataDir: DefaultDir(),
	}
}

// expandEnvWithDefaults expands ${VAR:-default} style references.
var envRef = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandEnvWithDefaults(s string) string {
	return envRef.ReplaceAllStringFunc(s, func(match string) string {
		groups := envRef.FindStringSubmatch(match)
		if len(groups) < 2 {
			return match
		}
		if value := os.Getenv(groups[1]); value != "" {
			return value
		}
		if len(groups) > 2 {
			return groups[2]
		}
		return ""
	})
}

// Load reads the config file at path. A missing file is not an error: the
// defaults apply, which puts the CLI in offline mode until a base_url is
// configured.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig: %w", err)
	}

	// Expand ${VAR:-default} references, keeping scalar types intact.
	for _, k := range v.AllKeys() {
		value := v.GetString(k)
		if value == "" {
			continue
		}
		expanded := expandEnvWithDefaults(value)
		if expanded == "true" || expanded == "false" {
			b, _ := strconv.ParseBool(expanded)
			v.Set(k, b)
		} else if n, err := strconv.Atoi(expanded); err == nil {
			v.Set(k, n)
		} else {
			v.Set(k, expanded)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("v.Unmarshal: %w", err)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDir()
	}
	return &cfg, nil
}

// Write persists cfg as YAML at path, creating parent directories.
func Write(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
