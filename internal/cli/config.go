package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds settings loaded from the config file. Every field is
// optional; command-line flags take precedence over config values.
type Config struct {
	// Token is the GitHub personal access token used for API requests.
	Token string `toml:"token"`

	// Theme is the default card theme applied when --theme is not given.
	Theme string `toml:"theme"`

	// Cache selects the default cache backend: "file", "redis", or "none".
	Cache string `toml:"cache"`

	// RedisAddr is the Redis address used when the cache backend is "redis".
	RedisAddr string `toml:"redis_addr"`
}

// LoadConfig reads the config file from the XDG config directory. A
// missing file yields an empty config; a malformed file is an error.
func LoadConfig() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return &Config{}, nil
	}
	return loadConfigFile(path)
}

func loadConfigFile(path string) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// configPath returns the config file location (~/.config/statscard/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// configPathHint returns the config path for error messages, falling
// back to the generic location when the home directory is unknown.
func configPathHint() string {
	if path, err := configPath(); err == nil {
		return path
	}
	return "~/.config/statscard/config.toml"
}
