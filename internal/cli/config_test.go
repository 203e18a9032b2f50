package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
token = "ghp_test"
theme = "dark"
cache = "redis"
redis_addr = "redis.internal:6379"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("loadConfigFile() error: %v", err)
	}

	if cfg.Token != "ghp_test" {
		t.Errorf("Token = %q", cfg.Token)
	}
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q", cfg.Theme)
	}
	if cfg.Cache != "redis" {
		t.Errorf("Cache = %q", cfg.Cache)
	}
	if cfg.RedisAddr != "redis.internal:6379" {
		t.Errorf("RedisAddr = %q", cfg.RedisAddr)
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	cfg, err := loadConfigFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing config should not error, got: %v", err)
	}
	if cfg.Token != "" || cfg.Theme != "" {
		t.Errorf("missing config should be empty, got %+v", cfg)
	}
}

func TestLoadConfigFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("token = [not toml"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := loadConfigFile(path); err == nil {
		t.Error("malformed config should error")
	}
}
