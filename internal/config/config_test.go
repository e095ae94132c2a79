package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("chdir back: %v", err)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	writeConfig(t, "telegram:\n  bot_token: \"test-token\"\n")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Telegram.BotToken != "test-token" {
		t.Errorf("BotToken = %q", cfg.Telegram.BotToken)
	}
	if cfg.Watermark.Timeout != 20*time.Second {
		t.Errorf("Timeout = %v, want 20s", cfg.Watermark.Timeout)
	}
	if cfg.Watermark.JPEGQuality != 90 {
		t.Errorf("JPEGQuality = %d, want 90", cfg.Watermark.JPEGQuality)
	}
	if cfg.Watermark.DefaultText == "" {
		t.Error("DefaultText default missing")
	}
	if cfg.Watermark.MaxConcurrent != 4 {
		t.Errorf("MaxConcurrent = %d, want 4", cfg.Watermark.MaxConcurrent)
	}
	if cfg.Storage.DBPath == "" {
		t.Error("DBPath default missing")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadOverrides(t *testing.T) {
	writeConfig(t, `
telegram:
  bot_token: "tok"
  owner_id: 99
watermark:
  default_text: "@mychannel"
  timeout: 45s
  jpeg_quality: 75
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Telegram.OwnerID != 99 {
		t.Errorf("OwnerID = %d, want 99", cfg.Telegram.OwnerID)
	}
	if cfg.Watermark.DefaultText != "@mychannel" {
		t.Errorf("DefaultText = %q", cfg.Watermark.DefaultText)
	}
	if cfg.Watermark.Timeout != 45*time.Second {
		t.Errorf("Timeout = %v, want 45s", cfg.Watermark.Timeout)
	}
	if cfg.Watermark.JPEGQuality != 75 {
		t.Errorf("JPEGQuality = %d, want 75", cfg.Watermark.JPEGQuality)
	}
}

func TestLoadRequiresToken(t *testing.T) {
	writeConfig(t, "logging:\n  level: debug\n")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing bot token")
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Telegram: TelegramConfig{BotToken: "tok"},
			Watermark: WatermarkConfig{
				DefaultText:   "@x",
				Timeout:       20 * time.Second,
				JPEGQuality:   90,
				MaxConcurrent: 4,
			},
		}
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty default text", func(c *Config) { c.Watermark.DefaultText = "" }},
		{"zero timeout", func(c *Config) { c.Watermark.Timeout = 0 }},
		{"quality too high", func(c *Config) { c.Watermark.JPEGQuality = 101 }},
		{"quality too low", func(c *Config) { c.Watermark.JPEGQuality = 0 }},
		{"zero concurrency", func(c *Config) { c.Watermark.MaxConcurrent = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
