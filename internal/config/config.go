package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Watermark WatermarkConfig `mapstructure:"watermark"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type TelegramConfig struct {
	BotToken       string        `mapstructure:"bot_token"`
	OwnerID        int64         `mapstructure:"owner_id"`
	PollingTimeout int           `mapstructure:"polling_timeout"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type WatermarkConfig struct {
	DefaultText   string        `mapstructure:"default_text"`
	Timeout       time.Duration `mapstructure:"timeout"`
	JPEGQuality   int           `mapstructure:"jpeg_quality"`
	MaxConcurrent int           `mapstructure:"max_concurrent"`
}

type StorageConfig struct {
	DBPath string `mapstructure:"db_path"`
}

type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	JSONFormat bool   `mapstructure:"json_format"`
}

func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("telegram.polling_timeout", 60)
	v.SetDefault("telegram.request_timeout", "2m")
	v.SetDefault("telegram.owner_id", 0)
	v.SetDefault("watermark.default_text", "@watermark")
	v.SetDefault("watermark.timeout", "20s")
	v.SetDefault("watermark.jpeg_quality", 90)
	v.SetDefault("watermark.max_concurrent", 4)
	v.SetDefault("storage.db_path", "data/watermark.db")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.json_format", false)

	// Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AddConfigPath("/etc/watermark-bot")

	// Environment variables
	v.SetEnvPrefix("WM_BOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file not found is OK, use env vars and defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Watermark.DefaultText == "" {
		return fmt.Errorf("watermark.default_text is required")
	}
	if c.Watermark.Timeout <= 0 {
		return fmt.Errorf("watermark.timeout must be positive")
	}
	if c.Watermark.JPEGQuality < 1 || c.Watermark.JPEGQuality > 100 {
		return fmt.Errorf("watermark.jpeg_quality must be between 1 and 100")
	}
	if c.Watermark.MaxConcurrent < 1 {
		return fmt.Errorf("watermark.max_concurrent must be at least 1")
	}
	return nil
}
