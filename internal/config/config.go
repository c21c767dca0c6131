// Package config provides configuration loading and validation for the
// chatlytics service. Values come from coded defaults overridden by an
// optional YAML file; the result is validated before use.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds the application configuration
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Storage StorageConfig `koanf:"storage"`
	Logger  LoggerConfig  `koanf:"logger"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port" validate:"min=1,max=65535"`

	// MaxUploadBytes bounds the size of an uploaded transcript
	MaxUploadBytes int64 `koanf:"max_upload_bytes" validate:"min=1"`
}

// StorageConfig holds upload store settings
type StorageConfig struct {
	Path string `koanf:"path" validate:"required"`

	// RetentionHours is how long uploaded transcripts are kept before the
	// cleanup job removes them
	RetentionHours int `koanf:"retention_hours" validate:"min=1"`

	// CleanupCron is the schedule for the retention cleanup job
	CleanupCron string `koanf:"cleanup_cron" validate:"required"`
}

// LoggerConfig holds logging settings
type LoggerConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `koanf:"json"`
}

// Load reads configuration from the YAML file at path, layered over the
// defaults, and validates it. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := defaults()

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	} else if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Host:           "",
			Port:           8080,
			MaxUploadBytes: 16 << 20, // 16 MiB
		},
		Storage: StorageConfig{
			Path:           "chatlytics.db",
			RetentionHours: 24,
			CleanupCron:    "0 * * * *",
		},
		Logger: LoggerConfig{
			Level: "info",
			JSON:  true,
		},
	}
}
