// Package config loads the optional todos.yaml file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up from the working directory upwards.
const FileName = "todos.yaml"

// Config is the file-level configuration. Zero fields fall back to defaults.
type Config struct {
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
	EventBuffer int    `yaml:"event_buffer"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads and validates the file at path, filling omitted keys from Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML config bytes. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return Config{}, fmt.Errorf("invalid log_format %q (want text or json)", cfg.LogFormat)
	}
	if cfg.EventBuffer < 0 {
		return Config{}, fmt.Errorf("invalid event_buffer %d", cfg.EventBuffer)
	}
	return cfg, nil
}

// Level parses LogLevel into a slog.Level.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
