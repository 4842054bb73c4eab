package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the player-tunable settings read from the YAML config file.
// Missing keys fall back to defaults, so an empty or absent file is valid.
type Config struct {
	SaveDir    string `yaml:"save_dir"`
	LogLevel   string `yaml:"log_level"`
	LogFormat  string `yaml:"log_format"`
	ChartStyle string `yaml:"chart_style"`
}

// Default returns the built-in settings. SaveDir is resolved against the
// app directory during Load.
func Default() Config {
	return Config{
		LogLevel:   "info",
		LogFormat:  "text",
		ChartStyle: "ascii",
	}
}

func appDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if home == "" {
		return "", errors.New("home directory not found")
	}
	return filepath.Join(home, ".lifesim"), nil
}

// DefaultPath returns the config file location under the app directory.
func DefaultPath() (string, error) {
	dir, err := appDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config at path, or the default location when path is
// empty. A missing file yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return Config{}, err
		}
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Defaults stand.
	case err != nil:
		return Config{}, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()
	if cfg.SaveDir == "" {
		dir, err := appDir()
		if err != nil {
			return Config{}, err
		}
		cfg.SaveDir = filepath.Join(dir, "saves")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.SaveDir = strings.TrimSpace(c.SaveDir)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	c.ChartStyle = strings.ToLower(strings.TrimSpace(c.ChartStyle))
}

// Validate checks every enum field against its legal values.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format %q", c.LogFormat)
	}
	switch c.ChartStyle {
	case "ascii", "markdown":
	default:
		return fmt.Errorf("invalid chart_style %q", c.ChartStyle)
	}
	return nil
}

// SlogLevel maps the configured log level onto slog's levels.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SavePath returns the save file location inside SaveDir.
func (c Config) SavePath() string {
	return filepath.Join(c.SaveDir, "save.json")
}
