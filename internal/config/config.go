// Package config provides Viper-based configuration loading for warrens.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// GameConfig holds simulation settings.
type GameConfig struct {
	// LevelPath is the level file to load; empty means the embedded default.
	LevelPath string `mapstructure:"level_path"`
	// Seed pins the RNG for reproducible runs; 0 means seed from the clock.
	Seed int64 `mapstructure:"seed"`
}

// AudioConfig holds background music settings.
type AudioConfig struct {
	// Enabled toggles background music.
	Enabled bool `mapstructure:"enabled"`
	// Track is the path of the looped background track.
	Track string `mapstructure:"track"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Path is the log file; the terminal owns stdout while the game runs.
	Path string `mapstructure:"path"`
}

// Config is the top-level application configuration.
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	Audio   AudioConfig   `mapstructure:"audio"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Load reads configuration from defaults, an optional config file, and
// WARRENS_* environment variables, in increasing precedence.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("game.level_path", "")
	v.SetDefault("game.seed", int64(0))
	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.track", "assets/background.wav")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.path", "warrens.log")

	v.SetEnvPrefix("WARRENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("warrens")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		// A missing default config file is fine; defaults and env apply.
		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks all configuration invariants, collecting every violation.
func (c Config) Validate() error {
	var errs []string

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Sprintf("logging.format must be json or console, got %q", c.Logging.Format))
	}
	if c.Audio.Enabled && c.Audio.Track == "" {
		errs = append(errs, "audio.track must be set when audio is enabled")
	}

	if len(errs) > 0 {
		return errors.New("invalid config: " + strings.Join(errs, "; "))
	}
	return nil
}
