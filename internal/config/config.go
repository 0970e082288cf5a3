// Package config loads brainquiz settings from defaults, an optional YAML
// file, BRAINQUIZ_* environment variables and command-line flags, in
// increasing priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/brainquiz/internal/problemgen"
	"github.com/abhisek/brainquiz/internal/section"
)

// EnvPrefix prefixes every environment variable, e.g. BRAINQUIZ_SOUND_ENABLED.
const EnvPrefix = "BRAINQUIZ"

// Config holds application configuration.
type Config struct {
	DBPath         string                      `mapstructure:"db_path"`         // SQLite file; empty means the XDG default
	Seed           uint64                      `mapstructure:"seed"`            // random seed; 0 seeds from the clock
	Difficulty     string                      `mapstructure:"difficulty"`      // preselected difficulty
	SplashDuration time.Duration               `mapstructure:"splash_duration"` // splash screen time before home
	History        History                     `mapstructure:"history"`
	Sound          Sound                       `mapstructure:"sound"`
	Log            Log                         `mapstructure:"log"`
	Sections       map[string]section.Override `mapstructure:"sections"` // per-section overrides keyed by section ID
}

// History controls recording of finished sessions.
type History struct {
	Enabled bool `mapstructure:"enabled"`
}

// Sound controls the terminal bell.
type Sound struct {
	Enabled bool `mapstructure:"enabled"`
}

// Log configures the rotating log file.
type Log struct {
	File       string `mapstructure:"file"`  // log path; empty means the XDG state default
	Level      string `mapstructure:"level"` // debug, info, warn, error
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// Binder attaches extra sources, typically cobra flags, to v.
type Binder func(v *viper.Viper) error

// Load reads configuration. configFile may be empty, in which case
// config.yaml is looked up in the user config directory and the working
// directory; a missing file is not an error.
func Load(configFile string, binders ...Binder) (*Config, error) {
	v := viper.New()

	v.SetDefault("db_path", "")
	v.SetDefault("seed", 0)
	v.SetDefault("difficulty", "easy")
	v.SetDefault("splash_duration", "3s")
	v.SetDefault("history.enabled", true)
	v.SetDefault("sound.enabled", true)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 30)
	v.SetDefault("log.compress", true)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("db_path", EnvPrefix+"_DB")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	for _, bind := range binders {
		if err := bind(v); err != nil {
			return nil, fmt.Errorf("bind config source: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail later and far away.
func (c *Config) Validate() error {
	if _, err := problemgen.ParseDifficulty(c.Difficulty); err != nil {
		return fmt.Errorf("config difficulty: %w", err)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config log.level: %w", err)
	}
	if c.SplashDuration < 0 {
		return fmt.Errorf("config splash_duration must not be negative")
	}
	if _, err := section.NewRegistry(c.Sections); err != nil {
		return fmt.Errorf("config sections: %w", err)
	}
	return nil
}

// DefaultDifficulty returns the configured difficulty.
func (c *Config) DefaultDifficulty() problemgen.Difficulty {
	d, _ := problemgen.ParseDifficulty(c.Difficulty)
	return d
}

// Registry returns the section registry with overrides applied.
func (c *Config) Registry() (*section.Registry, error) {
	return section.NewRegistry(c.Sections)
}

// configDir returns $XDG_CONFIG_HOME/brainquiz or ~/.config/brainquiz.
func configDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "brainquiz"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "brainquiz"), nil
}
