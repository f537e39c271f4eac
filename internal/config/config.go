// SPDX-License-Identifier: MIT

// Package config resolves the lvlprob CLI settings from defaults, an optional
// config file and LVLPROB_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/lvlprob/initialize"
	"github.com/katalvlaran/lvlprob/internal/logger"
	"github.com/katalvlaran/lvlprob/table"
)

// EnvPrefix prefixes every environment override, e.g. LVLPROB_LOG_LEVEL.
const EnvPrefix = "LVLPROB"

// ErrInvalid indicates a setting outside its domain.
var ErrInvalid = errors.New("config: invalid setting")

// Config is the resolved CLI configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Seed    int64         `mapstructure:"seed"`
	Dump    DumpConfig    `mapstructure:"dump"`
	Summary SummaryConfig `mapstructure:"summary"`
	Workers int           `mapstructure:"workers"`
}

// LogConfig mirrors logger.Config.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Encoding    string `mapstructure:"encoding"`
	Development bool   `mapstructure:"development"`
}

// DumpConfig tunes table dumps.
type DumpConfig struct {
	Epsilon float64 `mapstructure:"epsilon"`
}

// SummaryConfig sizes histograms.
type SummaryConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// Logger converts the log section for logger.New.
func (c Config) Logger() logger.Config {
	return logger.Config{
		Level:       c.Log.Level,
		Development: c.Log.Development,
		Encoding:    c.Log.Encoding,
	}
}

// New returns a viper instance carrying the defaults and env binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", false)
	v.SetDefault("seed", initialize.DefaultSeed)
	v.SetDefault("dump.epsilon", table.DefaultEpsilon)
	v.SetDefault("summary.width", 20)
	v.SetDefault("summary.height", 20)
	v.SetDefault("workers", runtime.NumCPU())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads path into v when non-empty and decodes the result.
func Load(v *viper.Viper, path string) (Config, error) {
	var cfg Config
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks value domains.
func (c Config) Validate() error {
	switch {
	case c.Dump.Epsilon < 0:
		return fmt.Errorf("dump.epsilon=%v: %w", c.Dump.Epsilon, ErrInvalid)
	case c.Summary.Width < 1:
		return fmt.Errorf("summary.width=%d: %w", c.Summary.Width, ErrInvalid)
	case c.Summary.Height < 1:
		return fmt.Errorf("summary.height=%d: %w", c.Summary.Height, ErrInvalid)
	case c.Workers < 1:
		return fmt.Errorf("workers=%d: %w", c.Workers, ErrInvalid)
	case c.Log.Encoding != "console" && c.Log.Encoding != "json":
		return fmt.Errorf("log.encoding=%q: %w", c.Log.Encoding, ErrInvalid)
	}

	return nil
}
