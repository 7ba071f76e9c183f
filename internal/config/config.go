// Package config loads CLI configuration and scene files with viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/grindlemire/go-gridview/internal/debug"
	"github.com/grindlemire/go-gridview/internal/dimension"
)

// Config is the CLI configuration: display metrics for dimension
// conversion and the logger setup.
type Config struct {
	Metrics dimension.Metrics `mapstructure:"metrics"`
	Logger  debug.Config      `mapstructure:"logger"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	m := dimension.DefaultMetrics()
	v.SetDefault("metrics.density", m.Density)
	v.SetDefault("metrics.scaled_density", m.ScaledDensity)
	v.SetDefault("metrics.xdpi", m.XDPI)

	l := debug.DefaultConfig()
	v.SetDefault("logger.level", l.Level)
	v.SetDefault("logger.format", l.Format)
	v.SetDefault("logger.file", l.File)
	v.SetDefault("logger.max_size", l.MaxSize)
	v.SetDefault("logger.max_backups", l.MaxBackups)
	v.SetDefault("logger.max_age", l.MaxAge)
	v.SetDefault("logger.compress", l.Compress)
}

// NewDefaultConfig returns the configuration with no file or environment.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// NewConfigFromViper decodes and validates the configuration held by v.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for sane values.
func (c *Config) Validate() error {
	if c.Metrics.Density <= 0 {
		return fmt.Errorf("metrics.density must be positive")
	}
	if c.Metrics.ScaledDensity <= 0 {
		return fmt.Errorf("metrics.scaled_density must be positive")
	}
	if c.Metrics.XDPI <= 0 {
		return fmt.Errorf("metrics.xdpi must be positive")
	}
	switch c.Logger.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logger.format must be console or json, got %q", c.Logger.Format)
	}
	return nil
}
