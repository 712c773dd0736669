package config

import (
	"fmt"
	"time"

	"github.com/kbukum/utilkit/logger"
	"github.com/kbukum/utilkit/validation"
)

// Defaults used when the config file and environment leave a value unset.
const (
	DefaultTimeout      = 5 * time.Second
	DefaultRandomLength = 16
	DefaultMaxPasses    = 1000
	DefaultServiceName  = "utilkit"
	DefaultEnvironment  = "development"
)

// ServiceConfig contains the fields every utilkit process needs.
type ServiceConfig struct {
	Name        string        `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string        `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Version     string        `yaml:"version" mapstructure:"version"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
}

// AsyncConfig tunes countdown and safeAsync.
type AsyncConfig struct {
	// DefaultTimeout bounds SafeAsync calls that pass a non-positive timeout.
	DefaultTimeout time.Duration `yaml:"default_timeout" mapstructure:"default_timeout" validate:"gt=0"`
	// PollInterval, when positive, checks the deadline on ticks of this size
	// instead of arming a single timer.
	PollInterval time.Duration `yaml:"poll_interval" mapstructure:"poll_interval" validate:"gte=0"`
}

// RandomConfig tunes random token generation.
type RandomConfig struct {
	DefaultLength int `yaml:"default_length" mapstructure:"default_length" validate:"min=1"`
}

// MapStringsConfig bounds the fixed-point string mapping.
type MapStringsConfig struct {
	MaxPasses int `yaml:"max_passes" mapstructure:"max_passes" validate:"min=1"`
}

// UtilConfig groups the settings of the utility service.
type UtilConfig struct {
	Async      AsyncConfig      `yaml:"async" mapstructure:"async"`
	Random     RandomConfig     `yaml:"random" mapstructure:"random"`
	MapStrings MapStringsConfig `yaml:"map_strings" mapstructure:"map_strings"`
}

// Config is the full utilkit configuration.
type Config struct {
	ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Util          UtilConfig `yaml:"util" mapstructure:"util"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset values.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = DefaultServiceName
	}
	if c.Environment == "" {
		c.Environment = DefaultEnvironment
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	c.Logging.ApplyDefaults()

	if c.Util.Async.DefaultTimeout == 0 {
		c.Util.Async.DefaultTimeout = DefaultTimeout
	}
	if c.Util.Random.DefaultLength == 0 {
		c.Util.Random.DefaultLength = DefaultRandomLength
	}
	if c.Util.MapStrings.MaxPasses == 0 {
		c.Util.MapStrings.MaxPasses = DefaultMaxPasses
	}
}

// Validate checks struct tags and the logging block.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}

// Load resolves, reads, defaults and validates the configuration for serviceName.
func Load(serviceName string, opts ...LoaderOption) (*Config, error) {
	cfg := &Config{}
	if err := LoadConfig(serviceName, cfg, opts...); err != nil {
		return nil, err
	}
	if cfg.Name == "" {
		cfg.Name = serviceName
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
