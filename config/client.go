package config

import (
	"github.com/qbeam/runtimekit/errors"
	"github.com/qbeam/runtimekit/logger"
	"github.com/qbeam/runtimekit/options"
	"github.com/qbeam/runtimekit/validation"
)

// ClientConfig contains the configuration for a runtimekit client instance.
type ClientConfig struct {
	Name        string        `yaml:"name" mapstructure:"name"`
	Environment string        `yaml:"environment" mapstructure:"environment"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
	Options     OptionsConfig `yaml:"options" mapstructure:"options"`
}

// OptionsConfig carries client-wide default option values. Job-level
// overrides passed to the Builder still take precedence.
// Level fields are pointers because zero is a meaningful level; nil means
// "use the SDK default".
type OptionsConfig struct {
	OptimizationLevel *int   `yaml:"optimization_level" mapstructure:"optimization_level"`
	ResilienceLevel   *int   `yaml:"resilience_level" mapstructure:"resilience_level"`
	Shots             int    `yaml:"shots" mapstructure:"shots"`
	LogLevel          string `yaml:"log_level" mapstructure:"log_level"`
}

// ApplyDefaults applies default values to the client configuration.
func (c *ClientConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "runtimekit"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	c.Logging.ApplyDefaults()

	defaults := options.Defaults()
	if c.Options.OptimizationLevel == nil {
		c.Options.OptimizationLevel = &defaults.OptimizationLevel
	}
	if c.Options.ResilienceLevel == nil {
		c.Options.ResilienceLevel = &defaults.ResilienceLevel
	}
	if c.Options.Shots == 0 {
		c.Options.Shots = defaults.Execution.Shots
	}
	if c.Options.LogLevel == "" {
		c.Options.LogLevel = defaults.Environment.LogLevel
	}
}

// Validate validates the client configuration.
func (c *ClientConfig) Validate() error {
	if c.Name == "" {
		return errors.MissingField("name")
	}
	v := validation.New()
	v.OneOf("environment", c.Environment, []string{"development", "staging", "production"})
	if c.Options.OptimizationLevel != nil {
		v.Range("options.optimization_level", *c.Options.OptimizationLevel, 0, 3)
	}
	if c.Options.ResilienceLevel != nil {
		v.Range("options.resilience_level", *c.Options.ResilienceLevel, 0, 3)
	}
	v.Min("options.shots", c.Options.Shots, 1)
	v.OneOf("options.log_level", c.Options.LogLevel, options.SupportedLogLevels)
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return c.Logging.Validate()
}

// BaseOptions builds the defaulted options record the Builder merges job
// overrides onto, with the client-wide defaults applied.
func (c *ClientConfig) BaseOptions() options.Options {
	base := options.Defaults()
	if c.Options.OptimizationLevel != nil {
		base.OptimizationLevel = *c.Options.OptimizationLevel
	}
	if c.Options.ResilienceLevel != nil {
		base.ResilienceLevel = *c.Options.ResilienceLevel
	}
	if c.Options.Shots != 0 {
		base.Execution.Shots = c.Options.Shots
	}
	if c.Options.LogLevel != "" {
		base.Environment.LogLevel = c.Options.LogLevel
	}
	return base
}
