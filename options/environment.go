package options

import (
	"github.com/qbeam/runtimekit/validation"
)

// Environment option names recognized by the runtime.
const (
	FieldLogLevel = "log_level"
	FieldJobTags  = "job_tags"
)

var (
	// SupportedEnvironmentOptions lists the recognized environment option names.
	SupportedEnvironmentOptions = []string{FieldLogLevel, FieldJobTags}
	// SupportedLogLevels lists the legal log_level values.
	SupportedLogLevels = []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}
)

// EnvironmentOptions configures the runtime execution environment for a job.
type EnvironmentOptions struct {
	LogLevel string   `json:"log_level" validate:"oneof=DEBUG INFO WARNING ERROR CRITICAL"`
	JobTags  []string `json:"job_tags,omitempty" validate:"omitempty,dive,required"`
}

// DefaultEnvironmentOptions returns the defaulted environment record.
func DefaultEnvironmentOptions() EnvironmentOptions {
	return EnvironmentOptions{
		LogLevel: "WARNING",
	}
}

// Validate validates the environment record.
func (o EnvironmentOptions) Validate() error {
	return validation.Validate(o)
}
