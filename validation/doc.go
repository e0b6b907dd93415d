// Package validation provides input validation utilities for runtimekit
// option records.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Struct tag validation is
// used by the option groups with per-field constraints; the programmatic
// Validator serves cross-field and configuration checks.
//
// # Struct Tag Validation
//
//	type ExecutionOptions struct {
//	    Shots int `json:"shots" validate:"gte=1"`
//	}
//	err := validation.Validate(opts)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.OneOf("log_level", level, SupportedLogLevels)
//	err := v.Validate()
package validation
