package options

import (
	"github.com/qbeam/runtimekit/validation"
)

// Execution option names recognized by the runtime.
const (
	FieldShots      = "shots"
	FieldInitQubits = "init_qubits"
)

// SupportedExecutionOptions lists the recognized execution option names.
var SupportedExecutionOptions = []string{FieldShots, FieldInitQubits}

// ExecutionOptions configures circuit execution for a job.
type ExecutionOptions struct {
	Shots      int  `json:"shots" validate:"gte=1"`
	InitQubits bool `json:"init_qubits"`
}

// DefaultExecutionOptions returns the defaulted execution record.
func DefaultExecutionOptions() ExecutionOptions {
	return ExecutionOptions{
		Shots:      4000,
		InitQubits: true,
	}
}

// Validate validates the execution record.
func (o ExecutionOptions) Validate() error {
	return validation.Validate(o)
}
