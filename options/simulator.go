package options

import (
	"fmt"

	"github.com/qbeam/runtimekit/validation"
)

// Simulator option names recognized by the runtime.
const (
	FieldNoiseModel    = "noise_model"
	FieldSeedSimulator = "seed_simulator"
	FieldCouplingMap   = "coupling_map"
	FieldBasisGates    = "basis_gates"
)

// SupportedSimulatorOptions lists the recognized simulator option names.
var SupportedSimulatorOptions = []string{
	FieldNoiseModel, FieldSeedSimulator, FieldCouplingMap, FieldBasisGates,
}

// SimulatorOptions configures simulator-backed execution for a job. All
// fields are optional and ignored by hardware backends.
type SimulatorOptions struct {
	NoiseModel    map[string]any `json:"noise_model,omitempty"`
	SeedSimulator *int64         `json:"seed_simulator,omitempty"`
	CouplingMap   [][]int        `json:"coupling_map,omitempty"`
	BasisGates    []string       `json:"basis_gates,omitempty"`
}

// DefaultSimulatorOptions returns the defaulted simulator record.
func DefaultSimulatorOptions() SimulatorOptions {
	return SimulatorOptions{}
}

// Validate validates the simulator record. Each coupling map entry must be a
// qubit pair.
func (o SimulatorOptions) Validate() error {
	v := validation.New()
	for i, edge := range o.CouplingMap {
		v.Custom(len(edge) == 2, FieldCouplingMap,
			fmt.Sprintf("entry %d must be a pair of qubit indices, got %d", i, len(edge)))
	}
	for i, gate := range o.BasisGates {
		v.Custom(gate != "", FieldBasisGates,
			fmt.Sprintf("entry %d must be a non-empty gate name", i))
	}
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}
