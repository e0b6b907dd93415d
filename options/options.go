package options

import (
	"github.com/qbeam/runtimekit/deprecation"
	"github.com/qbeam/runtimekit/validation"
)

// Top-level option names recognized by the runtime.
const (
	FieldOptimizationLevel = "optimization_level"
	FieldResilienceLevel   = "resilience_level"
	FieldMaxExecutionTime  = "max_execution_time"
	GroupTranspilation     = "transpilation"
	GroupResilience        = "resilience"
	GroupExecution         = "execution"
	GroupEnvironment       = "environment"
	GroupSimulator         = "simulator"
)

// SupportedOptions lists the recognized top-level option names.
var SupportedOptions = []string{
	FieldOptimizationLevel, FieldResilienceLevel, FieldMaxExecutionTime,
	GroupTranspilation, GroupResilience, GroupExecution, GroupEnvironment, GroupSimulator,
}

// MaxExecutionTime bounds, in seconds.
const (
	MinExecutionTime = 300
	MaxExecutionTime = 28800
)

// Options is the full defaulted configuration for a job. It is assembled by
// the Builder and handed read-only to the transport layer after validation.
type Options struct {
	OptimizationLevel int `json:"optimization_level" validate:"gte=0,lte=3"`
	ResilienceLevel   int `json:"resilience_level" validate:"gte=0,lte=3"`
	// MaxExecutionTime is in seconds; zero means the backend maximum applies.
	MaxExecutionTime int `json:"max_execution_time,omitempty"`

	Transpilation TranspilationOptions `json:"transpilation"`
	Resilience    ResilienceOptions    `json:"resilience"`
	Execution     ExecutionOptions     `json:"execution"`
	Environment   EnvironmentOptions   `json:"environment"`
	Simulator     SimulatorOptions     `json:"simulator"`
}

// Defaults returns the fully defaulted options record.
func Defaults() Options {
	return Options{
		OptimizationLevel: 3,
		ResilienceLevel:   1,
		Transpilation:     DefaultTranspilationOptions(),
		Resilience:        DefaultResilienceOptions(),
		Execution:         DefaultExecutionOptions(),
		Environment:       DefaultEnvironmentOptions(),
		Simulator:         DefaultSimulatorOptions(),
	}
}

// Validate validates the full record, group by group. Deprecation notices
// from the resilience group go to reporter.
func (o Options) Validate(reporter deprecation.Reporter) error {
	v := validation.New()
	v.Range(FieldOptimizationLevel, o.OptimizationLevel, 0, 3)
	v.Range(FieldResilienceLevel, o.ResilienceLevel, 0, 3)
	if o.MaxExecutionTime != 0 {
		v.Range(FieldMaxExecutionTime, o.MaxExecutionTime, MinExecutionTime, MaxExecutionTime)
	}
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}

	if err := o.Transpilation.Validate(); err != nil {
		return err
	}
	if err := o.Resilience.Validate(reporter); err != nil {
		return err
	}
	if err := o.Execution.Validate(); err != nil {
		return err
	}
	if err := o.Environment.Validate(); err != nil {
		return err
	}
	return o.Simulator.Validate()
}

// Payload renders the record as the mapping serialized for transport.
func (o Options) Payload() map[string]any {
	transpilation := map[string]any{
		FieldSkipTranspilation:   o.Transpilation.SkipTranspilation,
		FieldApproximationDegree: o.Transpilation.ApproximationDegree,
	}
	if len(o.Transpilation.InitialLayout) > 0 {
		transpilation[FieldInitialLayout] = o.Transpilation.InitialLayout
	}
	if o.Transpilation.LayoutMethod != "" {
		transpilation[FieldLayoutMethod] = o.Transpilation.LayoutMethod
	}
	if o.Transpilation.RoutingMethod != "" {
		transpilation[FieldRoutingMethod] = o.Transpilation.RoutingMethod
	}
	if o.Transpilation.TranslationMethod != "" {
		transpilation[FieldTranslationMethod] = o.Transpilation.TranslationMethod
	}

	execution := map[string]any{
		FieldShots:      o.Execution.Shots,
		FieldInitQubits: o.Execution.InitQubits,
	}

	environment := map[string]any{
		FieldLogLevel: o.Environment.LogLevel,
	}
	if len(o.Environment.JobTags) > 0 {
		environment[FieldJobTags] = o.Environment.JobTags
	}

	simulator := map[string]any{}
	if o.Simulator.NoiseModel != nil {
		simulator[FieldNoiseModel] = o.Simulator.NoiseModel
	}
	if o.Simulator.SeedSimulator != nil {
		simulator[FieldSeedSimulator] = *o.Simulator.SeedSimulator
	}
	if len(o.Simulator.CouplingMap) > 0 {
		simulator[FieldCouplingMap] = o.Simulator.CouplingMap
	}
	if len(o.Simulator.BasisGates) > 0 {
		simulator[FieldBasisGates] = o.Simulator.BasisGates
	}

	payload := map[string]any{
		FieldOptimizationLevel: o.OptimizationLevel,
		FieldResilienceLevel:   o.ResilienceLevel,
		GroupTranspilation:     transpilation,
		GroupResilience:        o.Resilience.asOverrides(),
		GroupExecution:         execution,
		GroupEnvironment:       environment,
		GroupSimulator:         simulator,
	}
	if o.MaxExecutionTime != 0 {
		payload[FieldMaxExecutionTime] = o.MaxExecutionTime
	}
	return payload
}
