package options

import (
	"strings"
	"testing"

	"github.com/qbeam/runtimekit/deprecation"
	"github.com/qbeam/runtimekit/errors"
)

func TestDefaults(t *testing.T) {
	o := Defaults()

	if o.OptimizationLevel != 3 {
		t.Errorf("expected optimization_level 3, got %d", o.OptimizationLevel)
	}
	if o.ResilienceLevel != 1 {
		t.Errorf("expected resilience_level 1, got %d", o.ResilienceLevel)
	}
	if o.MaxExecutionTime != 0 {
		t.Errorf("expected max_execution_time unset, got %d", o.MaxExecutionTime)
	}
	if o.Resilience.NoiseAmplifier != "" {
		t.Errorf("expected noise_amplifier unset, got %q", o.Resilience.NoiseAmplifier)
	}
	if len(o.Resilience.NoiseFactors) != 3 || o.Resilience.NoiseFactors[0] != 1 ||
		o.Resilience.NoiseFactors[1] != 3 || o.Resilience.NoiseFactors[2] != 5 {
		t.Errorf("expected noise_factors (1, 3, 5), got %v", o.Resilience.NoiseFactors)
	}
	if o.Resilience.Extrapolator != LinearExtrapolator {
		t.Errorf("expected LinearExtrapolator, got %q", o.Resilience.Extrapolator)
	}
	if o.Execution.Shots != 4000 {
		t.Errorf("expected 4000 shots, got %d", o.Execution.Shots)
	}
	if !o.Execution.InitQubits {
		t.Error("expected init_qubits true")
	}
	if o.Environment.LogLevel != "WARNING" {
		t.Errorf("expected WARNING log level, got %q", o.Environment.LogLevel)
	}
	if o.Transpilation.ApproximationDegree != 1 {
		t.Errorf("expected approximation_degree 1, got %v", o.Transpilation.ApproximationDegree)
	}
}

func TestOptionsValidateDefaults(t *testing.T) {
	rec := deprecation.NewRecorder()
	if err := Defaults().Validate(rec); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if rec.Count() != 0 {
		t.Errorf("expected no deprecation notice, got %d", rec.Count())
	}
}

func TestOptionsValidateLevelBounds(t *testing.T) {
	o := Defaults()
	o.OptimizationLevel = 4
	err := o.Validate(deprecation.NewRecorder())
	if err == nil {
		t.Fatal("expected error for optimization_level 4")
	}

	o = Defaults()
	o.ResilienceLevel = -1
	if err := o.Validate(deprecation.NewRecorder()); err == nil {
		t.Fatal("expected error for resilience_level -1")
	}
}

func TestOptionsValidateMaxExecutionTime(t *testing.T) {
	o := Defaults()
	o.MaxExecutionTime = 100
	if err := o.Validate(deprecation.NewRecorder()); err == nil {
		t.Fatal("expected error for max_execution_time below minimum")
	}

	o.MaxExecutionTime = 3600
	if err := o.Validate(deprecation.NewRecorder()); err != nil {
		t.Fatalf("expected 3600 to validate, got %v", err)
	}
}

func TestTranspilationOptionsValidate(t *testing.T) {
	o := DefaultTranspilationOptions()
	if err := o.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}

	o.LayoutMethod = "sabre"
	o.RoutingMethod = "stochastic"
	o.TranslationMethod = "synthesis"
	if err := o.Validate(); err != nil {
		t.Fatalf("expected valid methods to pass, got %v", err)
	}

	o.LayoutMethod = "bogus"
	err := o.Validate()
	if err == nil {
		t.Fatal("expected error for bogus layout_method")
	}
	if !strings.Contains(err.Error(), "layout_method") {
		t.Errorf("expected layout_method in message, got %q", err.Error())
	}

	o = DefaultTranspilationOptions()
	o.ApproximationDegree = 1.5
	if err := o.Validate(); err == nil {
		t.Fatal("expected error for approximation_degree above 1")
	}
}

func TestExecutionOptionsValidate(t *testing.T) {
	o := DefaultExecutionOptions()
	if err := o.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}

	o.Shots = 0
	if err := o.Validate(); err == nil {
		t.Fatal("expected error for zero shots")
	}
}

func TestEnvironmentOptionsValidate(t *testing.T) {
	o := DefaultEnvironmentOptions()
	if err := o.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}

	for _, level := range SupportedLogLevels {
		o.LogLevel = level
		if err := o.Validate(); err != nil {
			t.Errorf("expected %s to validate, got %v", level, err)
		}
	}

	o.LogLevel = "verbose"
	if err := o.Validate(); err == nil {
		t.Fatal("expected error for unsupported log level")
	}
}

func TestSimulatorOptionsValidate(t *testing.T) {
	o := DefaultSimulatorOptions()
	if err := o.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}

	o.CouplingMap = [][]int{{0, 1}, {1, 2}}
	o.BasisGates = []string{"cx", "rz", "sx"}
	if err := o.Validate(); err != nil {
		t.Fatalf("expected valid simulator options, got %v", err)
	}

	o.CouplingMap = [][]int{{0, 1, 2}}
	err := o.Validate()
	if err == nil {
		t.Fatal("expected error for non-pair coupling map entry")
	}
	if code := errors.CodeOf(err); code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", code)
	}

	o = DefaultSimulatorOptions()
	o.BasisGates = []string{"cx", ""}
	if err := o.Validate(); err == nil {
		t.Fatal("expected error for empty gate name")
	}
}

func TestOptionsPayload(t *testing.T) {
	o := Defaults()
	o.Environment.JobTags = []string{"batch-7"}
	p := o.Payload()

	if p[FieldOptimizationLevel] != 3 {
		t.Errorf("expected optimization_level 3, got %v", p[FieldOptimizationLevel])
	}
	if _, ok := p[FieldMaxExecutionTime]; ok {
		t.Error("expected unset max_execution_time to be omitted")
	}

	res, ok := p[GroupResilience].(map[string]any)
	if !ok {
		t.Fatal("expected resilience sub-mapping")
	}
	if _, ok := res[FieldNoiseAmplifier]; ok {
		t.Error("expected unset noise_amplifier to be omitted from payload")
	}
	if res[FieldExtrapolator] != LinearExtrapolator {
		t.Errorf("expected LinearExtrapolator, got %v", res[FieldExtrapolator])
	}

	env, ok := p[GroupEnvironment].(map[string]any)
	if !ok {
		t.Fatal("expected environment sub-mapping")
	}
	tags, ok := env[FieldJobTags].([]string)
	if !ok || len(tags) != 1 || tags[0] != "batch-7" {
		t.Errorf("expected job tags in payload, got %v", env[FieldJobTags])
	}
}

func TestOptionsPayloadWithAmplifier(t *testing.T) {
	o := Defaults()
	o.Resilience.NoiseAmplifier = LocalFoldingAmplifier
	o.MaxExecutionTime = 3600
	p := o.Payload()

	res := p[GroupResilience].(map[string]any)
	if res[FieldNoiseAmplifier] != LocalFoldingAmplifier {
		t.Errorf("expected amplifier in payload, got %v", res[FieldNoiseAmplifier])
	}
	if p[FieldMaxExecutionTime] != 3600 {
		t.Errorf("expected max_execution_time 3600, got %v", p[FieldMaxExecutionTime])
	}
}
