package options

import (
	"sort"

	"github.com/google/uuid"

	"github.com/qbeam/runtimekit/deprecation"
	"github.com/qbeam/runtimekit/errors"
	"github.com/qbeam/runtimekit/logger"
	"github.com/qbeam/runtimekit/validation"
)

// Builder is the options-merging layer. It holds a defaulted record and
// produces merged, validated configurations from caller override mappings.
// Validation either accepts or rejects the whole override set; a rejected
// mapping is never partially merged.
//
// A Builder holds no per-build state and is safe for concurrent use.
type Builder struct {
	base     Options
	reporter deprecation.Reporter
	log      *logger.Logger
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithDefaults replaces the defaulted record the Builder merges onto.
func WithDefaults(o Options) BuilderOption {
	return func(b *Builder) { b.base = o }
}

// WithReporter sets the deprecation reporter.
func WithReporter(r deprecation.Reporter) BuilderOption {
	return func(b *Builder) { b.reporter = r }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *logger.Logger) BuilderOption {
	return func(b *Builder) { b.log = l }
}

// NewBuilder creates a Builder merging onto Defaults unless overridden.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{base: Defaults()}
	for _, opt := range opts {
		opt(b)
	}
	if b.reporter == nil {
		b.reporter = deprecation.Default()
	}
	if b.log == nil {
		b.log = logger.Get("options")
	}
	return b
}

// Build is a merged, validated configuration ready for serialization.
type Build struct {
	// ID identifies this configuration-build request in diagnostics.
	ID      uuid.UUID
	Options Options
}

// Build validates overrides against the defaulted record and returns the
// merged result. The mapping may carry the scalar options and per-group
// sub-mappings keyed by group name. On failure nothing is merged and the
// typed validation error is returned.
func (b *Builder) Build(overrides map[string]any) (*Build, error) {
	id := uuid.New()

	build, err := b.merge(overrides)
	if err != nil {
		b.log.Warn("options rejected", logger.MergeWithError(
			logger.Fields(logger.FieldBuildID, id.String()), err))
		return nil, err
	}

	b.log.Debug("options validated", logger.Fields(logger.FieldBuildID, id.String()))
	return &Build{ID: id, Options: build}, nil
}

func (b *Builder) merge(overrides map[string]any) (Options, error) {
	merged := b.base.clone()

	// Sorted so the named key is deterministic when several are unknown.
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !validation.Member(k, SupportedOptions) {
			return Options{}, errors.UnsupportedOption(k, "options")
		}
	}

	if v, ok := overrides[FieldOptimizationLevel]; ok {
		n, ok := asInt(v)
		if !ok {
			return Options{}, errors.InvalidInput(FieldOptimizationLevel, "must be an integer")
		}
		merged.OptimizationLevel = n
	}
	if v, ok := overrides[FieldResilienceLevel]; ok {
		n, ok := asInt(v)
		if !ok {
			return Options{}, errors.InvalidInput(FieldResilienceLevel, "must be an integer")
		}
		merged.ResilienceLevel = n
	}
	if v, ok := overrides[FieldMaxExecutionTime]; ok {
		n, ok := asInt(v)
		if !ok {
			return Options{}, errors.InvalidInput(FieldMaxExecutionTime, "must be an integer number of seconds")
		}
		merged.MaxExecutionTime = n
	}

	if err := b.mergeGroups(&merged, overrides); err != nil {
		return Options{}, err
	}

	v := validation.New()
	v.Range(FieldOptimizationLevel, merged.OptimizationLevel, 0, 3)
	v.Range(FieldResilienceLevel, merged.ResilienceLevel, 0, 3)
	if merged.MaxExecutionTime != 0 {
		v.Range(FieldMaxExecutionTime, merged.MaxExecutionTime, MinExecutionTime, MaxExecutionTime)
	}
	if appErr := v.Validate(); appErr != nil {
		return Options{}, appErr
	}

	// A supplied resilience group was already validated during the merge;
	// revalidating it here would emit a second deprecation notice.
	if _, ok := overrides[GroupResilience]; !ok {
		if err := merged.Resilience.Validate(b.reporter); err != nil {
			return Options{}, err
		}
	}
	if err := merged.Transpilation.Validate(); err != nil {
		return Options{}, err
	}
	if err := merged.Execution.Validate(); err != nil {
		return Options{}, err
	}
	if err := merged.Environment.Validate(); err != nil {
		return Options{}, err
	}
	if err := merged.Simulator.Validate(); err != nil {
		return Options{}, err
	}
	return merged, nil
}

func (b *Builder) mergeGroups(merged *Options, overrides map[string]any) error {
	if v, ok := overrides[GroupResilience]; ok {
		group, ok := asMapping(v)
		if !ok {
			return errors.InvalidInput(GroupResilience, "must be a mapping of resilience options")
		}
		if err := applyResilience(&merged.Resilience, group, b.reporter); err != nil {
			return err
		}
	}
	if v, ok := overrides[GroupTranspilation]; ok {
		group, ok := asMapping(v)
		if !ok {
			return errors.InvalidInput(GroupTranspilation, "must be a mapping of transpilation options")
		}
		if err := applyTranspilation(&merged.Transpilation, group); err != nil {
			return err
		}
	}
	if v, ok := overrides[GroupExecution]; ok {
		group, ok := asMapping(v)
		if !ok {
			return errors.InvalidInput(GroupExecution, "must be a mapping of execution options")
		}
		if err := applyExecution(&merged.Execution, group); err != nil {
			return err
		}
	}
	if v, ok := overrides[GroupEnvironment]; ok {
		group, ok := asMapping(v)
		if !ok {
			return errors.InvalidInput(GroupEnvironment, "must be a mapping of environment options")
		}
		if err := applyEnvironment(&merged.Environment, group); err != nil {
			return err
		}
	}
	if v, ok := overrides[GroupSimulator]; ok {
		group, ok := asMapping(v)
		if !ok {
			return errors.InvalidInput(GroupSimulator, "must be a mapping of simulator options")
		}
		if err := applySimulator(&merged.Simulator, group); err != nil {
			return err
		}
	}
	return nil
}

// applyResilience validates the defaulted record with the caller overrides
// applied on top, then commits the overrides. Validation runs on the full
// mapping so the extrapolator is always present even though the map-level
// validator applies no default for it.
func applyResilience(dst *ResilienceOptions, group map[string]any, reporter deprecation.Reporter) error {
	full := dst.asOverrides()
	for k, v := range group {
		full[k] = v
	}
	if err := ValidateResilience(full, reporter); err != nil {
		return err
	}

	if v, ok := group[FieldNoiseAmplifier]; ok && v != nil {
		// Validation guarantees a string member or empty.
		if s, _ := asString(v); s != "" {
			dst.NoiseAmplifier = s
		}
	}
	if v, ok := group[FieldNoiseFactors]; ok {
		factors, ok := asFloatSlice(v)
		if !ok {
			return errors.InvalidInput(FieldNoiseFactors, "must be a sequence of real numbers")
		}
		dst.NoiseFactors = factors
	}
	if v, ok := group[FieldExtrapolator]; ok {
		s, _ := asString(v)
		dst.Extrapolator = s
	}
	return nil
}

func applyTranspilation(dst *TranspilationOptions, group map[string]any) error {
	if err := checkGroupKeys(group, SupportedTranspilationOptions, GroupTranspilation); err != nil {
		return err
	}
	if v, ok := group[FieldSkipTranspilation]; ok {
		b, ok := asBool(v)
		if !ok {
			return errors.InvalidInput(FieldSkipTranspilation, "must be a boolean")
		}
		dst.SkipTranspilation = b
	}
	if v, ok := group[FieldInitialLayout]; ok {
		layout, ok := asIntSlice(v)
		if !ok {
			return errors.InvalidInput(FieldInitialLayout, "must be a sequence of qubit indices")
		}
		dst.InitialLayout = layout
	}
	for field, target := range map[string]*string{
		FieldLayoutMethod:      &dst.LayoutMethod,
		FieldRoutingMethod:     &dst.RoutingMethod,
		FieldTranslationMethod: &dst.TranslationMethod,
	} {
		if v, ok := group[field]; ok {
			s, ok := asString(v)
			if !ok {
				return errors.InvalidInput(field, "must be a string")
			}
			*target = s
		}
	}
	if v, ok := group[FieldApproximationDegree]; ok {
		f, ok := asFloat(v)
		if !ok {
			return errors.InvalidInput(FieldApproximationDegree, "must be a real number")
		}
		dst.ApproximationDegree = f
	}
	return nil
}

func applyExecution(dst *ExecutionOptions, group map[string]any) error {
	if err := checkGroupKeys(group, SupportedExecutionOptions, GroupExecution); err != nil {
		return err
	}
	if v, ok := group[FieldShots]; ok {
		n, ok := asInt(v)
		if !ok {
			return errors.InvalidInput(FieldShots, "must be an integer")
		}
		dst.Shots = n
	}
	if v, ok := group[FieldInitQubits]; ok {
		b, ok := asBool(v)
		if !ok {
			return errors.InvalidInput(FieldInitQubits, "must be a boolean")
		}
		dst.InitQubits = b
	}
	return nil
}

func applyEnvironment(dst *EnvironmentOptions, group map[string]any) error {
	if err := checkGroupKeys(group, SupportedEnvironmentOptions, GroupEnvironment); err != nil {
		return err
	}
	if v, ok := group[FieldLogLevel]; ok {
		s, ok := asString(v)
		if !ok {
			return errors.InvalidInput(FieldLogLevel, "must be a string")
		}
		dst.LogLevel = s
	}
	if v, ok := group[FieldJobTags]; ok {
		tags, ok := asStringSlice(v)
		if !ok {
			return errors.InvalidInput(FieldJobTags, "must be a sequence of strings")
		}
		dst.JobTags = tags
	}
	return nil
}

func applySimulator(dst *SimulatorOptions, group map[string]any) error {
	if err := checkGroupKeys(group, SupportedSimulatorOptions, GroupSimulator); err != nil {
		return err
	}
	if v, ok := group[FieldNoiseModel]; ok {
		m, ok := asMapping(v)
		if !ok {
			return errors.InvalidInput(FieldNoiseModel, "must be a mapping")
		}
		dst.NoiseModel = m
	}
	if v, ok := group[FieldSeedSimulator]; ok {
		n, ok := asInt(v)
		if !ok {
			return errors.InvalidInput(FieldSeedSimulator, "must be an integer")
		}
		seed := int64(n)
		dst.SeedSimulator = &seed
	}
	if v, ok := group[FieldCouplingMap]; ok {
		cm, ok := asCouplingMap(v)
		if !ok {
			return errors.InvalidInput(FieldCouplingMap, "must be a sequence of qubit pairs")
		}
		dst.CouplingMap = cm
	}
	if v, ok := group[FieldBasisGates]; ok {
		gates, ok := asStringSlice(v)
		if !ok {
			return errors.InvalidInput(FieldBasisGates, "must be a sequence of gate names")
		}
		dst.BasisGates = gates
	}
	return nil
}

func checkGroupKeys(group map[string]any, supported []string, groupName string) error {
	keys := make([]string, 0, len(group))
	for k := range group {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !validation.Member(k, supported) {
			return errors.UnsupportedOption(k, groupName)
		}
	}
	return nil
}

// clone deep-copies the record so a trial merge never aliases the base.
func (o Options) clone() Options {
	out := o
	out.Resilience.NoiseFactors = append([]float64(nil), o.Resilience.NoiseFactors...)
	out.Transpilation.InitialLayout = append([]int(nil), o.Transpilation.InitialLayout...)
	out.Environment.JobTags = append([]string(nil), o.Environment.JobTags...)
	out.Simulator.BasisGates = append([]string(nil), o.Simulator.BasisGates...)
	if o.Simulator.CouplingMap != nil {
		out.Simulator.CouplingMap = make([][]int, len(o.Simulator.CouplingMap))
		for i, edge := range o.Simulator.CouplingMap {
			out.Simulator.CouplingMap[i] = append([]int(nil), edge...)
		}
	}
	if o.Simulator.NoiseModel != nil {
		out.Simulator.NoiseModel = make(map[string]any, len(o.Simulator.NoiseModel))
		for k, v := range o.Simulator.NoiseModel {
			out.Simulator.NoiseModel[k] = v
		}
	}
	if o.Simulator.SeedSimulator != nil {
		seed := *o.Simulator.SeedSimulator
		out.Simulator.SeedSimulator = &seed
	}
	return out
}
