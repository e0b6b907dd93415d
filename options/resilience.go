package options

import (
	"reflect"
	"sort"

	"github.com/qbeam/runtimekit/deprecation"
	"github.com/qbeam/runtimekit/errors"
	"github.com/qbeam/runtimekit/validation"
)

// Resilience option names recognized by the runtime.
const (
	FieldNoiseAmplifier = "noise_amplifier"
	FieldNoiseFactors   = "noise_factors"
	FieldExtrapolator   = "extrapolator"
)

// Noise amplification strategies.
const (
	TwoQubitAmplifier      = "TwoQubitAmplifier"
	GlobalFoldingAmplifier = "GlobalFoldingAmplifier"
	LocalFoldingAmplifier  = "LocalFoldingAmplifier"
	CxAmplifier            = "CxAmplifier"
)

// Extrapolation strategies.
const (
	LinearExtrapolator    = "LinearExtrapolator"
	QuadraticExtrapolator = "QuadraticExtrapolator"
	CubicExtrapolator     = "CubicExtrapolator"
	QuarticExtrapolator   = "QuarticExtrapolator"
)

var (
	// SupportedResilienceOptions lists the recognized resilience option names.
	SupportedResilienceOptions = []string{FieldNoiseAmplifier, FieldNoiseFactors, FieldExtrapolator}
	// SupportedNoiseAmplifiers lists the legal noise_amplifier values.
	SupportedNoiseAmplifiers = []string{TwoQubitAmplifier, GlobalFoldingAmplifier, LocalFoldingAmplifier, CxAmplifier}
	// SupportedExtrapolators lists the legal extrapolator values.
	SupportedExtrapolators = []string{LinearExtrapolator, QuadraticExtrapolator, CubicExtrapolator, QuarticExtrapolator}
)

// Minimum noise-factor counts per extrapolator.
const (
	minFactorsCubic   = 4
	minFactorsQuartic = 5
)

// ResilienceOptions configures error mitigation for a job.
//
// NoiseAmplifier is deprecated; after the deprecation period only local
// folding amplification will be supported.
type ResilienceOptions struct {
	NoiseAmplifier string    `json:"noise_amplifier,omitempty"`
	NoiseFactors   []float64 `json:"noise_factors"`
	Extrapolator   string    `json:"extrapolator"`
}

// DefaultResilienceOptions returns the defaulted resilience record.
func DefaultResilienceOptions() ResilienceOptions {
	return ResilienceOptions{
		NoiseFactors: []float64{1, 3, 5},
		Extrapolator: LinearExtrapolator,
	}
}

// noiseAmplifierNotice is emitted whenever noise_amplifier is supplied.
func noiseAmplifierNotice() deprecation.Notice {
	return deprecation.Notice{
		Option:  FieldNoiseAmplifier,
		Msg:     "The 'noise_amplifier' resilience option is deprecated",
		Version: "0.12.0",
		Period:  "1 month",
		Remedy: "After the deprecation period, only local folding amplification " +
			"will be supported. " +
			"Refer to https://github.com/qiskit-community/prototype-zne " +
			"for global folding amplification in ZNE.",
	}
}

// ValidateResilience checks a resilience override mapping against the
// recognized option names, the legal enumerated values, and the cross-field
// noise-factor minimums. The checks run in a fixed order; the first failure
// is returned and nothing is merged.
//
// A notice is reported when noise_amplifier is supplied, before any check can
// fail. The extrapolator is read from the mapping with no default fallback;
// callers merge defaults before validating.
func ValidateResilience(overrides map[string]any, reporter deprecation.Reporter) error {
	if reporter == nil {
		reporter = deprecation.Default()
	}

	if v, ok := overrides[FieldNoiseAmplifier]; ok && v != nil {
		reporter.Report(noiseAmplifierNotice())
	}

	// Sorted so the named key is deterministic when several are unknown.
	keys := make([]string, 0, len(overrides))
	for opt := range overrides {
		keys = append(keys, opt)
	}
	sort.Strings(keys)
	for _, opt := range keys {
		if !validation.Member(opt, SupportedResilienceOptions) {
			return errors.UnsupportedOption(opt, "resilience")
		}
	}

	if err := checkNoiseAmplifier(overrides[FieldNoiseAmplifier]); err != nil {
		return err
	}

	extrapolator, err := checkExtrapolator(overrides[FieldExtrapolator])
	if err != nil {
		return err
	}

	switch extrapolator {
	case QuarticExtrapolator:
		if n := factorCount(overrides[FieldNoiseFactors]); n < minFactorsQuartic {
			return errors.InsufficientNoiseFactors(QuarticExtrapolator, minFactorsQuartic, n)
		}
	case CubicExtrapolator:
		if n := factorCount(overrides[FieldNoiseFactors]); n < minFactorsCubic {
			return errors.InsufficientNoiseFactors(CubicExtrapolator, minFactorsCubic, n)
		}
	}

	return nil
}

// checkNoiseAmplifier resolves the effective amplifier and verifies
// membership. Nil and empty string fall back to the default.
func checkNoiseAmplifier(raw any) error {
	amplifier := TwoQubitAmplifier
	if raw != nil {
		s, ok := raw.(string)
		if !ok {
			return errors.UnsupportedValue(FieldNoiseAmplifier, raw, SupportedNoiseAmplifiers)
		}
		if s != "" {
			amplifier = s
		}
	}
	if !validation.Member(amplifier, SupportedNoiseAmplifiers) {
		return errors.UnsupportedValue(FieldNoiseAmplifier, amplifier, SupportedNoiseAmplifiers)
	}
	return nil
}

// checkExtrapolator verifies the supplied extrapolator. Unlike the amplifier
// there is no default fallback: an absent value fails membership.
func checkExtrapolator(raw any) (string, error) {
	s, ok := raw.(string)
	if !ok || !validation.Member(s, SupportedExtrapolators) {
		return "", errors.UnsupportedValue(FieldExtrapolator, raw, SupportedExtrapolators)
	}
	return s, nil
}

// factorCount returns the element count of a noise_factors value, accepting
// any slice type. Non-slices count as zero.
func factorCount(raw any) int {
	if raw == nil {
		return 0
	}
	switch v := raw.(type) {
	case []float64:
		return len(v)
	case []int:
		return len(v)
	case []any:
		return len(v)
	}
	rv := reflect.ValueOf(raw)
	if rv.Kind() == reflect.Slice {
		return rv.Len()
	}
	return 0
}

// asOverrides renders the record as the override mapping the validator
// consumes. The amplifier is included only when set, so the defaulted record
// does not trip the deprecation notice.
func (o ResilienceOptions) asOverrides() map[string]any {
	m := map[string]any{
		FieldNoiseFactors: o.NoiseFactors,
		FieldExtrapolator: o.Extrapolator,
	}
	if o.NoiseAmplifier != "" {
		m[FieldNoiseAmplifier] = o.NoiseAmplifier
	}
	return m
}

// Validate validates the full resilience record.
func (o ResilienceOptions) Validate(reporter deprecation.Reporter) error {
	return ValidateResilience(o.asOverrides(), reporter)
}
