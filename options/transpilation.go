package options

import (
	"github.com/qbeam/runtimekit/validation"
)

// Transpilation option names recognized by the runtime.
const (
	FieldSkipTranspilation   = "skip_transpilation"
	FieldInitialLayout       = "initial_layout"
	FieldLayoutMethod        = "layout_method"
	FieldRoutingMethod       = "routing_method"
	FieldTranslationMethod   = "translation_method"
	FieldApproximationDegree = "approximation_degree"
)

var (
	// SupportedTranspilationOptions lists the recognized transpilation option names.
	SupportedTranspilationOptions = []string{
		FieldSkipTranspilation, FieldInitialLayout, FieldLayoutMethod,
		FieldRoutingMethod, FieldTranslationMethod, FieldApproximationDegree,
	}
	// SupportedLayoutMethods lists the legal layout_method values.
	SupportedLayoutMethods = []string{"trivial", "dense", "noise_adaptive", "sabre"}
	// SupportedRoutingMethods lists the legal routing_method values.
	SupportedRoutingMethods = []string{"basic", "lookahead", "stochastic", "sabre", "none"}
	// SupportedTranslationMethods lists the legal translation_method values.
	SupportedTranslationMethods = []string{"unroller", "translator", "synthesis"}
)

// TranspilationOptions configures circuit transpilation for a job.
type TranspilationOptions struct {
	SkipTranspilation bool  `json:"skip_transpilation"`
	InitialLayout     []int `json:"initial_layout,omitempty"`
	// LayoutMethod and RoutingMethod are ignored when SkipTranspilation is set.
	LayoutMethod        string  `json:"layout_method,omitempty" validate:"omitempty,oneof=trivial dense noise_adaptive sabre"`
	RoutingMethod       string  `json:"routing_method,omitempty" validate:"omitempty,oneof=basic lookahead stochastic sabre none"`
	TranslationMethod   string  `json:"translation_method,omitempty" validate:"omitempty,oneof=unroller translator synthesis"`
	ApproximationDegree float64 `json:"approximation_degree" validate:"gte=0,lte=1"`
}

// DefaultTranspilationOptions returns the defaulted transpilation record.
// An approximation degree of 1 means no approximation.
func DefaultTranspilationOptions() TranspilationOptions {
	return TranspilationOptions{
		ApproximationDegree: 1,
	}
}

// Validate validates the transpilation record.
func (o TranspilationOptions) Validate() error {
	return validation.Validate(o)
}
