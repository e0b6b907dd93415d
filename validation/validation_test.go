package validation

import (
	"strings"
	"testing"

	"github.com/qbeam/runtimekit/errors"
)

func TestValidatorRequired(t *testing.T) {
	v := New()
	v.Required("layout_method", "sabre")
	if v.HasErrors() {
		t.Error("expected no errors for valid input")
	}

	v2 := New()
	v2.Required("layout_method", "")
	if !v2.HasErrors() {
		t.Error("expected error for empty required field")
	}

	v3 := New()
	v3.Required("layout_method", "   ")
	if !v3.HasErrors() {
		t.Error("expected error for whitespace-only required field")
	}
}

func TestValidatorRange(t *testing.T) {
	v := New()
	v.Range("optimization_level", 2, 0, 3)
	if v.HasErrors() {
		t.Error("expected no error for value in range")
	}

	v2 := New()
	v2.Range("optimization_level", 5, 0, 3)
	if !v2.HasErrors() {
		t.Error("expected error for value above range")
	}

	v3 := New()
	v3.Range("optimization_level", -1, 0, 3)
	if !v3.HasErrors() {
		t.Error("expected error for value below range")
	}
}

func TestValidatorMinMax(t *testing.T) {
	v := New()
	v.Min("shots", 4000, 1).Max("shots", 4000, 100000)
	if v.HasErrors() {
		t.Errorf("expected no errors, got %v", v.Errors())
	}

	v2 := New()
	v2.Min("shots", 0, 1)
	if !v2.HasErrors() {
		t.Error("expected error for value below minimum")
	}

	v3 := New()
	v3.Max("max_execution_time", 30000, 28800)
	if !v3.HasErrors() {
		t.Error("expected error for value above maximum")
	}
}

func TestValidatorMinCount(t *testing.T) {
	v := New()
	v.MinCount("noise_factors", 5, 5)
	if v.HasErrors() {
		t.Error("expected no error when count meets minimum")
	}

	v2 := New()
	v2.MinCount("noise_factors", 3, 5)
	if !v2.HasErrors() {
		t.Error("expected error when count below minimum")
	}
}

func TestValidatorOneOf(t *testing.T) {
	allowed := []string{"LinearExtrapolator", "QuadraticExtrapolator"}

	v := New()
	v.OneOf("extrapolator", "LinearExtrapolator", allowed)
	if v.HasErrors() {
		t.Error("expected no error for allowed value")
	}

	v2 := New()
	v2.OneOf("extrapolator", "Bogus", allowed)
	if !v2.HasErrors() {
		t.Error("expected error for disallowed value")
	}

	// Empty values are skipped; pair with Required when needed.
	v3 := New()
	v3.OneOf("extrapolator", "", allowed)
	if v3.HasErrors() {
		t.Error("expected empty value to be skipped")
	}
}

func TestValidatorCustom(t *testing.T) {
	v := New()
	v.Custom(len([]float64{1, 3, 5}) >= 3, "noise_factors", "needs at least 3 factors")
	if v.HasErrors() {
		t.Error("expected no error for satisfied condition")
	}

	v2 := New()
	v2.Custom(false, "noise_factors", "needs at least 3 factors")
	if !v2.HasErrors() {
		t.Error("expected error for failed condition")
	}
}

func TestValidatorValidateReturnsAppError(t *testing.T) {
	v := New()
	v.Required("name", "").Range("level", 9, 0, 3)

	appErr := v.Validate()
	if appErr == nil {
		t.Fatal("expected AppError")
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", appErr.Code)
	}
	if !strings.Contains(appErr.Message, "name") || !strings.Contains(appErr.Message, "level") {
		t.Errorf("expected both fields in message, got %q", appErr.Message)
	}
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok || len(fields) != 2 {
		t.Errorf("expected 2 field errors in details, got %v", appErr.Details["fields"])
	}
}

func TestValidatorValidateNilWhenClean(t *testing.T) {
	v := New()
	v.Required("name", "ok")
	if err := v.Validate(); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}

func TestRequiredHelper(t *testing.T) {
	if err := Required("name", "value"); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := Required("name", ""); err == nil {
		t.Error("expected error for empty value")
	}
}

func TestMember(t *testing.T) {
	allowed := []string{"a", "b"}
	if !Member("a", allowed) {
		t.Error("expected member to be found")
	}
	if Member("c", allowed) {
		t.Error("expected non-member to be rejected")
	}
	if Member("", allowed) {
		t.Error("expected empty string to be rejected")
	}
}

type tagValidated struct {
	LayoutMethod string  `json:"layout_method" validate:"omitempty,oneof=trivial dense noise_adaptive sabre"`
	Shots        int     `json:"shots" validate:"gte=1"`
	Degree       float64 `json:"approximation_degree" validate:"gte=0,lte=1"`
}

func TestValidateStructClean(t *testing.T) {
	err := Validate(tagValidated{LayoutMethod: "sabre", Shots: 4000, Degree: 1})
	if err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestValidateStructOneOf(t *testing.T) {
	err := Validate(tagValidated{LayoutMethod: "bogus", Shots: 1, Degree: 0})
	if err == nil {
		t.Fatal("expected error for bad oneof value")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatal("expected AppError")
	}
	if !strings.Contains(appErr.Message, "layout_method") {
		t.Errorf("expected json field name in message, got %q", appErr.Message)
	}
	if !strings.Contains(appErr.Message, "must be one of") {
		t.Errorf("expected oneof message, got %q", appErr.Message)
	}
}

func TestValidateStructBounds(t *testing.T) {
	err := Validate(tagValidated{LayoutMethod: "", Shots: 0, Degree: 1.5})
	if err == nil {
		t.Fatal("expected error for out-of-bounds values")
	}
	msg := err.Error()
	if !strings.Contains(msg, "shots") {
		t.Errorf("expected shots violation, got %q", msg)
	}
	if !strings.Contains(msg, "approximation_degree") {
		t.Errorf("expected approximation_degree violation, got %q", msg)
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"NoiseFactors":      "noise_factors",
		"LayoutMethod":      "layout_method",
		"Shots":             "shots",
		"OptimizationLevel": "optimization_level",
	}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
