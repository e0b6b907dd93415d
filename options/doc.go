// Package options defines the option groups accepted by the qbeam quantum
// runtime and the validation applied before a job payload is submitted.
//
// Each group (resilience, transpilation, execution, environment, simulator)
// is a plain record with defaults. Callers supply partial override mappings;
// the Builder merges them onto the defaulted record only after validation
// passes, so a rejected mapping never produces a partially-merged
// configuration. Recognized option names and enumerated values are part of
// the wire vocabulary and must match the runtime exactly.
package options
