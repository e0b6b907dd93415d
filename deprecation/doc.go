// Package deprecation reports notices for retiring SDK options and features.
//
// A Notice carries the deprecated identifier, the version in which the
// deprecation began, the grace period, and remediation guidance. Notices are
// informational: they never block execution. Validators take a Reporter so
// emission can be captured and asserted deterministically in tests; the
// default reporter logs through the logger package at warn level.
package deprecation
