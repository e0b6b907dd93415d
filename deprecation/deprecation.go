package deprecation

import (
	"fmt"

	"github.com/qbeam/runtimekit/logger"
	"github.com/qbeam/runtimekit/version"
)

// Notice describes a deprecation of an SDK option or feature.
type Notice struct {
	// Option is the deprecated identifier, e.g. "noise_amplifier".
	Option string `json:"option"`
	// Msg is the deprecation message.
	Msg string `json:"msg"`
	// Version is the release in which the deprecation began.
	Version string `json:"version"`
	// Period is the grace period before removal, e.g. "1 month".
	Period string `json:"period"`
	// Remedy is free-text remediation guidance.
	Remedy string `json:"remedy,omitempty"`
}

// String renders the notice the way it is surfaced to users.
func (n Notice) String() string {
	s := fmt.Sprintf("%s, as of version %s. It will be removed no sooner than %s after the deprecation.",
		n.Msg, n.Version, n.Period)
	if n.Remedy != "" {
		s += " " + n.Remedy
	}
	return s
}

// Reporter receives deprecation notices.
type Reporter interface {
	Report(n Notice)
}

// LogReporter emits notices through the logger package at warn level.
type LogReporter struct {
	log *logger.Logger
}

// NewLogReporter creates a LogReporter. A nil logger falls back to the
// registered "deprecation" component logger.
func NewLogReporter(l *logger.Logger) *LogReporter {
	if l == nil {
		l = logger.Get("deprecation")
	}
	return &LogReporter{log: l}
}

// Report logs the notice with structured fields and the running client version.
func (r *LogReporter) Report(n Notice) {
	r.log.Warn(n.String(), logger.Fields(
		logger.FieldOption, n.Option,
		logger.FieldVersion, n.Version,
		logger.FieldPeriod, n.Period,
		logger.FieldRemedy, n.Remedy,
		logger.FieldClient, version.GetShortVersion(),
	))
}

// Default returns the reporter used when callers do not inject one.
func Default() Reporter {
	return NewLogReporter(nil)
}
