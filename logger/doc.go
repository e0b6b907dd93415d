// Package logger provides structured logging for the runtimekit client,
// built on zerolog.
//
// A global logger is initialized once via Init and shared across the SDK;
// components obtain tagged loggers through Get or WithComponent. Diagnostics
// such as deprecation notices are emitted through this package so callers can
// route or silence them with standard zerolog configuration.
package logger
