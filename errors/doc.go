// Package errors provides unified error handling for the runtimekit client.
// It implements structured error types with machine-readable codes, HTTP
// status mapping for server-relayed failures, and retryable detection.
package errors
