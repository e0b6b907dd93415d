// Package config provides configuration loading for the runtimekit client.
//
// It uses Viper to load configuration from files and environment variables,
// supporting YAML config files, .env files, and environment-specific
// overrides. The loaded ClientConfig supplies the logging setup and the
// default option values the Builder merges job overrides onto.
//
// # Usage
//
//	var cfg config.ClientConfig
//	err := config.Load(&cfg)
//
// Environment variables override file values using underscore-separated
// paths (e.g., QRT_OPTIONS_SHOTS).
package config
