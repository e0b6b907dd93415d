package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides,
// e.g. QRT_OPTIONS_SHOTS binds to options.shots.
const EnvPrefix = "QRT"

// FileSystem abstracts file operations so the loader is testable.
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// LoaderConfig holds loader dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // explicit config file path (optional)
	EnvFile    string // explicit .env file path (optional)
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// configSearchPaths are the standard locations for the client config file.
var configSearchPaths = []string{
	"./runtimekit.yml",
	"./config/runtimekit.yml",
	"./config.yml",
}

// envSearchPaths are the standard locations for the .env file.
var envSearchPaths = []string{
	"./.env.runtimekit",
	"./.env",
}

// Load loads the client configuration into cfg, then applies defaults and
// validates. File values are overridden by .env values and environment
// variables carrying the QRT_ prefix.
func Load(cfg *ClientConfig, opts ...LoaderOption) error {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}

	if lc.ConfigFile == "" {
		lc.ConfigFile = firstExisting(lc.FileSystem, configSearchPaths)
	}
	if lc.EnvFile == "" {
		lc.EnvFile = firstExisting(lc.FileSystem, envSearchPaths)
	}

	if err := loadInto(cfg, lc); err != nil {
		return err
	}

	cfg.ApplyDefaults()
	return cfg.Validate()
}

func loadInto(cfg *ClientConfig, lc LoaderConfig) error {
	v := viper.New()

	// YAML config first, as the base layer.
	if lc.ConfigFile != "" && lc.FileSystem.Exists(lc.ConfigFile) {
		v.SetConfigFile(lc.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", lc.ConfigFile, err)
		}
	}

	// .env next, so its variables participate in the env binding below.
	if lc.EnvFile != "" && lc.FileSystem.Exists(lc.EnvFile) {
		if err := lc.FileSystem.LoadEnv(lc.EnvFile); err != nil {
			return fmt.Errorf("failed to load .env file %s: %w", lc.EnvFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvKeys(v)

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal client config: %w", err)
	}
	return nil
}

// bindEnvKeys binds the known config keys so AutomaticEnv picks them up even
// when they are absent from the config file.
func bindEnvKeys(v *viper.Viper) {
	for _, key := range []string{
		"name", "environment", "debug",
		"logging.level", "logging.format", "logging.output",
		"options.optimization_level", "options.resilience_level",
		"options.shots", "options.log_level",
	} {
		// BindEnv only errors on an empty key.
		_ = v.BindEnv(key)
	}
}

func firstExisting(fs FileSystem, paths []string) string {
	for _, p := range paths {
		if fs.Exists(p) {
			return p
		}
	}
	return ""
}
