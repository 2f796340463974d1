package config

import (
	"os"
	"strings"
)

const (
	// DefaultName is the application name reported in the banner.
	DefaultName = "demo"
	// DefaultVersion is the application version reported in the banner.
	DefaultVersion = "0.1.0"
	// DebugEnvVar enables debug mode when set to "true" (any letter case).
	DebugEnvVar = "DEBUG"
)

// lookupEnv is swapped in tests that need to observe environment reads.
var lookupEnv = os.LookupEnv

// Config holds the application name, version and debug flag.
// Fields are assigned once by New and are read-only afterwards.
type Config struct {
	name    string
	version string
	debug   bool
}

// Option overrides a default while a Config is being constructed.
type Option func(*Config)

// WithName overrides DefaultName.
func WithName(name string) Option {
	return func(c *Config) {
		c.name = name
	}
}

// WithVersion overrides DefaultVersion.
func WithVersion(version string) Option {
	return func(c *Config) {
		c.version = version
	}
}

// WithDebug sets the debug flag explicitly, ignoring DEBUG.
func WithDebug(debug bool) Option {
	return func(c *Config) {
		c.debug = debug
	}
}

// New returns a Config populated with defaults. The debug flag is derived
// from DEBUG on every call unless WithDebug is supplied.
func New(opts ...Option) Config {
	cfg := Config{
		name:    DefaultName,
		version: DefaultVersion,
		debug:   DebugFromEnv(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// Name returns the application name.
func (c Config) Name() string { return c.name }

// Version returns the application version.
func (c Config) Version() string { return c.version }

// Debug reports whether debug mode is enabled.
func (c Config) Debug() bool { return c.debug }

// DebugFromEnv reads DEBUG from the process environment.
// An unset variable is treated as "false".
func DebugFromEnv() bool {
	raw, ok := lookupEnv(DebugEnvVar)
	if !ok {
		return false
	}
	return ParseDebug(raw)
}

// ParseDebug reports whether raw spells "true", ignoring letter case.
// The value is not trimmed: " true" is false.
func ParseDebug(raw string) bool {
	return strings.EqualFold(raw, "true")
}
