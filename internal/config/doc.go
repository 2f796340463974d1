// Package config builds the immutable runtime configuration of the demo
// program. Values come from built-in defaults, the DEBUG environment variable,
// and functional options supplied by the caller, in that order of precedence
// (options win).
package config
