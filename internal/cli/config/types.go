// Package config loads memtour configuration from files, environment
// variables, and command-line flags.
package config

// Defaults used when no config file, env var, or flag overrides them.
const (
	DefaultOutput = "auto"
	DefaultColor  = "auto"
	DefaultWidth  = 0 // 0 means do not wrap
)

// Config holds the resolved configuration.
type Config struct {
	// Output is the output mode: auto, text, markdown, or json.
	Output string `koanf:"output"`

	// Color controls styled output: auto, always, or never.
	Color string `koanf:"color"`

	// Verbose enables debug logging to stderr.
	Verbose bool `koanf:"verbose"`

	// Width wraps transcript lines at the given column; 0 disables wrapping.
	Width int `koanf:"width"`

	// Plan is an optional path to a YAML lesson plan used by default
	// when `memtour run` is invoked without arguments.
	Plan string `koanf:"plan"`

	// Sections restricts the default tour to the listed section IDs.
	// Empty means the full registry in canonical order.
	Sections []string `koanf:"sections"`
}
