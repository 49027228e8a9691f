package config

import "fmt"

var validOutputs = map[string]bool{
	"auto":     true,
	"text":     true,
	"markdown": true,
	"md":       true,
	"json":     true,
}

var validColors = map[string]bool{
	"auto":   true,
	"always": true,
	"never":  true,
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Output != "" && !validOutputs[c.Output] {
		return fmt.Errorf("invalid output mode %q (want auto, text, markdown, or json)", c.Output)
	}
	if c.Color != "" && !validColors[c.Color] {
		return fmt.Errorf("invalid color setting %q (want auto, always, or never)", c.Color)
	}
	if c.Width < 0 {
		return fmt.Errorf("invalid width %d: must be >= 0", c.Width)
	}
	return nil
}
