// Package config provides configuration management for the dupcheck CLI.
//
// Configuration is layered, highest precedence first: command-line flags,
// DUPCHECK_* environment variables, dupcheck.yaml in the project root, and
// built-in defaults.
package config

import (
	"github.com/leapstack-labs/dupcheck/pkg/dupcheck"
)

// Config holds all CLI configuration options.
type Config struct {
	// ProjectRoot anchors relative file paths. Set by the loader.
	ProjectRoot string                   `koanf:"-"`
	Files       []string                 `koanf:"files"`
	Format      string                   `koanf:"format"`
	OnMalformed dupcheck.MalformedPolicy `koanf:"on_malformed"`
	Verbose     bool                     `koanf:"verbose"`
	Output      string                   `koanf:"output"`
	Formats     map[string]FormatConfig  `koanf:"formats"`
}

// FormatConfig declares a custom format in dupcheck.yaml.
type FormatConfig struct {
	Description string       `koanf:"description"`
	Rules       []RuleConfig `koanf:"rules"`
}

// RuleConfig is one selection prefix and extraction pattern.
type RuleConfig struct {
	Prefix  string `koanf:"prefix"`
	Pattern string `koanf:"pattern"`
}

// Default configuration values.
const (
	DefaultFile        = "colors/spring-night.vim"
	DefaultFormat      = dupcheck.DefaultFormat
	DefaultOnMalformed = "error"
	DefaultOutput      = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	EnvPrefix          = "DUPCHECK_"
)

// ConfigFileNames are searched, in order, in the project root.
var ConfigFileNames = []string{"dupcheck.yaml", "dupcheck.yml"}

// Default returns the configuration used when nothing is loaded.
func Default() *Config {
	return &Config{
		Files:       []string{DefaultFile},
		Format:      DefaultFormat,
		OnMalformed: dupcheck.MalformedError,
		Output:      DefaultOutput,
	}
}
