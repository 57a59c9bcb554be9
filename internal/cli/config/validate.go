package config

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/leapstack-labs/dupcheck/internal/cli/output"
	"github.com/leapstack-labs/dupcheck/pkg/dupcheck"
)

// Validate checks if the configuration is valid. Custom formats must already
// be registered (see RegisterFormats).
func (c *Config) Validate() error {
	if len(c.Files) == 0 {
		return fmt.Errorf("files is required\nHint: list scheme files in dupcheck.yaml or pass them as arguments")
	}
	for _, f := range c.Files {
		if strings.TrimSpace(f) == "" {
			return fmt.Errorf("files must not contain empty entries")
		}
	}
	if _, ok := output.ParseMode(c.Output); !ok {
		return fmt.Errorf("unknown output format %q (expected one of %s)", c.Output, strings.Join(output.Modes(), ", "))
	}
	if _, err := dupcheck.Resolve(c.Format); err != nil {
		return err
	}
	return nil
}

// BuildFormats compiles the custom formats declared in the configuration.
func (c *Config) BuildFormats() ([]dupcheck.Format, error) {
	names := make([]string, 0, len(c.Formats))
	for name := range c.Formats {
		names = append(names, name)
	}
	sort.Strings(names)

	formats := make([]dupcheck.Format, 0, len(names))
	for _, name := range names {
		fc := c.Formats[name]
		if strings.Contains(name, ".") {
			return nil, fmt.Errorf("format name %q must not contain %q", name, ".")
		}
		if existing, ok := dupcheck.Lookup(name); ok && existing.Builtin {
			return nil, fmt.Errorf("format %q shadows a built-in format", name)
		}
		if len(fc.Rules) == 0 {
			return nil, fmt.Errorf("format %q has no rules", name)
		}
		rules := make([]dupcheck.Rule, 0, len(fc.Rules))
		for _, rc := range fc.Rules {
			rule, err := dupcheck.NewRule(rc.Prefix, rc.Pattern)
			if err != nil {
				return nil, fmt.Errorf("format %q: %w", name, err)
			}
			rules = append(rules, rule)
		}
		formats = append(formats, dupcheck.NewFormat(name, fc.Description, rules...))
	}
	return formats, nil
}

// RegisterFormats compiles and registers the custom formats.
func (c *Config) RegisterFormats() error {
	formats, err := c.BuildFormats()
	if err != nil {
		return err
	}
	for _, f := range formats {
		dupcheck.Register(f)
	}
	return nil
}

// Checker creates a checker for the configured format and policy.
func (c *Config) Checker(logger *slog.Logger) (*dupcheck.Checker, error) {
	format, err := dupcheck.Resolve(c.Format)
	if err != nil {
		return nil, err
	}
	return dupcheck.New(dupcheck.Config{
		Format:    format,
		Malformed: c.OnMalformed,
		Logger:    logger,
	})
}
