package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/dupcheck/internal/cli/config"
	"github.com/leapstack-labs/dupcheck/internal/cli/output"
	"github.com/leapstack-labs/dupcheck/pkg/dupcheck"
)

// generateConfigDocs generates the configuration reference.
func generateConfigDocs(logger *slog.Logger, outDir string) error {
	logger.Info("generating configuration docs", "dir", outDir)

	// Create output directory
	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := generateConfigurationDoc(outDir); err != nil {
		return fmt.Errorf("failed to generate configuration.md: %w", err)
	}
	logger.Debug("generated", "file", "configuration.md")

	return nil
}

// ConfigField represents a configuration key.
type ConfigField struct {
	Name        string
	Type        string
	Default     string
	Env         string // empty when the key cannot be set from the environment
	Description string
}

// configSchema describes the keys of config.Config.
func configSchema() []ConfigField {
	env := func(key string) string {
		return config.EnvPrefix + strings.ToUpper(key)
	}
	return []ConfigField{
		{Name: "files", Type: "[]string", Default: config.DefaultFile, Env: env("files"), Description: "Scheme files or globs, relative to the project root (comma-separated in the environment)"},
		{Name: "format", Type: "string", Default: config.DefaultFormat, Env: env("format"), Description: "Declaration format used to select and name highlight groups"},
		{Name: "on_malformed", Type: "string", Default: config.DefaultOnMalformed, Env: env("on_malformed"), Description: "Handling of declarations the format cannot name: " + strings.Join(dupcheck.PolicyNames(), ", ")},
		{Name: "output", Type: "string", Default: config.DefaultOutput, Env: env("output"), Description: "Output format: " + strings.Join(output.Modes(), ", ")},
		{Name: "verbose", Type: "bool", Default: "false", Env: env("verbose"), Description: "Log debug details to stderr"},
		{Name: "formats", Type: "map[string]format", Description: "Additional formats, keyed by name"},
	}
}

// generateConfigurationDoc generates the configuration reference page.
func generateConfigurationDoc(outDir string) error {
	w := NewMarkdownWriter()

	// Frontmatter
	w.Frontmatter("Configuration", "dupcheck configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph(fmt.Sprintf("dupcheck reads %s (or %s) from the project root. The project root is the "+
		"directory given by %s, the directory of an explicit %s file, or the nearest parent directory "+
		"holding a config file or %s.",
		InlineCode(config.ConfigFileNames[0]), InlineCode(config.ConfigFileNames[1]),
		InlineCode("--project-dir"), InlineCode("--config"), InlineCode(".git")))

	w.Header(2, "Keys")
	headers := []string{"Key", "Type", "Default", "Environment", "Description"}
	var rows [][]string
	for _, f := range configSchema() {
		defVal := "-"
		if f.Default != "" {
			defVal = InlineCode(f.Default)
		}
		envVar := "-"
		if f.Env != "" {
			envVar = InlineCode(f.Env)
		}
		rows = append(rows, []string{InlineCode(f.Name), f.Type, defVal, envVar, f.Description})
	}
	w.Table(headers, rows)

	w.Header(2, "Custom Formats")
	w.Paragraph("A format is a list of rules. A line is a declaration when it starts with a rule's " +
		"prefix; the pattern's first capture group is the declared name. Custom formats may not reuse " +
		"a built-in name.")
	w.Table([]string{"Field", "Type", "Description"}, [][]string{
		{InlineCode("description"), "string", "Shown by " + InlineCode("dupcheck formats")},
		{InlineCode("rules[].prefix"), "string", "Selection prefix, matched at the start of the line"},
		{InlineCode("rules[].pattern"), "string", "Regular expression with at least one capture group; anchored at the line start"},
	})

	w.Header(2, "Full Configuration Example")
	w.CodeBlock("yaml", `# dupcheck.yaml
files:
  - colors/spring-night.vim
format: legacy
on_malformed: error
output: auto

formats:
  legacy:
    description: Schemes written before the generator
    rules:
      - prefix: "HiLink "
        pattern: '^HiLink (\w+)'`)

	// Write file
	filename := filepath.Join(outDir, "configuration.md")
	return os.WriteFile(filename, w.Bytes(), 0600)
}
