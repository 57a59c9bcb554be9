package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/dupcheck/internal/cli"
	"github.com/leapstack-labs/dupcheck/internal/cli/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// exitCodes documents what each command's exit status means. Commands not
// listed only fail on usage errors.
var exitCodes = map[string][][]string{
	"": {
		{"0", "Every highlight group in every configured file is declared once"},
		{"1", "A duplicate name, a malformed declaration (policy " + InlineCode("error") + "), an unreadable file or invalid configuration"},
	},
	"check": {
		{"0", "Every highlight group in every checked file is declared once"},
		{"1", "A duplicate name, a malformed declaration (policy " + InlineCode("error") + "), an unreadable file or a glob without matches"},
	},
	"formats": {
		{"0", "Formats listed"},
		{"1", "Unknown format name"},
	},
}

// generateCLIDocs writes index.md and one page per command.
func generateCLIDocs(logger *slog.Logger, outDir string) error {
	logger.Info("generating CLI docs", "dir", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	root := cli.NewRootCmd()
	pages := map[string][]byte{"index.md": cliIndexPage(root)}
	for _, cmd := range root.Commands() {
		if documented(cmd) {
			pages[cmd.Name()+".md"] = commandPage(cmd)
		}
	}

	for name, page := range pages {
		if err := os.WriteFile(filepath.Join(outDir, name), page, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		logger.Debug("generated", "file", name)
	}
	return nil
}

func cliIndexPage(root *cobra.Command) []byte {
	w := NewMarkdownWriter()
	w.Frontmatter("CLI Reference", "Command-line interface reference for dupcheck")
	w.GeneratedMarker()

	w.Header(1, "CLI Reference")
	w.Paragraph(root.Long)

	w.Header(2, "Running in CI")
	w.CodeBlock("bash", "go run github.com/leapstack-labs/dupcheck/cmd/dupcheck@latest")
	w.Paragraph("Without arguments the configured files are checked, relative to the project root:")
	w.BulletList([]string{
		"the directory given by " + InlineCode("--project-dir"),
		"else the directory of the " + InlineCode("--config") + " file",
		"else the nearest parent directory holding " + InlineCode(config.ConfigFileNames[0]) + " or " + InlineCode(".git"),
		"else the working directory",
	})
	w.Table([]string{"Exit code", "Meaning"}, codeRows(exitCodes[""]))

	w.Header(2, "Commands")
	var rows [][]string
	for _, cmd := range root.Commands() {
		if !documented(cmd) {
			continue
		}
		link := fmt.Sprintf("[%s](/cli/%s)", InlineCode(cmd.Name()), cmd.Name())
		rows = append(rows, []string{link, cleanDescription(cmd.Short)})
	}
	w.Table([]string{"Command", "Description"}, rows)

	w.Header(2, "Global Options")
	flagTable(w, root, root.PersistentFlags())

	w.Header(2, "Environment Variables")
	var envRows [][]string
	for _, f := range configSchema() {
		if f.Env != "" {
			envRows = append(envRows, []string{InlineCode(f.Env), f.Description})
		}
	}
	w.Table([]string{"Variable", "Description"}, envRows)
	w.Paragraph("Flags override environment variables, which override " + InlineCode(config.ConfigFileNames[0]) + ".")

	return w.Bytes()
}

func commandPage(cmd *cobra.Command) []byte {
	w := NewMarkdownWriter()
	w.Frontmatter(cmd.Name(), cleanDescription(cmd.Short))
	w.GeneratedMarker()

	w.Header(1, cmd.CommandPath())
	w.Paragraph(firstNonEmpty(cmd.Long, cmd.Short))

	w.Header(2, "Usage")
	w.CodeBlock("bash", cmd.UseLine())

	if cmd.HasAvailableLocalFlags() {
		w.Header(2, "Options")
		flagTable(w, cmd, cmd.LocalFlags())
	}
	if cmd.HasAvailableInheritedFlags() {
		w.Header(2, "Global Options")
		flagTable(w, cmd, cmd.InheritedFlags())
	}

	codes, ok := exitCodes[cmd.Name()]
	if !ok {
		codes = [][]string{{"0", "Success"}, {"1", "Invalid arguments"}}
	}
	w.Header(2, "Exit Codes")
	w.Table([]string{"Exit code", "Meaning"}, codeRows(codes))

	if cmd.Example != "" {
		w.Header(2, "Examples")
		w.CodeBlock("bash", dedent(cmd.Example))
	}
	return w.Bytes()
}

func documented(cmd *cobra.Command) bool {
	return !cmd.Hidden && cmd.Name() != "help" && cmd.Name() != "__complete"
}

// flagTable lists flags with the values their shell completion offers, so
// the accepted formats, policies and output modes come from the same source.
func flagTable(w *MarkdownWriter, cmd *cobra.Command, flags *pflag.FlagSet) {
	var rows [][]string
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		name := "--" + f.Name
		if f.Shorthand != "" {
			name = "-" + f.Shorthand + ", " + name
		}
		def := "-"
		if f.DefValue != "" && f.Value.Type() != "bool" {
			def = InlineCode(f.DefValue)
		}
		rows = append(rows, []string{InlineCode(name), def, flagValues(cmd, f.Name), cleanDescription(f.Usage)})
	})
	w.Table([]string{"Option", "Default", "Values", "Description"}, rows)
}

func flagValues(cmd *cobra.Command, name string) string {
	complete, ok := cmd.GetFlagCompletionFunc(name)
	if !ok {
		return "-"
	}
	values, _ := complete(cmd, nil, "")
	if len(values) == 0 {
		return "-"
	}
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = InlineCode(v)
	}
	return strings.Join(quoted, ", ")
}

func codeRows(codes [][]string) [][]string {
	rows := make([][]string, len(codes))
	for i, c := range codes {
		rows[i] = []string{InlineCode(c[0]), c[1]}
	}
	return rows
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// dedent strips the indentation shared by all non-blank lines.
func dedent(text string) string {
	lines := strings.Split(text, "\n")
	indent := -1
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		if n := len(l) - len(strings.TrimLeft(l, " \t")); indent < 0 || n < indent {
			indent = n
		}
	}
	if indent <= 0 {
		return strings.TrimSpace(text)
	}
	for i, l := range lines {
		if len(l) >= indent {
			lines[i] = l[indent:]
		} else {
			lines[i] = strings.TrimSpace(l)
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
