package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/dupcheck/pkg/dupcheck"
)

// generateFormatsDocs documents the built-in declaration formats.
func generateFormatsDocs(logger *slog.Logger, outDir string) error {
	logger.Info("generating formats docs", "dir", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var builtins []dupcheck.FormatInfo
	for _, f := range dupcheck.All() {
		if f.Builtin {
			builtins = append(builtins, f.Info())
		}
	}

	w := NewMarkdownWriter()
	w.Frontmatter("Formats", "Declaration formats understood by dupcheck")
	w.GeneratedMarker()

	w.Header(1, "Formats")
	w.Paragraph(fmt.Sprintf("dupcheck ships **%d built-in formats**. The default is %s.",
		len(builtins), InlineCode(dupcheck.DefaultFormat)))
	w.Paragraph("Only lines starting with a rule's prefix are declarations. Indented lines, such as the " +
		"GUI and terminal alternatives inside an " + InlineCode("if s:gui_running") + " block, are never selected.")

	var rows [][]string
	for _, info := range builtins {
		rows = append(rows, []string{InlineCode(info.Name), cleanDescription(info.Description)})
	}
	w.Table([]string{"Format", "Description"}, rows)

	for _, info := range builtins {
		w.Header(2, info.Name)
		w.Paragraph(info.Description)

		ruleRows := make([][]string, len(info.Rules))
		for i, r := range info.Rules {
			ruleRows[i] = []string{InlineCode(r.Prefix), InlineCode(r.Pattern)}
		}
		w.Table([]string{"Prefix", "Pattern"}, ruleRows)
	}

	w.Header(2, "Malformed Declarations")
	w.BulletList([]string{
		Bold(dupcheck.MalformedError.String()) + ": abort on the first declaration the pattern cannot name",
		Bold(dupcheck.MalformedSkip.String()) + ": ignore such declarations",
		Bold(dupcheck.MalformedGroup.String()) + ": count them all as the single name " + InlineCode(dupcheck.UnmatchedName),
	})

	filename := filepath.Join(outDir, "formats.md")
	if err := os.WriteFile(filename, w.Bytes(), 0600); err != nil {
		return err
	}
	logger.Debug("generated", "file", "formats.md")
	return nil
}
