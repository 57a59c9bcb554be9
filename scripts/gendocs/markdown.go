package main

import (
	"bytes"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/dupcheck/internal/cli/output"
	"gopkg.in/yaml.v3"
)

// MarkdownWriter accumulates a generated Markdown page.
type MarkdownWriter struct {
	buf bytes.Buffer
}

// NewMarkdownWriter creates an empty page.
func NewMarkdownWriter() *MarkdownWriter {
	return &MarkdownWriter{}
}

// Frontmatter writes the YAML front matter block.
func (w *MarkdownWriter) Frontmatter(title, description string) {
	fm, err := yaml.Marshal(struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
	}{title, description})
	if err != nil {
		// Two plain strings always marshal
		panic(err)
	}
	w.buf.WriteString("---\n")
	w.buf.Write(fm)
	w.buf.WriteString("---\n\n")
}

// GeneratedMarker notes that the page must not be edited by hand.
func (w *MarkdownWriter) GeneratedMarker() {
	w.buf.WriteString("<!-- Code generated by scripts/gendocs. DO NOT EDIT. -->\n\n")
}

func (w *MarkdownWriter) Header(level int, text string) {
	w.block(output.FormatHeader(level, text))
}

func (w *MarkdownWriter) Paragraph(text string) {
	w.block(strings.TrimSpace(text))
}

func (w *MarkdownWriter) CodeBlock(lang, code string) {
	w.block(output.FormatCodeBlock(lang, code))
}

func (w *MarkdownWriter) BulletList(items []string) {
	w.block(output.FormatList(items))
}

// Table writes a pipe table. Rows shorter than headers are padded.
func (w *MarkdownWriter) Table(headers []string, rows [][]string) {
	t := table.NewWriter()
	hr := make(table.Row, len(headers))
	for i, h := range headers {
		hr[i] = h
	}
	t.AppendHeader(hr)
	for _, row := range rows {
		r := make(table.Row, len(headers))
		for i := range r {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		t.AppendRow(r)
	}
	w.block(t.RenderMarkdown())
}

func (w *MarkdownWriter) Bytes() []byte {
	return w.buf.Bytes()
}

func (w *MarkdownWriter) block(s string) {
	w.buf.WriteString(s)
	w.buf.WriteString("\n\n")
}

// InlineCode wraps s in backticks.
func InlineCode(s string) string {
	return output.FormatInlineCode(s)
}

// Bold wraps s in strong emphasis.
func Bold(s string) string {
	return "**" + s + "**"
}

// cleanDescription folds a help text onto one table-safe line.
func cleanDescription(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
