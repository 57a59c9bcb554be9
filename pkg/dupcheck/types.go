package dupcheck

import (
	"errors"
	"strings"
)

// Document is a source file read fully into memory.
type Document struct {
	Path  string
	Lines []string
}

// ParseDocument splits data into lines. A trailing "\r" belongs to the line
// boundary and is removed; a final newline does not start an extra line.
func ParseDocument(path string, data []byte) *Document {
	doc := &Document{Path: path}
	if len(data) == 0 {
		return doc
	}
	text := strings.TrimSuffix(string(data), "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	doc.Lines = lines
	return doc
}

// Declaration is a selected line the extraction pattern could not name.
type Declaration struct {
	Line int    `json:"line" yaml:"line"` // 1-based
	Text string `json:"text" yaml:"text"`
}

// NameGroup is every line declaring one name.
type NameGroup struct {
	Name  string `json:"name" yaml:"name"`
	Lines []int  `json:"lines" yaml:"lines"`
}

// Report is the outcome of checking one document.
type Report struct {
	Path         string        `json:"path" yaml:"path"`
	Format       string        `json:"format" yaml:"format"`
	Declarations int           `json:"declarations" yaml:"declarations"`
	Names        int           `json:"names" yaml:"names"`
	Duplicates   []NameGroup   `json:"duplicates,omitempty" yaml:"duplicates,omitempty"`
	Malformed    []Declaration `json:"malformed,omitempty" yaml:"malformed,omitempty"`
}

// OK reports whether every name is declared exactly once.
func (r *Report) OK() bool {
	return len(r.Duplicates) == 0
}

// Err returns nil for a clean report, otherwise one *DuplicateNameError per
// duplicate joined in order of first occurrence.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	errs := make([]error, 0, len(r.Duplicates))
	for _, g := range r.Duplicates {
		errs = append(errs, &DuplicateNameError{Path: r.Path, Name: g.Name, Lines: g.Lines})
	}
	return errors.Join(errs...)
}
