package dupcheck

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
)

// Config holds checker configuration.
type Config struct {
	// Format selects and names declarations
	Format Format
	// Malformed decides how unmatched declarations are handled
	Malformed MalformedPolicy
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// Checker finds names declared more than once in a document.
// A Checker holds no per-run state; Check is repeatable on the same input.
type Checker struct {
	format    Format
	malformed MalformedPolicy
	logger    *slog.Logger
}

// New creates a checker for the configured format.
func New(cfg Config) (*Checker, error) {
	if err := cfg.Format.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Checker{
		format:    cfg.Format,
		malformed: cfg.Malformed,
		logger:    logger,
	}, nil
}

// Format returns the checker's format.
func (c *Checker) Format() Format {
	return c.format
}

// ReadDocument reads the whole file at path.
func ReadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the command line or config
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParseDocument(path, data), nil
}

// CheckFile reads and checks the file at path.
func (c *Checker) CheckFile(path string) (*Report, error) {
	doc, err := ReadDocument(path)
	if err != nil {
		return nil, err
	}
	return c.Check(doc)
}

// Check groups the document's declarations by name. The returned error is
// only set for a malformed declaration under MalformedError; duplicates are
// reported through Report.Err.
func (c *Checker) Check(doc *Document) (*Report, error) {
	report := &Report{Path: doc.Path, Format: c.format.Name}
	groups := make(map[string]*NameGroup)
	var unmatched []int

	for i, line := range doc.Lines {
		name, selected, ok := c.format.Match(line)
		if !selected {
			continue
		}
		lineNo := i + 1
		report.Declarations++

		if !ok {
			switch c.malformed {
			case MalformedSkip:
				c.logger.Debug("skipping malformed declaration", "path", doc.Path, "line", lineNo)
				report.Malformed = append(report.Malformed, Declaration{Line: lineNo, Text: line})
				continue
			case MalformedGroup:
				report.Malformed = append(report.Malformed, Declaration{Line: lineNo, Text: line})
				unmatched = append(unmatched, lineNo)
				continue
			default:
				return nil, &MalformedLineError{Path: doc.Path, Line: lineNo, Text: line}
			}
		}

		if g, exists := groups[name]; exists {
			g.Lines = append(g.Lines, lineNo)
			continue
		}
		groups[name] = &NameGroup{Name: name, Lines: []int{lineNo}}
	}

	report.Names = len(groups)
	for _, g := range groups {
		if len(g.Lines) > 1 {
			report.Duplicates = append(report.Duplicates, *g)
		}
	}
	if len(unmatched) > 0 {
		report.Names++
		if len(unmatched) > 1 {
			report.Duplicates = append(report.Duplicates, NameGroup{Name: UnmatchedName, Lines: unmatched})
		}
	}

	// Map iteration is random; report in file order
	sort.Slice(report.Duplicates, func(i, j int) bool {
		return report.Duplicates[i].Lines[0] < report.Duplicates[j].Lines[0]
	})

	c.logger.Debug("checked document",
		"path", doc.Path,
		"format", c.format.Name,
		"declarations", report.Declarations,
		"names", report.Names,
		"duplicates", len(report.Duplicates),
	)

	return report, nil
}
