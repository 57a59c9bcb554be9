package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/leapstack-labs/dupcheck/internal/cli/output"
	"github.com/leapstack-labs/dupcheck/pkg/dupcheck"
	"github.com/spf13/cobra"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Files []string // Files or glob patterns; empty means the configured files
	Watch bool     // Re-run whenever a checked file changes
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "Check color schemes for duplicate highlight groups",
		Long: `Check that every highlight group is declared only once.

Each file is read in full, declaration lines are selected by the configured
format, and the declared names are grouped. Any name declared on more than one
line fails the check. Names may repeat across different files.

Without arguments the files from dupcheck.yaml are checked (default:
colors/spring-night.vim under the project root).

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON/YAML: Machine-readable format`,
		Example: `  # Check the configured scheme
  dupcheck check

  # Check specific files
  dupcheck check colors/spring-night.vim

  # Check every scheme with the generator format
  dupcheck check 'colors/**/*.vim' --format generated

  # Re-check on every save
  dupcheck check --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Files = args
			return RunCheck(cmd, opts)
		},
		// A failed check is a result, not a usage mistake
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-run the check when a file changes")

	return cmd
}

// RunCheck checks the requested files and renders the result. The returned
// error names every duplicate found.
func RunCheck(cmd *cobra.Command, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg

	files, err := resolveFiles(cfg, opts.Files)
	if err != nil {
		return err
	}

	checker, err := cfg.Checker(cmdCtx.Logger)
	if err != nil {
		return err
	}

	run := func() error {
		reports, err := checkFiles(checker, files, cfg.ProjectRoot, cmdCtx.Logger)
		if err != nil {
			return err
		}
		if err := renderCheckResults(cmdCtx.Renderer, reports); err != nil {
			return err
		}
		return reportsErr(reports)
	}

	if opts.Watch {
		return watchFiles(cmd.Context(), cmdCtx.Logger, files, func() {
			if err := run(); err != nil {
				_, _ = fmt.Fprintf(cmdCtx.Renderer.ErrWriter(), "Error: %v\n", err)
			}
		})
	}
	return run()
}

// checkFiles checks each file in turn. Read failures and malformed
// declarations abort immediately.
func checkFiles(checker *dupcheck.Checker, files []string, root string, logger *slog.Logger) ([]*dupcheck.Report, error) {
	reports := make([]*dupcheck.Report, 0, len(files))
	for _, f := range files {
		doc, err := dupcheck.ReadDocument(f)
		if err != nil {
			return nil, err
		}
		doc.Path = displayPath(f, root)

		report, err := checker.Check(doc)
		if err != nil {
			return nil, err
		}
		if report.Declarations == 0 {
			if alt := suggestFormat(doc, report.Format); alt != "" {
				logger.Warn("no declarations found; nothing was checked", "path", doc.Path, "format", report.Format,
					"hint", "lines match format "+alt+", try --format "+alt)
			} else {
				logger.Warn("no declarations found", "path", doc.Path, "format", report.Format)
			}
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// suggestFormat returns the registered format other than current that selects
// the most lines in doc, or "" when none selects any.
func suggestFormat(doc *dupcheck.Document, current string) string {
	best, bestCount := "", 0
	for _, f := range dupcheck.All() {
		if f.Name == current {
			continue
		}
		count := 0
		for _, line := range doc.Lines {
			if _, selected, _ := f.Match(line); selected {
				count++
			}
		}
		if count > bestCount {
			best, bestCount = f.Name, count
		}
	}
	return best
}

func reportsErr(reports []*dupcheck.Report) error {
	var errs []error
	for _, r := range reports {
		if err := r.Err(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// checkOutput is the machine-readable form of a check run.
type checkOutput struct {
	OK    bool               `json:"ok" yaml:"ok"`
	Files []*dupcheck.Report `json:"files" yaml:"files"`
}

func renderCheckResults(r *output.Renderer, reports []*dupcheck.Report) error {
	ok := true
	for _, rep := range reports {
		ok = ok && rep.OK()
	}

	if handled, err := r.Structured(checkOutput{OK: ok, Files: reports}); handled {
		return err
	}

	// Success is a single confirmation line in every human-readable mode
	if ok {
		r.Println(r.Success("OK"))
		return nil
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatHeader(2, "Duplicate highlight groups"))
		r.Println("")
	}

	rows := make([][]string, 0)
	for _, rep := range reports {
		for _, g := range rep.Duplicates {
			rows = append(rows, []string{rep.Path, g.Name, strconv.Itoa(len(g.Lines)), joinLines(g.Lines)})
		}
	}
	r.Table([]string{"File", "Name", "Count", "Lines"}, rows)

	if r.EffectiveMode() == output.ModeText {
		r.Println(r.Failure(fmt.Sprintf("✗ %d duplicate name(s)", len(rows))))
	}
	return nil
}

func joinLines(lines []int) string {
	s := make([]string, len(lines))
	for i, l := range lines {
		s[i] = strconv.Itoa(l)
	}
	return strings.Join(s, ", ")
}
