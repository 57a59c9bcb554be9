package commands

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/dupcheck/internal/cli/output"
	"github.com/leapstack-labs/dupcheck/pkg/dupcheck"
	"github.com/spf13/cobra"
)

// NewFormatsCommand creates the formats command.
func NewFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats [name]",
		Short: "List declaration formats",
		Long: `List the formats that select and name highlight declarations.

Built-in formats cover the conventions the scheme has used over time.
Additional formats can be declared under "formats:" in dupcheck.yaml.`,
		Example: `  # List all formats
  dupcheck formats

  # Show one format
  dupcheck formats generated

  # Output as JSON
  dupcheck formats -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showFormat(cmd, args[0])
			}
			return listFormats(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

func listFormats(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	active := cmdCtx.Cfg.Format

	formats := dupcheck.All()
	infos := make([]dupcheck.FormatInfo, len(formats))
	for i, f := range formats {
		infos[i] = f.Info()
	}

	if handled, err := r.Structured(infos); handled {
		return err
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatHeader(2, "Formats"))
		r.Println("")
	}

	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		name := info.Name
		if name == active {
			name += " *"
		}
		source := "config"
		if info.Builtin {
			source = "built-in"
		}
		prefixes := make([]string, len(info.Rules))
		for i, rule := range info.Rules {
			prefixes[i] = fmt.Sprintf("%q", rule.Prefix)
		}
		rows = append(rows, []string{name, source, strings.Join(prefixes, " "), info.Description})
	}
	r.Table([]string{"Name", "Source", "Prefixes", "Description"}, rows)

	if r.EffectiveMode() == output.ModeText {
		r.Println(r.Muted("* active format"))
	}
	return nil
}

func showFormat(cmd *cobra.Command, name string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	f, err := dupcheck.Resolve(name)
	if err != nil {
		return err
	}
	info := f.Info()

	if handled, err := r.Structured(info); handled {
		return err
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatHeader(2, "Format "+output.FormatInlineCode(info.Name)))
		r.Println("")
		r.Println(info.Description)
		r.Println("")
	} else {
		r.Println(r.Bold(info.Name))
		r.Println(info.Description)
		r.Println("")
	}

	rows := make([][]string, len(info.Rules))
	for i, rule := range info.Rules {
		rows[i] = []string{fmt.Sprintf("%q", rule.Prefix), rule.Pattern}
	}
	r.Table([]string{"Prefix", "Pattern"}, rows)
	return nil
}
