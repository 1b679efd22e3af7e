package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/codec/pkg/catalog"
	"github.com/arthur-debert/codec/pkg/commands"
	"github.com/arthur-debert/codec/pkg/errors"
	"github.com/arthur-debert/codec/pkg/ui"
)

func newListCmd(opts *globalOptions) *cobra.Command {
	var (
		long   bool
		format string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		GroupID: groupCore,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			result, err := commands.ListTemplates(commands.ListTemplatesOptions{
				Config:        cfg,
				WithVariables: long,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch ui.Resolve(f, out) {
			case ui.FormatJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(result); err != nil {
					return errors.Wrap(err, errors.ErrCouldNotWrite, "could not write JSON output")
				}
				return nil
			case ui.FormatTerminal:
				printTemplates(&printer{out: out, styled: true}, result, long)
			default:
				printTemplates(&printer{out: out}, result, long)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&long, "long", "l", false, MsgFlagLong)
	cmd.Flags().StringVar(&format, "format", "auto", MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{"auto", "term", "text", "json"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func printTemplates(p *printer, result *commands.ListTemplatesResult, long bool) {
	if len(result.Templates) == 0 {
		fmt.Fprintf(p.out, MsgNoTemplatesFound, result.Root)
		return
	}

	width := 0
	for _, tpl := range result.Templates {
		width = max(width, lipgloss.Width(templateLabel(p, tpl)))
	}

	for _, tpl := range result.Templates {
		label := templateLabel(p, tpl)
		line := p.style("Template", label)
		if long {
			line += strings.Repeat(" ", width-lipgloss.Width(label)+2)
			switch {
			case tpl.Problem != "":
				line += p.style("Error", tpl.Problem)
			case len(tpl.Variables) == 0:
				line += p.style("Muted", "-")
			default:
				line += p.style("Variable", strings.Join(tpl.Variables, ", "))
			}
		}
		fmt.Fprintln(p.out, strings.TrimRight(line, " "))
	}
}

// templateLabel marks a template's kind: emoji in a terminal, a trailing
// / or @ otherwise.
func templateLabel(p *printer, tpl commands.TemplateInfo) string {
	if p.styled {
		switch tpl.Kind {
		case catalog.KindDir:
			return "📁 " + tpl.Name
		case catalog.KindLink:
			return "🔗 " + tpl.Name
		default:
			return "   " + tpl.Name
		}
	}
	switch tpl.Kind {
	case catalog.KindDir:
		return tpl.Name + "/"
	case catalog.KindLink:
		return tpl.Name + "@"
	default:
		return tpl.Name
	}
}
