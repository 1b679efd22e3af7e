package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/codec/pkg/catalog"
	"github.com/arthur-debert/codec/pkg/commands"
	"github.com/arthur-debert/codec/pkg/filesystem"
	"github.com/arthur-debert/codec/pkg/picker"
)

func newGenerateCmd(opts *globalOptions) *cobra.Command {
	var (
		params []string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:               "generate <template> [output]",
		Aliases:           []string{"g"},
		Short:             MsgGenerateShort,
		Long:              MsgGenerateLong,
		Example:           MsgGenerateExample,
		GroupID:           groupCore,
		Args:              cobra.RangeArgs(1, 2),
		ValidArgsFunction: templateNamesCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			var output string
			if len(args) == 2 {
				output = args[1]
			} else {
				if err := picker.EnsureInteractive(os.Stdin); err != nil {
					return err
				}
				output, err = picker.New(filesystem.NewOS(), nil).Pick(".", filepath.Base(args[0]))
				if err != nil {
					return err
				}
			}

			result, err := commands.Generate(cmd.Context(), commands.GenerateOptions{
				Config:      cfg,
				Template:    args[0],
				Output:      output,
				Assignments: params,
				DryRun:      dryRun,
			})
			printGenerated(newPrinter(cmd), result, err)
			return err
		},
	}

	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, MsgFlagParam)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)

	return cmd
}

func printGenerated(p *printer, result *commands.GenerateResult, err error) {
	if result == nil || len(result.Files) == 0 {
		return
	}

	header := MsgGeneratedHeader
	switch {
	case err != nil:
		header = MsgPartialHeader
	case result.DryRun:
		header = MsgDryRunHeader
	}
	fmt.Fprintln(p.out, p.style("Bold", header))
	for _, file := range result.Files {
		fmt.Fprint(p.out, p.style("Success", fmt.Sprintf(MsgFileItem, file)))
	}
	if result.DryRun {
		fmt.Fprintln(p.out, p.style("Notice", MsgDryRunNotice))
	}
}

// templateNamesCompletion completes the first argument with template names
// and leaves the output argument to the shell's file completion.
func templateNamesCompletion(opts *globalOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveDefault
		}
		cfg, err := opts.loadConfig()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return catalog.Names(filesystem.NewOS(), cfg.TemplatesPath), cobra.ShellCompDirectiveNoFileComp
	}
}
