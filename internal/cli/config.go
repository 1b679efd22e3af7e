package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/codec/pkg/commands"
)

func newConfigCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: groupCore,
		Args:    cobra.NoArgs,
	}
	cmd.AddCommand(newConfigInitCmd(opts))
	return cmd
}

func newConfigInitCmd(opts *globalOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Long:  MsgConfigInitLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.InitConfig(commands.InitConfigOptions{
				TemplatesPath: opts.templates,
				Force:         force,
			})
			if err != nil {
				return err
			}

			p := newPrinter(cmd)
			fmt.Fprint(p.out, p.style("Success", fmt.Sprintf(MsgConfigWritten, result.Path)))
			fmt.Fprintf(p.out, MsgConfigTemplates, p.style("Path", result.TemplatesPath))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}
