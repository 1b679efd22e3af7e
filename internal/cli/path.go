package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/codec/pkg/paths"
)

func newPathCmd(opts *globalOptions) *cobra.Command {
	var templates, configFiles bool

	cmd := &cobra.Command{
		Use:     "path",
		Short:   MsgPathShort,
		Long:    MsgPathLong,
		GroupID: groupMisc,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if !templates && !configFiles {
				exe, err := paths.Executable()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, exe)
				return nil
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if templates {
				fmt.Fprintln(out, cfg.TemplatesPath)
				return nil
			}
			if len(cfg.Sources) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), MsgNoConfigSources)
				return nil
			}
			for _, source := range cfg.Sources {
				fmt.Fprintln(out, source)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&templates, "templates-dir", false, MsgFlagPathTpl)
	cmd.Flags().BoolVar(&configFiles, "config-files", false, MsgFlagPathCfg)
	cmd.MarkFlagsMutuallyExclusive("templates-dir", "config-files")

	return cmd
}
