package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/codec/internal/version"
	"github.com/arthur-debert/codec/pkg/errors"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Long:    MsgVersionLong,
		GroupID: groupMisc,
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			fmt.Fprintf(out, MsgBuiltFormat, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               groupMisc,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return GenCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}
}

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		GroupID: groupMisc,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := ManHeader()
			if dir != "" {
				if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
					return errors.Wrapf(err, errors.ErrCouldNotWrite, "could not write man pages to %s", dir).
						WithDetail(errors.DetailPath, dir)
				}
				return nil
			}
			if err := doc.GenMan(cmd.Root(), header, cmd.OutOrStdout()); err != nil {
				return errors.Wrap(err, errors.ErrCouldNotWrite, "could not write man page")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", MsgFlagManDir)
	_ = cmd.MarkFlagDirname("dir")
	return cmd
}
