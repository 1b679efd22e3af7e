package cli

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/codec/internal/version"
	"github.com/arthur-debert/codec/pkg/errors"
)

// ManHeader is the header of codec's man pages.
func ManHeader() *doc.GenManHeader {
	return &doc.GenManHeader{
		Title:   "CODEC",
		Section: "1",
		Source:  "codec " + version.Version,
		Manual:  "codec manual",
	}
}

// GenCompletion writes the completion script for shell.
func GenCompletion(root *cobra.Command, shell string, w io.Writer) error {
	var err error
	switch shell {
	case "bash":
		err = root.GenBashCompletionV2(w, true)
	case "zsh":
		err = root.GenZshCompletion(w)
	case "fish":
		err = root.GenFishCompletion(w, true)
	case "powershell":
		err = root.GenPowerShellCompletionWithDesc(w)
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown shell %q, expected bash, zsh, fish or powershell", shell)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrCouldNotWrite, "could not generate %s completion", shell)
	}
	return nil
}
