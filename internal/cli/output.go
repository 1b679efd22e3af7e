package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/codec/pkg/ui"
	"github.com/arthur-debert/codec/pkg/ui/styles"
)

// printer writes command output, styled only when it goes to a terminal.
type printer struct {
	out    io.Writer
	styled bool
}

func newPrinter(cmd *cobra.Command) *printer {
	out := cmd.OutOrStdout()
	return &printer{out: out, styled: ui.Resolve(ui.FormatAuto, out) == ui.FormatTerminal}
}

func (p *printer) style(name, s string) string {
	if !p.styled {
		return s
	}
	return styles.Render(name, s)
}
