package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/arthur-debert/codec/internal/cli"
	"github.com/arthur-debert/codec/pkg/ui"
	"github.com/arthur-debert/codec/pkg/ui/diagnostic"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Generation stops between template entries on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		styled := ui.DetectFormat(os.Stderr) == ui.FormatTerminal
		fmt.Fprint(os.Stderr, diagnostic.Render(err, styled))
		return 1
	}
	return 0
}
