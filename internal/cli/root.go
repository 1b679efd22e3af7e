// Package cli builds codec's command tree.
package cli

import (
	"embed"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/codec/internal/version"
	"github.com/arthur-debert/codec/pkg/cobrax/topics"
	"github.com/arthur-debert/codec/pkg/config"
	"github.com/arthur-debert/codec/pkg/logging"
	"github.com/arthur-debert/codec/pkg/paths"
	"github.com/arthur-debert/codec/pkg/ui"
)

//go:embed help
var helpFS embed.FS

// Command group IDs
const (
	groupCore = "core"
	groupMisc = "misc"
)

// globalOptions holds the root command's persistent flags.
type globalOptions struct {
	verbosity  int
	configFile string
	templates  string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "codec",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			logging.LogCommand(cmd.CommandPath(), args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&opts.templates, "templates", "", MsgFlagTemplates)
	_ = rootCmd.MarkPersistentFlagFilename("config", "toml")
	_ = rootCmd.MarkPersistentFlagDirname("templates")

	// Replaced by the topics help command below
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddGroup(&cobra.Group{ID: groupCore, Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: groupMisc, Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newGenerateCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newPathCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	styled := ui.DetectFormat(os.Stdout) == ui.FormatTerminal
	if _, err := topics.InitializeWithOptions(rootCmd, helpFS, "help", topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.ForOutput(styled),
	}); err == nil {
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == "help" {
				cmd.GroupID = groupMisc
			}
		}
	}

	return rootCmd
}

// loadConfig resolves the configuration for a command run.
func (o *globalOptions) loadConfig() (*config.Config, error) {
	p, err := paths.New()
	if err != nil {
		return nil, err
	}

	loadOpts := config.Options{
		SearchDirs: p.ConfigSearchDirs(),
		File:       o.configFile,
	}
	if o.templates != "" {
		loadOpts.Overrides = map[string]interface{}{"templates_path": o.templates}
	}
	return config.Load(loadOpts)
}
