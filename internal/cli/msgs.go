package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Generate files and directories from templates"
	MsgGenerateShort   = "Generate output from a template"
	MsgListShort       = "List available templates"
	MsgPathShort       = "Print codec's paths"
	MsgPathLong        = "Print the absolute path of the codec executable, the templates directory or the configuration files in use."
	MsgConfigShort     = "Manage codec's configuration"
	MsgConfigInitShort = "Write a starter configuration file"
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Status messages
	MsgDryRunNotice     = "\nDRY RUN MODE - No changes were made"
	MsgDryRunHeader     = "Would generate:"
	MsgGeneratedHeader  = "Generated:"
	MsgPartialHeader    = "Written before the error:"
	MsgFileItem         = "  ✓ %s\n"
	MsgNoTemplatesFound = "No templates found in %s\n"
	MsgNoConfigSources  = "No configuration file loaded; settings come from the environment."
	MsgConfigWritten    = "Wrote %s\n"
	MsgConfigTemplates  = "Templates will be read from %s\n"

	// Version output
	MsgVersionFormat = "codec version %s\n"
	MsgCommitFormat  = "  commit: %s\n"
	MsgBuiltFormat   = "  built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Configuration file loaded after the standard locations (env CODEC_CONFIG)"
	MsgFlagTemplates = "Templates directory, overriding templates_path"
	MsgFlagParam     = "Set a template variable, key=value (repeatable)"
	MsgFlagDryRun    = "Preview the files that would be generated without writing them"
	MsgFlagLong      = "Also show the variables each template uses"
	MsgFlagFormat    = "Output format: auto, term, text or json"
	MsgFlagPathTpl   = "Print the templates directory"
	MsgFlagPathCfg   = "Print the configuration files that were loaded"
	MsgFlagForce     = "Replace an existing configuration file"
	MsgFlagManDir    = "Write one man page per command into this directory instead of stdout"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/generate-long.txt
	msgGenerateLongRaw string
	MsgGenerateLong    = strings.TrimSpace(msgGenerateLongRaw)

	//go:embed msgs/generate-example.txt
	msgGenerateExampleRaw string
	MsgGenerateExample    = strings.TrimRight(msgGenerateExampleRaw, "\n")

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/config-init-long.txt
	msgConfigInitLongRaw string
	MsgConfigInitLong    = strings.TrimSpace(msgConfigInitLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
