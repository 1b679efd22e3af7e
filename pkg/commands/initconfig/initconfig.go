package initconfig

import (
	"path/filepath"

	"github.com/arthur-debert/codec/pkg/config"
	"github.com/arthur-debert/codec/pkg/filesystem"
	"github.com/arthur-debert/codec/pkg/logging"
	"github.com/arthur-debert/codec/pkg/paths"
)

// InitConfigOptions defines the options for the InitConfig command.
type InitConfigOptions struct {
	// Path is the file to write. Defaults to the user config file.
	Path string

	// TemplatesPath is written as templates_path. Defaults to a
	// "templates" directory next to the config file.
	TemplatesPath string

	// Force replaces an existing file.
	Force bool

	// FS replaces the OS filesystem, mainly for tests.
	FS filesystem.FS
}

// InitConfigResult reports where the starter file went.
type InitConfigResult struct {
	Path          string
	TemplatesPath string
}

// InitConfig writes a starter configuration file.
func InitConfig(opts InitConfigOptions) (*InitConfigResult, error) {
	log := logging.GetLogger("commands.initconfig")
	log.Debug().Str("command", "InitConfig").Msg("Executing command")

	path := opts.Path
	if path == "" {
		p, err := paths.New()
		if err != nil {
			return nil, err
		}
		path = p.UserConfigFile()
	}

	templatesPath := opts.TemplatesPath
	if templatesPath == "" {
		templatesPath = filepath.Join(filepath.Dir(path), "templates")
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	if err := config.WriteStarter(fsys, path, templatesPath, opts.Force); err != nil {
		return nil, err
	}

	log.Info().Str("command", "InitConfig").Str("path", path).Msg("Command finished")
	return &InitConfigResult{Path: path, TemplatesPath: templatesPath}, nil
}
