package generate

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/codec/pkg/config"
	"github.com/arthur-debert/codec/pkg/errors"
	"github.com/arthur-debert/codec/pkg/filesystem"
	"github.com/arthur-debert/codec/pkg/generator"
	"github.com/arthur-debert/codec/pkg/logging"
	"github.com/arthur-debert/codec/pkg/template"
)

// GenerateOptions defines the options for the Generate command.
type GenerateOptions struct {
	// Config supplies the templates root and default variables.
	Config *config.Config

	// Template is the template's name relative to the templates root.
	Template string

	// Output is the path being generated.
	Output string

	// Assignments are "key=value" variables overriding the configured ones.
	Assignments []string

	// DryRun renders into memory and leaves the disk untouched.
	DryRun bool

	// FS replaces the filesystem, mainly for tests. DryRun is ignored when set.
	FS filesystem.FS

	// Engine replaces the default template engine.
	Engine *template.Engine
}

// GenerateResult reports a generation run.
type GenerateResult struct {
	Template string
	Output   string
	Files    []string
	Dirs     []string
	DryRun   bool
}

// Generate renders the named template into opts.Output.
//
// On failure the result still lists whatever was written before the error.
func Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	log := logging.WithFields(map[string]interface{}{
		"component": "commands.generate",
		"template":  opts.Template,
	})
	defer logging.LogOperationStart(log, "Generate")()

	if opts.Config == nil {
		return nil, errors.New(errors.ErrInternal, "generate needs a configuration")
	}

	templatePath, err := ResolveTemplate(opts.Config, opts.Template)
	if err != nil {
		return nil, err
	}

	overrides, err := generator.ParseAssignments(opts.Assignments)
	if err != nil {
		return nil, err
	}
	vars, err := generator.Bind(opts.Config.Variables, opts.Output, overrides)
	if err != nil {
		return nil, err
	}

	fsys := opts.FS
	if fsys == nil {
		if opts.DryRun {
			fsys = filesystem.NewDryRun()
		} else {
			fsys = filesystem.NewOS()
		}
	}

	result := &GenerateResult{
		Template: templatePath,
		Output:   opts.Output,
		DryRun:   opts.DryRun,
	}

	res, err := generator.New(fsys, opts.Engine).Generate(ctx, generator.Request{
		Template: templatePath,
		Output:   opts.Output,
		Vars:     vars,
	})
	if res != nil {
		result.Files = res.Files
		result.Dirs = res.Dirs
	}
	if err != nil {
		return result, err
	}

	log.Info().
		Str("command", "Generate").
		Int("files", len(result.Files)).
		Bool("dryRun", result.DryRun).
		Msg("Command finished")
	return result, nil
}

// ResolveTemplate returns the path of the named template under the
// configured templates root. Names may contain subdirectories but may not
// leave the root.
func ResolveTemplate(cfg *config.Config, name string) (string, error) {
	clean := filepath.Clean(name)
	if name == "" || clean == "." || filepath.IsAbs(clean) ||
		clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", errors.Newf(errors.ErrInvalidInput, "invalid template name %q", name)
	}
	return cfg.TemplatePath(clean), nil
}
