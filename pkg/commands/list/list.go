package list

import (
	"github.com/arthur-debert/codec/pkg/catalog"
	"github.com/arthur-debert/codec/pkg/config"
	"github.com/arthur-debert/codec/pkg/errors"
	"github.com/arthur-debert/codec/pkg/filesystem"
	"github.com/arthur-debert/codec/pkg/logging"
	"github.com/arthur-debert/codec/pkg/template"
)

// ListTemplatesOptions defines the options for the ListTemplates command.
type ListTemplatesOptions struct {
	// Config supplies the templates root.
	Config *config.Config

	// WithVariables also collects the variables each template references.
	WithVariables bool

	// FS replaces the OS filesystem, mainly for tests.
	FS filesystem.FS
}

// TemplateInfo describes one template.
type TemplateInfo struct {
	Name      string       `json:"name"`
	Path      string       `json:"path"`
	Kind      catalog.Kind `json:"-"`
	KindName  string       `json:"kind"`
	Variables []string     `json:"variables,omitempty"`
	// Problem is set when the variables could not be collected.
	Problem string `json:"problem,omitempty"`
}

// ListTemplatesResult holds the templates found under the templates root.
type ListTemplatesResult struct {
	Root      string         `json:"root"`
	Templates []TemplateInfo `json:"templates"`
}

// ListTemplates finds the templates under the configured templates root.
func ListTemplates(opts ListTemplatesOptions) (*ListTemplatesResult, error) {
	log := logging.GetLogger("commands.list")
	log.Debug().Str("command", "ListTemplates").Msg("Executing command")

	if opts.Config == nil {
		return nil, errors.New(errors.ErrInternal, "list needs a configuration")
	}
	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	entries, err := catalog.List(fsys, opts.Config.TemplatesPath)
	if err != nil {
		return nil, err
	}

	engine := template.NewEngine(nil)
	result := &ListTemplatesResult{
		Root:      opts.Config.TemplatesPath,
		Templates: make([]TemplateInfo, 0, len(entries)),
	}
	for _, entry := range entries {
		info := TemplateInfo{
			Name:     entry.Name,
			Path:     entry.Path,
			Kind:     entry.Kind,
			KindName: entry.Kind.String(),
		}
		if opts.WithVariables {
			vars, err := catalog.Variables(fsys, engine, entry.Path)
			if err != nil {
				log.Warn().Err(err).Str("template", entry.Name).Msg("Could not collect variables")
				info.Problem = err.Error()
			}
			info.Variables = vars
		}
		result.Templates = append(result.Templates, info)
	}

	log.Info().Str("command", "ListTemplates").Int("templateCount", len(result.Templates)).Msg("Command finished")
	return result, nil
}
