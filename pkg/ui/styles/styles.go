// Package styles holds codec's named terminal styles.
//
// Styles use semantic names and adaptive colors that adjust to light and
// dark terminal themes. They are defined in the embedded styles.yaml.
package styles

import (
	_ "embed"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/codec/pkg/errors"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold        bool   `yaml:"bold,omitempty"`
	Italic      bool   `yaml:"italic,omitempty"`
	Underline   bool   `yaml:"underline,omitempty"`
	Foreground  string `yaml:"foreground,omitempty"`
	Background  string `yaml:"background,omitempty"`
	MarginLeft  int    `yaml:"marginLeft,omitempty"`
	PaddingLeft int    `yaml:"paddingLeft,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Registry maps semantic names to lipgloss styles.
type Registry struct {
	styles map[string]lipgloss.Style
}

//go:embed styles.yaml
var embeddedStyles []byte

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Parse builds a Registry from YAML data.
func Parse(data []byte) (*Registry, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to parse styles")
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	r := &Registry{styles: make(map[string]lipgloss.Style, len(config.Styles))}
	for name, def := range config.Styles {
		style, err := buildStyle(def, colors)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal, "invalid style %s", name)
		}
		r.styles[name] = style
	}
	return r, nil
}

// MustParse is Parse for embedded data; it panics on error.
func MustParse(data []byte) *Registry {
	r, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return r
}

// Default returns the registry loaded from the embedded styles.yaml.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = MustParse(embeddedStyles)
	})
	return defaultRegistry
}

// GetStyle returns a style from the default registry.
func GetStyle(name string) lipgloss.Style {
	return Default().Get(name)
}

// Render renders s with a style from the default registry.
func Render(name, s string) string {
	return Default().Get(name).Render(s)
}

func buildStyle(def StyleDef, colors map[string]lipgloss.AdaptiveColor) (lipgloss.Style, error) {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if def.Foreground != "" {
		color, ok := colors[def.Foreground]
		if !ok {
			return style, errors.Newf(errors.ErrInternal, "unknown color %s", def.Foreground)
		}
		style = style.Foreground(color)
	}
	if def.Background != "" {
		color, ok := colors[def.Background]
		if !ok {
			return style, errors.Newf(errors.ErrInternal, "unknown color %s", def.Background)
		}
		style = style.Background(color)
	}

	if def.MarginLeft > 0 {
		style = style.MarginLeft(def.MarginLeft)
	}
	if def.PaddingLeft > 0 {
		style = style.PaddingLeft(def.PaddingLeft)
	}
	return style, nil
}

// Get returns the named style, or an empty style when it is not defined.
func (r *Registry) Get(name string) lipgloss.Style {
	if style, ok := r.styles[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Has reports whether name is defined.
func (r *Registry) Has(name string) bool {
	_, ok := r.styles[name]
	return ok
}

// Merge combines several named styles, later ones taking precedence.
func (r *Registry) Merge(names ...string) lipgloss.Style {
	result := lipgloss.NewStyle()
	for i := len(names) - 1; i >= 0; i-- {
		result = result.Inherit(r.Get(names[i]))
	}
	return result
}
