// Package picker asks the user where generated output should go.
//
// The user walks the directory tree from a starting directory, choosing a
// subdirectory, going up, or accepting the current one, and then names the
// output.
package picker

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/codec/pkg/errors"
	"github.com/arthur-debert/codec/pkg/filesystem"
	"github.com/arthur-debert/codec/pkg/logging"
	"github.com/arthur-debert/codec/pkg/ui"
)

// Prompter asks questions. The pterm-backed implementation is used unless
// a test supplies its own.
type Prompter interface {
	Select(title string, options []string) (string, error)
	Input(title, defaultValue string) (string, error)
}

// Choices offered besides subdirectories.
const (
	choiceAccept = "✔ generate here"
	choiceUp     = ".. (parent directory)"
)

// Picker chooses an output path interactively.
type Picker struct {
	fs     filesystem.FS
	prompt Prompter
}

// New returns a Picker. A nil prompter uses pterm.
func New(fsys filesystem.FS, prompt Prompter) *Picker {
	if prompt == nil {
		prompt = PtermPrompter{}
	}
	return &Picker{fs: fsys, prompt: prompt}
}

// EnsureInteractive fails with ErrNotInteractive unless in is a terminal.
func EnsureInteractive(in *os.File) error {
	if !ui.IsTerminal(in) {
		return errors.New(errors.ErrNotInteractive,
			"no output given and stdin is not a terminal; pass the output path as an argument")
	}
	return nil
}

// Pick starts at dir and returns the chosen output path. defaultName is
// proposed as the output name.
func (p *Picker) Pick(dir, defaultName string) (string, error) {
	log := logging.GetLogger("picker")

	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "invalid directory %s", dir)
	}

	for {
		subdirs, err := p.subdirs(dir)
		if err != nil {
			return "", err
		}

		options := []string{choiceAccept}
		if parent := filepath.Dir(dir); parent != dir {
			options = append(options, choiceUp)
		}
		for _, name := range subdirs {
			options = append(options, name+string(filepath.Separator))
		}

		choice, err := p.prompt.Select("Output directory: "+dir, options)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrInvalidInput, "directory selection aborted")
		}
		log.Trace().Str("dir", dir).Str("choice", choice).Msg("Picker choice")

		switch choice {
		case choiceAccept:
			return p.name(dir, defaultName)
		case choiceUp:
			dir = filepath.Dir(dir)
		default:
			name := strings.TrimSuffix(choice, string(filepath.Separator))
			if !contains(subdirs, name) {
				return "", errors.Newf(errors.ErrInvalidInput, "unknown choice %q", choice)
			}
			dir = filepath.Join(dir, name)
		}
	}
}

func (p *Picker) name(dir, defaultName string) (string, error) {
	name, err := p.prompt.Input("Output name", defaultName)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "name input aborted")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultName
	}
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", errors.Newf(errors.ErrInvalidInput, "invalid output name %q", name)
	}
	return filepath.Join(dir, name), nil
}

func (p *Picker) subdirs(dir string) ([]string, error) {
	entries, err := p.fs.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCouldNotRead, "could not read directory %s", dir).
			WithDetail(errors.DetailPath, dir)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// PtermPrompter asks on the terminal with pterm's interactive printers.
type PtermPrompter struct{}

// Select shows an interactive list.
func (PtermPrompter) Select(title string, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultOption(options[0]).
		WithMaxHeight(15).
		Show(title)
}

// Input reads a line, proposing defaultValue.
func (PtermPrompter) Input(title, defaultValue string) (string, error) {
	return pterm.DefaultInteractiveTextInput.
		WithDefaultValue(defaultValue).
		Show(title)
}
