package generator

import (
	"maps"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/codec/pkg/errors"
	"github.com/arthur-debert/codec/pkg/template"
)

// NameVariable is bound to the output's final path segment unless the
// caller already bound it.
const NameVariable = "name"

// OutputName returns the final path segment of output.
func OutputName(output string) (string, error) {
	name := filepath.Base(output)
	if output == "" || name == "." || name == ".." || name == string(filepath.Separator) {
		return "", errors.Newf(errors.ErrOutputNameInvalid, "output path %q has no usable name", output).
			WithDetail(errors.DetailPath, output)
	}
	return name, nil
}

// Bind builds the variables for one generation run. Defaults come first,
// then the output name is bound to "name" if nothing bound it yet, and
// overrides are applied last so they always win.
func Bind(defaults map[string]string, output string, overrides map[string]string) (template.Bindings, error) {
	name, err := OutputName(output)
	if err != nil {
		return nil, err
	}

	vars := make(template.Bindings, len(defaults)+len(overrides)+1)
	maps.Copy(vars, defaults)
	if _, ok := vars[NameVariable]; !ok {
		vars[NameVariable] = name
	}
	maps.Copy(vars, overrides)
	return vars, nil
}

// ParseAssignment splits "key=value" on the first '='. The value may be
// empty or contain more '=' characters; the key may not be empty.
func ParseAssignment(s string) (key, value string, err error) {
	key, value, found := strings.Cut(s, "=")
	if !found || key == "" {
		return "", "", errors.Newf(errors.ErrInvalidInput, "invalid variable %q, expected key=value", s)
	}
	return key, value, nil
}

// ParseAssignments parses a list of "key=value" pairs. Later pairs replace
// earlier ones with the same key.
func ParseAssignments(pairs []string) (map[string]string, error) {
	vars := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, err := ParseAssignment(pair)
		if err != nil {
			return nil, err
		}
		vars[key] = value
	}
	return vars, nil
}
