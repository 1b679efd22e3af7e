package template

import (
	"maps"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Pipe transforms a resolved value.
type Pipe func(string) string

// Built-in pipe names.
const (
	PipeCapitalizeOnce = "capitalize_once"
	PipeCapitalizeAll  = "capitalize_all"
)

// SegmentSeparator is where capitalize_all splits its input.
const SegmentSeparator = "-"

// Registry maps pipe names to transforms. It cannot be modified once
// built, so one Registry may be shared by any number of renders.
type Registry struct {
	pipes map[string]Pipe
}

// NewRegistry returns the built-in pipes plus any extra ones. Extra pipes
// replace built-ins of the same name, and later maps win over earlier ones.
func NewRegistry(extra ...map[string]Pipe) *Registry {
	pipes := map[string]Pipe{
		PipeCapitalizeOnce: CapitalizeOnce,
		PipeCapitalizeAll:  CapitalizeAll,
	}
	for _, m := range extra {
		maps.Copy(pipes, m)
	}
	return &Registry{pipes: pipes}
}

// Lookup finds a pipe by its exact name.
func (r *Registry) Lookup(name string) (Pipe, bool) {
	p, ok := r.pipes[name]
	return p, ok
}

// Names returns the registered pipe names, sorted.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.pipes))
}

// CapitalizeOnce uppercases the first character of s.
func CapitalizeOnce(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	// Invalid UTF-8 is left as is.
	if r == utf8.RuneError && size == 1 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// CapitalizeAll capitalizes every dash-separated segment of s and joins
// them with nothing in between: "foo-bar" becomes "FooBar".
func CapitalizeAll(s string) string {
	segments := strings.Split(s, SegmentSeparator)
	var b strings.Builder
	b.Grow(len(s))
	for _, seg := range segments {
		b.WriteString(CapitalizeOnce(seg))
	}
	return b.String()
}
