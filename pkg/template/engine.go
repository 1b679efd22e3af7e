package template

import (
	"strings"

	"github.com/arthur-debert/codec/pkg/errors"
)

// Bindings maps variable names to their values. Names are case-sensitive.
type Bindings map[string]string

// Engine renders texts against Bindings using the pipes of its Registry.
type Engine struct {
	pipes *Registry
}

// NewEngine returns an Engine using pipes, or the built-in pipes when
// pipes is nil.
func NewEngine(pipes *Registry) *Engine {
	if pipes == nil {
		pipes = NewRegistry()
	}
	return &Engine{pipes: pipes}
}

// Registry returns the pipes the engine resolves against.
func (e *Engine) Registry() *Registry {
	return e.pipes
}

// Render substitutes every placeholder in text.
//
// An unbound variable fails with ErrVariableNotFound and an unregistered
// pipe with ErrPipeNotFound. Both errors carry the placeholder's byte span
// and the rendered text as details, see SpanOf.
func (e *Engine) Render(text string, vars Bindings) (string, error) {
	var out strings.Builder
	last := 0
	for p := range Scan(text) {
		out.WriteString(text[last:p.Start])

		name, pipes := SplitName(p.Name)
		value, ok := vars[name]
		if !ok {
			return "", spanError(errors.Newf(errors.ErrVariableNotFound, "variable %q is not bound", name).
				WithDetail(errors.DetailVariable, name), p.Span, text)
		}

		for _, pipeName := range pipes {
			pipe, ok := e.pipes.Lookup(pipeName)
			if !ok {
				return "", spanError(errors.Newf(errors.ErrPipeNotFound, "pipe %q is not registered", pipeName).
					WithDetail(errors.DetailPipe, pipeName), p.Span, text)
			}
			value = pipe(value)
		}

		out.WriteString(value)
		last = p.End
	}
	out.WriteString(text[last:])
	return out.String(), nil
}

// Variables lists the distinct variables text refers to, in order of
// first use.
func (e *Engine) Variables(text string) []string {
	var names []string
	seen := make(map[string]bool)
	for p := range Scan(text) {
		name, _ := SplitName(p.Name)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

func spanError(err *errors.CodecError, span Span, text string) *errors.CodecError {
	return err.WithDetails(map[string]interface{}{
		errors.DetailStart: span.Start,
		errors.DetailEnd:   span.End,
		errors.DetailText:  text,
	})
}

// SpanOf returns the placeholder span and source text attached to a
// substitution error.
func SpanOf(err error) (Span, string, bool) {
	details := errors.GetErrorDetails(err)
	start, okStart := details[errors.DetailStart].(int)
	end, okEnd := details[errors.DetailEnd].(int)
	text, okText := details[errors.DetailText].(string)
	if !okStart || !okEnd || !okText {
		return Span{}, "", false
	}
	return Span{Start: start, End: end}, text, true
}
