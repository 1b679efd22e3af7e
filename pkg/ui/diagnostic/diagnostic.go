// Package diagnostic renders codec errors for people.
//
// Substitution errors are shown with the offending source line and a caret
// underline below the placeholder:
//
//	error[VARIABLE_NOT_FOUND]: variable "author" is not bound
//	  --> templates/svc/main.go:3
//	   |
//	 3 | // by {(author)}
//	   |       ^^^^^^^^^^
package diagnostic

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/codec/pkg/errors"
	"github.com/arthur-debert/codec/pkg/template"
	"github.com/arthur-debert/codec/pkg/ui/styles"
)

// Renderer formats errors, with or without terminal styling.
type Renderer struct {
	styled bool
	styles *styles.Registry
}

// New returns a Renderer. When styled is false the output carries no
// escape sequences.
func New(styled bool) *Renderer {
	return &Renderer{styled: styled, styles: styles.Default()}
}

// Render formats err. The result ends with a newline.
func Render(err error, styled bool) string {
	return New(styled).Render(err)
}

func (r *Renderer) paint(style, s string) string {
	if !r.styled {
		return s
	}
	return r.styles.Get(style).Render(s)
}

// Render formats err. The result ends with a newline.
func (r *Renderer) Render(err error) string {
	if err == nil {
		return ""
	}

	var codecErr *errors.CodecError
	if !stderrors.As(err, &codecErr) {
		return r.paint("Error", "Error:") + " " + err.Error() + "\n"
	}

	var b strings.Builder
	b.WriteString(r.paint("Error", fmt.Sprintf("error[%s]:", codecErr.Code)))
	b.WriteString(" ")
	b.WriteString(codecErr.Message)
	b.WriteString("\n")

	span, text, hasSpan := template.SpanOf(codecErr)
	if loc := location(codecErr); loc != "" {
		b.WriteString(r.paint("Gutter", "  --> "))
		b.WriteString(r.paint("Path", loc))
		b.WriteString("\n")
	}
	if hasSpan {
		r.excerpt(&b, codecErr, span, text)
	}
	if codecErr.Wrapped != nil && !hasSpan {
		b.WriteString(r.paint("Muted", "  caused by: "+codecErr.Wrapped.Error()))
		b.WriteString("\n")
	}
	return b.String()
}

// location names where the error happened: the template source with its
// line for substitution errors, the path detail otherwise.
func location(err *errors.CodecError) string {
	if source, ok := err.Details[errors.DetailSource].(string); ok && source != "" {
		line, _ := err.Details[errors.DetailLine].(int)
		if line > 0 {
			return source + ":" + strconv.Itoa(line)
		}
		return source + " (file name)"
	}
	if path, ok := err.Details[errors.DetailPath].(string); ok {
		return path
	}
	return ""
}

func (r *Renderer) excerpt(b *strings.Builder, err *errors.CodecError, span template.Span, text string) {
	if span.Start < 0 || span.End > len(text) || span.Start > span.End {
		return
	}

	lineStart := strings.LastIndexByte(text[:span.Start], '\n') + 1
	lineEnd := len(text)
	if i := strings.IndexByte(text[span.Start:], '\n'); i >= 0 {
		lineEnd = span.Start + i
	}
	end := min(span.End, lineEnd)

	label := ""
	if line, ok := err.Details[errors.DetailLine].(int); ok && line > 0 {
		label = strconv.Itoa(line)
	}
	gutter := strings.Repeat(" ", len(label)+1)

	b.WriteString(r.paint("Gutter", gutter+" |"))
	b.WriteString("\n")
	b.WriteString(r.paint("Gutter", " "+label+" | "))
	b.WriteString(text[lineStart:lineEnd])
	b.WriteString("\n")
	b.WriteString(r.paint("Gutter", gutter+" | "))
	b.WriteString(padding(text[lineStart:span.Start]))
	b.WriteString(r.paint("Caret", strings.Repeat("^", max(lipgloss.Width(text[span.Start:end]), 1))))
	b.WriteString("\n")
}

// padding returns blanks as wide as prefix, keeping tabs so the caret
// lines up under the source.
func padding(prefix string) string {
	var b strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", lipgloss.Width(string(r))))
	}
	return b.String()
}
