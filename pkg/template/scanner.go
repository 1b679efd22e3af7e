package template

import (
	"iter"
	"strings"
)

// Markers delimiting a placeholder and separating its pipes.
const (
	OpenMarker    = "{("
	CloseMarker   = ")}"
	PipeSeparator = "|"
)

// Span is a half-open byte range [Start, End) in a scanned text.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Placeholder is one {(...)} occurrence. Name is the raw text between the
// markers, pipes included.
type Placeholder struct {
	Name string
	Span
}

// Scan yields the placeholders of text from left to right.
//
// Only the most recent open marker before a close marker counts, so
// "{(a{(b)}" holds a single placeholder "b" starting at byte 3. A close
// marker with no open marker before it is literal text, and so is an open
// marker that is never closed. Ranging over the result again rescans text.
func Scan(text string) iter.Seq[Placeholder] {
	return func(yield func(Placeholder) bool) {
		open := -1
		for i := 0; i+1 < len(text); {
			switch {
			case strings.HasPrefix(text[i:], OpenMarker):
				open = i
				i += len(OpenMarker)
			case open >= 0 && strings.HasPrefix(text[i:], CloseMarker):
				p := Placeholder{
					Name: text[open+len(OpenMarker) : i],
					Span: Span{Start: open, End: i + len(CloseMarker)},
				}
				if !yield(p) {
					return
				}
				open = -1
				i += len(CloseMarker)
			default:
				i++
			}
		}
	}
}

// SplitName splits a raw placeholder name into its variable and the pipes
// applied to it, in order.
func SplitName(raw string) (variable string, pipes []string) {
	parts := strings.Split(raw, PipeSeparator)
	return parts[0], parts[1:]
}
