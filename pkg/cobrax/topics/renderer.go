package topics

// Renderer defines the interface for rendering topic content
type Renderer interface {
	// Render takes raw content and its file extension and returns the text to display
	Render(content string, format string) string
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(content, format string) string

// Render calls f
func (f RendererFunc) Render(content, format string) string {
	return f(content, format)
}

// PlainRenderer returns content as-is
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// ForOutput picks a glamour renderer for styled output and glamour's
// notty style otherwise, so markdown stays readable in pipes.
func ForOutput(styled bool) Renderer {
	if styled {
		return NewGlamourRenderer()
	}
	return &GlamourRenderer{Style: "notty"}
}
