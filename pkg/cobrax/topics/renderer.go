package topics

// Renderer turns raw topic content into display text. format is the topic
// file's extension, including the dot.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer returns content as-is
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// RendererFor picks glamour for terminals and plain text otherwise.
func RendererFor(terminal bool, width int) Renderer {
	if !terminal {
		return &PlainRenderer{}
	}
	r := NewGlamourRenderer()
	r.Width = width
	return r
}
