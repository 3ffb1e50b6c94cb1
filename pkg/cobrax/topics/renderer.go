package topics

// Renderer defines the interface for rendering topic content
type Renderer interface {
	// Render takes raw content and returns formatted content for terminal display
	Render(content string, format string) string
}

// PlainRenderer is the default renderer that returns content as-is
type PlainRenderer struct{}

// Render returns the content unchanged
func (PlainRenderer) Render(content string, format string) string {
	return content
}

// MarkdownRenderer sends ".md" topics through Markdown and leaves the
// rest untouched.
type MarkdownRenderer struct {
	Markdown func(string) string
}

// Render formats markdown topics.
func (r MarkdownRenderer) Render(content string, format string) string {
	if format != ".md" || r.Markdown == nil {
		return content
	}
	return r.Markdown(content)
}
