// Package render provides the render collaborators consumed by the sidebar
// manager. Renderers transform raw note content into displayable output and
// never inspect the DSL; they satisfy sidebar.Renderer.
package render

import (
	"strings"

	"github.com/gomarkdown/markdown"
)

// HTMLRenderer renders Markdown content to HTML.
type HTMLRenderer struct{}

func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

func (r *HTMLRenderer) Render(content string) (string, error) {
	html := markdown.ToHTML([]byte(content), nil, nil)
	return strings.TrimSpace(string(html)), nil
}

// TextRenderer returns the content unchanged. Useful on surfaces that
// display raw Markdown (and in tests).
type TextRenderer struct{}

func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

func (r *TextRenderer) Render(content string) (string, error) {
	return content, nil
}
