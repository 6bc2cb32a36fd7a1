package render_test

import (
	"testing"

	"github.com/julien-sobczak/the-notekit/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLRenderer(t *testing.T) {
	renderer := render.NewHTMLRenderer()

	html, err := renderer.Render("**Hello** World!")
	require.NoError(t, err)
	assert.Equal(t, "<p><strong>Hello</strong> World!</p>", html)
}

func TestTextRenderer(t *testing.T) {
	renderer := render.NewTextRenderer()

	text, err := renderer.Render("![[Projects-Tasks.base]]")
	require.NoError(t, err)
	assert.Equal(t, "![[Projects-Tasks.base]]", text)
}
