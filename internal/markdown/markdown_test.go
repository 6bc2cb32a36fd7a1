package markdown_test

import (
	"testing"

	"github.com/julien-sobczak/the-notekit/internal/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFrontMatter(t *testing.T) {
	var tests = []struct {
		name         string               // name
		document     markdown.Document    // input
		expectedFM   markdown.FrontMatter // output
		expectedBody markdown.Document    // output
	}{
		{
			name:         "With front matter",
			document:     "---\ntitle: ACME\ntags: [project]\n---\n# ACME\n",
			expectedFM:   "title: ACME\ntags: [project]\n",
			expectedBody: "# ACME\n",
		},
		{
			name:         "Without front matter",
			document:     "# ACME\n",
			expectedFM:   "",
			expectedBody: "# ACME\n",
		},
		{
			name:         "Unclosed front matter",
			document:     "---\ntitle: ACME\n",
			expectedFM:   "",
			expectedBody: "---\ntitle: ACME\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, body := markdown.SplitFrontMatter(tt.document)
			assert.Equal(t, tt.expectedFM, fm)
			assert.Equal(t, tt.expectedBody, body)
		})
	}
}

func TestFrontMatterAsMap(t *testing.T) {
	fm := markdown.FrontMatter("title: ACME\ntags: [project, client]\n")
	attributes, err := fm.AsMap()
	require.NoError(t, err)
	assert.Equal(t, "ACME", attributes["title"])
	assert.Equal(t, []any{"project", "client"}, attributes["tags"])
}

func TestFrontMatterAsYAML(t *testing.T) {
	fm := markdown.FrontMatter("title:   ACME\ntags: [project, client]\n")
	normalized, err := fm.AsYAML()
	require.NoError(t, err)
	assert.Equal(t, "tags:\n    - project\n    - client\ntitle: ACME\n", normalized)
}

func TestDocumentEmbeds(t *testing.T) {
	doc := markdown.Document(`
![[Projects-Tasks.base]]

Some prose with an inline ![[Projects-Notes.base#Open|open notes]] embed.
`)

	embeds := doc.Embeds()
	require.Len(t, embeds, 2)

	assert.Equal(t, "Projects-Tasks.base", embeds[0].Target)
	assert.Equal(t, "Projects-Tasks.base", embeds[0].Path())
	assert.Empty(t, embeds[0].Section())
	assert.Equal(t, "![[Projects-Tasks.base]]", embeds[0].String())

	assert.Equal(t, "Projects-Notes.base#Open", embeds[1].Target)
	assert.Equal(t, "Projects-Notes.base", embeds[1].Path())
	assert.Equal(t, "Open", embeds[1].Section())
	assert.Equal(t, "open notes", embeds[1].Text)
}

func TestDocumentHelpers(t *testing.T) {
	doc := markdown.Document("  # Title  ")
	assert.Equal(t, markdown.Document("# Title"), doc.TrimSpace())
	assert.False(t, doc.IsBlank())
	assert.True(t, markdown.Document(" \n\t").IsBlank())
	assert.Equal(t, []string{"a", "b"}, markdown.Document("a\nb\n").Lines())
}
