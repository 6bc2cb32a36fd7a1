// Package markdown provides the small Markdown helpers shared by the
// sibling plugins: frontmatter (de)serialization and embedded-link
// extraction. It is not a Markdown parser; rendering is delegated to the
// render collaborator.
package markdown

import (
	"strings"

	"github.com/julien-sobczak/the-notekit/pkg/text"
)

// Document represents a Markdown content
type Document string

func (m Document) String() string {
	return string(m)
}

// TrimSpace removes leading and trailing spaces.
func (m Document) TrimSpace() Document {
	return Document(strings.TrimSpace(string(m)))
}

// IsBlank returns if the document contains only whitespace.
func (m Document) IsBlank() bool {
	return text.IsBlank(string(m))
}

// Lines returns the document lines.
func (m Document) Lines() []string {
	return text.Lines(string(m))
}
