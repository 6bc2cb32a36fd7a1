package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

// Regex to match embedded wikilinks like ![[Projects-Tasks.base]]
var regexEmbed = regexp.MustCompile(`!\[\[([^|\]]+)(?:\|([^\]]*))?\]\]`)

// Embed is an embedded wikilink, the convention view-option contents rely on
// to pull an external document into the sidebar.
type Embed struct {
	// Target is the embedded document, optionally with a #fragment.
	Target string
	// Text is the optional alias after the pipe.
	Text string
}

// Path returns the target without the optional fragment.
func (e Embed) Path() string {
	parts := strings.Split(e.Target, "#")
	return parts[0]
}

// Section returns the fragment part of the target.
func (e Embed) Section() string {
	parts := strings.Split(e.Target, "#")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

func (e Embed) String() string {
	if e.Text != "" {
		return fmt.Sprintf("![[%s|%s]]", e.Target, e.Text)
	}
	return fmt.Sprintf("![[%s]]", e.Target)
}

// Embeds searches for embedded wikilinks inside a document.
func (m Document) Embeds() []Embed {
	var results []Embed
	for _, match := range regexEmbed.FindAllStringSubmatch(string(m), -1) {
		results = append(results, Embed{
			Target: match[1],
			Text:   match[2],
		})
	}
	return results
}
