package markdown

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// FrontMatter represents the YAML Front Matter of a document.
type FrontMatter string

const frontMatterSeparator = "---"

// SplitFrontMatter separates the YAML front matter (without its "---"
// delimiters) from the document body. Documents without a front matter
// return an empty one and the body unchanged.
func SplitFrontMatter(m Document) (FrontMatter, Document) {
	raw := string(m)
	if !strings.HasPrefix(raw, frontMatterSeparator+"\n") {
		return "", m
	}
	rest := raw[len(frontMatterSeparator)+1:]
	end := strings.Index(rest, "\n"+frontMatterSeparator)
	if end == -1 {
		return "", m
	}
	body := rest[end+len(frontMatterSeparator)+1:]
	body = strings.TrimPrefix(body, "\n")
	return FrontMatter(rest[:end+1]), Document(body)
}

// AsMap decodes the front matter attributes.
func (f FrontMatter) AsMap() (map[string]any, error) {
	var attributes = make(map[string]any)
	if err := yaml.Unmarshal([]byte(f), &attributes); err != nil {
		return nil, err
	}
	return attributes, nil
}

// AsYAML re-encodes the attributes to a normalized YAML document.
func (f FrontMatter) AsYAML() (string, error) {
	m, err := f.AsMap()
	if err != nil {
		return "", err
	}
	out, err := yaml.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
