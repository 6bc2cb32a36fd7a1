package text

import (
	"strings"
)

// IsBlank returns if a text is blank.
func IsBlank(text string) bool {
	return len(strings.TrimSpace(text)) == 0
}

// Lines splits a text into lines without a trailing empty line
// when the text ends with a newline character.
func Lines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		return lines[:len(lines)-1]
	}
	return lines
}

// FirstLine returns the first line of a text.
func FirstLine(text string) string {
	index := strings.Index(text, "\n")
	if index == -1 {
		return text
	}
	return text[:index]
}

// TrimLinePrefix removes the prefix on every line of a text.
func TrimLinePrefix(text string, prefix string) string {
	var sb strings.Builder
	for _, line := range strings.Split(text, "\n") {
		sb.WriteString(strings.TrimPrefix(line, prefix))
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
