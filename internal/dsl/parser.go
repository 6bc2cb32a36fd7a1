package dsl

import (
	"strings"

	"github.com/julien-sobczak/the-notekit/pkg/text"
)

// Fence delimiting a block
const fence = "```"

// Block represents one fenced region inside a raw content string.
//
// A block opens with a line of the form "```<Type> <Key>" and closes with a
// line containing exactly three backticks. Blocks may legitimately contain
// nested blocks of the same delimiter style; the content of the outer block
// captures them verbatim.
type Block struct {
	// Type is the first token after the backticks on the opening line.
	Type string
	// Key is the second token after the backticks on the opening line.
	Key string
	// Content contains every line strictly between the opening and closing
	// fences, verbatim (not trimmed).
	Content string
	// Line is the 1-based line number of the opening fence.
	Line int
}

// ParseBlocks scans a raw content string for fenced blocks.
//
// The scan is line-oriented and tracks nesting depth: a line of exactly three
// backticks closes the innermost open fence, and any other line starting with
// three backticks followed by text opens a deeper one. An opening line without
// a matching close before the end of input is skipped (the scan resumes on the
// next line) instead of failing.
func ParseBlocks(content string) []Block {
	var blocks []Block

	lines := text.Lines(content)
	i := 0
	for i < len(lines) {
		blockType, key, ok := matchOpeningFence(lines[i])
		if !ok {
			i++
			continue
		}

		depth := 1
		closed := false
		j := i + 1
		for ; j < len(lines); j++ {
			line := lines[j]
			if line == fence {
				depth--
				if depth == 0 {
					closed = true
					break
				}
			} else if isFenceLine(line) {
				// An opener of any label (not only the recognized one)
				// increments the depth. Inner content stays opaque.
				depth++
			}
		}

		if !closed {
			// Malformed opening fence. Degrade to "no block found here".
			i++
			continue
		}

		blocks = append(blocks, Block{
			Type:    blockType,
			Key:     key,
			Content: strings.Join(lines[i+1:j], "\n"),
			Line:    i + 1,
		})
		i = j + 1
	}

	return blocks
}

// matchOpeningFence matches a line of the form "```<Type> <Key>".
// A key is mandatory: a bare language fence like "```go" does not open a block.
func matchOpeningFence(line string) (string, string, bool) {
	if !isFenceLine(line) {
		return "", "", false
	}
	tokens := strings.Fields(strings.TrimPrefix(line, fence))
	if len(tokens) < 2 {
		return "", "", false
	}
	return tokens[0], tokens[1], true
}

// isFenceLine matches any opener, whatever the label ("```Whatever ...", "```go", ...).
func isFenceLine(line string) bool {
	return strings.HasPrefix(line, fence) && !text.IsBlank(strings.TrimPrefix(line, fence))
}
