package dsl

import (
	"fmt"
	"regexp"
	"strings"
)

// CommandTypeLabel is the recognized label opening a view-option block.
// Blocks with any other label are ignored by the compiler.
const CommandTypeLabel = "CommandType"

var regexViewID = regexp.MustCompile(`[^a-z0-9]`)

// NormalizeViewID derives a view option id from its raw label.
//
// The derivation is a pure function (lowercase, any character outside
// [a-z0-9] becomes "-") so re-parsing identical source text yields identical
// ids. Two different labels may normalize to the same id; collisions are
// not disambiguated and lookups keep the first match in document order.
func NormalizeViewID(label string) string {
	return regexViewID.ReplaceAllString(strings.ToLower(strings.TrimSpace(label)), "-")
}

// ViewOption is one compiled, selectable entry of the dropdown hierarchy.
type ViewOption struct {
	ID      string
	Label   string
	Content string
	// SubOptions contains second-level options found directly inside this
	// option's content. Nesting stops there: a sub-option never carries
	// further sub-options.
	SubOptions   []ViewOption
	HasNestedDSL bool
}

// ParsedContent is the result of compiling one content string.
type ParsedContent struct {
	// ViewOptions lists the top-level options in document order.
	ViewOptions []ViewOption
	// HasValidDSL reports whether at least one top-level option was found.
	HasValidDSL bool
}

// FindOption returns the first top-level option carrying the given id.
func (p ParsedContent) FindOption(id string) (ViewOption, bool) {
	for _, option := range p.ViewOptions {
		if option.ID == id {
			return option, true
		}
	}
	return ViewOption{}, false
}

// FindSubOption returns the first sub-option of the option carrying the given id.
func (o ViewOption) FindSubOption(id string) (ViewOption, bool) {
	for _, sub := range o.SubOptions {
		if sub.ID == id {
			return sub, true
		}
	}
	return ViewOption{}, false
}

// Notifier surfaces transient user-facing notices.
type Notifier interface {
	Notice(message string)
}

// Compiler turns raw content strings into view-option trees.
//
// Compilation never fails from the caller's perspective: any internal error
// degrades to an empty, invalid result after surfacing a notice.
type Compiler struct {
	notifier Notifier
}

// CompilerOption configures a Compiler.
type CompilerOption func(*Compiler)

// WithNotifier overrides the destination of transient parse notices.
func WithNotifier(notifier Notifier) CompilerOption {
	return func(c *Compiler) {
		c.notifier = notifier
	}
}

// NewCompiler instantiates a new compiler.
func NewCompiler(options ...CompilerOption) *Compiler {
	c := &Compiler{}
	for _, option := range options {
		option(c)
	}
	return c
}

// Parse compiles a content string into at most two levels of view options.
//
// Top-level options come from recognized blocks in the content; a second
// parser pass over each option's trimmed body extracts its sub-options. The
// second pass is deliberately not recursed further: the dropdown UI has
// exactly two slots, so a third fencing level ends up as opaque text inside
// a sub-option's content.
func (c *Compiler) Parse(content string) (result ParsedContent) {
	defer func() {
		if r := recover(); r != nil {
			c.notice(fmt.Sprintf("Unable to parse view options: %v", r))
			result = ParsedContent{}
		}
	}()

	var options []ViewOption
	for _, block := range ParseBlocks(content) {
		if block.Type != CommandTypeLabel {
			continue
		}
		option := newViewOption(block)

		var subOptions []ViewOption
		for _, nested := range ParseBlocks(option.Content) {
			if nested.Type != CommandTypeLabel {
				continue
			}
			subOptions = append(subOptions, newViewOption(nested))
		}
		if len(subOptions) > 0 {
			option.SubOptions = subOptions
			option.HasNestedDSL = true
		}

		options = append(options, option)
	}

	if len(options) == 0 {
		return ParsedContent{}
	}
	return ParsedContent{
		ViewOptions: options,
		HasValidDSL: true,
	}
}

// ContainsDSL reports whether at least one recognized block exists.
// Cheaper than Parse as a pre-check before paying for a full compilation.
func (c *Compiler) ContainsDSL(content string) (found bool) {
	defer func() {
		if r := recover(); r != nil {
			found = false
		}
	}()

	for _, block := range ParseBlocks(content) {
		if block.Type == CommandTypeLabel {
			return true
		}
	}
	return false
}

func (c *Compiler) notice(message string) {
	if c.notifier != nil {
		c.notifier.Notice(message)
	}
}

func newViewOption(block Block) ViewOption {
	label := strings.TrimSpace(block.Key)
	return ViewOption{
		ID:      NormalizeViewID(label),
		Label:   label,
		Content: strings.TrimSpace(block.Content),
	}
}
