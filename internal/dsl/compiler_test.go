package dsl_test

import (
	"testing"

	"github.com/julien-sobczak/the-notekit/internal/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contentTwoViews = "```CommandType Tasks\n" +
	"![[Projects-Tasks.base]]\n" +
	"```\n" +
	"```CommandType Notes\n" +
	"```CommandType SubNote1\n" +
	"![[Projects-SubNote1.base]]\n" +
	"```\n" +
	"```CommandType SubNote2\n" +
	"![[Projects-SubNote2.base]]\n" +
	"```\n" +
	"```\n"

func TestCompilerParse(t *testing.T) {
	compiler := dsl.NewCompiler()

	t.Run("Two levels", func(t *testing.T) {
		parsed := compiler.Parse(contentTwoViews)
		require.True(t, parsed.HasValidDSL)
		require.Len(t, parsed.ViewOptions, 2)

		tasks := parsed.ViewOptions[0]
		assert.Equal(t, "tasks", tasks.ID)
		assert.Equal(t, "Tasks", tasks.Label)
		assert.Equal(t, "![[Projects-Tasks.base]]", tasks.Content)
		assert.False(t, tasks.HasNestedDSL)
		assert.Nil(t, tasks.SubOptions)

		notes := parsed.ViewOptions[1]
		assert.Equal(t, "notes", notes.ID)
		assert.Equal(t, "Notes", notes.Label)
		assert.True(t, notes.HasNestedDSL)
		require.Len(t, notes.SubOptions, 2)
		assert.Equal(t, "subnote1", notes.SubOptions[0].ID)
		assert.Equal(t, "SubNote1", notes.SubOptions[0].Label)
		assert.Equal(t, "![[Projects-SubNote1.base]]", notes.SubOptions[0].Content)
		assert.Equal(t, "subnote2", notes.SubOptions[1].ID)

		// The outer option keeps its markdown shell even though the
		// sub-options were extracted from it.
		assert.Contains(t, notes.Content, "```CommandType SubNote1")
	})

	t.Run("Empty content", func(t *testing.T) {
		parsed := compiler.Parse("")
		assert.False(t, parsed.HasValidDSL)
		assert.Empty(t, parsed.ViewOptions)
	})

	t.Run("Plain prose", func(t *testing.T) {
		parsed := compiler.Parse("No fences anywhere.\n\nJust prose.")
		assert.False(t, parsed.HasValidDSL)
		assert.Empty(t, parsed.ViewOptions)
	})

	t.Run("Unrecognized labels only", func(t *testing.T) {
		parsed := compiler.Parse("```Dataview Agenda\nlist from #agenda\n```\n")
		assert.False(t, parsed.HasValidDSL)
		assert.Empty(t, parsed.ViewOptions)
	})

	t.Run("Nesting stops at depth two", func(t *testing.T) {
		content := "```CommandType Level1\n" +
			"```CommandType Level2\n" +
			"```CommandType Level3\n" +
			"deepest\n" +
			"```\n" +
			"```\n" +
			"```\n"
		parsed := compiler.Parse(content)
		require.True(t, parsed.HasValidDSL)
		require.Len(t, parsed.ViewOptions, 1)
		require.Len(t, parsed.ViewOptions[0].SubOptions, 1)
		for _, sub := range parsed.ViewOptions[0].SubOptions {
			// The third fencing level stays opaque text inside the sub-option
			assert.Nil(t, sub.SubOptions)
			assert.False(t, sub.HasNestedDSL)
		}
	})

	t.Run("Idempotence", func(t *testing.T) {
		first := compiler.Parse(contentTwoViews)
		second := compiler.Parse(contentTwoViews)
		assert.Equal(t, first, second)
	})
}

func TestCompilerContainsDSL(t *testing.T) {
	compiler := dsl.NewCompiler()

	var tests = []struct {
		name    string // name
		content string // input
	}{
		{"Two levels", contentTwoViews},
		{"Empty", ""},
		{"Prose", "plain text"},
		{"Unrecognized label", "```Dataview Agenda\nlist\n```\n"},
		{"Malformed fence", "```CommandType Tasks\nunclosed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ContainsDSL must agree with the full compilation
			assert.Equal(t, compiler.Parse(tt.content).HasValidDSL, compiler.ContainsDSL(tt.content))
		})
	}
}

func TestNormalizeViewID(t *testing.T) {
	var tests = []struct {
		name     string // name
		label    string // input
		expected string // output
	}{
		{"Lowercase", "Tasks", "tasks"},
		{"Digits kept", "SubNote1", "subnote1"},
		{"Punctuation", "Tasks!", "tasks-"},
		{"Spaces", "My Views", "my-views"},
		{"Already normalized", "tasks", "tasks"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dsl.NormalizeViewID(tt.label))
		})
	}
}

func TestCompilerFindOption(t *testing.T) {
	parsed := dsl.NewCompiler().Parse(contentTwoViews)

	notes, ok := parsed.FindOption("notes")
	require.True(t, ok)
	assert.Equal(t, "Notes", notes.Label)

	_, ok = parsed.FindOption("unknown")
	assert.False(t, ok)

	sub, ok := notes.FindSubOption("subnote2")
	require.True(t, ok)
	assert.Equal(t, "SubNote2", sub.Label)

	_, ok = notes.FindSubOption("tasks")
	assert.False(t, ok)
}
