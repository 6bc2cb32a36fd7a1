package cmd

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/julien-sobczak/the-notekit/internal/dsl"
	"github.com/julien-sobczak/the-notekit/internal/mapping"
)

func loadResolver() (*mapping.Resolver, error) {
	return mapping.Load(configPath)
}

// staticWorkspace pins the active file from the command line.
type staticWorkspace struct {
	path string
}

func (w *staticWorkspace) ActiveFile() string {
	return w.path
}

// consoleNotifier prints transient notices the way the plugin UI would toast them.
type consoleNotifier struct{}

func (n consoleNotifier) Notice(message string) {
	color.Yellow("! %s", message)
}

// consoleSurface mimics the sidebar pane on the terminal.
type consoleSurface struct{}

func (s consoleSurface) Clear() {}

func (s consoleSurface) ShowContent(rendered string) {
	fmt.Println(rendered)
}

func (s consoleSurface) ShowPlaceholder(message string) {
	color.New(color.Faint).Println(message)
}

func (s consoleSurface) ShowSelectors(visible bool) {}

func (s consoleSurface) UpdateSelectors(options []dsl.ViewOption, selectedViewID, selectedSubViewID string) {
	for _, option := range options {
		marker := " "
		if option.ID == selectedViewID {
			marker = ">"
		}
		fmt.Printf("%s %s\n", marker, option.Label)
		if option.ID != selectedViewID {
			continue
		}
		for _, sub := range option.SubOptions {
			marker = " "
			if sub.ID == selectedSubViewID {
				marker = ">"
			}
			fmt.Printf("  %s %s\n", marker, sub.Label)
		}
	}
}
