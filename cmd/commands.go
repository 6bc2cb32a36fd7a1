package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/julien-sobczak/the-notekit/internal/dsl"
	"github.com/julien-sobczak/the-notekit/internal/render"
	"github.com/julien-sobczak/the-notekit/internal/sidebar"
)

var commandsView string
var commandsSubView string

func init() {
	commandsCmd.Flags().StringVar(&commandsView, "view", "", "switch to this view before enumerating")
	commandsCmd.Flags().StringVar(&commandsSubView, "sub-view", "", "switch to this sub-view before enumerating")
	rootCmd.AddCommand(commandsCmd)
}

var commandsCmd = &cobra.Command{
	Use:   "commands <path>",
	Short: "List dynamic commands",
	Long:  `Enumerate the "switch to view" commands a host command palette would register for a file.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		resolver, err := loadResolver()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		workspace := &staticWorkspace{path: args[0]}
		manager := sidebar.NewManager(workspace, resolver, render.NewTextRenderer(), silentSurface{}, sidebar.NewSelectionCache(),
			sidebar.WithNotifier(consoleNotifier{}))
		manager.UpdateContent()
		if commandsView != "" {
			manager.SwitchToView(commandsView, commandsSubView)
		}

		commands := manager.AvailableCommands()
		if len(commands) == 0 {
			fmt.Println("No commands available")
			return
		}
		for _, command := range commands {
			target := command.ViewID
			if command.SubViewID != "" {
				target = fmt.Sprintf("%s / %s", command.ViewID, command.SubViewID)
			}
			fmt.Printf("%2d. %-20s %-24s (%s)\n", command.Index, command.ID, command.Name, target)
		}

		content, _ := resolver.Content(args[0])
		fmt.Printf("fingerprint: %s\n", sidebar.CommandsFingerprint(content, commands))
	},
}

// silentSurface discards rendering: this command only projects commands.
type silentSurface struct{}

func (s silentSurface) Clear()                         {}
func (s silentSurface) ShowContent(rendered string)    {}
func (s silentSurface) ShowPlaceholder(message string) {}
func (s silentSurface) ShowSelectors(visible bool)     {}
func (s silentSurface) UpdateSelectors(options []dsl.ViewOption, selectedViewID, selectedSubViewID string) {
}
