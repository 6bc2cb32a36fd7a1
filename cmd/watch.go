package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/julien-sobczak/the-notekit/internal/render"
	"github.com/julien-sobczak/the-notekit/internal/sidebar"
	"github.com/julien-sobczak/the-notekit/internal/vault"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the vault",
	Long:  `Watch the vault for note changes and replay the sidebar updates each change would trigger.`,
	Run: func(cmd *cobra.Command, args []string) {
		resolver, err := loadResolver()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		indexer, err := vault.NewIndexer(resolver.Root())
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		defer indexer.Close()
		indexer.Start()

		workspace := &staticWorkspace{}
		manager := sidebar.NewManager(workspace, resolver, render.NewTextRenderer(), consoleSurface{}, sidebar.NewSelectionCache(),
			sidebar.WithNotifier(consoleNotifier{}),
			sidebar.OnCommandsNeedUpdate(func() {
				color.New(color.Faint).Println("(commands need update)")
			}))

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

		fmt.Printf("Watching %s...\n", resolver.Root())
		for {
			select {
			case event, ok := <-indexer.Events():
				if !ok {
					return
				}
				color.New(color.Bold).Printf("%s %s\n", event.Op, event.Path)
				if event.Op == vault.Deleted {
					continue
				}
				// Treat the changed file as the newly activated one
				workspace.path = event.Path
				manager.UpdateContent()
			case <-sigs:
				return
			}
		}
	},
}
