package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/julien-sobczak/the-notekit/internal/logging"
)

var verboseInfo bool
var verboseDebug bool
var verboseTrace bool

var configPath string

var rootCmd = &cobra.Command{
	Use:   "notekit",
	Short: "The NoteKit powers sidebar plugins for Markdown note vaults",
	Long: `Shared tooling behind the sidebar plugins: inspect the view-option DSL
embedded in your notes, resolve directory mappings, and watch a vault for changes.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Enable verbose output. The most verbose level wins when multiple flags are passed.
		if verboseInfo {
			logging.CurrentLogger().SetVerboseLevel(logging.VerboseInfo)
		}
		if verboseDebug {
			logging.CurrentLogger().SetVerboseLevel(logging.VerboseDebug)
		}
		if verboseTrace {
			logging.CurrentLogger().SetVerboseLevel(logging.VerboseTrace)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseInfo, "verbose", "v", false, "enable verbose info output")
	rootCmd.PersistentFlags().BoolVar(&verboseDebug, "verbose-debug", false, "enable verbose debug output")
	rootCmd.PersistentFlags().BoolVar(&verboseTrace, "verbose-trace", false, "enable verbose trace output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "notekit.toml", "mapping configuration file")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
