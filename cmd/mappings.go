package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(mappingsCmd)
}

var mappingsCmd = &cobra.Command{
	Use:   "mappings [path]",
	Short: "Show directory mappings",
	Long:  `List the configured directory mappings, or resolve a single file path against them.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		resolver, err := loadResolver()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		if len(args) == 1 {
			contentPath, ok := resolver.Resolve(args[0])
			if !ok {
				fmt.Printf("%s: no mapping\n", args[0])
				os.Exit(1)
			}
			fmt.Printf("%s: %s\n", args[0], contentPath)
			return
		}

		for _, rule := range resolver.Rules() {
			fmt.Printf("%-30s %s\n", rule.Directory, rule.ContentPath)
		}
	},
}
