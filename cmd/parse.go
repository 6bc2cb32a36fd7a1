package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/julien-sobczak/the-notekit/internal/dsl"
	"github.com/julien-sobczak/the-notekit/internal/markdown"
	"github.com/julien-sobczak/the-notekit/pkg/text"
)

var (
	parseDirect      bool
	parseFrontMatter bool
)

func init() {
	parseCmd.Flags().BoolVar(&parseDirect, "direct", false, "treat the argument as the content document itself, bypassing mappings")
	parseCmd.Flags().BoolVar(&parseFrontMatter, "front-matter", false, "print the normalized front matter before the option tree (with --direct)")
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse <path>",
	Short: "Parse view options",
	Long:  `Compile the view-option blocks of the content mapped to a file and print the resulting tree.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		content, frontMatter, err := contentFor(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		if parseFrontMatter && frontMatter != "" {
			normalized, err := frontMatter.AsYAML()
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			fmt.Print(normalized)
			fmt.Println("---")
		}

		compiler := dsl.NewCompiler(dsl.WithNotifier(consoleNotifier{}))
		parsed := compiler.Parse(content)
		if !parsed.HasValidDSL {
			fmt.Println("No view options found")
			return
		}

		for _, option := range parsed.ViewOptions {
			color.New(color.Bold).Printf("%s", option.Label)
			fmt.Printf(" (%s)\n", option.ID)
			if preview := contentPreview(option.Content); preview != "" {
				fmt.Printf("  %s\n", preview)
			}
			printEmbeds(option, "  ")
			for _, sub := range option.SubOptions {
				fmt.Printf("  %s (%s)\n", sub.Label, sub.ID)
				if preview := contentPreview(sub.Content); preview != "" {
					fmt.Printf("    %s\n", preview)
				}
				printEmbeds(sub, "    ")
			}
		}
	},
}

// contentFor returns the sidebar content for a vault file, honoring --direct.
func contentFor(path string) (string, markdown.FrontMatter, error) {
	if parseDirect {
		contentBytes, err := os.ReadFile(path)
		if err != nil {
			return "", "", err
		}
		// Content documents may carry a front matter of their own
		frontMatter, body := markdown.SplitFrontMatter(markdown.Document(contentBytes))
		return body.String(), frontMatter, nil
	}

	resolver, err := loadResolver()
	if err != nil {
		return "", "", err
	}
	content, ok := resolver.Content(path)
	if !ok {
		return "", "", fmt.Errorf("no content mapped to %s", path)
	}
	return content, "", nil
}

// contentPreview returns the first text line of an option's content.
// Content documents often wrap text in "> " callout quotes.
func contentPreview(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "> ") {
		content = text.TrimLinePrefix(content, "> ")
	}
	return text.FirstLine(content)
}

func printEmbeds(option dsl.ViewOption, indent string) {
	for _, embed := range markdown.Document(option.Content).Embeds() {
		fmt.Printf("%s→ %s\n", indent, embed.Target)
	}
}
