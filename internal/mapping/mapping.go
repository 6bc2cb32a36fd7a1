// Package mapping implements the "directory mapping" content source: every
// vault directory can be mapped to a content document describing the sidebar
// to display for files under it. Lookups pick the longest matching directory
// prefix, with an optional "*" wildcard as fallback.
package mapping

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/exp/slices"
)

// Wildcard matches any file path when no directory prefix does.
const Wildcard = "*"

// Rule associates one directory prefix with a content document.
type Rule struct {
	Directory   string
	ContentPath string
}

// Resolver resolves file paths to their mapped content.
type Resolver struct {
	root  string
	rules map[string]string
}

// NewResolver instantiates a resolver from in-memory rules.
// root is the vault root used to read mapped content documents.
func NewResolver(root string, rules map[string]string) *Resolver {
	normalized := make(map[string]string, len(rules))
	for directory, contentPath := range rules {
		normalized[normalizeDirectory(directory)] = contentPath
	}
	return &Resolver{
		root:  root,
		rules: normalized,
	}
}

// configFile mirrors the TOML mapping configuration:
//
//	root = "."
//
//	[mappings]
//	"Projects" = "Templates/projects-sidebar.md"
//	"Projects/Clients" = "Templates/clients-sidebar.md"
//	"*" = "Templates/default-sidebar.md"
//
// Note: Fields must be public for toml package to unmarshall
type configFile struct {
	Root     string
	Mappings map[string]string
}

// Load reads a mapping configuration file.
// A relative root is resolved against the configuration file's directory.
func Load(path string) (*Resolver, error) {
	contentBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read mapping config %s: %w", path, err)
	}
	var config configFile
	if err := toml.Unmarshal(contentBytes, &config); err != nil {
		return nil, fmt.Errorf("unable to parse mapping config %s: %w", path, err)
	}

	root := config.Root
	if root == "" {
		root = "."
	}
	if !filepath.IsAbs(root) {
		root = filepath.Join(filepath.Dir(path), root)
	}

	return NewResolver(root, config.Mappings), nil
}

// Root returns the vault root directory.
func (r *Resolver) Root() string {
	return r.root
}

// Rules lists the mapping rules from the most to the least specific.
func (r *Resolver) Rules() []Rule {
	var rules []Rule
	for directory, contentPath := range r.rules {
		rules = append(rules, Rule{Directory: directory, ContentPath: contentPath})
	}
	slices.SortFunc(rules, func(a, b Rule) int {
		if specificity := len(b.Directory) - len(a.Directory); specificity != 0 {
			return specificity
		}
		return strings.Compare(a.Directory, b.Directory)
	})
	// The wildcard always comes last
	if i := slices.IndexFunc(rules, func(rule Rule) bool { return rule.Directory == Wildcard }); i >= 0 {
		wildcard := rules[i]
		rules = append(rules[:i], rules[i+1:]...)
		rules = append(rules, wildcard)
	}
	return rules
}

// Resolve returns the content path mapped to a file path, choosing the
// longest matching directory prefix and falling back on the wildcard.
func (r *Resolver) Resolve(filePath string) (string, bool) {
	if filePath == "" {
		return "", false
	}
	filePath = filepath.ToSlash(filePath)

	bestDirectory := ""
	bestContentPath := ""
	found := false
	for directory, contentPath := range r.rules {
		if directory == Wildcard {
			continue
		}
		if !strings.HasPrefix(filePath, directory+"/") {
			continue
		}
		if !found || len(directory) > len(bestDirectory) {
			bestDirectory = directory
			bestContentPath = contentPath
			found = true
		}
	}
	if found {
		return bestContentPath, true
	}

	if contentPath, ok := r.rules[Wildcard]; ok {
		return contentPath, true
	}
	return "", false
}

// Content returns the content of the document mapped to a file path.
// Implements the content-source contract consumed by the sidebar manager.
func (r *Resolver) Content(filePath string) (string, bool) {
	contentPath, ok := r.Resolve(filePath)
	if !ok {
		return "", false
	}
	contentBytes, err := os.ReadFile(filepath.Join(r.root, contentPath))
	if err != nil {
		// A mapping to a missing document degrades to "no content"
		return "", false
	}
	return string(contentBytes), true
}

func normalizeDirectory(directory string) string {
	if directory == Wildcard {
		return directory
	}
	return strings.TrimSuffix(filepath.ToSlash(directory), "/")
}
