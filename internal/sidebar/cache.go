package sidebar

import (
	"path/filepath"

	"golang.org/x/exp/slices"
)

// ViewSelection is the last-chosen option pair for a file.
// Empty ids mean "nothing selected".
type ViewSelection struct {
	SelectedViewID    string
	SelectedSubViewID string
}

// SelectionPatch updates a subset of a cached selection.
// Nil fields are left untouched.
type SelectionPatch struct {
	SelectedViewID    *string
	SelectedSubViewID *string
}

// SelectionCache remembers, per file path, which view option and sub-option
// were last selected.
//
// The cache is purely in-memory and lives for the whole plugin session: no
// TTL, no size bound, no persistence. Entries are created lazily on the
// first selection for a path and only removed by explicit calls (typically
// Clear on plugin unload). Every operation treats an empty path as a no-op.
//
// Construct one cache per sidebar instance and hand it to the manager at
// construction time; independent sidebars (left and right panes) must not
// share selections.
type SelectionCache struct {
	entries map[string]ViewSelection
}

// NewSelectionCache instantiates an empty cache.
func NewSelectionCache() *SelectionCache {
	return &SelectionCache{
		entries: make(map[string]ViewSelection),
	}
}

// Get returns the selection recorded for a path.
func (c *SelectionCache) Get(path string) (ViewSelection, bool) {
	if path == "" {
		return ViewSelection{}, false
	}
	selection, ok := c.entries[path]
	return selection, ok
}

// Set records the selection for a path, overwriting any previous entry.
// The selection is stored by value: mutating the caller's copy afterwards
// does not affect the cache.
func (c *SelectionCache) Set(path string, selection ViewSelection) {
	if path == "" {
		return
	}
	c.entries[path] = selection
}

// Has reports whether a selection is recorded for a path.
func (c *SelectionCache) Has(path string) bool {
	_, ok := c.Get(path)
	return ok
}

// Update patches an existing entry in place.
// Returns false when no entry exists for the path.
func (c *SelectionCache) Update(path string, patch SelectionPatch) bool {
	selection, ok := c.Get(path)
	if !ok {
		return false
	}
	if patch.SelectedViewID != nil {
		selection.SelectedViewID = *patch.SelectedViewID
	}
	if patch.SelectedSubViewID != nil {
		selection.SelectedSubViewID = *patch.SelectedSubViewID
	}
	c.entries[path] = selection
	return true
}

// Remove forgets the selection for a path.
func (c *SelectionCache) Remove(path string) {
	if path == "" {
		return
	}
	delete(c.entries, path)
}

// RemoveMatching forgets every entry whose path matches the glob pattern
// (same syntax as filepath.Match). Returns the number of removed entries.
func (c *SelectionCache) RemoveMatching(pattern string) int {
	removed := 0
	for path := range c.entries {
		ok, err := filepath.Match(pattern, path)
		if err != nil {
			// Malformed pattern: nothing matches
			return 0
		}
		if ok {
			delete(c.entries, path)
			removed++
		}
	}
	return removed
}

// Clear forgets every entry.
func (c *SelectionCache) Clear() {
	c.entries = make(map[string]ViewSelection)
}

// Paths lists the cached paths in lexical order.
func (c *SelectionCache) Paths() []string {
	paths := make([]string, 0, len(c.entries))
	for path := range c.entries {
		paths = append(paths, path)
	}
	slices.Sort(paths)
	return paths
}

// Size returns the number of cached entries.
func (c *SelectionCache) Size() int {
	return len(c.entries)
}
