// Package vault watches a note vault on disk and republishes file changes
// as debounced, subscriber-friendly events. It replaces polling: hosts
// subscribe once and re-run their sidebar update when a note changes.
package vault

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/julien-sobczak/the-notekit/internal/logging"
)

// Default quiet period before a burst of raw notifications is published
const defaultDebounce = 100 * time.Millisecond

// Default extensions to watch
var defaultExtensions = []string{"md", "markdown", "base"}

// Op describes what happened to a file.
type Op int

const (
	Created Op = iota
	Modified
	Deleted
)

func (op Op) String() string {
	switch op {
	case Created:
		return "created"
	case Modified:
		return "modified"
	case Deleted:
		return "deleted"
	}
	return "unknown"
}

// Event is one observed vault change, published after debouncing.
type Event struct {
	ID   string // Unique event id
	Path string // Path relative to the vault root
	Op   Op
	Time time.Time
}

// Indexer watches a vault directory tree.
//
// Raw filesystem notifications are coalesced per path during a quiet period:
// editors commonly emit several writes for a single save, and subscribers
// only care about the final state.
type Indexer struct {
	root       string
	debounce   time.Duration
	extensions []string
	logger     *logging.Logger

	watcher   *fsnotify.Watcher
	events    chan Event
	done      chan struct{}
	closeOnce sync.Once
}

// IndexerOption configures an Indexer.
type IndexerOption func(*Indexer)

// WithDebounce overrides the quiet period.
func WithDebounce(d time.Duration) IndexerOption {
	return func(i *Indexer) {
		i.debounce = d
	}
}

// WithExtensions overrides the watched file extensions.
func WithExtensions(extensions ...string) IndexerOption {
	return func(i *Indexer) {
		i.extensions = extensions
	}
}

// WithLogger overrides the default logger.
func WithLogger(logger *logging.Logger) IndexerOption {
	return func(i *Indexer) {
		i.logger = logger
	}
}

// NewIndexer instantiates an indexer over a vault root.
func NewIndexer(root string, options ...IndexerOption) (*Indexer, error) {
	i := &Indexer{
		root:       root,
		debounce:   defaultDebounce,
		extensions: defaultExtensions,
		logger:     logging.CurrentLogger(),
		events:     make(chan Event, 64),
		done:       make(chan struct{}),
	}
	for _, option := range options {
		option(i)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	i.watcher = watcher

	if err := i.watchTree(root); err != nil {
		watcher.Close()
		return nil, err
	}

	return i, nil
}

// Events returns the channel on which debounced events are published.
// The channel is closed when the indexer is closed.
func (i *Indexer) Events() <-chan Event {
	return i.events
}

// Start launches the watch loop.
func (i *Indexer) Start() {
	go i.run()
}

// Close stops the watch loop and releases the underlying watcher.
// It is safe to call more than once.
func (i *Indexer) Close() error {
	var err error
	i.closeOnce.Do(func() {
		close(i.done)
		err = i.watcher.Close()
	})
	return err
}

func (i *Indexer) watchTree(root string) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() {
			return nil
		}
		name := filepath.Base(path)
		if path != root && strings.HasPrefix(name, ".") {
			// .git, .obsidian, ...
			return fs.SkipDir
		}
		return i.watcher.Add(path)
	})
}

func (i *Indexer) run() {
	defer close(i.events)

	pending := make(map[string]Op)
	var flush <-chan time.Time

	for {
		select {
		case <-i.done:
			return

		case raw, ok := <-i.watcher.Events:
			if !ok {
				return
			}
			i.handleRaw(raw, pending)
			if len(pending) > 0 {
				flush = time.After(i.debounce)
			}

		case err, ok := <-i.watcher.Errors:
			if !ok {
				return
			}
			i.logger.Warnf("vault: watch error: %v\n", err)

		case now := <-flush:
			flush = nil
			for path, op := range pending {
				event := Event{
					ID:   uuid.NewString(),
					Path: path,
					Op:   op,
					Time: now,
				}
				select {
				case i.events <- event:
				case <-i.done:
					return
				}
			}
			pending = make(map[string]Op)
		}
	}
}

func (i *Indexer) handleRaw(raw fsnotify.Event, pending map[string]Op) {
	// New directories must be watched explicitly
	if raw.Op.Has(fsnotify.Create) {
		if stat, err := os.Lstat(raw.Name); err == nil && stat.IsDir() {
			if err := i.watchTree(raw.Name); err != nil {
				i.logger.Warnf("vault: unable to watch %s: %v\n", raw.Name, err)
			}
			return
		}
	}

	if !i.supportedExtension(raw.Name) {
		return
	}

	relpath, err := filepath.Rel(i.root, raw.Name)
	if err != nil {
		relpath = raw.Name
	}
	relpath = filepath.ToSlash(relpath)

	switch {
	case raw.Op.Has(fsnotify.Create):
		pending[relpath] = Created
	case raw.Op.Has(fsnotify.Write):
		if op, found := pending[relpath]; !found || op != Created {
			pending[relpath] = Modified
		}
	case raw.Op.Has(fsnotify.Remove), raw.Op.Has(fsnotify.Rename):
		pending[relpath] = Deleted
	}
}

func (i *Indexer) supportedExtension(path string) bool {
	ext := strings.TrimPrefix(filepath.Ext(path), ".") // ".md" => "md"
	for _, extension := range i.extensions {
		if strings.EqualFold(extension, ext) { // case-insensitive
			return true
		}
	}
	return false
}
