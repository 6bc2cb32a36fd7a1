package sidebar

import (
	"github.com/jinzhu/copier"
	"github.com/julien-sobczak/the-notekit/internal/dsl"
	"github.com/julien-sobczak/the-notekit/internal/helpers"
	"github.com/julien-sobczak/the-notekit/internal/logging"
)

// Placeholders displayed instead of rendered content
const (
	PlaceholderNoContent     = "No content configured for this file"
	PlaceholderLoadingError  = "Error loading content"
	PlaceholderRenderFailure = "Error rendering content"
)

// Manager owns the live view selection of one sidebar instance.
//
// It mediates between file-activation events and content re-parsing, holds
// the current option tree and selected ids, and skips redundant re-render
// work through a content+selection fingerprint. None of its methods panic or
// return errors: the manager runs inside an event-driven UI host where an
// escaped failure would abort unrelated event processing, so every failure
// mode degrades to a placeholder, a warning, or an unchanged state.
//
// All methods must be called from the single UI goroutine. The only
// reentrancy hazard, UpdateContent being triggered again while a previous
// run is still in flight, is guarded by a boolean flag: the late call is
// dropped, not queued, and relies on a subsequent trigger to reconcile.
type Manager struct {
	workspace Workspace
	source    ContentSource
	renderer  Renderer
	surface   Surface
	cache     *SelectionCache
	compiler  *dsl.Compiler
	notifier  Notifier
	warner    Warner

	current           *dsl.ParsedContent
	selectedViewID    string
	selectedSubViewID string

	// Change detection only, not part of the selection model
	lastContentHash string
	lastFilePath    string
	lastRawContent  string

	updating bool

	onCommandsNeedUpdate func()
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithNotifier overrides the destination of transient user notices.
func WithNotifier(notifier Notifier) ManagerOption {
	return func(m *Manager) {
		m.notifier = notifier
	}
}

// WithWarner overrides the warning-level side channel.
func WithWarner(warner Warner) ManagerOption {
	return func(m *Manager) {
		m.warner = warner
	}
}

// OnCommandsNeedUpdate registers the callback invoked when the dynamic
// command list changed shape and the host must re-register its commands.
func OnCommandsNeedUpdate(fn func()) ManagerOption {
	return func(m *Manager) {
		m.onCommandsNeedUpdate = fn
	}
}

// NewManager instantiates a manager for one sidebar instance.
// The cache is injected so independent sidebars can hold independent caches
// and tests can substitute their own.
func NewManager(workspace Workspace, source ContentSource, renderer Renderer, surface Surface, cache *SelectionCache, options ...ManagerOption) *Manager {
	m := &Manager{
		workspace: workspace,
		source:    source,
		renderer:  renderer,
		surface:   surface,
		cache:     cache,
		warner:    logging.CurrentLogger(),
	}
	for _, option := range options {
		option(m)
	}
	m.compiler = dsl.NewCompiler(dsl.WithNotifier(noticeFunc(m.notice)))
	return m
}

// UpdateContent re-reads the content mapped to the currently active file and
// refreshes the sidebar.
//
// Two fast exits avoid redundant work: an unchanged active file with an
// existing parse result, and an unchanged content+selection fingerprint
// (which covers switching to a different file whose mapped content happens
// to be byte-identical).
func (m *Manager) UpdateContent() {
	if m.updating {
		// Drop-on-contention: the next trigger will reconcile.
		return
	}
	m.updating = true
	defer func() {
		m.updating = false
	}()

	defer func() {
		if r := recover(); r != nil {
			m.warner.Warnf("sidebar: update failed: %v\n", r)
			m.surface.ShowPlaceholder(PlaceholderLoadingError)
		}
	}()

	path := m.workspace.ActiveFile()

	if path == m.lastFilePath && m.current != nil {
		return
	}

	content, ok := m.source.Content(path)
	fingerprint := helpers.SelectionFingerprint(content, m.selectedViewID, m.selectedSubViewID)
	if fingerprint == m.lastContentHash && m.current != nil {
		m.lastFilePath = path
		return
	}

	m.surface.Clear()
	m.lastContentHash = fingerprint
	m.lastFilePath = path
	m.lastRawContent = content

	if !ok {
		m.current = nil
		m.surface.ShowSelectors(false)
		m.surface.ShowPlaceholder(PlaceholderNoContent)
		return
	}

	parsed := m.compiler.Parse(content)
	m.current = &parsed

	if !parsed.HasValidDSL {
		// No option tree: display the raw content directly
		m.surface.ShowSelectors(false)
		m.renderContent(content)
		return
	}

	hadEntry := m.cache.Has(path)
	m.RestoreCachedSelections(path)
	m.surface.ShowSelectors(true)
	m.surface.UpdateSelectors(parsed.ViewOptions, m.selectedViewID, m.selectedSubViewID)
	if !hadEntry {
		m.cache.Set(path, ViewSelection{
			SelectedViewID:    m.selectedViewID,
			SelectedSubViewID: m.selectedSubViewID,
		})
	}
	m.renderSelection()
	// Restore may have moved the selection away from the ids hashed above.
	// Refresh the fingerprint so it keeps describing what is displayed now,
	// otherwise the second fast exit could never trigger again.
	m.lastContentHash = helpers.SelectionFingerprint(content, m.selectedViewID, m.selectedSubViewID)
}

// RestoreCachedSelections resets the live selection from the cache entry for
// a path, validating cached ids against the current option tree. Content can
// change between sessions, so a cached id may reference an option that no
// longer exists; invalid ids fall back to the first option at their level.
func (m *Manager) RestoreCachedSelections(path string) {
	if m.current == nil || !m.current.HasValidDSL {
		m.selectedViewID = ""
		m.selectedSubViewID = ""
		return
	}
	options := m.current.ViewOptions

	entry, ok := m.cache.Get(path)
	if !ok {
		if len(options) > 0 {
			m.selectedViewID = options[0].ID
		} else {
			m.selectedViewID = ""
		}
		m.selectedSubViewID = ""
		return
	}

	option, found := m.current.FindOption(entry.SelectedViewID)
	if !found {
		if len(options) > 0 {
			option = options[0]
		} else {
			m.selectedViewID = ""
			m.selectedSubViewID = ""
			return
		}
	}
	m.selectedViewID = option.ID

	if entry.SelectedSubViewID != "" {
		if _, found := option.FindSubOption(entry.SelectedSubViewID); found {
			m.selectedSubViewID = entry.SelectedSubViewID
			return
		}
	}
	if len(option.SubOptions) > 0 {
		m.selectedSubViewID = option.SubOptions[0].ID
	} else {
		m.selectedSubViewID = ""
	}
}

// SwitchToView selects a view option (and optionally one of its sub-options)
// by id, persists the selection for the active file, refreshes the dropdowns,
// and re-renders.
//
// The switch is atomic: when either id does not exist in the current tree, a
// warning is emitted and the state is left completely unchanged. This is the
// single programmatic entry point used by dropdown change handlers and by
// generated commands alike.
func (m *Manager) SwitchToView(viewID string, subViewID string) {
	defer func() {
		if r := recover(); r != nil {
			m.warner.Warnf("sidebar: switch failed: %v\n", r)
		}
	}()

	if m.current == nil || !m.current.HasValidDSL {
		m.warner.Warnf("sidebar: no view options to switch to\n")
		return
	}

	option, found := m.current.FindOption(viewID)
	if !found {
		m.warner.Warnf("sidebar: unknown view %q\n", viewID)
		return
	}
	if subViewID != "" {
		if _, found := option.FindSubOption(subViewID); !found {
			m.warner.Warnf("sidebar: unknown sub-view %q under %q\n", subViewID, viewID)
			return
		}
	}

	topLevelChanged := m.selectedViewID != viewID

	m.selectedViewID = viewID
	m.selectedSubViewID = subViewID
	m.cache.Set(m.lastFilePath, ViewSelection{
		SelectedViewID:    viewID,
		SelectedSubViewID: subViewID,
	})
	m.surface.UpdateSelectors(m.current.ViewOptions, m.selectedViewID, m.selectedSubViewID)
	m.renderSelection()
	m.lastContentHash = helpers.SelectionFingerprint(m.lastRawContent, m.selectedViewID, m.selectedSubViewID)

	// The nested command set is derived from the top-level selection:
	// the host must re-register its commands when it changes.
	if topLevelChanged && m.onCommandsNeedUpdate != nil {
		m.onCommandsNeedUpdate()
	}
}

// CurrentViewOptions returns the top-level options of the current parsed
// content, or nothing when no valid tree is loaded. The result is a deep
// copy: callers cannot reach into the manager's state through it.
func (m *Manager) CurrentViewOptions() []dsl.ViewOption {
	if m.current == nil || !m.current.HasValidDSL {
		return nil
	}
	var options []dsl.ViewOption
	if err := copier.CopyWithOption(&options, m.current.ViewOptions, copier.Option{DeepCopy: true}); err != nil {
		m.warner.Warnf("sidebar: unable to copy view options: %v\n", err)
		return nil
	}
	return options
}

// Selection returns the currently selected view and sub-view ids.
func (m *Manager) Selection() ViewSelection {
	return ViewSelection{
		SelectedViewID:    m.selectedViewID,
		SelectedSubViewID: m.selectedSubViewID,
	}
}

// renderSelection renders the selected option's (or selected sub-option's)
// content onto the surface.
func (m *Manager) renderSelection() {
	option, found := m.current.FindOption(m.selectedViewID)
	if !found {
		return
	}
	content := option.Content
	if m.selectedSubViewID != "" {
		if sub, found := option.FindSubOption(m.selectedSubViewID); found {
			content = sub.Content
		}
	}
	m.renderContent(content)
}

func (m *Manager) renderContent(content string) {
	m.surface.Clear()
	rendered, err := m.renderer.Render(content)
	if err != nil {
		m.warner.Warnf("sidebar: render failed: %v\n", err)
		m.surface.ShowPlaceholder(PlaceholderRenderFailure)
		return
	}
	m.surface.ShowContent(rendered)
}

func (m *Manager) notice(message string) {
	if m.notifier != nil {
		m.notifier.Notice(message)
	}
}

// noticeFunc adapts a function to the dsl.Notifier interface.
type noticeFunc func(message string)

func (f noticeFunc) Notice(message string) {
	f(message)
}
