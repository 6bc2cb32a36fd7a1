package sidebar

import (
	"github.com/julien-sobczak/the-notekit/internal/dsl"
)

// Workspace exposes the host state the sidebar depends on.
type Workspace interface {
	// ActiveFile returns the path of the file currently focused in the
	// workspace, or "" when no file is active.
	ActiveFile() string
}

// ContentSource maps a file path to the sidebar content configured for it.
type ContentSource interface {
	// Content returns the raw content mapped to a file path.
	// ok is false when no mapping matches the path.
	Content(path string) (content string, ok bool)
}

// Renderer turns a raw content string into displayable output.
// The manager does not inspect the result; it only forwards it to the surface.
type Renderer interface {
	Render(content string) (string, error)
}

// Surface is the sidebar area owned by the host that the manager writes into.
type Surface interface {
	// Clear empties the rendered output.
	Clear()
	// ShowContent displays rendered output.
	ShowContent(rendered string)
	// ShowPlaceholder displays a message instead of rendered content.
	ShowPlaceholder(message string)
	// ShowSelectors toggles the dropdown row.
	ShowSelectors(visible bool)
	// UpdateSelectors repopulates the dropdowns to mirror the current selection.
	UpdateSelectors(options []dsl.ViewOption, selectedViewID, selectedSubViewID string)
}

// Notifier surfaces transient user-facing notices.
type Notifier interface {
	Notice(message string)
}

// Warner is the warning-level side channel used for validation failures.
// *logging.Logger satisfies it.
type Warner interface {
	Warnf(format string, v ...any)
}
