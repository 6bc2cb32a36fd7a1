package sidebar

import (
	"fmt"

	"github.com/julien-sobczak/the-notekit/internal/helpers"
)

// ViewCommand describes one user-invokable "switch to view" entry, ready for
// registration with the host's command palette. Commands are a disposable
// projection recomputed on demand; they are never persisted.
type ViewCommand struct {
	ID        string
	Name      string
	ViewID    string
	SubViewID string
	// Index is the 1-based position across the whole combined list.
	Index int
}

// AvailableCommands derives the flat command list from the current tree and
// the current selection.
//
// The order is fixed: one command per top-level option, then one command per
// sub-option of the option that is currently selected. The nested set is
// relative to the selection, so switching the top-level view changes which
// nested commands exist; hosts must re-enumerate after any selection change
// (see OnCommandsNeedUpdate).
func (m *Manager) AvailableCommands() []ViewCommand {
	if m.current == nil || !m.current.HasValidDSL {
		return nil
	}

	var commands []ViewCommand
	index := 0

	for i, option := range m.current.ViewOptions {
		index++
		commands = append(commands, ViewCommand{
			ID:     fmt.Sprintf("switch-to-main-%d", i+1),
			Name:   fmt.Sprintf("Switch to Main %d", i+1),
			ViewID: option.ID,
			Index:  index,
		})
	}

	selected, found := m.current.FindOption(m.selectedViewID)
	if !found {
		return commands
	}
	for i, sub := range selected.SubOptions {
		index++
		commands = append(commands, ViewCommand{
			ID:        fmt.Sprintf("switch-to-nested-%d", i+1),
			Name:      fmt.Sprintf("Switch to Nested %d", i+1),
			ViewID:    selected.ID,
			SubViewID: sub.ID,
			Index:     index,
		})
	}

	return commands
}

// CommandsFingerprint digests a raw content string together with a command
// list. Hosts re-register commands with the platform only when this value
// changes, to avoid thrashing hotkey bindings.
func CommandsFingerprint(content string, commands []ViewCommand) string {
	triples := make([][3]string, 0, len(commands))
	for _, command := range commands {
		triples = append(triples, [3]string{command.ID, command.ViewID, command.SubViewID})
	}
	return helpers.CommandsFingerprint(helpers.Hash([]byte(content)), triples)
}
