package ui

// Shared dispatch table: single source of truth for overlay priority.
// Update, the footer, and scope resolution all read this table, so adding a
// new overlay means adding one entry in the right priority position.

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kwren/lodestar/internal/keys"
)

// overlayEntry defines one level in the overlay precedence chain. Guard
// returns true when the overlay is active; Handler dispatches the key.
type overlayEntry struct {
	name    string
	guard   func(m Model) bool
	scope   func(m Model) string
	handler func(m Model, msg tea.KeyMsg) (tea.Model, tea.Cmd)
}

// overlayPrecedence returns the overlay priority table, ordered highest to
// lowest. The first matching guard wins.
func overlayPrecedence() []overlayEntry {
	return []overlayEntry{
		{
			name:    "palette",
			guard:   func(m Model) bool { return m.pal.Open },
			scope:   func(m Model) string { return keys.ScopePalette },
			handler: func(m Model, msg tea.KeyMsg) (tea.Model, tea.Cmd) { return m.updatePalette(msg) },
		},
	}
}

// dispatchOverlayKey finds the first active overlay and dispatches the key.
// Returns handled=false when no overlay is active and the caller should
// continue with view-level dispatch.
func (m Model) dispatchOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	for _, entry := range overlayPrecedence() {
		if entry.guard(m) {
			next, cmd := entry.handler(m, msg)
			return next, cmd, true
		}
	}
	return m, nil, false
}

// activeScope resolves the current keybinding scope: the highest-priority
// active overlay, or the view scope.
func (m Model) activeScope() string {
	for _, entry := range overlayPrecedence() {
		if entry.guard(m) {
			return entry.scope(m)
		}
	}
	return keys.ScopeView
}
