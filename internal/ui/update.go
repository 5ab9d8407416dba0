package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kwren/lodestar/internal/config"
	"github.com/kwren/lodestar/internal/keys"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case lastTitleMsg:
		m.lastTitle = msg.title
		return m, nil

	case themeSavedMsg:
		if msg.err != nil {
			m.setError("Theme not saved: " + msg.err.Error())
		}
		return m, nil

	case invocationRecordedMsg:
		// History is best effort; a failed write never disturbs the session.
		return m, nil

	case tea.KeyMsg:
		if next, cmd, handled := m.dispatchOverlayKey(msg); handled {
			return next, cmd
		}
		return m.updateView(msg)
	}
	return m, nil
}

// updateView handles keys when no overlay is active.
func (m Model) updateView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	binding := m.keys.Lookup(msg.String(), m.activeScope())
	if binding == nil {
		// Digits jump straight to the nth view.
		if idx, ok := viewIndexForDigit(msg); ok && idx < len(m.views) {
			m.active = idx
		}
		return m, nil
	}
	switch binding.Action {
	case keys.ActionQuit:
		return m, tea.Quit
	case keys.ActionPaletteToggle:
		m.openPalette()
		return m, nil
	case keys.ActionThemeToggle:
		return m, m.toggleTheme()
	case keys.ActionNextView:
		m.active = (m.active + 1) % len(m.views)
		return m, nil
	case keys.ActionPrevView:
		m.active = (m.active - 1 + len(m.views)) % len(m.views)
		return m, nil
	}
	return m, nil
}

func viewIndexForDigit(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '1'), true
}

// toggleTheme flips the theme collaborator and persists the choice in the
// background.
func (m *Model) toggleTheme() tea.Cmd {
	variant := m.themes.Toggle()
	m.cfg.Theme = string(variant)
	m.setStatus("Theme: " + string(variant))
	cfg := m.cfg
	return func() tea.Msg {
		return themeSavedMsg{err: config.Save(cfg)}
	}
}
