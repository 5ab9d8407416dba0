package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kwren/lodestar/internal/keys"
	"github.com/kwren/lodestar/internal/palette"
)

// openPalette flips palette visibility on the shortcut. Opening rebuilds
// matches from an empty query and preselects the most recent command.
func (m *Model) openPalette() {
	m.pal.Flip()
	if !m.pal.Open {
		m.resetPaletteInput()
		return
	}
	inp := textinput.New()
	inp.Placeholder = "Search commands"
	inp.Prompt = "> "
	inp.Focus()
	m.input = inp
	m.rebuildMatches()
	m.pal.Cursor = m.preselectCursor()
	m.ensureCursorVisible()
}

func (m *Model) closePalette() {
	m.pal.Close()
	m.resetPaletteInput()
}

func (m *Model) resetPaletteInput() {
	m.input.Reset()
	m.input.Blur()
	m.matches = nil
	m.scrollTop = 0
	m.suggestion = ""
}

// updatePalette handles keys while the overlay is active. Palette-scope
// bindings win; the global shortcut still toggles the palette shut;
// everything else is text input for the query.
func (m Model) updatePalette(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyName := msg.String()
	if keyName == "ctrl+c" {
		return m, tea.Quit
	}

	if b := m.keys.LookupIn(keyName, keys.ScopePalette); b != nil {
		switch b.Action {
		case keys.ActionClose:
			m.closePalette()
			return m, nil
		case keys.ActionSelect:
			return m.selectCurrent()
		case keys.ActionNavigate:
			m.pal.MoveCursor(verticalDelta(keyName), len(m.matches))
			m.ensureCursorVisible()
			return m, nil
		}
	}

	if b := m.keys.Lookup(keyName, keys.ScopeGlobal); b != nil && b.Action == keys.ActionPaletteToggle {
		m.closePalette()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.pal.Query {
		m.pal.Query = m.input.Value()
		m.rebuildMatches()
		m.pal.ClampCursor(len(m.matches))
		m.ensureCursorVisible()
	}
	return m, cmd
}

// selectCurrent applies the side effect of the command under the cursor.
// Selection is terminal for the interaction: the palette closes before the
// effect is applied, theme toggles included.
func (m Model) selectCurrent() (tea.Model, tea.Cmd) {
	if len(m.matches) == 0 {
		m.setError("No matching command.")
		return m, nil
	}
	idx := m.pal.Cursor
	if idx < 0 || idx >= len(m.matches) {
		idx = 0
	}
	chosen := m.matches[idx]
	effect := m.registry.Select(chosen)
	m.closePalette()

	var cmds []tea.Cmd
	switch e := effect.(type) {
	case palette.Navigate:
		if err := m.navigate(e.Target); err != nil {
			m.setError(err.Error())
			return m, nil
		}
		m.setStatus("Switched to " + chosen.Title)
	case palette.ToggleTheme:
		cmds = append(cmds, m.toggleTheme())
	}
	m.lastTitle = chosen.Title
	cmds = append(cmds, m.recordInvocation(chosen.Title))
	return m, tea.Batch(cmds...)
}

func (m *Model) rebuildMatches() {
	m.matches = m.registry.Match(m.pal.Query)
	m.suggestion = ""
	if len(m.matches) == 0 {
		if near, ok := m.registry.Suggest(m.pal.Query); ok {
			m.suggestion = near.Title
		}
	}
}

// preselectCursor starts the cursor on the most recently invoked command
// when it is present in the current matches.
func (m Model) preselectCursor() int {
	if m.lastTitle == "" {
		return 0
	}
	for i, c := range m.matches {
		if c.Title == m.lastTitle {
			return i
		}
	}
	return 0
}

func (m *Model) ensureCursorVisible() {
	limit := paletteMaxRows
	if len(m.matches) <= limit {
		m.scrollTop = 0
		return
	}
	if m.pal.Cursor < m.scrollTop {
		m.scrollTop = m.pal.Cursor
	}
	if m.pal.Cursor > m.scrollTop+limit-1 {
		m.scrollTop = m.pal.Cursor - limit + 1
	}
	maxTop := len(m.matches) - limit
	if m.scrollTop > maxTop {
		m.scrollTop = maxTop
	}
	if m.scrollTop < 0 {
		m.scrollTop = 0
	}
}

func (m Model) recordInvocation(title string) tea.Cmd {
	store := m.store
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		return invocationRecordedMsg{err: store.Record(context.Background(), title)}
	}
}

func verticalDelta(keyName string) int {
	switch keyName {
	case "up", "ctrl+p":
		return -1
	case "down", "ctrl+n":
		return 1
	}
	return 0
}
