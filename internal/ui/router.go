package ui

import "fmt"

// navigate is the navigation capability the palette's Navigate effect is
// applied to. Targets are opaque route strings; an unknown route is an
// integration error surfaced on the status line, never a panic.
func (m *Model) navigate(target string) error {
	for i, v := range m.views {
		if v.route == target {
			m.active = i
			return nil
		}
	}
	return fmt.Errorf("unknown target %q", target)
}

// activeView returns the pane currently on screen.
func (m Model) activeView() view {
	if m.active < 0 || m.active >= len(m.views) {
		return view{}
	}
	return m.views[m.active]
}
