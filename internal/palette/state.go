package palette

// State is the transient palette UI state. It is owned exclusively by the
// palette overlay and never accessed concurrently.
type State struct {
	Open   bool
	Query  string
	Cursor int
}

// Flip toggles visibility on the global shortcut. Opening starts from a
// clean query; closing resets everything so the next open starts fresh.
func (s *State) Flip() {
	if Toggle(s.Open) {
		s.Open = true
		s.Query = ""
		s.Cursor = 0
		return
	}
	s.Close()
}

// Close deactivates the palette on every exit path: escape, the shortcut
// pressed again, or selecting any command.
func (s *State) Close() {
	s.Open = false
	s.Query = ""
	s.Cursor = 0
}

// ClampCursor keeps the cursor inside the current match list.
func (s *State) ClampCursor(n int) {
	if n <= 0 {
		s.Cursor = 0
		return
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
	if s.Cursor >= n {
		s.Cursor = n - 1
	}
}

// MoveCursor shifts the cursor by delta within [0, n).
func (s *State) MoveCursor(delta, n int) {
	s.Cursor += delta
	s.ClampCursor(n)
}
