// Package palette implements the command registry and matcher behind the
// lodestar command palette. The package is pure: it holds the static set of
// invokable commands, filters them by free-text queries, and describes the
// effect of selecting a command without performing it. The UI layer owns all
// I/O (navigation, theme mutation, persistence).
package palette

// Action tags a command that performs an inline action instead of
// navigating to a target.
type Action string

const (
	// ActionNone marks a navigation command.
	ActionNone Action = ""
	// ActionToggleTheme flips the dark/light theme.
	ActionToggleTheme Action = "toggle-theme"
)

// Command is one invokable entry in the palette: a navigation target or an
// inline action. Keywords participate in matching but are never displayed.
type Command struct {
	Title    string
	Target   string
	Action   Action
	Keywords []string
}

// SideEffect describes an effect the caller should perform. Selecting a
// command never executes anything inside this package.
type SideEffect interface {
	sideEffect()
}

// Navigate asks the caller to switch to an opaque target route.
type Navigate struct {
	Target string
}

// ToggleTheme asks the caller to flip the current theme variant.
type ToggleTheme struct{}

func (Navigate) sideEffect()    {}
func (ToggleTheme) sideEffect() {}

// Toggle returns the negation of the current visibility state. Pure; the UI
// uses it to flip the palette on the global shortcut.
func Toggle(current bool) bool {
	return !current
}
