package palette

import (
	"fmt"
	"strings"
)

// DuplicateTitleError reports two registry entries sharing a title.
type DuplicateTitleError struct {
	Title string
}

func (e *DuplicateTitleError) Error() string {
	return fmt.Sprintf("duplicate command title %q", e.Title)
}

// Registry holds the ordered, immutable set of palette commands for the
// process lifetime.
type Registry struct {
	commands []Command
}

// NewRegistry validates and stores the command list. Titles must be
// non-empty and unique (case-insensitive); a collision fails construction
// with DuplicateTitleError rather than deduping silently.
func NewRegistry(cmds []Command) (*Registry, error) {
	seen := make(map[string]bool, len(cmds))
	for i, c := range cmds {
		title := strings.TrimSpace(c.Title)
		if title == "" {
			return nil, fmt.Errorf("command[%d]: title is required", i)
		}
		key := strings.ToLower(title)
		if seen[key] {
			return nil, &DuplicateTitleError{Title: c.Title}
		}
		seen[key] = true
	}
	r := &Registry{commands: make([]Command, len(cmds))}
	copy(r.commands, cmds)
	return r, nil
}

// All returns every command in registry order.
func (r *Registry) All() []Command {
	if r == nil {
		return nil
	}
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.commands)
}

// Match returns the commands whose title+keywords contain the query as a
// case-insensitive substring, preserving registry order. The query is
// whitespace-trimmed; an empty query returns the full registry. Callers may
// truncate for display.
func (r *Registry) Match(query string) []Command {
	if r == nil {
		return nil
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return r.All()
	}
	out := make([]Command, 0, len(r.commands))
	for _, c := range r.commands {
		if strings.Contains(haystack(c), q) {
			out = append(out, c)
		}
	}
	return out
}

// Select describes the effect of invoking a command. Total over all
// commands: anything that is not an inline action navigates to its target.
func (r *Registry) Select(c Command) SideEffect {
	if c.Action == ActionToggleTheme {
		return ToggleTheme{}
	}
	return Navigate{Target: c.Target}
}

func haystack(c Command) string {
	parts := make([]string, 0, 1+len(c.Keywords))
	parts = append(parts, c.Title)
	parts = append(parts, c.Keywords...)
	return strings.ToLower(strings.Join(parts, " "))
}
