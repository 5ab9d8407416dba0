package ui

import (
	"github.com/kwren/lodestar/internal/config"
	"github.com/kwren/lodestar/internal/palette"
)

// BuildCommands turns configured navigation targets into palette commands
// and appends the built-in actions. The resulting registry is fixed for the
// process lifetime.
func BuildCommands(targets []config.Target) []palette.Command {
	out := make([]palette.Command, 0, len(targets)+1)
	for _, t := range targets {
		out = append(out, palette.Command{
			Title:    t.Title,
			Target:   t.Route,
			Keywords: t.Keywords,
		})
	}
	out = append(out, palette.Command{
		Title:    "Toggle Theme",
		Action:   palette.ActionToggleTheme,
		Keywords: []string{"dark", "light", "appearance"},
	})
	return out
}
