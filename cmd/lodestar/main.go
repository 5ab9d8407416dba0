package main

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kwren/lodestar/internal/config"
	"github.com/kwren/lodestar/internal/history"
	"github.com/kwren/lodestar/internal/keys"
	"github.com/kwren/lodestar/internal/palette"
	"github.com/kwren/lodestar/internal/theme"
	"github.com/kwren/lodestar/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	targets, err := config.LoadTargets()
	if err != nil {
		log.Fatalf("targets: %v", err)
	}

	registry, err := palette.NewRegistry(ui.BuildCommands(targets))
	if err != nil {
		log.Fatalf("commands: %v", err)
	}

	keyRegistry := keys.NewRegistry()
	overrides := make([]keys.Override, 0, len(cfg.Keybindings))
	for _, o := range cfg.Keybindings {
		overrides = append(overrides, keys.Override{Scope: o.Scope, Action: o.Action, Keys: o.Keys})
	}
	if err := keyRegistry.ApplyOverrides(overrides); err != nil {
		log.Fatalf("keybindings: %v", err)
	}

	themes := theme.NewManager(theme.Variant(cfg.Theme))

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		log.Printf("warn: history disabled: %v", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	p := tea.NewProgram(ui.New(cfg, registry, keyRegistry, themes, store, targets), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
