// Package ui is the bubbletea application around the palette core. It owns
// all side effects: it applies the palette's effect descriptors to the
// router and theme manager, persists the theme, and records history.
package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kwren/lodestar/internal/config"
	"github.com/kwren/lodestar/internal/history"
	"github.com/kwren/lodestar/internal/keys"
	"github.com/kwren/lodestar/internal/palette"
	"github.com/kwren/lodestar/internal/theme"
)

const paletteMaxRows = 10

// view is one navigable pane. Routes are the opaque targets the palette
// emits in Navigate effects.
type view struct {
	title string
	route string
	lines []string
}

// Model is the whole-application bubbletea model.
type Model struct {
	cfg      config.Config
	registry *palette.Registry
	keys     *keys.Registry
	themes   *theme.Manager
	store    *history.Store

	views  []view
	active int

	pal        palette.State
	input      textinput.Model
	matches    []palette.Command
	scrollTop  int
	lastTitle  string
	suggestion string

	width  int
	height int

	status    string
	statusErr bool
}

type lastTitleMsg struct{ title string }

type themeSavedMsg struct{ err error }

type invocationRecordedMsg struct{ err error }

// New assembles the model. store may be nil; the console degrades to a
// history-less palette.
func New(cfg config.Config, reg *palette.Registry, kr *keys.Registry, tm *theme.Manager, store *history.Store, targets []config.Target) Model {
	return Model{
		cfg:      cfg,
		registry: reg,
		keys:     kr,
		themes:   tm,
		store:    store,
		views:    buildViews(targets),
		status:   "Ready",
	}
}

func (m Model) Init() tea.Cmd {
	store := m.store
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		title, err := store.LastTitle(context.Background())
		if err != nil {
			return lastTitleMsg{}
		}
		return lastTitleMsg{title: title}
	}
}

func buildViews(targets []config.Target) []view {
	out := make([]view, 0, len(targets))
	for _, t := range targets {
		out = append(out, view{
			title: t.Title,
			route: t.Route,
			lines: bodyFor(t),
		})
	}
	return out
}

func bodyFor(t config.Target) []string {
	switch t.Route {
	case "dashboard":
		return []string{
			"Fleet at a glance.",
			"",
			"  uptime      99.98%",
			"  open alerts 0",
			"  deploys     3 today",
		}
	case "clusters":
		return []string{
			"Registered clusters.",
			"",
			"  prod-east    12 nodes   healthy",
			"  prod-west     9 nodes   healthy",
			"  staging       3 nodes   degraded",
		}
	case "services":
		return []string{
			"Running services.",
			"",
			"  api-gateway   v2.14.1   8 replicas",
			"  billing       v1.9.0    4 replicas",
			"  notifier      v0.7.3    2 replicas",
		}
	case "logs":
		return []string{
			"Recent events.",
			"",
			"  12:01:14 api-gateway  rollout complete",
			"  11:48:02 staging      node cordoned",
			"  11:30:55 billing      scaled 2 -> 4",
		}
	case "settings":
		return []string{
			"Console preferences.",
			"",
			"  theme and keybindings live in",
			"  ~/.config/lodestar/config.toml",
			"  targets in targets.toml",
		}
	default:
		return []string{t.Title + " view."}
	}
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) setError(msg string) {
	m.status = msg
	m.statusErr = true
}
