// Package theme provides the two-state dark/light theme for lodestar.
// Palettes are Catppuccin Mocha (dark) and Latte (light).
// https://catppuccin.com/palette
package theme

import "github.com/charmbracelet/lipgloss"

// Variant names one of the two theme states. There is no "system" variant;
// the cycle is strictly dark <-> light.
type Variant string

const (
	Dark  Variant = "dark"
	Light Variant = "light"
)

// Palette holds the semantic colors the UI renders with.
type Palette struct {
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Base    lipgloss.Color
	Mantle  lipgloss.Color
	Surface lipgloss.Color
	Accent  lipgloss.Color
	Focus   lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
}

// Mocha is the dark palette.
func Mocha() Palette {
	return Palette{
		Text:    "#cdd6f4",
		Muted:   "#a6adc8",
		Border:  "#585b70",
		Base:    "#1e1e2e",
		Mantle:  "#181825",
		Surface: "#313244",
		Accent:  "#89b4fa",
		Focus:   "#b4befe",
		Success: "#a6e3a1",
		Error:   "#f38ba8",
	}
}

// Latte is the light palette.
func Latte() Palette {
	return Palette{
		Text:    "#4c4f69",
		Muted:   "#6c6f85",
		Border:  "#acb0be",
		Base:    "#eff1f5",
		Mantle:  "#e6e9ef",
		Surface: "#ccd0da",
		Accent:  "#1e66f5",
		Focus:   "#7287fd",
		Success: "#40a02b",
		Error:   "#d20f39",
	}
}

// Manager holds the current variant. It is the theme collaborator the
// palette's side-effect adapter mutates; persistence is the caller's job.
type Manager struct {
	variant Variant
}

// NewManager starts at the given variant; anything unrecognized falls back
// to dark.
func NewManager(v Variant) *Manager {
	m := &Manager{}
	m.Set(v)
	return m
}

func (m *Manager) Current() Variant {
	return m.variant
}

// Set normalizes and applies a variant.
func (m *Manager) Set(v Variant) {
	if v == Light {
		m.variant = Light
		return
	}
	m.variant = Dark
}

// Toggle flips dark <-> light and returns the new variant.
func (m *Manager) Toggle() Variant {
	if m.variant == Dark {
		m.variant = Light
	} else {
		m.variant = Dark
	}
	return m.variant
}

// Colors returns the palette for the current variant.
func (m *Manager) Colors() Palette {
	if m.variant == Light {
		return Latte()
	}
	return Mocha()
}
