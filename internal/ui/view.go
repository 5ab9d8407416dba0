package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kwren/lodestar/internal/theme"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	colors := m.themes.Colors()

	header := m.renderHeader(colors)
	status := m.renderStatusBar(colors)
	footer := m.renderFooter(colors)

	chromeHeight := lipgloss.Height(header) + lipgloss.Height(status) + lipgloss.Height(footer)
	bodyHeight := m.height - chromeHeight
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	var body string
	if m.pal.Open {
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, m.renderPalette(colors))
	} else {
		body = m.renderBody(colors, bodyHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, status, footer)
}

func (m Model) renderHeader(colors theme.Palette) string {
	brand := lipgloss.NewStyle().Foreground(colors.Accent).Bold(true).Render(" lodestar ")
	tabOn := lipgloss.NewStyle().Foreground(colors.Base).Background(colors.Accent).Bold(true).Padding(0, 1)
	tabOff := lipgloss.NewStyle().Foreground(colors.Muted).Padding(0, 1)

	parts := make([]string, 0, len(m.views)+1)
	parts = append(parts, brand)
	for i, v := range m.views {
		if i == m.active {
			parts = append(parts, tabOn.Render(v.title))
			continue
		}
		parts = append(parts, tabOff.Render(v.title))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderBody(colors theme.Palette, height int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colors.Border).
		Foreground(colors.Text).
		Padding(0, 2).
		Width(max(10, m.width-2)).
		Height(max(1, height-2))

	v := m.activeView()
	title := lipgloss.NewStyle().Foreground(colors.Focus).Bold(true).Render(v.title)
	content := title + "\n\n" + strings.Join(v.lines, "\n")
	return box.Render(content)
}

func (m Model) renderPalette(colors theme.Palette) string {
	width := min(64, max(32, m.width-8))
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colors.Accent).
		Padding(0, 1).
		Width(width)

	titleStyle := lipgloss.NewStyle().Foreground(colors.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(colors.Text)
	cursorStyle := lipgloss.NewStyle().Foreground(colors.Focus).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(colors.Muted)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Command Palette"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if len(m.matches) == 0 {
		b.WriteString(mutedStyle.Render("No matching commands."))
		if m.suggestion != "" {
			b.WriteString("\n")
			b.WriteString(mutedStyle.Render("Did you mean ") +
				rowStyle.Render(m.suggestion) + mutedStyle.Render("?"))
		}
		return box.Render(b.String())
	}

	end := min(len(m.matches), m.scrollTop+paletteMaxRows)
	for i := m.scrollTop; i < end; i++ {
		c := m.matches[i]
		line := "  " + c.Title
		if i == m.pal.Cursor {
			line = cursorStyle.Render("> " + c.Title)
		} else {
			line = rowStyle.Render(line)
		}
		b.WriteString("\n")
		b.WriteString(line)
	}
	if len(m.matches) > paletteMaxRows {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("…"))
	}
	return box.Render(b.String())
}

func (m Model) renderStatusBar(colors theme.Palette) string {
	style := lipgloss.NewStyle().Foreground(colors.Text).Background(colors.Surface)
	if m.statusErr {
		style = lipgloss.NewStyle().Foreground(colors.Error).Background(colors.Surface).Bold(true)
	}
	return renderBar(style, m.width, " "+m.status)
}

func (m Model) renderFooter(colors theme.Palette) string {
	bg := colors.Mantle
	keyStyle := lipgloss.NewStyle().Foreground(colors.Accent).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(colors.Muted).Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	bindings := m.keys.HelpBindings(m.activeScope())
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = descStyle.Render("No shortcuts")
	}
	return renderBar(lipgloss.NewStyle().Background(bg), m.width, " "+line)
}

// renderBar pads a single line to the full width so bar backgrounds fill
// the row.
func renderBar(style lipgloss.Style, width int, text string) string {
	line := strings.ReplaceAll(text, "\n", " ")
	if w := lipgloss.Width(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}
