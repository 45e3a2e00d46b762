package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/hopfield/render"
)

// Palette for headings and status lines. lipgloss drops colors when the
// output is not a terminal.
var (
	colorTitle   = lipgloss.Color("#20B9B4")
	colorMuted   = lipgloss.Color("#2C4A54")
	colorSuccess = lipgloss.Color("#2CD7C7")
	colorWarning = lipgloss.Color("#F4D03F")
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorTitle)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning)
)

// sideBySide joins rendered blocks horizontally with a two-column gap.
func sideBySide(blocks ...string) string {
	spaced := make([]string, 0, 2*len(blocks))
	for i, b := range blocks {
		if i > 0 {
			spaced = append(spaced, "  ")
		}
		spaced = append(spaced, b)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, spaced...)
}

// labeled puts name centred above a rendered grid.
func labeled(name, grid string) string {
	return lipgloss.PlaceHorizontal(render.Width(grid), lipgloss.Center, name) + "\n" + strings.TrimRight(grid, "\n")
}
