package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sfm61319/dye/internal/colorspace"
)

// Visual styles for the interactive session.
var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("1"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Swatch renders a block of the given color, or an empty string when
// swatches are disabled.
func Swatch(c colorspace.RGB, enabled bool) string {
	if !enabled {
		return ""
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("      ")
}
