package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/vigiamar/anp-sightings/internal/models"
)

var (
	// Color palette
	colorPrimary = lipgloss.Color("#00BFFF") // Deep sky blue
	colorDanger  = lipgloss.Color("#FF6B6B") // Red for infractions
	colorWarning = lipgloss.Color("#FFD93D") // Yellow
	colorSuccess = lipgloss.Color("#6BCF7F") // Green
	colorMuted   = lipgloss.Color("#6C757D") // Gray
	colorBorder  = lipgloss.Color("#4A90E2") // Border blue

	// Title styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// Content styles
	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	// Help text style
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	// Section header styles
	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				Padding(0, 1).
				MarginTop(1)

	formBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)
)

// statusColors maps the catalog color keys to terminal colors, mirroring
// the map marker palette used on the printed charts.
var statusColors = map[string]lipgloss.Color{
	"blanco":      lipgloss.Color("#FFFFFF"),
	"verde":       lipgloss.Color("#6BCF7F"),
	"azul_marino": lipgloss.Color("#1E3A8A"),
	"amarillo":    lipgloss.Color("#FFD93D"),
	"anaranjado":  lipgloss.Color("#FF8C42"),
	"rojo":        lipgloss.Color("#FF6B6B"),
	"outside_anp": lipgloss.Color("#6C757D"),
}

// statusStyle returns a foreground style for a status category id.
func statusStyle(statusID string) lipgloss.Style {
	colorKey := models.OutsideANPCategory.ColorKey
	if cat, ok := models.StatusCategoriesInsideANP[statusID]; ok {
		colorKey = cat.ColorKey
	}
	if c, ok := statusColors[colorKey]; ok {
		return lipgloss.NewStyle().Foreground(c)
	}
	return valueStyle
}
