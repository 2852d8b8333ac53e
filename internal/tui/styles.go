package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#5FAFFF") // title blue
	colorSecondary = lipgloss.Color("#A8D8B9") // soft green
	colorMuted     = lipgloss.Color("#666666")
	colorText      = lipgloss.Color("#FFFFFF")
	colorDanger    = lipgloss.Color("#E06C75")
	colorBorder    = lipgloss.Color("#444444")
	colorSelected  = lipgloss.Color("#87D787")
)

// Layout styles
var (
	// App-level wrapper
	appStyle = lipgloss.NewStyle().Padding(1, 2)

	// Title bar
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	// Frame around the entries table
	listPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorBorder)

	// Frame around the editor popup
	editorPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)

	paneHeaderStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)
)

var (
	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	helpBarStyle = lipgloss.NewStyle().
			MarginTop(1)
)

// Status messages
var (
	warningStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger)
)

// tableStyles returns the entries table styles. An armed row is drawn in
// the danger color instead of the selection color.
func tableStyles(armed bool) table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		Foreground(colorMuted).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		BorderBottom(true)
	s.Cell = s.Cell.Foreground(colorText)
	s.Selected = lipgloss.NewStyle().Bold(true).Foreground(colorSelected)
	if armed {
		s.Selected = s.Selected.Foreground(colorDanger)
	}
	return s
}

// Constants for layout
const (
	timeColumnWidth       = 19
	minLogColumnWidth     = 10
	editorWidthFraction   = 0.60
	minEditorWidth        = 30
	minEditorHeight       = 5
	defaultTerminalWidth  = 80
	defaultTerminalHeight = 24
)
