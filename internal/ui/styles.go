// Package ui provides Charm-based UI components for folio
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Active is the palette the styles were built from.
	Active Palette

	// Color palette, replaced by ApplyPalette
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Info       lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Border     lipgloss.Color
	Highlight  lipgloss.Color

	// Text styles
	Bold         lipgloss.Style
	Title        lipgloss.Style
	Tagline      lipgloss.Style
	SuccessStyle lipgloss.Style
	WarningStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	MutedStyle   lipgloss.Style
	HintStyle    lipgloss.Style
	SectionStyle lipgloss.Style
	TagStyle     lipgloss.Style
	LinkStyle    lipgloss.Style

	// Status indicators
	StatusSuccess lipgloss.Style
	StatusWarning lipgloss.Style
	StatusError   lipgloss.Style
	StatusPending lipgloss.Style

	// Box styles
	InfoBox    lipgloss.Style
	SuccessBox lipgloss.Style
	ErrorBox   lipgloss.Style

	HeaderStyle lipgloss.Style
)

func init() {
	ApplyPalette(DefaultPalette())
}

func buildStyles() {
	Bold = lipgloss.NewStyle().Bold(true)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Tagline = lipgloss.NewStyle().
		Foreground(Secondary).
		Italic(true)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	WarningStyle = lipgloss.NewStyle().
		Foreground(Warning)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	MutedStyle = lipgloss.NewStyle().
		Foreground(Muted)

	HintStyle = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true)

	SectionStyle = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true).
		MarginTop(1)

	TagStyle = lipgloss.NewStyle().
		Foreground(Background).
		Background(Secondary).
		Padding(0, 1)

	LinkStyle = lipgloss.NewStyle().
		Foreground(Info).
		Underline(true)

	StatusSuccess = lipgloss.NewStyle().
		Foreground(Success).
		SetString("✓")

	StatusWarning = lipgloss.NewStyle().
		Foreground(Warning).
		SetString("!")

	StatusError = lipgloss.NewStyle().
		Foreground(Error).
		SetString("✗")

	StatusPending = lipgloss.NewStyle().
		Foreground(Muted).
		SetString("○")

	InfoBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Secondary).
		Padding(0, 1).
		MarginTop(1).
		MarginBottom(1)

	SuccessBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Success).
		Padding(0, 1).
		MarginTop(1).
		MarginBottom(1)

	ErrorBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Error).
		Padding(0, 1).
		MarginTop(1).
		MarginBottom(1)

	HeaderStyle = lipgloss.NewStyle().
		Foreground(Background).
		Background(Primary).
		Padding(0, 1).
		Bold(true)
}

// PrimaryStyle returns a bold style in the primary color.
func PrimaryStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Primary).Bold(true)
}

// Header renders a screen title bar.
func Header(title string) string {
	width := terminalWidth()
	if width > 80 {
		width = 80
	}
	return HeaderStyle.Width(width).Render(strings.ToUpper(title))
}

// Badge renders a short label, such as a mode tag.
func Badge(label string) string {
	return TagStyle.Render(label)
}
