package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iiroan/folio/internal/prefs"
)

// Palette defines the TUI color palette.
type Palette struct {
	Name       string
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
	Disabled   bool
}

// PaletteNames returns the palette for every tag combination.
func PaletteNames() []string {
	return []string{"business-dark", "business-light", "party-dark", "party-light"}
}

// PaletteFor returns the palette for the active tags.
func PaletteFor(tags prefs.Tags) Palette {
	switch {
	case tags.Display == prefs.Party && tags.Dark():
		return Palette{
			Name:       "party-dark",
			Primary:    lipgloss.Color("#F472B6"),
			Secondary:  lipgloss.Color("#A78BFA"),
			Accent:     lipgloss.Color("#FACC15"),
			Info:       lipgloss.Color("#38BDF8"),
			Success:    lipgloss.Color("#4ADE80"),
			Warning:    lipgloss.Color("#FB923C"),
			Error:      lipgloss.Color("#F87171"),
			Muted:      lipgloss.Color("#A1A1AA"),
			Background: lipgloss.Color("#18061F"),
			Foreground: lipgloss.Color("#FDF4FF"),
			Border:     lipgloss.Color("#7E22CE"),
			Highlight:  lipgloss.Color("#F0ABFC"),
		}
	case tags.Display == prefs.Party:
		return Palette{
			Name:       "party-light",
			Primary:    lipgloss.Color("#DB2777"),
			Secondary:  lipgloss.Color("#7C3AED"),
			Accent:     lipgloss.Color("#CA8A04"),
			Info:       lipgloss.Color("#0284C7"),
			Success:    lipgloss.Color("#16A34A"),
			Warning:    lipgloss.Color("#EA580C"),
			Error:      lipgloss.Color("#DC2626"),
			Muted:      lipgloss.Color("#71717A"),
			Background: lipgloss.Color("#FFF7FB"),
			Foreground: lipgloss.Color("#2E1065"),
			Border:     lipgloss.Color("#F9A8D4"),
			Highlight:  lipgloss.Color("#9D174D"),
		}
	case tags.Dark():
		return Palette{
			Name:       "business-dark",
			Primary:    lipgloss.Color("#22D3EE"),
			Secondary:  lipgloss.Color("#A78BFA"),
			Accent:     lipgloss.Color("#38BDF8"),
			Info:       lipgloss.Color("#60A5FA"),
			Success:    lipgloss.Color("#34D399"),
			Warning:    lipgloss.Color("#FBBF24"),
			Error:      lipgloss.Color("#F87171"),
			Muted:      lipgloss.Color("#94A3B8"),
			Background: lipgloss.Color("#0B1120"),
			Foreground: lipgloss.Color("#E2E8F0"),
			Border:     lipgloss.Color("#334155"),
			Highlight:  lipgloss.Color("#7DD3FC"),
		}
	default:
		return Palette{
			Name:       "business-light",
			Primary:    lipgloss.Color("#0E7490"),
			Secondary:  lipgloss.Color("#6D28D9"),
			Accent:     lipgloss.Color("#0369A1"),
			Info:       lipgloss.Color("#1D4ED8"),
			Success:    lipgloss.Color("#047857"),
			Warning:    lipgloss.Color("#B45309"),
			Error:      lipgloss.Color("#B91C1C"),
			Muted:      lipgloss.Color("#64748B"),
			Background: lipgloss.Color("#F8FAFC"),
			Foreground: lipgloss.Color("#0F172A"),
			Border:     lipgloss.Color("#CBD5E1"),
			Highlight:  lipgloss.Color("#075985"),
		}
	}
}

// DefaultPalette returns the palette for the default preferences on a dark terminal.
func DefaultPalette() Palette {
	return PaletteFor(DefaultTags())
}
