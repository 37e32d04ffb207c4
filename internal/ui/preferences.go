package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iiroan/folio/internal/prefs"
)

// Preferences controls runtime UI settings.
type Preferences struct {
	Dense   bool
	NoColor bool
}

// CurrentPreferences holds the active UI preferences.
var CurrentPreferences = Preferences{
	Dense:   false,
	NoColor: false,
}

// CurrentTags holds the tags the styles were last built from.
var CurrentTags = DefaultTags()

// DefaultTags returns the tags of the default preferences on a dark terminal.
func DefaultTags() prefs.Tags {
	return prefs.ResolveTags(prefs.Resolve(prefs.DefaultPreferences(), prefs.Fixed(true)))
}

// ApplyPreferences updates UI preferences and rebuilds the styles for the
// current tags.
func ApplyPreferences(p Preferences) {
	CurrentPreferences = p
	ApplyTags(CurrentTags)
}

// ApplyTags switches the palette to match the active mode tags.
func ApplyTags(tags prefs.Tags) {
	CurrentTags = tags
	palette := PaletteFor(tags)
	palette.Disabled = CurrentPreferences.NoColor
	ApplyPalette(palette)
}

// ApplyPalette installs palette as the active colors and rebuilds styles.
func ApplyPalette(p Palette) {
	if p.Disabled {
		lipgloss.SetColorProfile(termenv.Ascii)
	} else {
		lipgloss.SetColorProfile(termenv.EnvColorProfile())
	}
	lipgloss.SetHasDarkBackground(CurrentTags.Dark())

	Active = p
	Primary = p.Primary
	Secondary = p.Secondary
	Accent = p.Accent
	Info = p.Info
	Success = p.Success
	Warning = p.Warning
	Error = p.Error
	Muted = p.Muted
	Background = p.Background
	Foreground = p.Foreground
	Border = p.Border
	Highlight = p.Highlight

	buildStyles()
}
