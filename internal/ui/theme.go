package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/iiroan/folio/internal/prefs"
)

// HuhTheme returns the form theme for the active tags. Party mode starts from
// the Catppuccin theme and only recolors the accents; business mode paints
// the base theme entirely from the palette.
func HuhTheme() *huh.Theme {
	if Active.Disabled {
		return huh.ThemeBase()
	}
	if CurrentTags.Display == prefs.Party {
		t := huh.ThemeCatppuccin()
		t.Focused.Title = t.Focused.Title.Foreground(Primary).Bold(true)
		t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(Accent)
		t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(Accent)
		t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(Background).Background(Primary).Bold(true)
		t.Blurred.Title = t.Blurred.Title.Foreground(Muted)
		return t
	}

	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(Border)
	t.Focused.Title = t.Focused.Title.Foreground(Highlight).Bold(true)
	t.Focused.NoteTitle = t.Focused.NoteTitle.Foreground(Highlight).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(Muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(Error)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(Error)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(Accent)
	t.Focused.Option = t.Focused.Option.Foreground(Foreground)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(Accent)
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(Foreground)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(Background).Background(Primary).Bold(true)
	t.Focused.BlurredButton = t.Focused.BlurredButton.Foreground(Foreground).Background(lipgloss.Color(""))
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(Accent)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())

	return t
}
