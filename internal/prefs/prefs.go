// Package prefs owns the two display preferences shared by every folio view:
// the appearance mode (light, dark or system) and the display mode (party or
// business).
package prefs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidValue is returned when a preference value is outside its enumeration.
var ErrInvalidValue = errors.New("invalid preference value")

// Appearance is the light/dark/system theme selector.
type Appearance string

const (
	Light  Appearance = "light"
	Dark   Appearance = "dark"
	System Appearance = "system"
)

// DisplayMode is the content-tone toggle, independent of appearance.
type DisplayMode string

const (
	Party    DisplayMode = "party"
	Business DisplayMode = "business"
)

// Appearances returns the valid appearance values in menu order.
func Appearances() []Appearance {
	return []Appearance{Light, Dark, System}
}

// DisplayModes returns the valid display modes in menu order.
func DisplayModes() []DisplayMode {
	return []DisplayMode{Party, Business}
}

// Valid reports whether a is one of the enumerated appearances.
func (a Appearance) Valid() bool {
	switch a {
	case Light, Dark, System:
		return true
	}
	return false
}

// Valid reports whether d is one of the enumerated display modes.
func (d DisplayMode) Valid() bool {
	switch d {
	case Party, Business:
		return true
	}
	return false
}

func (a Appearance) String() string  { return string(a) }
func (d DisplayMode) String() string { return string(d) }

// ParseAppearance parses a user-supplied appearance, ignoring case and
// surrounding whitespace.
func ParseAppearance(value string) (Appearance, error) {
	a := Appearance(strings.ToLower(strings.TrimSpace(value)))
	if !a.Valid() {
		return "", fmt.Errorf("%w: appearance %q (expected light, dark or system)", ErrInvalidValue, value)
	}
	return a, nil
}

// ParseDisplayMode parses a user-supplied display mode, ignoring case and
// surrounding whitespace.
func ParseDisplayMode(value string) (DisplayMode, error) {
	d := DisplayMode(strings.ToLower(strings.TrimSpace(value)))
	if !d.Valid() {
		return "", fmt.Errorf("%w: display mode %q (expected party or business)", ErrInvalidValue, value)
	}
	return d, nil
}

// NextAppearance cycles light -> dark -> system -> light.
func NextAppearance(a Appearance) Appearance {
	switch a {
	case Light:
		return Dark
	case Dark:
		return System
	default:
		return Light
	}
}

// NextDisplayMode flips between party and business.
func NextDisplayMode(d DisplayMode) DisplayMode {
	if d == Party {
		return Business
	}
	return Party
}

// Preferences is the raw pair of stored preferences.
type Preferences struct {
	Appearance Appearance  `json:"appearance" yaml:"appearance"`
	Display    DisplayMode `json:"display" yaml:"display"`
}

// DefaultPreferences returns system appearance and business display mode.
func DefaultPreferences() Preferences {
	return Preferences{Appearance: System, Display: Business}
}

// Validate returns an error wrapping ErrInvalidValue if either value is
// outside its enumeration.
func (p Preferences) Validate() error {
	if !p.Appearance.Valid() {
		return fmt.Errorf("%w: appearance %q", ErrInvalidValue, p.Appearance)
	}
	if !p.Display.Valid() {
		return fmt.Errorf("%w: display mode %q", ErrInvalidValue, p.Display)
	}
	return nil
}

// Keys names the storage keys for the two preferences.
type Keys struct {
	Appearance string
	Display    string
}

// DefaultKeys returns the storage keys used when none are configured.
func DefaultKeys() Keys {
	return Keys{Appearance: "vite-ui-theme", Display: "fun-mode"}
}

// KV is the persistent string-keyed storage behind the store.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// Ambient reports the host environment's "prefers dark" signal.
type Ambient interface {
	PrefersDark() bool
}

// AmbientFunc adapts a function to Ambient.
type AmbientFunc func() bool

// PrefersDark calls f.
func (f AmbientFunc) PrefersDark() bool { return f() }

// Fixed returns an Ambient that always reports dark.
func Fixed(dark bool) Ambient {
	return AmbientFunc(func() bool { return dark })
}
