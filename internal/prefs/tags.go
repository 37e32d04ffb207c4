package prefs

import "strings"

// Snapshot is the current preference pair plus the resolved appearance.
type Snapshot struct {
	Appearance Appearance  `json:"appearance"`
	Display    DisplayMode `json:"display"`
	Resolved   Appearance  `json:"resolvedAppearance"`
}

// Preferences drops the resolved appearance.
func (s Snapshot) Preferences() Preferences {
	return Preferences{Appearance: s.Appearance, Display: s.Display}
}

// Resolve computes the snapshot for p. The ambient signal is only consulted
// when the appearance is System; a nil ambient counts as light.
func Resolve(p Preferences, ambient Ambient) Snapshot {
	resolved := p.Appearance
	if resolved != Light && resolved != Dark {
		resolved = Light
		if ambient != nil && ambient.PrefersDark() {
			resolved = Dark
		}
	}
	return Snapshot{Appearance: p.Appearance, Display: p.Display, Resolved: resolved}
}

// Tags is the set of active mode tags: one appearance tag and one display tag.
type Tags struct {
	Appearance Appearance
	Display    DisplayMode
}

// ResolveTags maps a snapshot to its active tags. It has no side effects; views
// call it once per render and apply the result themselves.
func ResolveTags(s Snapshot) Tags {
	appearance := s.Resolved
	if appearance != Dark {
		appearance = Light
	}
	display := s.Display
	if !display.Valid() {
		display = Business
	}
	return Tags{Appearance: appearance, Display: display}
}

// List returns the tags as strings, appearance first.
func (t Tags) List() []string {
	return []string{string(t.Appearance), string(t.Display)}
}

// ClassName joins the tags for an HTML class attribute.
func (t Tags) ClassName() string {
	return strings.Join(t.List(), " ")
}

// Has reports whether tag is active.
func (t Tags) Has(tag string) bool {
	return tag == string(t.Appearance) || tag == string(t.Display)
}

// Dark reports whether the dark appearance tag is active.
func (t Tags) Dark() bool {
	return t.Appearance == Dark
}
