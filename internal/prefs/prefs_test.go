package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAppearance(t *testing.T) {
	cases := map[string]Appearance{
		"light":    Light,
		" Dark ":   Dark,
		"SYSTEM":   System,
		"system\n": System,
	}
	for in, want := range cases {
		got, err := ParseAppearance(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "auto", "night"} {
		_, err := ParseAppearance(bad)
		assert.ErrorIs(t, err, ErrInvalidValue, bad)
	}
}

func TestParseDisplayMode(t *testing.T) {
	got, err := ParseDisplayMode(" Party")
	require.NoError(t, err)
	assert.Equal(t, Party, got)

	_, err = ParseDisplayMode("fun")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestCycling(t *testing.T) {
	assert.Equal(t, Dark, NextAppearance(Light))
	assert.Equal(t, System, NextAppearance(Dark))
	assert.Equal(t, Light, NextAppearance(System))

	assert.Equal(t, Business, NextDisplayMode(Party))
	assert.Equal(t, Party, NextDisplayMode(Business))
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		prefs   Preferences
		ambient Ambient
		want    Appearance
	}{
		{"explicit light ignores dark ambient", Preferences{Light, Business}, Fixed(true), Light},
		{"explicit dark ignores light ambient", Preferences{Dark, Business}, Fixed(false), Dark},
		{"system follows dark ambient", Preferences{System, Party}, Fixed(true), Dark},
		{"system follows light ambient", Preferences{System, Party}, Fixed(false), Light},
		{"system without ambient is light", Preferences{System, Party}, nil, Light},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := Resolve(tt.prefs, tt.ambient)
			assert.Equal(t, tt.want, snap.Resolved)
			assert.Equal(t, tt.prefs, snap.Preferences())
		})
	}
}

func TestResolveTags(t *testing.T) {
	for _, a := range Appearances() {
		for _, d := range DisplayModes() {
			for _, dark := range []bool{true, false} {
				tags := ResolveTags(Resolve(Preferences{a, d}, Fixed(dark)))

				appearanceTags := 0
				for _, tag := range []string{"light", "dark"} {
					if tags.Has(tag) {
						appearanceTags++
					}
				}
				displayTags := 0
				for _, tag := range []string{"party", "business"} {
					if tags.Has(tag) {
						displayTags++
					}
				}
				assert.Equal(t, 1, appearanceTags, "%s/%s/%v", a, d, dark)
				assert.Equal(t, 1, displayTags, "%s/%s/%v", a, d, dark)
				assert.True(t, tags.Has(string(d)))
			}
		}
	}
}

func TestTagsClassName(t *testing.T) {
	tags := ResolveTags(Snapshot{Appearance: System, Display: Business, Resolved: Dark})
	assert.Equal(t, "dark business", tags.ClassName())
	assert.True(t, tags.Dark())
}

func TestPreferencesValidate(t *testing.T) {
	assert.NoError(t, DefaultPreferences().Validate())
	assert.ErrorIs(t, Preferences{Appearance: "x", Display: Party}.Validate(), ErrInvalidValue)
	assert.ErrorIs(t, Preferences{Appearance: Light, Display: ""}.Validate(), ErrInvalidValue)
}
