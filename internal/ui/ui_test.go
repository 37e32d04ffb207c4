package ui

import (
	"io"
	"testing"

	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iiroan/folio/internal/content"
	"github.com/iiroan/folio/internal/prefs"
)

func tags(a prefs.Appearance, d prefs.DisplayMode) prefs.Tags {
	return prefs.Tags{Appearance: a, Display: d}
}

func TestPaletteFor_EveryCombination(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range []prefs.Appearance{prefs.Light, prefs.Dark} {
		for _, d := range prefs.DisplayModes() {
			p := PaletteFor(tags(a, d))
			assert.Equal(t, string(d)+"-"+string(a), p.Name)
			seen[p.Name] = true
		}
	}
	assert.Len(t, seen, len(PaletteNames()))
}

func TestApplyTags(t *testing.T) {
	t.Cleanup(func() { ApplyTags(DefaultTags()) })

	ApplyTags(tags(prefs.Light, prefs.Party))
	assert.Equal(t, "party-light", Active.Name)
	assert.Equal(t, PaletteFor(tags(prefs.Light, prefs.Party)).Primary, Primary)
	assert.Equal(t, tags(prefs.Light, prefs.Party), CurrentTags)
}

func TestApplyPreferences_NoColor(t *testing.T) {
	t.Cleanup(func() { ApplyPreferences(Preferences{}) })

	ApplyPreferences(Preferences{NoColor: true})
	assert.True(t, Active.Disabled)
	assert.NotNil(t, HuhTheme())
}

func TestMarkdownStyle(t *testing.T) {
	assert.Equal(t, styles.NoTTYStyle, MarkdownStyle(tags(prefs.Dark, prefs.Party), true))
	assert.Equal(t, styles.PinkStyle, MarkdownStyle(tags(prefs.Dark, prefs.Party), false))
	assert.Equal(t, styles.DarkStyle, MarkdownStyle(tags(prefs.Dark, prefs.Business), false))
	assert.Equal(t, styles.LightStyle, MarkdownStyle(tags(prefs.Light, prefs.Party), false))
}

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown("# Hello\n\nworld", 40, tags(prefs.Light, prefs.Business), true)
	assert.Contains(t, out, "Hello")
	assert.Contains(t, out, "world")
	assert.Empty(t, RenderMarkdown("  ", 40, tags(prefs.Light, prefs.Business), true))
}

func TestRenderPage(t *testing.T) {
	profile, err := content.Default()
	require.NoError(t, err)

	out := RenderPage(profile.Select(prefs.Party), tags(prefs.Dark, prefs.Party), 80)
	assert.Contains(t, out, profile.Name)
	assert.Contains(t, out, "Projects")
	assert.Contains(t, out, "party")
	assert.Contains(t, out, profile.Projects[0].Name)
}

func TestDescribeSnapshot(t *testing.T) {
	assert.Equal(t, "system (dark) · business",
		DescribeSnapshot(prefs.Snapshot{Appearance: prefs.System, Display: prefs.Business, Resolved: prefs.Dark}))
	assert.Equal(t, "light · party",
		DescribeSnapshot(prefs.Snapshot{Appearance: prefs.Light, Display: prefs.Party, Resolved: prefs.Light}))
}

func TestMenuListHeight(t *testing.T) {
	assert.Equal(t, 8, menuListHeight(0, 8))
	assert.Equal(t, 8, menuListHeight(40, 8))
	assert.Equal(t, 5, menuListHeight(15, 8))
	assert.Equal(t, 3, menuListHeight(6, 8))
}

func TestMenuToggle(t *testing.T) {
	store := prefs.Open(nil, prefs.WithLogger(log.New(io.Discard)), prefs.WithAmbient(prefs.Fixed(true)))
	cfg := defaultMenuConfig()
	WithPreferenceToggles(store)(&cfg)

	m := newMenuModel("folio", "", []MenuItem{{ID: "show", TitleText: "Portfolio", Details: "Read it"}}, cfg)
	assert.True(t, m.keys.toggles)
	assert.Contains(t, m.status(), "system (dark)")

	m.toggle("t")
	assert.Equal(t, prefs.Light, store.Preferences().Appearance)
	m.toggle("m")
	assert.Equal(t, prefs.Party, store.Preferences().Display)

	status := m.status()
	assert.Contains(t, status, "Read it")
	assert.Contains(t, status, "light · party")
}

func TestMenuSelectByNumber(t *testing.T) {
	m := newMenuModel("folio", "", []MenuItem{
		{ID: "show", TitleText: "Portfolio"},
		{ID: "theme", TitleText: "Appearance"},
	}, defaultMenuConfig())

	assert.True(t, m.selectByNumber("2"))
	assert.Equal(t, "theme", m.choice)
	assert.Equal(t, 1, m.list.Index())
	assert.False(t, m.selectByNumber("9"))
	assert.False(t, m.selectByNumber("x"))
}

func TestMenuInitialSelection(t *testing.T) {
	cfg := defaultMenuConfig()
	WithInitialSelectionID(" theme ")(&cfg)
	m := newMenuModel("folio", "", []MenuItem{
		{ID: "show", TitleText: "Portfolio"},
		{ID: "theme", TitleText: "Appearance"},
	}, cfg)

	item, ok := m.list.SelectedItem().(MenuItem)
	require.True(t, ok)
	assert.Equal(t, "theme", item.ID)
}

func TestMenuBackNavigation(t *testing.T) {
	plain := newMenuKeys(defaultMenuConfig())
	assert.Contains(t, plain.Quit.Keys(), "q")
	assert.Empty(t, plain.Back.Keys())

	cfg := defaultMenuConfig()
	WithBackNavigation("Back")(&cfg)
	back := newMenuKeys(cfg)
	assert.Equal(t, []string{"esc", "q"}, back.Back.Keys())
	assert.Equal(t, []string{"ctrl+c"}, back.Quit.Keys())
	assert.Equal(t, "back", back.Back.Help().Desc)
}
