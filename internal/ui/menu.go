package ui

import (
	"fmt"
	"io"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/iiroan/folio/internal/prefs"
)

const (
	MenuActionBack = "__back__"
	MenuActionQuit = "__quit__"
)

type MenuOption func(*menuConfig)

type menuConfig struct {
	allowBack bool
	backLabel string
	initialID string
	store     *prefs.Store
}

func defaultMenuConfig() menuConfig {
	return menuConfig{backLabel: "back"}
}

// WithBackNavigation makes q and esc return MenuActionBack instead of quitting.
func WithBackNavigation(label string) MenuOption {
	return func(cfg *menuConfig) {
		cfg.allowBack = true
		if label != "" {
			cfg.backLabel = strings.ToLower(label)
		}
	}
}

// WithInitialSelectionID pre-selects an item by ID when the menu opens.
func WithInitialSelectionID(id string) MenuOption {
	return func(cfg *menuConfig) {
		cfg.initialID = strings.TrimSpace(id)
	}
}

// WithPreferenceToggles shows the store's preferences under the list and
// enables the t (appearance) and m (display mode) keys.
func WithPreferenceToggles(store *prefs.Store) MenuOption {
	return func(cfg *menuConfig) {
		cfg.store = store
	}
}

type menuKeys struct {
	Select     key.Binding
	Jump       key.Binding
	Appearance key.Binding
	Display    key.Binding
	Back       key.Binding
	Quit       key.Binding

	toggles bool
	back    bool
}

func newMenuKeys(cfg menuConfig) menuKeys {
	k := menuKeys{
		Select:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Jump:       key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "jump")),
		Appearance: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Display:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mode")),
		toggles:    cfg.store != nil,
		back:       cfg.allowBack,
	}
	if cfg.allowBack {
		k.Back = key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc/q", cfg.backLabel))
		k.Quit = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))
	} else {
		k.Quit = key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit"))
	}
	return k
}

func (k menuKeys) ShortHelp() []key.Binding {
	bindings := []key.Binding{k.Select, k.Jump}
	if k.toggles {
		bindings = append(bindings, k.Appearance, k.Display)
	}
	if k.back {
		bindings = append(bindings, k.Back)
	}
	return append(bindings, k.Quit)
}

func (k menuKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// MenuItem represents a selectable item in a TUI list.
type MenuItem struct {
	ID        string
	TitleText string
	Details   string
}

// Title returns the menu label.
func (m MenuItem) Title() string { return m.TitleText }

// Description returns the menu details.
func (m MenuItem) Description() string { return m.Details }

// FilterValue returns the filterable text.
func (m MenuItem) FilterValue() string { return m.TitleText }

// itemDelegate draws one numbered line per item. Styles are read from the
// palette when the delegate is built, so it is rebuilt after a toggle.
type itemDelegate struct {
	normal   lipgloss.Style
	selected lipgloss.Style
}

func newItemDelegate() itemDelegate {
	return itemDelegate{
		normal:   lipgloss.NewStyle().Foreground(lipgloss.Color(string(Foreground))),
		selected: lipgloss.NewStyle().Foreground(lipgloss.Color(string(Primary))).Bold(true),
	}
}

func (d itemDelegate) Height() int { return 1 }

func (d itemDelegate) Spacing() int { return 0 }

func (d itemDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d itemDelegate) Render(w io.Writer, m list.Model, index int, li list.Item) {
	item, ok := li.(MenuItem)
	if !ok {
		return
	}
	label := ansi.Truncate(fmt.Sprintf("%d. %s", index+1, item.TitleText), max(8, m.Width()-2), "...")
	if index == m.Index() {
		fmt.Fprint(w, d.selected.Render("> "+label)) //nolint:errcheck
		return
	}
	fmt.Fprint(w, d.normal.Render("  "+label)) //nolint:errcheck
}

func newHelpModel() help.Model {
	h := help.New()
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(Accent))).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(Muted)))
	h.Styles.ShortKey = keyStyle
	h.Styles.ShortDesc = descStyle
	h.Styles.ShortSeparator = descStyle
	return h
}

type menuModel struct {
	list     list.Model
	title    string
	subtitle string
	keys     menuKeys
	help     help.Model
	store    *prefs.Store
	choice   string
	quitting bool
}

func newMenuModel(title string, subtitle string, items []MenuItem, cfg menuConfig) menuModel {
	listItems := make([]list.Item, len(items))
	selected := 0
	for i, item := range items {
		listItems[i] = item
		if cfg.initialID != "" && item.ID == cfg.initialID {
			selected = i
		}
	}

	l := list.New(listItems, newItemDelegate(), terminalWidth(), len(items))
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Select(selected)

	return menuModel{
		list:     l,
		title:    title,
		subtitle: subtitle,
		keys:     newMenuKeys(cfg),
		help:     newHelpModel(),
		store:    cfg.store,
	}
}

// menuListHeight leaves room for the header, the status block and help.
func menuListHeight(termHeight int, items int) int {
	if termHeight <= 0 {
		return items
	}
	return max(3, min(items, termHeight-10))
}

func (m menuModel) Init() tea.Cmd { return nil }

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, menuListHeight(msg.Height, len(m.list.Items())))
		return m, nil
	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, m.keys.Select):
			if item, ok := m.list.SelectedItem().(MenuItem); ok {
				m.choice = item.ID
				return m, tea.Quit
			}
		case key.Matches(msg, m.keys.Jump):
			if m.selectByNumber(msg.String()) {
				return m, tea.Quit
			}
			return m, nil
		case m.store != nil && key.Matches(msg, m.keys.Appearance):
			m.toggle("t")
			return m, nil
		case m.store != nil && key.Matches(msg, m.keys.Display):
			m.toggle("m")
			return m, nil
		case key.Matches(msg, m.keys.Back):
			m.quitting = true
			m.choice = MenuActionBack
			return m, tea.Quit
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.choice = MenuActionQuit
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// toggle advances the appearance ("t") or the display mode ("m"). The store's
// subscribers re-apply the palette, so the list and help styles are rebuilt.
func (m *menuModel) toggle(which string) {
	err := m.store.Update(func(p prefs.Preferences) (prefs.Preferences, error) {
		if which == "t" {
			p.Appearance = prefs.NextAppearance(p.Appearance)
		} else {
			p.Display = prefs.NextDisplayMode(p.Display)
		}
		return p, nil
	})
	if err != nil {
		return
	}
	m.list.SetDelegate(newItemDelegate())
	m.help = newHelpModel()
}

func (m *menuModel) selectByNumber(digit string) bool {
	if len(digit) != 1 || digit[0] < '1' || digit[0] > '9' {
		return false
	}
	idx := int(digit[0] - '1')
	items := m.list.Items()
	if idx >= len(items) {
		return false
	}
	m.list.Select(idx)
	item, ok := items[idx].(MenuItem)
	if ok {
		m.choice = item.ID
	}
	return ok
}

// status describes the highlighted item and, with toggles on, the active
// preferences.
func (m menuModel) status() string {
	var lines []string
	if item, ok := m.list.SelectedItem().(MenuItem); ok && item.Details != "" {
		lines = append(lines, MutedStyle.Render(item.Details))
	}
	if m.store != nil {
		snap := m.store.Get()
		lines = append(lines, DescribeSnapshot(snap)+"  "+strings.Join(ModeBadges(prefs.ResolveTags(snap)), " "))
	}
	return strings.Join(lines, "\n")
}

func (m menuModel) View() tea.View {
	if m.quitting {
		return tea.View{}
	}
	body := m.list.View()
	if s := m.status(); s != "" {
		body += "\n\n" + s
	}
	v := tea.NewView(Frame(m.title, m.subtitle, body, "\n"+m.help.View(m.keys)))
	v.AltScreen = true
	return v
}

// RunMenu displays a TUI list and returns the selected item ID.
func RunMenu(title string, subtitle string, items []MenuItem, options ...MenuOption) (string, error) {
	if !IsInteractiveTerminal() {
		return "", fmt.Errorf("non-interactive terminal")
	}
	cfg := defaultMenuConfig()
	for _, opt := range options {
		opt(&cfg)
	}
	result, err := tea.NewProgram(newMenuModel(title, subtitle, items, cfg)).Run()
	if err != nil {
		return "", err
	}
	if final, ok := result.(menuModel); ok {
		return final.choice, nil
	}
	return "", nil
}
