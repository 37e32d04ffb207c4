package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/iiroan/folio/internal/config"
	"github.com/iiroan/folio/internal/prefs"
	"github.com/iiroan/folio/internal/storage"
	"github.com/iiroan/folio/internal/ui"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Configure storage, default preferences, and layout",
	RunE:  runSettings,
}

// settingsDraft is the editable copy of the config shown in the forms.
type settingsDraft struct {
	dense             bool
	noColor           bool
	backend           string
	storagePath       string
	appearanceKey     string
	displayKey        string
	defaultAppearance prefs.Appearance
	defaultDisplay    prefs.DisplayMode
	addr              string
	contentPath       string
}

func newSettingsDraft(c *config.Config) settingsDraft {
	defaults := c.Defaults()
	keys := c.Keys()
	backend := strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	if backend == "" {
		backend = storage.KindFile
	}
	return settingsDraft{
		dense:             c.UI.Dense,
		noColor:           c.UI.NoColor,
		backend:           backend,
		storagePath:       c.Storage.Path,
		appearanceKey:     keys.Appearance,
		displayKey:        keys.Display,
		defaultAppearance: defaults.Appearance,
		defaultDisplay:    defaults.Display,
		addr:              c.Server.Addr,
		contentPath:       c.Content.Path,
	}
}

// apply returns a copy of c carrying the draft, validated.
func (d settingsDraft) apply(c *config.Config) (*config.Config, error) {
	next := *c
	next.UI = config.UIConfig{Dense: d.dense, NoColor: d.noColor}
	next.Storage = config.StorageConfig{
		Backend: d.backend,
		Path:    strings.TrimSpace(d.storagePath),
	}
	next.Preferences = config.PreferencesConfig{
		AppearanceKey:     strings.TrimSpace(d.appearanceKey),
		DisplayKey:        strings.TrimSpace(d.displayKey),
		DefaultAppearance: string(d.defaultAppearance),
		DefaultDisplay:    string(d.defaultDisplay),
	}
	next.Server.Addr = strings.TrimSpace(d.addr)
	next.Content.Path = strings.TrimSpace(d.contentPath)
	if err := next.Validate(); err != nil {
		return nil, err
	}
	return &next, nil
}

func requireValue(name string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

func runSettings(cmd *cobra.Command, args []string) error {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	draft := newSettingsDraft(cfg)
	changed := false

	backendOptions := make([]huh.Option[string], 0, len(storage.Kinds()))
	for _, kind := range storage.Kinds() {
		backendOptions = append(backendOptions, huh.NewOption(kind, kind))
	}

	ui.StartScreen("SETTINGS", "Select a settings section to edit")

	for {
		choice, err := ui.RunMenu("SETTINGS", "Select a settings section", []ui.MenuItem{
			{ID: "display", TitleText: "Display", Details: "Layout density and color output"},
			{ID: "storage", TitleText: "Storage", Details: "Where preferences are kept between runs"},
			{ID: "defaults", TitleText: "Default Preferences", Details: "Storage keys and the values used when nothing is stored"},
			{ID: "web", TitleText: "Web View", Details: "Listen address and content document"},
			{ID: "save", TitleText: "Save & Exit", Details: "Write updates to folio.yaml"},
			{ID: "exit", TitleText: "Exit", Details: "Leave without saving"},
		}, ui.WithBackNavigation("Back"))
		if err != nil {
			return err
		}

		var form *huh.Form
		switch choice {
		case ui.MenuActionBack, ui.MenuActionQuit, "exit":
			return nil
		case "save":
			if !changed {
				return nil
			}
			return saveSettings(draft)
		case "display":
			form = huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title("Dense Layout").
						Description("Reduce vertical spacing in the TUI").
						Value(&draft.dense),
					huh.NewConfirm().
						Title("Disable Colors").
						Description("Use monochrome output").
						Value(&draft.noColor),
				),
			)
		case "storage":
			form = huh.NewForm(
				huh.NewGroup(
					huh.NewSelect[string]().
						Title("Backend").
						Description("file keeps a yaml map, sqlite a small database, memory nothing").
						Options(backendOptions...).
						Value(&draft.backend),
					huh.NewInput().
						Title("Path").
						Description("Leave empty to use the config directory").
						Value(&draft.storagePath),
				),
			)
		case "defaults":
			form = huh.NewForm(
				huh.NewGroup(
					huh.NewSelect[prefs.Appearance]().
						Title("Default Appearance").
						Options(
							huh.NewOption("System", prefs.System),
							huh.NewOption("Light", prefs.Light),
							huh.NewOption("Dark", prefs.Dark),
						).
						Value(&draft.defaultAppearance),
					huh.NewSelect[prefs.DisplayMode]().
						Title("Default Display Mode").
						Options(
							huh.NewOption("Business", prefs.Business),
							huh.NewOption("Party", prefs.Party),
						).
						Value(&draft.defaultDisplay),
					huh.NewInput().
						Title("Appearance Key").
						Value(&draft.appearanceKey).
						Validate(requireValue("appearance key")),
					huh.NewInput().
						Title("Display Key").
						Value(&draft.displayKey).
						Validate(requireValue("display key")),
				),
			)
		case "web":
			form = huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Listen Address").
						Placeholder("127.0.0.1:8080").
						Value(&draft.addr).
						Validate(requireValue("listen address")),
					huh.NewInput().
						Title("Content File").
						Description("A content yaml document; empty uses the built-in profile").
						Value(&draft.contentPath),
				),
			)
		default:
			return nil
		}

		if err := form.WithTheme(ui.HuhTheme()).WithKeyMap(newHuhBackOnQKeyMap()).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			return err
		}
		changed = true
	}
}

func saveSettings(draft settingsDraft) error {
	next, err := draft.apply(cfg)
	if err != nil {
		return err
	}

	path := cfgFile
	if path == "" {
		var err error
		path, err = config.GetConfigPath()
		if err != nil {
			return err
		}
	}

	if err := next.Save(path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	cfg = next

	ui.ApplyPreferences(ui.Preferences{
		Dense:   cfg.UI.Dense,
		NoColor: cfg.UI.NoColor || noColor,
	})

	fmt.Println()
	fmt.Println(ui.SuccessBox.Render("Settings saved to " + path + "\nStorage and default changes apply on the next run."))
	return nil
}
