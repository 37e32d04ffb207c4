package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/iiroan/folio/internal/ambient"
	"github.com/iiroan/folio/internal/config"
	"github.com/iiroan/folio/internal/prefs"
	"github.com/iiroan/folio/internal/storage"
	"github.com/iiroan/folio/internal/ui"
)

var (
	verbose     bool
	quiet       bool
	noColor     bool
	cfgFile     string
	storageKind string
	logger      *log.Logger
	cfg         *config.Config
	backend     storage.Backend
	store       *prefs.Store
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "A portfolio for the terminal and the browser",
	Long: `folio shows a personal portfolio in the terminal or serves it as a web page.

Two preferences shape every view: the appearance (light, dark or system)
and the display mode (business or party). They are stored between runs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadDefault()
		}
		if err == nil {
			err = cfg.Validate()
		}
		if err != nil {
			logger.Warn("could not load config, using defaults", "error", err)
			cfg = config.DefaultConfig()
		}

		applyUISettings()
		setupLogger()
		openStore()
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStore()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runRootTUI()
		}
		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render("Error: "+err.Error()))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: $FOLIO_CONFIG or the user config dir)")
	rootCmd.PersistentFlags().StringVar(&storageKind, "storage", "", "Preference storage backend (file, sqlite, memory)")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(modeCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

var launcherItems = []ui.MenuItem{
	{ID: "show", TitleText: "Portfolio", Details: "Read the profile, projects and timeline in the current mode"},
	{ID: "theme", TitleText: "Appearance", Details: "Choose light, dark, or follow the system"},
	{ID: "mode", TitleText: "Display Mode", Details: "Switch between the business and party copy"},
	{ID: "open", TitleText: "Open Project", Details: "Open a project page in the browser"},
	{ID: "serve", TitleText: "Web View", Details: "Serve the portfolio over HTTP with the same preferences"},
	{ID: "settings", TitleText: "Settings", Details: "Storage backend, defaults, and layout"},
	{ID: "doctor", TitleText: "Doctor", Details: "Check configuration, storage and content"},
	{ID: "exit", TitleText: "Exit", Details: "Close folio"},
}

func runRootTUI() error {
	selected := ""
	for {
		choice, err := ui.RunMenu("FOLIO", ui.DescribeSnapshot(store.Get()), launcherItems,
			ui.WithPreferenceToggles(store),
			ui.WithInitialSelectionID(selected),
		)
		if err != nil {
			return runRootFallback()
		}

		if choice == ui.MenuActionQuit || choice == "exit" || choice == "" {
			return nil
		}
		selected = choice

		if err := runRootChoice(choice); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			return err
		}

		if err := waitForEnter("Press enter to return to the launcher"); err != nil {
			return err
		}
	}
}

func runRootChoice(choice string) error {
	switch choice {
	case "show":
		return showCmd.RunE(showCmd, []string{})
	case "theme":
		return themeCmd.RunE(themeCmd, []string{})
	case "mode":
		return modeCmd.RunE(modeCmd, []string{})
	case "open":
		return openCmd.RunE(openCmd, []string{})
	case "serve":
		return serveCmd.RunE(serveCmd, []string{})
	case "settings":
		return settingsCmd.RunE(settingsCmd, []string{})
	case "doctor":
		return doctorCmd.RunE(doctorCmd, []string{})
	default:
		return nil
	}
}

func runRootFallback() error {
	options := make([]huh.Option[string], 0, len(launcherItems))
	for _, item := range launcherItems {
		options = append(options, huh.NewOption(item.TitleText, item.ID))
	}

	var choice string
	err := huh.NewSelect[string]().
		Title("folio").
		Description(ui.DescribeSnapshot(store.Get())).
		Options(options...).
		Value(&choice).
		WithTheme(ui.HuhTheme()).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}
	return runRootChoice(choice)
}

func waitForEnter(prompt string) error {
	if !ui.IsInteractiveTerminal() {
		return nil
	}
	fmt.Println()
	fmt.Println(ui.HintStyle.Render(prompt))
	reader := bufio.NewReader(os.Stdin)
	_, err := reader.ReadString('\n')
	return err
}

// openStore wires the configured backend into the preference store. A backend
// that cannot be opened is replaced by memory so changes still last for the
// session.
func openStore() {
	kind := cfg.Storage.Backend
	if storageKind != "" {
		kind = storageKind
	}
	target := *cfg
	target.Storage.Backend = kind

	var err error
	path, pathErr := target.StoragePath()
	if pathErr != nil && kind != storage.KindMemory {
		err = pathErr
	} else {
		backend, err = storage.Open(kind, path)
	}
	if err != nil {
		logger.Warn("preference storage unavailable, changes will last for this session only", "backend", kind, "error", err)
		backend = storage.NewMemory()
	}
	logger.Debug("preference storage", "backend", backend.Name(), "path", path)

	detector := ambient.NewDetector(ambient.WithLogger(logger))
	store = prefs.Open(backend,
		prefs.WithKeys(cfg.Keys()),
		prefs.WithDefaults(cfg.Defaults()),
		prefs.WithAmbient(detector),
		prefs.WithLogger(logger),
	)

	applySnapshot(store.Get())
	store.Subscribe(applySnapshot)
}

func closeStore() error {
	if backend == nil {
		return nil
	}
	err := backend.Close()
	backend = nil
	return err
}

// applySnapshot re-applies the active tags to every terminal style.
func applySnapshot(s prefs.Snapshot) {
	ui.ApplyTags(prefs.ResolveTags(s))
	setupLogger()
	logger.Debug("preferences applied", "appearance", s.Appearance, "resolved", s.Resolved, "display", s.Display)
}

func applyUISettings() {
	p := ui.Preferences{NoColor: noColor || os.Getenv("NO_COLOR") != ""}
	if cfg != nil {
		p.Dense = cfg.UI.Dense
		p.NoColor = p.NoColor || cfg.UI.NoColor
	}
	ui.ApplyPreferences(p)
}

func setupLogger() {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	if quiet {
		level = log.WarnLevel
	}

	styles := log.DefaultStyles()
	if !ui.CurrentPreferences.NoColor && !noColor {
		styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
			SetString("DEBUG").
			Foreground(ui.Muted).
			Bold(true)
		styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
			SetString("INFO").
			Foreground(ui.Primary).
			Bold(true)
		styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
			SetString("WARN").
			Foreground(ui.Warning).
			Bold(true)
		styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
			SetString("ERROR").
			Foreground(ui.Error).
			Bold(true)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: verbose,
		TimeFormat:      time.Kitchen,
		Level:           level,
	})
	logger.SetStyles(styles)
}
