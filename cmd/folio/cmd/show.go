package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iiroan/folio/internal/content"
	"github.com/iiroan/folio/internal/prefs"
	"github.com/iiroan/folio/internal/ui"
)

var showWidth int

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the portfolio in the current mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := loadProfile()
		if err != nil {
			return err
		}

		snap := store.Get()
		tags := prefs.ResolveTags(snap)
		if ui.IsInteractiveTerminal() {
			ui.ClearScreen()
		}
		fmt.Println(ui.RenderPage(profile.Select(snap.Display), tags, showWidth))
		return nil
	},
}

func init() {
	showCmd.Flags().IntVarP(&showWidth, "width", "w", 0, "Wrap width (default: terminal width)")
}

func loadProfile() (*content.Profile, error) {
	path := ""
	if cfg != nil {
		path = cfg.Content.Path
	}
	profile, err := content.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	logger.Debug("content loaded", "name", profile.Name, "projects", len(profile.Projects), "path", path)
	return profile, nil
}
