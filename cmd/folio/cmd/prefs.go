package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iiroan/folio/internal/prefs"
	"github.com/iiroan/folio/internal/ui"
)

var prefsJSON bool

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Inspect and change stored preferences",
}

var prefsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current preferences and the resolved appearance",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := store.Get()
		if prefsJSON {
			return printJSON(snap)
		}
		printSnapshot(snap)
		return nil
	},
}

var prefsSetCmd = &cobra.Command{
	Use:   "set KEY=VALUE...",
	Short: "Set one or both preferences",
	Long: `Set preferences by name. Keys are appearance (or theme) and display
(or mode); the configured storage keys are accepted too.

  folio prefs set appearance=dark display=party`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := parseKeyValuePairs(args)
		if err != nil {
			return err
		}
		keys := store.Keys()
		err = store.Update(func(current prefs.Preferences) (prefs.Preferences, error) {
			return applyAssignments(current, values, keys)
		})
		if err != nil {
			return err
		}
		printSnapshot(store.Get())
		return nil
	},
}

var prefsTagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Print the active mode tags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tags := prefs.ResolveTags(store.Get())
		if prefsJSON {
			return printJSON(tags.List())
		}
		fmt.Println(tags.ClassName())
		return nil
	},
}

var prefsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget stored preferences and return to the defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store.Reset()
		logger.Info("preferences reset", "backend", backend.Name())
		printSnapshot(store.Get())
		return nil
	},
}

func init() {
	prefsCmd.PersistentFlags().BoolVar(&prefsJSON, "json", false, "Print JSON")
	prefsCmd.AddCommand(prefsGetCmd)
	prefsCmd.AddCommand(prefsSetCmd)
	prefsCmd.AddCommand(prefsTagsCmd)
	prefsCmd.AddCommand(prefsResetCmd)
}

type snapshotOutput struct {
	prefs.Snapshot
	Tags []string `json:"tags"`
}

func printJSON(v any) error {
	if s, ok := v.(prefs.Snapshot); ok {
		v = snapshotOutput{Snapshot: s, Tags: prefs.ResolveTags(s).List()}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printSnapshot(s prefs.Snapshot) {
	tags := prefs.ResolveTags(s)
	fmt.Printf("%s %s\n", ui.Bold.Render("appearance:"), s.Appearance)
	if s.Appearance == prefs.System {
		fmt.Printf("%s %s\n", ui.Bold.Render("resolved:  "), s.Resolved)
	}
	fmt.Printf("%s %s\n", ui.Bold.Render("display:   "), s.Display)
	fmt.Printf("%s %s\n", ui.Bold.Render("tags:      "), strings.Join(ui.ModeBadges(tags), " "))
	if !quiet {
		fmt.Println(ui.MutedStyle.Render(formatKeyValuePairs(snapshotValues(s, store.Keys()))))
	}
}
