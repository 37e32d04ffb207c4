package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/iiroan/folio/internal/prefs"
	"github.com/iiroan/folio/internal/ui"
)

var themeCmd = &cobra.Command{
	Use:       "theme [light|dark|system]",
	Aliases:   []string{"appearance"},
	Short:     "Choose the appearance",
	Long:      "Choose light, dark, or system. System follows the terminal and desktop colour scheme.",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(prefs.Light), string(prefs.Dark), string(prefs.System)},
	RunE: func(cmd *cobra.Command, args []string) error {
		current := store.Preferences().Appearance
		choice := current
		if len(args) == 1 {
			a, err := prefs.ParseAppearance(args[0])
			if err != nil {
				return err
			}
			choice = a
		} else {
			if !ui.IsInteractiveTerminal() {
				printSnapshot(store.Get())
				return nil
			}
			selected, err := selectAppearance(current)
			if err != nil {
				return err
			}
			choice = selected
		}

		if err := store.SetAppearanceMode(choice); err != nil {
			return err
		}
		fmt.Println(ui.SuccessStyle.Render("Appearance: " + ui.DescribeSnapshot(store.Get())))
		return nil
	},
}

var modeCmd = &cobra.Command{
	Use:       "mode [party|business]",
	Aliases:   []string{"display"},
	Short:     "Choose the display mode",
	Long:      "Choose business for the formal copy or party for the playful one.",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(prefs.Party), string(prefs.Business)},
	RunE: func(cmd *cobra.Command, args []string) error {
		current := store.Preferences().Display
		choice := current
		if len(args) == 1 {
			d, err := prefs.ParseDisplayMode(args[0])
			if err != nil {
				return err
			}
			choice = d
		} else {
			if !ui.IsInteractiveTerminal() {
				printSnapshot(store.Get())
				return nil
			}
			selected, err := selectDisplayMode(current)
			if err != nil {
				return err
			}
			choice = selected
		}

		if err := store.SetDisplayMode(choice); err != nil {
			return err
		}
		fmt.Println(ui.SuccessStyle.Render("Display mode: " + ui.DescribeSnapshot(store.Get())))
		return nil
	},
}

func selectAppearance(current prefs.Appearance) (prefs.Appearance, error) {
	choice := current
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[prefs.Appearance]().
				Title("Appearance").
				Description("System follows your terminal and desktop.").
				Options(
					huh.NewOption("Light", prefs.Light),
					huh.NewOption("Dark", prefs.Dark),
					huh.NewOption("System", prefs.System),
				).
				Value(&choice),
		),
	).WithTheme(ui.HuhTheme()).WithKeyMap(newHuhBackOnQKeyMap()).Run()
	return choice, err
}

func selectDisplayMode(current prefs.DisplayMode) (prefs.DisplayMode, error) {
	choice := current
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[prefs.DisplayMode]().
				Title("Display mode").
				Description("Business is the formal copy, party the playful one.").
				Options(
					huh.NewOption("Business", prefs.Business),
					huh.NewOption("Party", prefs.Party),
				).
				Value(&choice),
		),
	).WithTheme(ui.HuhTheme()).WithKeyMap(newHuhBackOnQKeyMap()).Run()
	return choice, err
}
