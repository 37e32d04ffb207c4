package cmd

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/iiroan/folio/internal/exec"
	"github.com/iiroan/folio/internal/platform"
	"github.com/iiroan/folio/internal/ui"
)

var openCmd = &cobra.Command{
	Use:   "open [project]",
	Short: "Open a project page in the browser",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := loadProfile()
		if err != nil {
			return err
		}

		var name string
		if len(args) == 1 {
			name = args[0]
		} else {
			if !ui.IsInteractiveTerminal() {
				return errors.New("project name required")
			}
			options := make([]huh.Option[string], 0, len(profile.Projects))
			for _, p := range profile.Projects {
				if p.URL != "" {
					options = append(options, huh.NewOption(p.Name, p.Name))
				}
			}
			if len(options) == 0 {
				return errors.New("no project has a URL")
			}
			err := huh.NewForm(
				huh.NewGroup(
					huh.NewSelect[string]().
						Title("Open project").
						Options(options...).
						Value(&name),
				),
			).WithTheme(ui.HuhTheme()).WithKeyMap(newHuhBackOnQKeyMap()).Run()
			if err != nil {
				return err
			}
		}

		project, ok := profile.FindProject(name)
		if !ok {
			return fmt.Errorf("unknown project %q", name)
		}
		if project.URL == "" {
			return fmt.Errorf("project %q has no URL", project.Name)
		}
		return openURL(cmd.Context(), project.URL)
	},
}

// openURL hands url to the platform opener. It prints the URL instead when no
// opener is available.
func openURL(ctx context.Context, url string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	name, args, err := platform.Opener(runtime.GOOS)
	if err == nil {
		err = exec.RequireCommands(name)
	}
	if err != nil {
		logger.Debug("no browser opener", "error", err)
		fmt.Println(ui.LinkStyle.Render(url))
		return nil
	}

	opts := exec.DefaultOptions()
	opts.Timeout = 0
	opts.Logger = logger
	result := exec.Run(ctx, name, append(args, url), opts)
	if result.Err != nil {
		return fmt.Errorf("opening %s: %w", url, result.Err)
	}
	fmt.Println(ui.MutedStyle.Render("Opened " + url))
	return nil
}
