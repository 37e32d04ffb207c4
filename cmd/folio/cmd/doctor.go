package cmd

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/iiroan/folio/internal/ambient"
	"github.com/iiroan/folio/internal/ci"
	"github.com/iiroan/folio/internal/config"
	"github.com/iiroan/folio/internal/ui"
	"github.com/iiroan/folio/internal/validate"
)

var doctorCmd = &cobra.Command{
	Use:     "doctor",
	Aliases: []string{"validate"},
	Short:   "Check configuration, storage and content",
	Long: `Check that folio can run as configured:
  - Configuration (folio.yaml)
  - Preference storage (writes and removes a probe value)
  - Portfolio content
  - Colour scheme signal used by the system appearance
  - Browser opener

In GitHub Actions, output is grouped and failures are annotated.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

type doctorCheck struct {
	title string
	run   func(ctx context.Context) validate.Result
}

func runDoctor(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ciEnv := ci.Detect()

	configPath := cfgFile
	if configPath == "" {
		var err error
		configPath, err = config.GetConfigPath()
		if err != nil {
			return err
		}
	}
	kind := cfg.Storage.Backend
	if storageKind != "" {
		kind = storageKind
	}
	target := *cfg
	target.Storage.Backend = kind
	storagePath, _ := target.StoragePath()

	checks := []doctorCheck{
		{"Configuration", func(ctx context.Context) validate.Result { return validate.Config(ctx, configPath) }},
		{"Storage", func(ctx context.Context) validate.Result { return validate.Storage(ctx, kind, storagePath) }},
		{"Content", func(ctx context.Context) validate.Result { return validate.Content(ctx, cfg.Content.Path) }},
		{"Appearance", func(ctx context.Context) validate.Result {
			return validate.Ambient(ctx, ambient.NewDetector(ambient.WithLogger(logger)))
		}},
		{"Browser", func(ctx context.Context) validate.Result { return validate.Opener(ctx, runtime.GOOS) }},
	}

	ui.StartScreen("DOCTOR", "Check configuration, storage and content")

	var all validate.Result
	for i, check := range checks {
		ciEnv.StartGroup(check.title)
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(ui.Title.Render(check.title))
		result := check.run(ctx)
		printDoctorItems(result)
		for _, msg := range result.Errors {
			ciEnv.LogError(msg, "", 0)
		}
		for _, msg := range result.Warnings {
			ciEnv.LogWarning(msg)
		}
		ciEnv.EndGroup()
		all.Merge(result)
	}

	fmt.Println()
	if !all.OK() {
		fmt.Println(ui.ErrorBox.Render(fmt.Sprintf("Doctor found %d problem(s)", len(all.Errors))))
		_ = ciEnv.AddSummary(fmt.Sprintf("## folio doctor failed\n\n%d problem(s) found", len(all.Errors)))
		return fmt.Errorf("doctor found %d problem(s)", len(all.Errors))
	}
	if len(all.Warnings) > 0 || len(all.Pending) > 0 {
		fmt.Println(ui.InfoBox.Render(fmt.Sprintf("All checks passed with %d warning(s)", len(all.Warnings))))
		_ = ciEnv.AddSummary(fmt.Sprintf("## folio doctor passed\n\n%d warning(s)", len(all.Warnings)))
		return nil
	}
	fmt.Println(ui.SuccessBox.Render("All checks passed!"))
	_ = ciEnv.AddSummary("## folio doctor passed\n\nAll checks passed successfully!")
	return nil
}

func printDoctorItems(result validate.Result) {
	for _, item := range result.Items {
		icon := ui.StatusError.String()
		switch item.Status {
		case validate.StatusSuccess:
			icon = ui.StatusSuccess.String()
		case validate.StatusWarning:
			icon = ui.StatusWarning.String()
		case validate.StatusPending:
			icon = ui.StatusPending.String()
		}
		if item.Details != "" {
			fmt.Printf("  %s %s %s\n", icon, item.Name, ui.MutedStyle.Render("("+item.Details+")"))
		} else {
			fmt.Printf("  %s %s\n", icon, item.Name)
		}
	}
}
