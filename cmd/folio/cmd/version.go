package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iiroan/folio/internal/ui"
	"github.com/iiroan/folio/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information about folio.`,
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		fmt.Println(ui.Header("folio " + info.Short()))
		fmt.Printf("Version:    %s\n", info.Version)
		fmt.Printf("Commit:     %s\n", info.Commit)
		fmt.Printf("Build Date: %s\n", info.BuildDate)
		fmt.Printf("Go Version: %s\n", info.GoVersion)
		fmt.Printf("OS/Arch:    %s\n", info.Platform)
	},
}
