package cmd

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iiroan/folio/internal/ui"
	"github.com/iiroan/folio/internal/web"
)

var (
	serveAddr string
	serveOpen bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio as a web page",
	Long: `Serve the portfolio over HTTP. The page uses the same stored preferences
as the terminal; a system appearance follows the browser's colour scheme.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := loadProfile()
		if err != nil {
			return err
		}

		addr := cfg.Server.Addr
		if serveAddr != "" {
			addr = serveAddr
		}
		srv, err := web.New(store, profile, web.WithAddr(addr), web.WithLogger(logger))
		if err != nil {
			return err
		}

		parent := cmd.Context()
		if parent == nil {
			parent = context.Background()
		}
		ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
		defer stop()

		ln, err := net.Listen("tcp", srv.Addr())
		if err != nil {
			return fmt.Errorf("listen on %s: %w", srv.Addr(), err)
		}
		url := "http://" + ln.Addr().String()
		fmt.Println(ui.InfoBox.Render(fmt.Sprintf("Serving %s\n%s\n\nPress ctrl+c to stop.", ui.DescribeSnapshot(store.Get()), url)))

		if serveOpen {
			if err := openURL(ctx, url); err != nil {
				logger.Warn("could not open browser", "error", err)
			}
		}
		return srv.Serve(ctx, ln)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "Open the page in the browser")
}
