package cli

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rich365/rich365/internal/httpapi"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API and /metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Profiles == nil {
				return errors.New("services are not configured")
			}
			if addr == "" {
				addr = app.HTTPAddr
			}
			srv := httpapi.New(httpapi.Services{
				Profiles:    app.Profiles,
				Calendar:    app.Calendar,
				Generation:  app.Generation,
				CheckIns:    app.CheckIns,
				Leaderboard: app.Leaderboard,
				Export:      app.Export,
			}, httpapi.Options{
				CORSOrigins: app.CORSOrigins,
				Metrics:     app.Metrics,
				Logger:      app.Logger,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			fmt.Fprintf(cmd.OutOrStdout(), "listening on %s\n", addr)
			return srv.Run(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	return cmd
}
