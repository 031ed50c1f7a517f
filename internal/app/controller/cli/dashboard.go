package cli

import (
	"fmt"

	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/config"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/controller/tui"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/logger"
	"github.com/spf13/cobra"
)

const tuiLogFile = "adminside.log"

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard [target]",
		Short: "Open the interactive order dashboard",
		Long: "Open the interactive order dashboard. The target is a /dashboard/{id} path or a user id; " +
			"without it the user id claim of the admin token is used.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, app, firstArg(args))
		},
	}
}

func runDashboard(cmd *cobra.Command, app *App, target string) error {
	// The terminal belongs to the dashboard, logs go to a file.
	if app.Config.LogOutput == config.DefaultLogOutput || len(app.Config.LogOutput) == 0 {
		app.Config.LogOutput = tuiLogFile
		err := logger.Initialize(app.Config)
		if err != nil {
			return fmt.Errorf("error while initializing logger: %w", err)
		}
	}

	d, err := app.newDashboard(target)
	if err != nil {
		return err
	}

	return tui.Run(cmd.Context(), d, app.Config.NoticeTimeout)
}
