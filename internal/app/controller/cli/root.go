package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/config"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/format"
	gateway "github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/gateway/api"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/gateway/api/model"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/logger"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/usecase/dashboard"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/usecase/session"
	"github.com/spf13/cobra"
)

type App struct {
	Config config.Config
	Format string
	Pretty bool
}

func NewRootCmd(cfg config.Config) *cobra.Command {
	app := &App{Config: cfg}

	cmd := &cobra.Command{
		Use:           "adminside [target]",
		Short:         "Admin dashboard for shop orders",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		Example: strings.TrimSpace(`
  # Open the dashboard of the user in the admin token
  adminside

  # Open the dashboard of a given user
  adminside /dashboard/6650a1f2c3d4e5f6a7b8c9d0

  # Scriptable commands
  adminside orders list 6650a1f2c3d4e5f6a7b8c9d0 --search mug
  adminside orders update 6650a1f2c3d4e5f6a7b8c9d0 665100aa01 --set quantity=5
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, app, firstArg(args))
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		err := logger.Initialize(app.Config)
		if err != nil {
			return fmt.Errorf("error while initializing logger: %w", err)
		}

		return nil
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&app.Config.BackendURL, "base-url", cfg.BackendURL, "Admin backend base URL (env ADMIN_BACKEND_URL)")
	flags.StringVar(&app.Config.Token, "token", cfg.Token, "Admin bearer token (env ADMIN_TOKEN)")
	flags.StringVar(&app.Config.LogLevel, "log-level", cfg.LogLevel, "Log level (env LOG_LEVEL)")
	flags.DurationVar(&app.Config.RequestTimeout, "timeout", cfg.RequestTimeout, "Backend request timeout, 0 disables (env REQUEST_TIMEOUT)")
	flags.StringVar(&app.Format, "format", format.JSON, "Output format (json|yaml)")
	flags.BoolVar(&app.Pretty, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newDashboardCmd(app))
	cmd.AddCommand(newOrdersCmd(app))
	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newSignupCmd(app))
	cmd.AddCommand(newPasswordCmd(app))
	cmd.AddCommand(newProfileCmd(app))
	cmd.AddCommand(newFakeBackendCmd(app))

	return cmd
}

func (a *App) commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), syscall.SIGTERM, os.Interrupt)
}

// newDashboard resolves the admin user and builds a dashboard that is not mounted yet.
func (a *App) newDashboard(target string) (*dashboard.Dashboard, error) {
	userID, err := session.ResolveUserID(target, a.Config.Token)
	if err != nil {
		return nil, err
	}

	gw, err := a.gateway()
	if err != nil {
		return nil, err
	}

	return dashboard.New(gw, userID), nil
}

func (a *App) gateway() (model.Gateway, error) {
	gw, err := gateway.InitGateway(a.Config)
	if err != nil {
		return nil, fmt.Errorf("error while initializing gateway: %w", err)
	}

	return gw, nil
}

func (a *App) mountDashboard(ctx context.Context, target string) (*dashboard.Dashboard, error) {
	d, err := a.newDashboard(target)
	if err != nil {
		return nil, err
	}

	err = d.Mount(ctx)
	if err != nil {
		d.Close()
		return nil, err
	}

	return d, nil
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), map[string]any{"data": v}, app.Format, app.Pretty)
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}

	return args[0]
}

// targetAndID splits "[target] <id>" arguments.
func targetAndID(args []string) (string, string) {
	if len(args) == 1 {
		return "", args[0]
	}

	return args[0], args[1]
}
