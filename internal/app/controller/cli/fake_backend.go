package cli

import (
	"fmt"

	server "github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/controller/http/server"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/gateway/fake"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newFakeBackendCmd(app *App) *cobra.Command {
	var (
		addr         string
		requireToken bool
		echo         string
	)

	cmd := &cobra.Command{
		Use:   "fake-backend",
		Short: "Serve an in-memory order backend with demo data",
		Long: "Serve an in-memory order backend with demo data for local runs. " +
			"The demo account is " + fake.DemoEmail + " / " + fake.DemoPassword +
			" and the demo user id is " + fake.DemoUserID + ".",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := parseEchoMode(echo)
			if err != nil {
				return err
			}

			opts := []fake.Option{fake.WithEchoMode(mode)}
			if requireToken {
				if len(app.Config.Token) == 0 {
					return fmt.Errorf("--require-token needs an admin token")
				}
				opts = append(opts, fake.WithRequiredToken(app.Config.Token))
			}

			backend := fake.New(opts...)
			fake.SeedDemo(backend)

			return server.New(addr, backend.Router()).Start(cmd.Context(), func(addr string) {
				zap.L().Info("fake backend is listening", zap.String("addr", addr))
				fmt.Fprintf(cmd.ErrOrStderr(), "fake backend listening on %s\n", addr)
			})
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().BoolVar(&requireToken, "require-token", false, "Reject admin routes without the --token bearer token")
	cmd.Flags().StringVar(&echo, "echo", "full", "Update response shape (full|wrapped|status|empty)")

	return cmd
}

func parseEchoMode(value string) (fake.EchoMode, error) {
	switch value {
	case "full", "":
		return fake.EchoFull, nil
	case "wrapped":
		return fake.EchoWrapped, nil
	case "status":
		return fake.EchoStatusOnly, nil
	case "empty":
		return fake.EchoEmpty, nil
	}

	return fake.EchoFull, fmt.Errorf("unknown echo mode %q", value)
}
