package cli

import (
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/converter"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/entity"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/usecase/auth"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var creds entity.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print the account with its bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gw, err := app.gateway()
			if err != nil {
				return err
			}

			ctx, cancel := app.commandContext(cmd)
			defer cancel()

			account, err := auth.Login(ctx, gw, creds)
			if err != nil {
				return err
			}

			return writeOut(cmd, app, converter.ConvertAccountToOutput(account))
		},
	}

	cmd.Flags().StringVar(&creds.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&creds.Password, "password", "", "Account password")

	return cmd
}
