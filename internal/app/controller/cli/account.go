package cli

import (
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/entity"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/model"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/usecase/auth"
	"github.com/spf13/cobra"
)

func newSignupCmd(app *App) *cobra.Command {
	var form entity.SignupForm

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an admin account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gw, err := app.gateway()
			if err != nil {
				return err
			}

			ctx, cancel := app.commandContext(cmd)
			defer cancel()

			message, err := auth.Signup(ctx, gw, form)
			if err != nil {
				return err
			}

			return writeOut(cmd, app, model.MessageOutput{Message: message})
		},
	}

	cmd.Flags().StringVar(&form.FullName, "fullname", "", "Full name")
	cmd.Flags().StringVar(&form.Username, "username", "", "Username")
	cmd.Flags().StringVar(&form.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&form.Password, "password", "", "Account password")

	return cmd
}

func newPasswordCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Recover a forgotten password",
	}

	cmd.AddCommand(newPasswordForgotCmd(app))
	cmd.AddCommand(newPasswordResetCmd(app))

	return cmd
}

func newPasswordForgotCmd(app *App) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "forgot",
		Short: "Ask the backend to mail a password reset link",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gw, err := app.gateway()
			if err != nil {
				return err
			}

			ctx, cancel := app.commandContext(cmd)
			defer cancel()

			message, err := auth.ForgotPassword(ctx, gw, email)
			if err != nil {
				return err
			}

			return writeOut(cmd, app, model.MessageOutput{Message: message})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")

	return cmd
}

func newPasswordResetCmd(app *App) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:     "reset <token>",
		Short:   "Set a new password with the token from the reset mail",
		Example: "  adminside password reset /reset-password/3f1c0a2e --password n3w-secret",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gw, err := app.gateway()
			if err != nil {
				return err
			}

			ctx, cancel := app.commandContext(cmd)
			defer cancel()

			message, err := auth.ResetPassword(ctx, gw, entity.PasswordReset{
				Token:       args[0],
				NewPassword: password,
			})
			if err != nil {
				return err
			}

			return writeOut(cmd, app, model.MessageOutput{Message: message})
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "New password")

	return cmd
}
