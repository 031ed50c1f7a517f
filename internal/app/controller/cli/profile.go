package cli

import (
	"strings"

	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/converter"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/entity"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/usecase/order"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/usecase/profile"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/usecase/session"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show and edit the profile of an admin user",
	}

	cmd.AddCommand(newProfileShowCmd(app))
	cmd.AddCommand(newProfileUpdateCmd(app))

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [target]",
		Short: "Show the profile",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := session.ResolveUserID(firstArg(args), app.Config.Token)
			if err != nil {
				return err
			}

			gw, err := app.gateway()
			if err != nil {
				return err
			}

			ctx, cancel := app.commandContext(cmd)
			defer cancel()

			shown, err := profile.Show(ctx, gw, userID)
			if err != nil {
				return err
			}

			return writeOut(cmd, app, converter.ConvertProfileToOutput(shown))
		},
	}
}

type profileFlags struct {
	fullName string
	username string
	email    string
	password string
	image    string
}

func newProfileUpdateCmd(app *App) *cobra.Command {
	var flags profileFlags

	cmd := &cobra.Command{
		Use:     "update [target]",
		Short:   "Change profile fields, only the given flags are sent",
		Example: "  adminside profile update 6650a1f2c3d4e5f6a7b8c9d0 --username shop-admin --image ./avatar.png",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := session.ResolveUserID(firstArg(args), app.Config.Token)
			if err != nil {
				return err
			}

			patch, err := flags.patch(cmd.Flags().Changed)
			if err != nil {
				return err
			}

			gw, err := app.gateway()
			if err != nil {
				return err
			}

			ctx, cancel := app.commandContext(cmd)
			defer cancel()

			updated, err := profile.Update(ctx, gw, userID, patch)
			if err != nil {
				return err
			}

			return writeOut(cmd, app, converter.ConvertProfileToOutput(updated))
		},
	}

	cmd.Flags().StringVar(&flags.fullName, "fullname", "", "Full name")
	cmd.Flags().StringVar(&flags.username, "username", "", "Username")
	cmd.Flags().StringVar(&flags.email, "email", "", "Email")
	cmd.Flags().StringVar(&flags.password, "password", "", "New password")
	cmd.Flags().StringVar(&flags.image, "image", "", "Avatar file, URL or data URI")

	return cmd
}

func (f profileFlags) patch(changed func(name string) bool) (entity.ProfilePatch, error) {
	var patch entity.ProfilePatch

	if changed("fullname") {
		patch.FullName = trimmed(f.fullName)
	}
	if changed("username") {
		patch.Username = trimmed(f.username)
	}
	if changed("email") {
		patch.Email = trimmed(f.email)
	}
	if changed("password") {
		password := f.password
		patch.Password = &password
	}
	if changed("image") {
		image := strings.TrimSpace(f.image)
		if len(image) != 0 && !isImageReference(image) {
			encoded, err := order.EncodeImage(image)
			if err != nil {
				return entity.ProfilePatch{}, err
			}
			image = encoded
		}
		patch.Avatar = &image
	}

	return patch, nil
}

func trimmed(value string) *string {
	value = strings.TrimSpace(value)
	return &value
}
