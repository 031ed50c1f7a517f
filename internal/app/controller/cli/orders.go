package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/converter"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/entity"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/usecase/editor"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/usecase/order"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/usecase/session"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newOrdersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List and manage the orders of an admin user",
	}

	cmd.AddCommand(newOrdersListCmd(app))
	cmd.AddCommand(newOrdersUpdateCmd(app))
	cmd.AddCommand(newOrdersRemoveCmd(app))
	cmd.AddCommand(newOrdersCreateCmd(app))

	return cmd
}

func newOrdersListCmd(app *App) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list [target]",
		Short: "List orders newest first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.commandContext(cmd)
			defer cancel()

			d, err := app.mountDashboard(ctx, firstArg(args))
			if err != nil {
				return err
			}
			defer d.Close()

			orders := entity.Orders(slices.Collect(d.Orders(search)))

			return writeOut(cmd, app, converter.ConvertUserOrdersToOutput(d.User(), d.Count(), orders))
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive product name filter")

	return cmd
}

func newOrdersUpdateCmd(app *App) *cobra.Command {
	var sets []string

	cmd := &cobra.Command{
		Use:   "update [target] <order-id>",
		Short: "Edit fields of one order and save it",
		Long: fmt.Sprintf("Edit fields of one order and save it. Editable fields: %s.",
			strings.Join(fieldNames(), ", ")),
		Example: "  adminside orders update 6650a1f2c3d4e5f6a7b8c9d0 665100aa01 --set quantity=5 --set status=shipped",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, id := targetAndID(args)

			ctx, cancel := app.commandContext(cmd)
			defer cancel()

			d, err := app.mountDashboard(ctx, target)
			if err != nil {
				return err
			}
			defer d.Close()

			err = d.BeginEdit(entity.OrderID(id))
			if err != nil {
				return err
			}

			for _, set := range sets {
				field, value, ok := strings.Cut(set, "=")
				if !ok {
					return fmt.Errorf("invalid --set %q, expected field=value", set)
				}

				err = d.UpdateField(editor.Field(strings.TrimSpace(field)), value)
				if err != nil {
					return err
				}
			}

			updated, err := d.Commit(ctx)
			if err != nil {
				return err
			}

			return writeOut(cmd, app, converter.ConvertOrderToOutput(updated))
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "Field assignment field=value, repeatable")

	return cmd
}

type removedOutput struct {
	ID      string `json:"_id"`
	Removed bool   `json:"removed"`
}

func newOrdersRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm [target] <order-id>",
		Aliases: []string{"delete"},
		Short:   "Delete one order",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, id := targetAndID(args)

			ctx, cancel := app.commandContext(cmd)
			defer cancel()

			d, err := app.mountDashboard(ctx, target)
			if err != nil {
				return err
			}
			defer d.Close()

			err = d.Remove(ctx, entity.OrderID(id))
			if err != nil {
				return err
			}

			return writeOut(cmd, app, removedOutput{ID: id, Removed: true})
		},
	}
}

type createFlags struct {
	name        string
	price       string
	quantity    int
	description string
	image       string
	email       string
}

func newOrdersCreateCmd(app *App) *cobra.Command {
	var flags createFlags

	cmd := &cobra.Command{
		Use:   "create [target]",
		Short: "Create an order for the admin user",
		Example: "  adminside orders create /createorder/6650a1f2c3d4e5f6a7b8c9d0 " +
			"--name Mug --price 12.50 --quantity 2 --description 'Blue mug' --image ./mug.png",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := session.ResolveUserID(firstArg(args), app.Config.Token)
			if err != nil {
				return err
			}

			form, err := flags.form(userID)
			if err != nil {
				return err
			}

			gw, err := app.gateway()
			if err != nil {
				return err
			}

			ctx, cancel := app.commandContext(cmd)
			defer cancel()

			form = order.FillAdminEmail(ctx, gw, form)

			created, err := order.Create(ctx, gw, form)
			if err != nil {
				return err
			}

			return writeOut(cmd, app, converter.ConvertOrderToOutput(created))
		},
	}

	cmd.Flags().StringVar(&flags.name, "name", "", "Product name")
	cmd.Flags().StringVar(&flags.price, "price", "0", "Product price")
	cmd.Flags().IntVar(&flags.quantity, "quantity", 1, "Quantity")
	cmd.Flags().StringVar(&flags.description, "description", "", "Product description")
	cmd.Flags().StringVar(&flags.image, "image", "", "Image file, URL or data URI")
	cmd.Flags().StringVar(&flags.email, "email", "", "Admin email, defaults to the email of the admin user")

	return cmd
}

func (f createFlags) form(userID entity.UserID) (entity.CreateOrderForm, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(f.price))
	if err != nil {
		return entity.CreateOrderForm{}, fmt.Errorf("invalid --price %q: %w", f.price, err)
	}

	image := strings.TrimSpace(f.image)
	if len(image) != 0 && !isImageReference(image) {
		image, err = order.EncodeImage(image)
		if err != nil {
			return entity.CreateOrderForm{}, err
		}
	}

	return entity.CreateOrderForm{
		ProductName:        strings.TrimSpace(f.name),
		ProductPrice:       price,
		Quantity:           f.quantity,
		ProductDescription: strings.TrimSpace(f.description),
		ProductImage:       image,
		AdminUserID:        userID,
		AdminEmail:         strings.TrimSpace(f.email),
	}, nil
}

func isImageReference(image string) bool {
	return strings.HasPrefix(image, "http://") ||
		strings.HasPrefix(image, "https://") ||
		strings.HasPrefix(image, "data:")
}

func fieldNames() []string {
	names := make([]string, 0, len(editor.Fields))
	for _, field := range editor.Fields {
		names = append(names, string(field))
	}

	return names
}
