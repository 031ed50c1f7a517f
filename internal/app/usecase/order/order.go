package order

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/entity"
	usecase "github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/usecase/errors"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/validator"
	"go.uber.org/zap"
)

const maxImageSize = 5 << 20

type OrderCreator interface {
	CreateOrder(ctx context.Context, form entity.CreateOrderForm) (entity.Order, error)
}

type UserOrdersFetcher interface {
	FetchUserOrders(ctx context.Context, userID entity.UserID) (entity.UserOrders, error)
}

// FillAdminEmail takes the admin email from the user summary when the form
// has none. A failed lookup leaves the email empty.
func FillAdminEmail(ctx context.Context, fetcher UserOrdersFetcher, form entity.CreateOrderForm) entity.CreateOrderForm {
	if len(form.AdminEmail) != 0 || !form.AdminUserID.Valid() {
		return form
	}

	userOrders, err := fetcher.FetchUserOrders(ctx, form.AdminUserID)
	if err != nil {
		zap.L().Warn("error while fetching admin email", zap.String("user_id", form.AdminUserID.String()), zap.Error(err))
		return form
	}

	form.AdminEmail = userOrders.User.Email

	return form
}

// Create validates the form and sends it to the backend. Invalid forms never
// reach the network.
func Create(ctx context.Context, creator OrderCreator, form entity.CreateOrderForm) (entity.Order, error) {
	err := validator.ValidateCreateOrderForm(form)
	if err != nil {
		zap.L().Info("order form rejected", zap.String("user_id", form.AdminUserID.String()), zap.Error(err))
		return entity.Order{}, err
	}

	order, err := creator.CreateOrder(ctx, form)
	if err != nil {
		zap.L().Error("error while creating order", zap.String("user_id", form.AdminUserID.String()), zap.Error(err))
		return entity.Order{}, fmt.Errorf("error while creating order: %w", err)
	}

	zap.L().Info("order created", zap.String("user_id", form.AdminUserID.String()), zap.String("order_id", order.ID.String()))

	return order, nil
}

// EncodeImage reads an image file into a base64 data URI accepted as productImage.
func EncodeImage(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", usecase.ErrImageUnreadable, err)
	}
	if info.IsDir() || info.Size() > maxImageSize {
		return "", fmt.Errorf("%w: %s is not a file up to %d bytes", usecase.ErrImageUnreadable, path, maxImageSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", usecase.ErrImageUnreadable, err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if len(mimeType) == 0 {
		mimeType = http.DetectContentType(data)
	}

	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data)), nil
}
