package converter

import (
	"fmt"
	"time"

	"github.com/golang-module/carbon/v2"
	"go.uber.org/zap"

	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/entity"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/model"
)

// ConvertOrderResponsesToOrders skips records without an id or with an
// unparsable creation time and keeps the rest.
func ConvertOrderResponsesToOrders(responses model.OrderResponses) entity.Orders {
	orders := make(entity.Orders, 0, len(responses))

	for i, response := range responses {
		order, err := ConvertOrderResponseToOrder(response)
		if err != nil {
			zap.L().Warn("skipping invalid order record", zap.Int("index", i), zap.Error(err))
			continue
		}
		orders = append(orders, order)
	}

	return orders
}

func ConvertOrderResponseToOrder(response model.OrderResponse) (entity.Order, error) {
	if response.ID == nil || len(*response.ID) == 0 {
		return entity.Order{}, fmt.Errorf("order response without id")
	}

	order := ConvertOrderResponseToPatch(response).Apply(entity.Order{
		ID: entity.OrderID(*response.ID),
	})

	if response.CreatedAt != nil {
		createdAt, err := ParseTime(*response.CreatedAt)
		if err != nil {
			return entity.Order{}, fmt.Errorf("error while parsing created time of order %s: %w", *response.ID, err)
		}
		order.CreatedAt = createdAt
	}

	return order, nil
}

func ConvertOrderResponseToPatch(response model.OrderResponse) entity.OrderPatch {
	return entity.OrderPatch{
		ProductName:  response.ProductName,
		ProductPrice: response.ProductPrice,
		Quantity:     response.Quantity,
		ProductImage: response.ProductImage,
		Status:       response.Status,
	}
}

func ConvertPatchToUpdateRequest(patch entity.OrderPatch) model.UpdateOrderRequest {
	return model.UpdateOrderRequest{
		ProductName:  patch.ProductName,
		ProductPrice: patch.ProductPrice,
		Quantity:     patch.Quantity,
		ProductImage: patch.ProductImage,
		Status:       patch.Status,
	}
}

func ConvertCreateFormToRequest(form entity.CreateOrderForm) model.CreateOrderRequest {
	request := model.CreateOrderRequest{
		ProductName:        form.ProductName,
		ProductPrice:       form.ProductPrice,
		Quantity:           form.Quantity,
		ProductDescription: form.ProductDescription,
		AdminUserID:        form.AdminUserID.String(),
		AdminEmail:         form.AdminEmail,
	}
	if len(form.ProductImage) != 0 {
		image := form.ProductImage
		request.ProductImage = &image
	}

	return request
}

// ParseTime accepts RFC3339 timestamps as sent by the backend and falls back
// to the looser layouts carbon understands.
func ParseTime(value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return parsed, nil
	}

	c := carbon.Parse(value, carbon.UTC)
	if c.Error != nil {
		return time.Time{}, fmt.Errorf("error while parsing time %q: %w", value, c.Error)
	}
	if c.IsInvalid() {
		return time.Time{}, fmt.Errorf("invalid time %q", value)
	}

	return c.ToStdTime(), nil
}

// FormatTime renders a timestamp for display. Times are shown in UTC.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return carbon.CreateFromStdTime(t).ToDateTimeString(carbon.UTC)
}
