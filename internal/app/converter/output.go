package converter

import (
	"time"

	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/entity"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/model"
)

func ConvertOrderToOutput(order entity.Order) model.OrderOutput {
	output := model.OrderOutput{
		ID:           order.ID.String(),
		ProductName:  order.ProductName,
		ProductPrice: order.ProductPrice,
		Quantity:     order.Quantity,
		ProductImage: order.ProductImage,
		Status:       order.Status,
	}
	if !order.CreatedAt.IsZero() {
		output.CreatedAt = order.CreatedAt.UTC().Format(time.RFC3339)
	}

	return output
}

func ConvertOrdersToOutput(orders entity.Orders) []model.OrderOutput {
	outputs := make([]model.OrderOutput, 0, len(orders))
	for _, order := range orders {
		outputs = append(outputs, ConvertOrderToOutput(order))
	}

	return outputs
}

// ConvertUserToOutput applies the display fallbacks for a missing username or avatar.
func ConvertUserToOutput(user entity.UserSummary) model.UserOutput {
	return model.UserOutput{
		ID:       user.ID.String(),
		Username: user.DisplayName(),
		Email:    user.Email,
		Avatar:   user.DisplayAvatar(),
	}
}

// ConvertUserOrdersToOutput keeps the total of all orders even when orders is a filtered subset.
func ConvertUserOrdersToOutput(user entity.UserSummary, total int, orders entity.Orders) model.UserOrdersOutput {
	return model.UserOrdersOutput{
		User:        ConvertUserToOutput(user),
		TotalOrders: total,
		Orders:      ConvertOrdersToOutput(orders),
	}
}

func ConvertAccountToOutput(account entity.Account) model.AccountOutput {
	return model.AccountOutput{
		User:  ConvertUserToOutput(account.User),
		Token: account.Token,
	}
}

func ConvertProfileToOutput(profile entity.Profile) model.ProfileOutput {
	return model.ProfileOutput{
		ID:       profile.ID.String(),
		FullName: profile.FullName,
		Username: profile.Username,
		Email:    profile.Email,
		Avatar:   profile.Avatar,
	}
}
