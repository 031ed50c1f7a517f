package fake

import (
	"fmt"
	"time"

	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/model"
	"github.com/shopspring/decimal"
)

const (
	DemoUserID   = "6650a1f2c3d4e5f6a7b8c9d0"
	DemoEmail    = "admin@example.com"
	DemoPassword = "admin"
)

type demoOrder struct {
	name     string
	price    string
	quantity int
	status   string
	age      time.Duration
}

var demoOrders = []demoOrder{
	{name: "Ceramic Mug", price: "12.50", quantity: 2, status: "pending", age: 2 * time.Hour},
	{name: "Teapot", price: "34.00", quantity: 1, status: "shipped", age: 26 * time.Hour},
	{name: "Coffee Beans 1kg", price: "19.90", quantity: 3, status: "delivered", age: 72 * time.Hour},
}

// SeedDemo fills the backend with one admin account and a few orders.
func SeedDemo(b *Backend) {
	now := b.now().UTC()

	orders := make(model.OrderResponses, 0, len(demoOrders))
	for i, demo := range demoOrders {
		id := fmt.Sprintf("665100aa%016d", i+1)
		name := demo.name
		price := decimal.RequireFromString(demo.price)
		quantity := demo.quantity
		status := demo.status
		createdAt := now.Add(-demo.age).Format(time.RFC3339)

		orders = append(orders, model.OrderResponse{
			ID:           &id,
			ProductName:  &name,
			ProductPrice: &price,
			Quantity:     &quantity,
			Status:       &status,
			CreatedAt:    &createdAt,
		})
	}

	b.AddUser(model.UserResponse{
		MongoID:  DemoUserID,
		FullName: "Demo Admin",
		Username: "demo-admin",
		Email:    DemoEmail,
	}, orders...)
	b.AddAccount(DemoEmail, DemoPassword, DemoUserID)
}
