package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderID string

func (id OrderID) String() string {
	return string(id)
}

func (id OrderID) Valid() bool {
	return len(id) != 0
}

type Orders []Order

type Order struct {
	ID           OrderID
	ProductName  string
	ProductPrice decimal.Decimal
	Quantity     int
	ProductImage string
	Status       string
	CreatedAt    time.Time
}

// OrderPatch is a partial order. Nil fields are absent and left untouched by Apply.
// ID and CreatedAt are owned by the backend and can't be patched.
type OrderPatch struct {
	ProductName  *string
	ProductPrice *decimal.Decimal
	Quantity     *int
	ProductImage *string
	Status       *string
}

func PatchFromOrder(order Order) OrderPatch {
	name := order.ProductName
	price := order.ProductPrice
	quantity := order.Quantity
	image := order.ProductImage
	status := order.Status

	return OrderPatch{
		ProductName:  &name,
		ProductPrice: &price,
		Quantity:     &quantity,
		ProductImage: &image,
		Status:       &status,
	}
}

func (p OrderPatch) Apply(order Order) Order {
	if p.ProductName != nil {
		order.ProductName = *p.ProductName
	}
	if p.ProductPrice != nil {
		order.ProductPrice = *p.ProductPrice
	}
	if p.Quantity != nil {
		order.Quantity = *p.Quantity
	}
	if p.ProductImage != nil {
		order.ProductImage = *p.ProductImage
	}
	if p.Status != nil {
		order.Status = *p.Status
	}

	return order
}

func (p OrderPatch) Empty() bool {
	return p.ProductName == nil &&
		p.ProductPrice == nil &&
		p.Quantity == nil &&
		p.ProductImage == nil &&
		p.Status == nil
}

// CreateOrderForm mirrors the admin "create order" form.
type CreateOrderForm struct {
	ProductName        string          `form:"productName" validate:"required"`
	ProductPrice       decimal.Decimal `form:"productPrice" validate:"gte=0"`
	Quantity           int             `form:"quantity" validate:"min=1"`
	ProductDescription string          `form:"productDescription" validate:"required"`
	ProductImage       string          `form:"productImage"`
	AdminUserID        UserID          `form:"adminUserId" validate:"required"`
	AdminEmail         string          `form:"adminEmail" validate:"omitempty,email"`
}
