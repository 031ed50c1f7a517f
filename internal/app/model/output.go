package model

import "github.com/shopspring/decimal"

// OrderOutput is an order as printed by the CLI.
type OrderOutput struct {
	ID           string          `json:"_id"`
	ProductName  string          `json:"productName"`
	ProductPrice decimal.Decimal `json:"productPrice"`
	Quantity     int             `json:"quantity"`
	ProductImage string          `json:"productImage,omitempty"`
	Status       string          `json:"status"`
	CreatedAt    string          `json:"createdAt,omitempty"`
}

type UserOutput struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Avatar   string `json:"userImage"`
}

type UserOrdersOutput struct {
	User        UserOutput    `json:"user"`
	TotalOrders int           `json:"totalOrders"`
	Orders      []OrderOutput `json:"orders"`
}

type AccountOutput struct {
	User  UserOutput `json:"user"`
	Token string     `json:"token,omitempty"`
}

type ProfileOutput struct {
	ID       string `json:"id"`
	FullName string `json:"Fullname"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"userImage"`
}

type MessageOutput struct {
	Message string `json:"message"`
}
