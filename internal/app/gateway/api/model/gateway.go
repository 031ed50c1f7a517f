package model

import (
	"context"

	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/entity"
)

//go:generate mockgen -destination=../../mock/gateway.go -package=mock . Gateway

type Gateway interface {
	FetchUserOrders(ctx context.Context, userID entity.UserID) (entity.UserOrders, error)
	UpdateOrder(ctx context.Context, orderID entity.OrderID, patch entity.OrderPatch) (entity.OrderPatch, error)
	DeleteOrder(ctx context.Context, orderID entity.OrderID) error
	CreateOrder(ctx context.Context, form entity.CreateOrderForm) (entity.Order, error)
	Login(ctx context.Context, creds entity.Credentials) (entity.Account, error)
	Signup(ctx context.Context, form entity.SignupForm) (string, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, reset entity.PasswordReset) (string, error)
	FetchProfile(ctx context.Context, userID entity.UserID) (entity.Profile, error)
	UpdateProfile(ctx context.Context, userID entity.UserID, patch entity.ProfilePatch) (entity.Profile, error)
}
