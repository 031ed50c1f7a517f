package auth

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/entity"
	usecase "github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/usecase/errors"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/validator"
	"go.uber.org/zap"
)

const (
	signupMessage         = "Signup successful"
	passwordResetMessage  = "Password reset successful"
	resetPasswordRoute    = "reset-password"
	resetRequestedMessage = "Reset password mail sent to %s"
)

type AccountRegistrar interface {
	Signup(ctx context.Context, form entity.SignupForm) (string, error)
}

type PasswordResetter interface {
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, reset entity.PasswordReset) (string, error)
}

// Signup validates the form before registering the account. The returned
// message is the one of the backend when it sends any.
func Signup(ctx context.Context, registrar AccountRegistrar, form entity.SignupForm) (string, error) {
	form.FullName = strings.TrimSpace(form.FullName)
	form.Username = strings.TrimSpace(form.Username)
	form.Email = strings.TrimSpace(form.Email)

	err := validator.ValidateSignupForm(form)
	if err != nil {
		zap.L().Info("signup form rejected", zap.String("email", form.Email), zap.Error(err))
		return "", err
	}

	message, err := registrar.Signup(ctx, form)
	if err != nil {
		zap.L().Error("error while signing up", zap.String("email", form.Email), zap.Error(err))
		return "", fmt.Errorf("error while creating account: %w", err)
	}

	zap.L().Info("account created", zap.String("email", form.Email))

	return orDefault(message, signupMessage), nil
}

func ForgotPassword(ctx context.Context, resetter PasswordResetter, email string) (string, error) {
	email = strings.TrimSpace(email)
	if len(email) == 0 {
		return "", usecase.ErrEmptyEmail
	}

	message, err := resetter.ForgotPassword(ctx, email)
	if err != nil {
		zap.L().Error("error while requesting password reset", zap.String("email", email), zap.Error(err))
		return "", fmt.Errorf("error while requesting password reset: %w", err)
	}

	return orDefault(message, fmt.Sprintf(resetRequestedMessage, email)), nil
}

// ResetPassword sets a new password. The token may be given bare or as the
// /reset-password/{token} link sent by mail.
func ResetPassword(ctx context.Context, resetter PasswordResetter, reset entity.PasswordReset) (string, error) {
	reset.Token = ParseResetToken(reset.Token)
	if len(reset.Token) == 0 {
		return "", usecase.ErrEmptyResetToken
	}
	if len(reset.NewPassword) == 0 {
		return "", usecase.ErrEmptyPassword
	}

	message, err := resetter.ResetPassword(ctx, reset)
	if err != nil {
		zap.L().Error("error while resetting password", zap.Error(err))
		return "", fmt.Errorf("error while resetting password: %w", err)
	}

	zap.L().Info("password reset")

	return orDefault(message, passwordResetMessage), nil
}

func ParseResetToken(target string) string {
	target = strings.TrimSpace(target)
	if u, err := url.Parse(target); err == nil && len(u.Path) != 0 {
		target = u.Path
	}

	parts := strings.Split(strings.Trim(target, "/"), "/")
	if len(parts) == 2 && parts[0] == resetPasswordRoute {
		return parts[1]
	}
	if len(parts) == 1 && parts[0] != resetPasswordRoute {
		return parts[0]
	}

	return ""
}

func orDefault(message, fallback string) string {
	if len(strings.TrimSpace(message)) == 0 {
		return fallback
	}

	return message
}
