package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/entity"
	usecase "github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/usecase/errors"
	"go.uber.org/zap"
)

type UserAuthenticator interface {
	Login(ctx context.Context, creds entity.Credentials) (entity.Account, error)
}

func Login(ctx context.Context, authenticator UserAuthenticator, creds entity.Credentials) (entity.Account, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if len(creds.Email) == 0 || len(creds.Password) == 0 {
		return entity.Account{}, usecase.ErrEmptyCredentials
	}

	account, err := authenticator.Login(ctx, creds)
	if err != nil {
		zap.L().Error("error while logging in", zap.String("email", creds.Email), zap.Error(err))
		return entity.Account{}, fmt.Errorf("error while authenticating user: %w", err)
	}

	zap.L().Info("user logged in", zap.String("user_id", account.User.ID.String()))

	return account, nil
}
