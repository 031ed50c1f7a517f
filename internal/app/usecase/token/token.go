package token

import (
	"fmt"
	"strings"
	"time"

	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/entity"
	usecase "github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/usecase/errors"
	"github.com/golang-jwt/jwt/v4"
)

const (
	bearerHeader = "Bearer"

	AuthHeader = "Authorization"
)

// userIDClaims are checked in order; backends disagree on the claim name.
var userIDClaims = []string{"user_id", "id", "sub"}

func SetBearer(token string) string {
	return fmt.Sprintf("%s %s", bearerHeader, token)
}

func GetUserIDFromAuthHeader(header string) (entity.UserID, error) {
	headerParts := strings.Split(header, " ")
	if len(headerParts) != 2 {
		return entity.UserID(""), fmt.Errorf("auth header doesn't contain two parts")
	}

	if headerParts[0] != bearerHeader {
		return entity.UserID(""), fmt.Errorf("first auth header part is invalid")
	}

	userID, err := GetUserID(headerParts[1])
	if err != nil {
		return entity.UserID(""), fmt.Errorf("error while getting user id from token: %w", err)
	}

	return userID, nil
}

// GetUserID reads the admin user id from a JWT. The signature is verified by
// the backend only; the client has no access to the signing key.
func GetUserID(tokenString string) (entity.UserID, error) {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(tokenString, claims)
	if err != nil {
		return entity.UserID(""), fmt.Errorf("%w: %w", usecase.ErrTokenNotValid, err)
	}

	if !claims.VerifyExpiresAt(time.Now().Unix(), false) {
		return entity.UserID(""), usecase.ErrTokenExpired
	}

	for _, name := range userIDClaims {
		value, ok := claims[name].(string)
		if ok && len(value) != 0 {
			return entity.UserID(value), nil
		}
	}

	return entity.UserID(""), fmt.Errorf("%w: no user id claim", usecase.ErrTokenNotValid)
}
