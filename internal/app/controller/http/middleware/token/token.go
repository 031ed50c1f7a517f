package token

import (
	"context"
	"net/http"

	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/entity"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/usecase/token"
	"go.uber.org/zap"
)

type userIDCtxKey struct{}

// UserIDCtx is the outcome of parsing the bearer token of one request.
type UserIDCtx struct {
	UserID     entity.UserID
	StatusCode int
}

func TokenParserMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header[token.AuthHeader]
		userCtx := processAuthUserID(authHeader)

		ctx := context.WithValue(r.Context(), userIDCtxKey{}, userCtx)
		r = r.WithContext(ctx)

		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects requests whose bearer token did not yield a user id.
// It must run after TokenParserMiddleware.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userCtx, ok := FromContext(r.Context())
		if !ok {
			zap.L().Error("token parser middleware is not installed")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		if userCtx.StatusCode != http.StatusOK {
			w.WriteHeader(userCtx.StatusCode)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func FromContext(ctx context.Context) (UserIDCtx, bool) {
	userCtx, ok := ctx.Value(userIDCtxKey{}).(UserIDCtx)

	return userCtx, ok
}

func processAuthUserID(authHeader []string) UserIDCtx {
	if len(authHeader) == 0 {
		zap.L().Debug("authorization header is empty")

		return UserIDCtx{StatusCode: http.StatusUnauthorized}
	}

	userID, err := token.GetUserIDFromAuthHeader(authHeader[0])
	if err != nil {
		zap.L().Error("error while parsing auth header", zap.Error(err))

		return UserIDCtx{StatusCode: http.StatusUnauthorized}
	}

	if !userID.Valid() {
		zap.L().Error("empty user id in authorization header")

		return UserIDCtx{StatusCode: http.StatusBadRequest}
	}

	return UserIDCtx{UserID: userID, StatusCode: http.StatusOK}
}
