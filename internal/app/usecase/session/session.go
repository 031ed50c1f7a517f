package session

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/entity"
	usecase "github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/usecase/errors"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/usecase/token"
	"go.uber.org/zap"
)

// routePrefixes are the navigation paths that carry an admin user id.
var routePrefixes = []string{"dashboard", "createorder"}

// ResolveUserID finds the admin user the dashboard is opened for. The target
// is a navigation path such as /dashboard/{id} or a bare id; when it is empty
// the user id claim of the admin token is used.
func ResolveUserID(target string, adminToken string) (entity.UserID, error) {
	target = strings.TrimSpace(target)
	if len(target) != 0 {
		return userIDFromTarget(target)
	}

	if len(adminToken) == 0 {
		return entity.UserID(""), usecase.ErrUserIDUndefined
	}

	userID, err := token.GetUserID(adminToken)
	if err != nil {
		zap.L().Error("error while resolving user id from admin token", zap.Error(err))
		return entity.UserID(""), fmt.Errorf("%w: %w", usecase.ErrUserIDUndefined, err)
	}

	return userID, nil
}

func userIDFromTarget(target string) (entity.UserID, error) {
	if u, err := url.Parse(target); err == nil && len(u.Path) != 0 {
		target = u.Path
	}

	parts := strings.Split(strings.Trim(target, "/"), "/")
	switch {
	case len(parts) == 1:
		return validUserID(parts[0])
	case len(parts) == 2 && isRoute(parts[0]):
		return validUserID(parts[1])
	}

	return entity.UserID(""), fmt.Errorf("%w: unknown navigation path %q", usecase.ErrUserIDUndefined, target)
}

func isRoute(segment string) bool {
	for _, prefix := range routePrefixes {
		if segment == prefix {
			return true
		}
	}

	return false
}

func validUserID(raw string) (entity.UserID, error) {
	userID := entity.UserID(strings.TrimSpace(raw))
	if !userID.Valid() || isRoute(userID.String()) {
		return entity.UserID(""), usecase.ErrUserIDUndefined
	}

	return userID, nil
}
