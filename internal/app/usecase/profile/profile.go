package profile

import (
	"context"
	"fmt"

	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/entity"
	usecase "github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/usecase/errors"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/validator"
	"go.uber.org/zap"
)

type ProfileGateway interface {
	FetchProfile(ctx context.Context, userID entity.UserID) (entity.Profile, error)
	UpdateProfile(ctx context.Context, userID entity.UserID, patch entity.ProfilePatch) (entity.Profile, error)
}

func Show(ctx context.Context, gateway ProfileGateway, userID entity.UserID) (entity.Profile, error) {
	profile, err := gateway.FetchProfile(ctx, userID)
	if err != nil {
		zap.L().Error("error while fetching profile", zap.String("user_id", userID.String()), zap.Error(err))
		return entity.Profile{}, fmt.Errorf("error while showing profile: %w", err)
	}

	return profile, nil
}

// Update sends the changed fields only. When the backend answers without the
// updated profile it is fetched again.
func Update(ctx context.Context, gateway ProfileGateway, userID entity.UserID, patch entity.ProfilePatch) (entity.Profile, error) {
	if patch.Empty() {
		return entity.Profile{}, usecase.ErrEmptyProfile
	}

	err := validator.ValidateProfilePatch(patch)
	if err != nil {
		zap.L().Info("profile update rejected", zap.String("user_id", userID.String()), zap.Error(err))
		return entity.Profile{}, err
	}

	updated, err := gateway.UpdateProfile(ctx, userID, patch)
	if err != nil {
		zap.L().Error("error while updating profile", zap.String("user_id", userID.String()), zap.Error(err))
		return entity.Profile{}, fmt.Errorf("error while updating profile: %w", err)
	}

	zap.L().Info("profile updated", zap.String("user_id", userID.String()))

	if !updated.IsZero() {
		return updated, nil
	}

	return Show(ctx, gateway, userID)
}
