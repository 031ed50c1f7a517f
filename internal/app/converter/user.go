package converter

import (
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/entity"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/model"
)

func ConvertUserResponseToSummary(response *model.UserResponse) entity.UserSummary {
	if response == nil {
		return entity.UserSummary{}
	}

	id := response.ID
	if len(id) == 0 {
		id = response.MongoID
	}

	return entity.UserSummary{
		ID:       entity.UserID(id),
		Username: response.Username,
		Email:    response.Email,
		Avatar:   response.Image,
	}
}

func ConvertUserOrdersResponse(response model.UserOrdersResponse) entity.UserOrders {
	return entity.UserOrders{
		User:   ConvertUserResponseToSummary(response.Data),
		Orders: ConvertOrderResponsesToOrders(response.Orders),
	}
}

func ConvertLoginResponseToAccount(response model.LoginResponse) entity.Account {
	account := entity.Account{
		User:  ConvertUserResponseToSummary(response.Data),
		Token: response.Token,
	}
	if len(account.Token) == 0 && response.Data != nil {
		account.Token = response.Data.Token
	}

	return account
}

func ConvertCredentialsToLoginRequest(creds entity.Credentials) model.LoginRequest {
	return model.LoginRequest{
		Email:    creds.Email,
		Password: creds.Password,
	}
}

func ConvertSignupFormToRequest(form entity.SignupForm) model.SignupRequest {
	return model.SignupRequest{
		FullName: form.FullName,
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
	}
}

func ConvertPasswordResetToRequest(reset entity.PasswordReset) model.ResetPasswordRequest {
	return model.ResetPasswordRequest{
		Token:       reset.Token,
		NewPassword: reset.NewPassword,
	}
}

func ConvertProfileResponseToProfile(response model.ProfileResponse) entity.Profile {
	id := response.ID
	if len(id) == 0 {
		id = response.MongoID
	}

	return entity.Profile{
		ID:       entity.UserID(id),
		FullName: response.FullName,
		Username: response.Username,
		Email:    response.Email,
		Avatar:   response.Image,
	}
}

func ConvertProfilePatchToRequest(patch entity.ProfilePatch) model.UpdateProfileRequest {
	return model.UpdateProfileRequest{
		FullName: patch.FullName,
		Username: patch.Username,
		Email:    patch.Email,
		Password: patch.Password,
		Image:    patch.Avatar,
	}
}
