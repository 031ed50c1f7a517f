package usecase

import "errors"

var (
	ErrTokenNotValid    = errors.New("token is not valid")
	ErrTokenExpired     = errors.New("token is expired")
	ErrUserIDUndefined  = errors.New("admin user id is undefined")
	ErrEmptyCredentials = errors.New("wrong user credentials format: empty email or password")
	ErrImageUnreadable  = errors.New("image can't be read")
	ErrEmptyEmail       = errors.New("email is empty")
	ErrEmptyResetToken  = errors.New("password reset token is empty")
	ErrEmptyPassword    = errors.New("new password is empty")
	ErrEmptyProfile     = errors.New("profile update has no fields")
)
