package model

type UserResponse struct {
	ID       string `json:"id,omitempty"`
	MongoID  string `json:"_id,omitempty"`
	FullName string `json:"Fullname,omitempty"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Image    string `json:"userImage,omitempty"`
	Token    string `json:"token,omitempty"`
}

type UserOrdersResponse struct {
	Data   *UserResponse  `json:"data"`
	Orders OrderResponses `json:"orders"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Data    *UserResponse `json:"data"`
	Token   string        `json:"token,omitempty"`
	Message string        `json:"message,omitempty"`
}

type SignupRequest struct {
	FullName string `json:"Fullname"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ProfileResponse struct {
	ID       string `json:"id,omitempty"`
	MongoID  string `json:"_id,omitempty"`
	FullName string `json:"Fullname"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Image    string `json:"userImage"`
}

// ProfileEnvelope accepts a bare profile and one wrapped into "data" or "user".
type ProfileEnvelope struct {
	ProfileResponse

	Data    *ProfileResponse `json:"data,omitempty"`
	User    *ProfileResponse `json:"user,omitempty"`
	Message string           `json:"message,omitempty"`
}

func (e ProfileEnvelope) Unwrap() ProfileResponse {
	if e.Data != nil {
		return *e.Data
	}
	if e.User != nil {
		return *e.User
	}

	return e.ProfileResponse
}

type UpdateProfileRequest struct {
	FullName *string `json:"Fullname,omitempty"`
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Image    *string `json:"userImage,omitempty"`
}
