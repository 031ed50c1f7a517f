package fake

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/model"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (b *Backend) signup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if b.failed(w, RouteSignup) {
			return
		}

		var request model.SignupRequest
		err := json.NewDecoder(r.Body).Decode(&request)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid signup request")
			return
		}
		if len(request.FullName) == 0 || len(request.Username) == 0 || len(request.Email) == 0 || len(request.Password) == 0 {
			writeMessage(w, http.StatusBadRequest, "All fields are required")
			return
		}

		// 24 hex digits, the shape of the real backend ids
		userID := strings.ReplaceAll(uuid.NewString(), "-", "")[:24]

		b.mutex.Lock()
		_, exists := b.accounts[request.Email]
		if !exists {
			b.users[userID] = model.UserResponse{
				MongoID:  userID,
				FullName: request.FullName,
				Username: request.Username,
				Email:    request.Email,
			}
			b.accounts[request.Email] = account{password: request.Password, userID: userID}
		}
		b.mutex.Unlock()

		if exists {
			writeMessage(w, http.StatusConflict, "User already exists")
			return
		}

		writeMessage(w, http.StatusCreated, "User registered successfully")
	}
}

func (b *Backend) forgotPassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if b.failed(w, RouteForgotPassword) {
			return
		}

		var request model.ForgotPasswordRequest
		err := json.NewDecoder(r.Body).Decode(&request)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid forgot password request")
			return
		}

		token := uuid.NewString()

		b.mutex.Lock()
		_, ok := b.accounts[request.Email]
		if ok {
			for issued, owner := range b.resets {
				if owner == request.Email {
					delete(b.resets, issued)
				}
			}
			b.resets[token] = request.Email
		}
		b.mutex.Unlock()

		if !ok {
			writeMessage(w, http.StatusNotFound, "User not found")
			return
		}

		writeMessage(w, http.StatusOK, "Reset password link sent to "+request.Email)
	}
}

func (b *Backend) resetPassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if b.failed(w, RouteResetPassword) {
			return
		}

		var request model.ResetPasswordRequest
		err := json.NewDecoder(r.Body).Decode(&request)
		if err != nil || len(request.NewPassword) == 0 {
			writeMessage(w, http.StatusBadRequest, "invalid reset password request")
			return
		}

		b.mutex.Lock()
		email, ok := b.resets[request.Token]
		if ok {
			acc := b.accounts[email]
			acc.password = request.NewPassword
			b.accounts[email] = acc
			delete(b.resets, request.Token)
		}
		b.mutex.Unlock()

		if !ok {
			writeMessage(w, http.StatusBadRequest, "Invalid or expired token")
			return
		}

		writeMessage(w, http.StatusOK, "Password reset successful")
	}
}

func (b *Backend) profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if b.failed(w, RouteProfile) {
			return
		}

		b.mutex.Lock()
		user, ok := b.users[chi.URLParam(r, "userId")]
		b.mutex.Unlock()

		if !ok {
			writeMessage(w, http.StatusNotFound, "User not found")
			return
		}

		writeJSON(w, http.StatusOK, profileResponse(user))
	}
}

func (b *Backend) updateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if b.failed(w, RouteUpdateProfile) {
			return
		}

		var request model.UpdateProfileRequest
		err := json.NewDecoder(r.Body).Decode(&request)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid profile request")
			return
		}

		userID := chi.URLParam(r, "userId")

		b.mutex.Lock()
		user, ok := b.users[userID]
		if ok {
			user = b.applyProfileUpdate(user, request)
			b.users[userID] = user
		}
		b.mutex.Unlock()

		if !ok {
			writeMessage(w, http.StatusNotFound, "User not found")
			return
		}

		writeJSON(w, http.StatusOK, profileResponse(user))
	}
}

// applyProfileUpdate must be called with the lock held. The account follows
// email and password changes so login keeps working.
func (b *Backend) applyProfileUpdate(user model.UserResponse, request model.UpdateProfileRequest) model.UserResponse {
	if request.FullName != nil {
		user.FullName = *request.FullName
	}
	if request.Username != nil {
		user.Username = *request.Username
	}
	if request.Image != nil {
		user.Image = *request.Image
	}

	acc, hasAccount := b.accounts[user.Email]
	if request.Password != nil && hasAccount {
		acc.password = *request.Password
		b.accounts[user.Email] = acc
	}
	if request.Email != nil && *request.Email != user.Email {
		if hasAccount {
			delete(b.accounts, user.Email)
			b.accounts[*request.Email] = acc
		}
		user.Email = *request.Email
	}

	return user
}

func profileResponse(user model.UserResponse) model.ProfileResponse {
	return model.ProfileResponse{
		MongoID:  userKey(user),
		FullName: user.FullName,
		Username: user.Username,
		Email:    user.Email,
		Image:    user.Image,
	}
}
