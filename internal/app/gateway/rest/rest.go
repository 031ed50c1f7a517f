package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/config"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/converter"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/entity"
	err_gateway "github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/gateway/api/errors"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/model"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/usecase/token"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	userOrdersPath  = `/getusersAdmin/`
	updateOrderPath = `/admin/update-order/`
	deleteOrderPath = `/admin/delete-order`
	createOrderPath = `/admin/create-order/`
	loginPath       = `/account/login`

	signupPath         = `/account/signup`
	forgotPasswordPath = `/account/forgot-password`
	resetPasswordPath  = `/account/reset-password`
	profilePath        = `/user-profile/`

	RequestIDHeader = "X-Request-ID"

	errorBodyLimit = 1 << 10
)

var (
	ErrBackendURLInvalid = errors.New("admin backend url invalid")
)

// Gateway talks to the admin backend. It performs no retries, no caching and
// no de-duplication: every call is exactly one HTTP request.
type Gateway struct {
	client  http.Client
	baseURL string
	token   string
}

func New(config config.Config) (*Gateway, error) {
	baseURL, err := url.Parse(config.BackendURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackendURLInvalid, err)
	}
	if baseURL.Scheme != "http" && baseURL.Scheme != "https" || len(baseURL.Host) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrBackendURLInvalid, config.BackendURL)
	}

	return &Gateway{
		client: http.Client{
			Timeout: config.RequestTimeout,
		},
		baseURL: strings.TrimSuffix(baseURL.String(), "/"),
		token:   config.Token,
	}, nil
}

func (g *Gateway) FetchUserOrders(ctx context.Context, userID entity.UserID) (entity.UserOrders, error) {
	var response model.UserOrdersResponse
	err := g.do(ctx, http.MethodGet, userOrdersPath+url.PathEscape(userID.String()), nil, &response)
	if err != nil {
		return entity.UserOrders{}, fmt.Errorf("error while fetching orders of user %s: %w", userID, err)
	}

	if response.Data == nil {
		return entity.UserOrders{}, fmt.Errorf("error while fetching orders of user %s: %w", userID, err_gateway.ErrNotFound)
	}

	userOrders := converter.ConvertUserOrdersResponse(response)
	if !userOrders.User.ID.Valid() {
		userOrders.User.ID = userID
	}

	return userOrders, nil
}

func (g *Gateway) UpdateOrder(ctx context.Context, orderID entity.OrderID, patch entity.OrderPatch) (entity.OrderPatch, error) {
	var response model.UpdateOrderResponse
	request := converter.ConvertPatchToUpdateRequest(patch)

	err := g.do(ctx, http.MethodPut, updateOrderPath+url.PathEscape(orderID.String()), request, &response)
	if err != nil {
		return entity.OrderPatch{}, fmt.Errorf("error while updating order %s: %w", orderID, err)
	}

	return converter.ConvertOrderResponseToPatch(response.Unwrap()), nil
}

func (g *Gateway) DeleteOrder(ctx context.Context, orderID entity.OrderID) error {
	request := model.DeleteOrderRequest{
		ID: orderID.String(),
	}

	err := g.do(ctx, http.MethodDelete, deleteOrderPath, request, nil)
	if err != nil {
		return fmt.Errorf("error while deleting order %s: %w", orderID, err)
	}

	return nil
}

func (g *Gateway) CreateOrder(ctx context.Context, form entity.CreateOrderForm) (entity.Order, error) {
	var response model.CreateOrderResponse
	request := converter.ConvertCreateFormToRequest(form)

	err := g.do(ctx, http.MethodPost, createOrderPath, request, &response)
	if err != nil {
		return entity.Order{}, fmt.Errorf("error while creating order for user %s: %w", form.AdminUserID, err)
	}

	echo := response.Unwrap()
	order := converter.ConvertOrderResponseToPatch(echo).Apply(entity.Order{
		ProductName:  form.ProductName,
		ProductPrice: form.ProductPrice,
		Quantity:     form.Quantity,
		ProductImage: form.ProductImage,
	})
	if echo.ID != nil {
		order.ID = entity.OrderID(*echo.ID)
	}
	if echo.CreatedAt != nil {
		createdAt, err := converter.ParseTime(*echo.CreatedAt)
		if err != nil {
			zap.L().Warn("created order has unparsable creation time", zap.String("order_id", order.ID.String()), zap.Error(err))
		}
		order.CreatedAt = createdAt
	}

	return order, nil
}

func (g *Gateway) Login(ctx context.Context, creds entity.Credentials) (entity.Account, error) {
	var response model.LoginResponse

	err := g.do(ctx, http.MethodPost, loginPath, converter.ConvertCredentialsToLoginRequest(creds), &response)
	if err != nil {
		return entity.Account{}, fmt.Errorf("error while logging in %s: %w", creds.Email, err)
	}

	account := converter.ConvertLoginResponseToAccount(response)
	if !account.User.ID.Valid() {
		return entity.Account{}, fmt.Errorf("login response without user id: %w", err_gateway.ErrServer)
	}

	return account, nil
}

// Signup registers an account and returns the backend message.
func (g *Gateway) Signup(ctx context.Context, form entity.SignupForm) (string, error) {
	var response model.MessageResponse

	err := g.do(ctx, http.MethodPost, signupPath, converter.ConvertSignupFormToRequest(form), &response)
	if err != nil {
		return "", fmt.Errorf("error while signing up %s: %w", form.Email, err)
	}

	return response.Message, nil
}

func (g *Gateway) ForgotPassword(ctx context.Context, email string) (string, error) {
	var response model.MessageResponse

	err := g.do(ctx, http.MethodPost, forgotPasswordPath, model.ForgotPasswordRequest{Email: email}, &response)
	if err != nil {
		return "", fmt.Errorf("error while requesting password reset for %s: %w", email, err)
	}

	return response.Message, nil
}

func (g *Gateway) ResetPassword(ctx context.Context, reset entity.PasswordReset) (string, error) {
	var response model.MessageResponse

	err := g.do(ctx, http.MethodPost, resetPasswordPath, converter.ConvertPasswordResetToRequest(reset), &response)
	if err != nil {
		return "", fmt.Errorf("error while resetting password: %w", err)
	}

	return response.Message, nil
}

func (g *Gateway) FetchProfile(ctx context.Context, userID entity.UserID) (entity.Profile, error) {
	var response model.ProfileEnvelope

	err := g.do(ctx, http.MethodGet, profilePath+url.PathEscape(userID.String()), nil, &response)
	if err != nil {
		return entity.Profile{}, fmt.Errorf("error while fetching profile of user %s: %w", userID, err)
	}

	profile := converter.ConvertProfileResponseToProfile(response.Unwrap())
	if profile.IsZero() {
		return entity.Profile{}, fmt.Errorf("error while fetching profile of user %s: %w", userID, err_gateway.ErrNotFound)
	}
	if !profile.ID.Valid() {
		profile.ID = userID
	}

	return profile, nil
}

// UpdateProfile sends the patch and returns the profile echoed by the backend.
// The echo may be empty when the backend only answers with a status.
func (g *Gateway) UpdateProfile(ctx context.Context, userID entity.UserID, patch entity.ProfilePatch) (entity.Profile, error) {
	var response model.ProfileEnvelope

	err := g.do(ctx, http.MethodPut, profilePath+url.PathEscape(userID.String()), converter.ConvertProfilePatchToRequest(patch), &response)
	if err != nil {
		return entity.Profile{}, fmt.Errorf("error while updating profile of user %s: %w", userID, err)
	}

	profile := converter.ConvertProfileResponseToProfile(response.Unwrap())
	profile.ID = userID

	return profile, nil
}

func (g *Gateway) do(ctx context.Context, method, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("error while encoding request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	address := g.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, address, body)
	if err != nil {
		return fmt.Errorf("cannot create request to admin backend: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if len(g.token) != 0 {
		req.Header.Set(token.AuthHeader, token.SetBearer(g.token))
	}

	start := time.Now()
	res, err := g.client.Do(req)
	if err != nil {
		zap.L().Error(
			"cannot send request to admin backend",
			zap.String("method", method),
			zap.String("url", address),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %w", err_gateway.ErrNetwork, err)
	}
	defer res.Body.Close()

	zap.L().Debug(
		"got admin backend response",
		zap.String("method", method),
		zap.String("url", address),
		zap.String("request_id", requestID),
		zap.Int("status", res.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	return processResponse(res, out)
}

func processResponse(res *http.Response, out any) error {
	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return &err_gateway.StatusError{
			StatusCode: res.StatusCode,
			Message:    readErrorMessage(res.Body),
		}
	}

	if out == nil || res.StatusCode == http.StatusNoContent {
		return nil
	}

	err := json.NewDecoder(res.Body).Decode(out)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("error while decoding admin backend response: %w: %w", err_gateway.ErrNetwork, err)
	}

	return nil
}

func readErrorMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, errorBodyLimit))
	if err != nil {
		return ""
	}

	var message struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(data, &message) == nil {
		if len(message.Message) != 0 {
			return message.Message
		}
		if len(message.Error) != 0 {
			return message.Error
		}
	}

	return strings.TrimSpace(string(data))
}
