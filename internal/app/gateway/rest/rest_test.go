package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/config"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/entity"
	err_gateway "github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/gateway/api/errors"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/gateway/fake"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/model"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/usecase/token"
	"github.com/golang-jwt/jwt/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testUserID  = "6650a1f2c3"
	testOrderID = "665100aa01"
)

func ptr[T any](v T) *T {
	return &v
}

func adminToken(t *testing.T) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": testUserID}).SignedString([]byte("secret"))
	require.NoError(t, err)

	return signed
}

func testBackend(opts ...fake.Option) *fake.Backend {
	backend := fake.New(opts...)
	backend.AddUser(
		model.UserResponse{MongoID: testUserID, Username: "admin", Email: "admin@shop.io"},
		model.OrderResponse{
			ID:           ptr(testOrderID),
			ProductName:  ptr("Mug"),
			ProductPrice: ptr(decimal.RequireFromString("12.50")),
			Quantity:     ptr(2),
			Status:       ptr("pending"),
			CreatedAt:    ptr("2024-05-01T10:00:00.000Z"),
		},
	)

	return backend
}

func newGateway(t *testing.T, handler http.Handler, accessToken string) *Gateway {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	gateway, err := New(config.Config{
		BackendURL:     server.URL + "/",
		Token:          accessToken,
		RequestTimeout: 5 * time.Second,
	})
	require.NoError(t, err)

	return gateway
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		backendURL string

		wantErr bool
	}{
		{
			name:       "http url",
			backendURL: "http://localhost:8080",
		},
		{
			name:       "https url with path",
			backendURL: "https://api.shop.io/v1/",
		},
		{
			name:       "missing scheme",
			backendURL: "localhost:8080",
			wantErr:    true,
		},
		{
			name:       "empty url",
			backendURL: "",
			wantErr:    true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := New(config.Config{BackendURL: test.backendURL})
			if test.wantErr {
				assert.ErrorIs(t, err, ErrBackendURLInvalid)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestFetchUserOrders(t *testing.T) {
	type want struct {
		err        error
		statusCode int
		orders     int
	}
	tests := []struct {
		name    string
		userID  entity.UserID
		failure int

		want want
	}{
		{
			name:   "known user",
			userID: testUserID,

			want: want{
				orders: 1,
			},
		},
		{
			name:   "unknown user",
			userID: "ffffffffff",

			want: want{
				err:        err_gateway.ErrNotFound,
				statusCode: http.StatusNotFound,
			},
		},
		{
			name:    "backend failure",
			userID:  testUserID,
			failure: http.StatusInternalServerError,

			want: want{
				err:        err_gateway.ErrServer,
				statusCode: http.StatusInternalServerError,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			backend := testBackend()
			if test.failure != 0 {
				backend.Fail(fake.RouteUserOrders, test.failure)
			}
			gateway := newGateway(t, backend.Router(), "")

			userOrders, err := gateway.FetchUserOrders(context.Background(), test.userID)
			if test.want.err != nil {
				require.ErrorIs(t, err, test.want.err)

				var statusErr *err_gateway.StatusError
				require.True(t, errors.As(err, &statusErr))
				assert.Equal(t, test.want.statusCode, statusErr.StatusCode)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, entity.UserID(testUserID), userOrders.User.ID)
			assert.Equal(t, "admin", userOrders.User.Username)
			require.Len(t, userOrders.Orders, test.want.orders)

			order := userOrders.Orders[0]
			assert.Equal(t, entity.OrderID(testOrderID), order.ID)
			assert.True(t, decimal.RequireFromString("12.5").Equal(order.ProductPrice))
			assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), order.CreatedAt.UTC())

			requests := backend.Requests()
			require.Len(t, requests, 1)
			assert.Equal(t, http.MethodGet, requests[0].Method)
			assert.Equal(t, "/getusersAdmin/"+testUserID, requests[0].Path)
		})
	}
}

func TestFetchUserOrdersWithoutUser(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": null, "orders": []}`))
	})
	gateway := newGateway(t, handler, "")

	_, err := gateway.FetchUserOrders(context.Background(), testUserID)
	assert.ErrorIs(t, err, err_gateway.ErrNotFound)
}

func TestFetchUserOrdersKeepsValidRecords(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": {"_id": "6650a1f2c3", "username": "admin"},
			"orders": [
				{"_id": "1", "productName": "Mug", "productPrice": 12.5, "quantity": "3", "createdAt": "2024-05-01T10:00:00Z"},
				{"productName": "No id", "quantity": 1},
				{"_id": "3", "productName": "Bad time", "quantity": 1, "createdAt": "someday"},
				{"_id": "4", "productName": "Bad quantity", "quantity": "many"},
				{"_id": "5", "productName": "Lid", "productPrice": "1.5", "quantity": 2}
			]
		}`))
	})
	gateway := newGateway(t, handler, "")

	userOrders, err := gateway.FetchUserOrders(context.Background(), testUserID)
	require.NoError(t, err)

	require.Len(t, userOrders.Orders, 2)
	assert.Equal(t, entity.OrderID("1"), userOrders.Orders[0].ID)
	assert.Equal(t, 3, userOrders.Orders[0].Quantity)
	assert.Equal(t, entity.OrderID("5"), userOrders.Orders[1].ID)
	assert.Equal(t, 2, userOrders.Orders[1].Quantity)
}

func TestUpdateOrderAcceptsTextQuantity(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": {"_id": "665100aa01", "quantity": "7", "status": "shipped"}}`))
	})
	gateway := newGateway(t, handler, "")

	echo, err := gateway.UpdateOrder(context.Background(), testOrderID, entity.OrderPatch{})
	require.NoError(t, err)

	require.NotNil(t, echo.Quantity)
	assert.Equal(t, 7, *echo.Quantity)
	require.NotNil(t, echo.Status)
	assert.Equal(t, "shipped", *echo.Status)
}

func TestUpdateOrder(t *testing.T) {
	patch := entity.PatchFromOrder(entity.Order{
		ID:           testOrderID,
		ProductName:  "Mug",
		ProductPrice: decimal.RequireFromString("12.50"),
		Quantity:     5,
		Status:       "shipped",
	})

	tests := []struct {
		name string
		echo fake.EchoMode

		wantQuantity *int
		wantStatus   *string
	}{
		{
			name: "bare echo",
			echo: fake.EchoFull,

			wantQuantity: ptr(5),
			wantStatus:   ptr("shipped"),
		},
		{
			name: "wrapped echo",
			echo: fake.EchoWrapped,

			wantQuantity: ptr(5),
			wantStatus:   ptr("shipped"),
		},
		{
			name: "partial echo",
			echo: fake.EchoStatusOnly,

			wantStatus: ptr("shipped"),
		},
		{
			name: "empty echo",
			echo: fake.EchoEmpty,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			backend := testBackend(fake.WithEchoMode(test.echo))
			gateway := newGateway(t, backend.Router(), "")

			echo, err := gateway.UpdateOrder(context.Background(), testOrderID, patch)
			require.NoError(t, err)

			assert.Equal(t, test.wantQuantity, echo.Quantity)
			assert.Equal(t, test.wantStatus, echo.Status)

			stored := backend.Orders(testUserID)
			require.Len(t, stored, 1)
			assert.Equal(t, 5, *stored[0].Quantity)

			requests := backend.Requests()
			require.Len(t, requests, 1)
			assert.Equal(t, http.MethodPut, requests[0].Method)
			assert.Equal(t, "/admin/update-order/"+testOrderID, requests[0].Path)

			var body map[string]any
			require.NoError(t, json.Unmarshal(requests[0].Body, &body))
			assert.Equal(t, 12.5, body["productPrice"])
			assert.Equal(t, float64(5), body["quantity"])
		})
	}
}

func TestUpdateOrderErrors(t *testing.T) {
	tests := []struct {
		name    string
		orderID entity.OrderID
		failure int

		wantErr error
	}{
		{
			name:    "unknown order",
			orderID: "ffffffffff",

			wantErr: err_gateway.ErrNotFound,
		},
		{
			name:    "server error",
			orderID: testOrderID,
			failure: http.StatusInternalServerError,

			wantErr: err_gateway.ErrServer,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			backend := testBackend()
			if test.failure != 0 {
				backend.Fail(fake.RouteUpdateOrder, test.failure)
			}
			gateway := newGateway(t, backend.Router(), "")

			_, err := gateway.UpdateOrder(context.Background(), test.orderID, entity.OrderPatch{Status: ptr("shipped")})
			assert.ErrorIs(t, err, test.wantErr)
			assert.Equal(t, "pending", *backend.Orders(testUserID)[0].Status)
		})
	}
}

func TestDeleteOrder(t *testing.T) {
	tests := []struct {
		name    string
		orderID entity.OrderID
		failure int

		wantErr    error
		wantOrders int
	}{
		{
			name:    "existing order",
			orderID: testOrderID,

			wantOrders: 0,
		},
		{
			name:    "unknown order",
			orderID: "ffffffffff",

			wantErr:    err_gateway.ErrNotFound,
			wantOrders: 1,
		},
		{
			name:    "server error",
			orderID: testOrderID,
			failure: http.StatusBadGateway,

			wantErr:    err_gateway.ErrServer,
			wantOrders: 1,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			backend := testBackend()
			if test.failure != 0 {
				backend.Fail(fake.RouteDeleteOrder, test.failure)
			}
			gateway := newGateway(t, backend.Router(), "")

			err := gateway.DeleteOrder(context.Background(), test.orderID)
			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Len(t, backend.Orders(testUserID), test.wantOrders)

			requests := backend.Requests()
			require.Len(t, requests, 1)
			assert.Equal(t, http.MethodDelete, requests[0].Method)
			assert.Equal(t, "/admin/delete-order", requests[0].Path)
			assert.JSONEq(t, `{"id":"`+test.orderID.String()+`"}`, string(requests[0].Body))
		})
	}
}

func TestCreateOrder(t *testing.T) {
	now := time.Date(2024, 6, 2, 8, 30, 0, 0, time.UTC)
	backend := testBackend(fake.WithClock(func() time.Time { return now }))
	gateway := newGateway(t, backend.Router(), "")

	order, err := gateway.CreateOrder(context.Background(), entity.CreateOrderForm{
		ProductName:        "Teapot",
		ProductPrice:       decimal.RequireFromString("30"),
		Quantity:           1,
		ProductDescription: "white porcelain",
		AdminUserID:        testUserID,
	})
	require.NoError(t, err)

	assert.True(t, order.ID.Valid())
	assert.Equal(t, "Teapot", order.ProductName)
	assert.Equal(t, "pending", order.Status)
	assert.Equal(t, now, order.CreatedAt.UTC())
	assert.Len(t, backend.Orders(testUserID), 2)

	requests := backend.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodPost, requests[0].Method)
	assert.Equal(t, "/admin/create-order/", requests[0].Path)
}

func TestLogin(t *testing.T) {
	accessToken := adminToken(t)

	tests := []struct {
		name     string
		password string

		wantErr error
	}{
		{
			name:     "valid credentials",
			password: "s3cret",
		},
		{
			name:     "wrong password",
			password: "nope",

			wantErr: err_gateway.ErrServer,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			backend := testBackend(fake.WithRequiredToken(accessToken))
			backend.AddAccount("admin@shop.io", "s3cret", testUserID)
			gateway := newGateway(t, backend.Router(), "")

			account, err := gateway.Login(context.Background(), entity.Credentials{
				Email:    "admin@shop.io",
				Password: test.password,
			})
			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, entity.UserID(testUserID), account.User.ID)
			assert.Equal(t, accessToken, account.Token)
		})
	}
}

func TestSignup(t *testing.T) {
	tests := []struct {
		name  string
		email string

		wantErr error
	}{
		{
			name:  "new account",
			email: "owner@shop.io",
		},
		{
			name:  "existing account",
			email: "admin@shop.io",

			wantErr: err_gateway.ErrServer,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			backend := testBackend()
			backend.AddAccount("admin@shop.io", "s3cret", testUserID)
			gateway := newGateway(t, backend.Router(), "")

			message, err := gateway.Signup(context.Background(), entity.SignupForm{
				FullName: "Shop Owner",
				Username: "owner",
				Email:    test.email,
				Password: "s3cret",
			})
			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)
				var statusErr *err_gateway.StatusError
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, http.StatusConflict, statusErr.StatusCode)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "User registered successfully", message)

			requests := backend.Requests()
			require.Len(t, requests, 1)
			assert.JSONEq(t,
				`{"Fullname":"Shop Owner","username":"owner","email":"owner@shop.io","password":"s3cret"}`,
				string(requests[0].Body))
		})
	}
}

func TestForgotAndResetPassword(t *testing.T) {
	accessToken := adminToken(t)

	backend := testBackend(fake.WithRequiredToken(accessToken))
	backend.AddAccount("admin@shop.io", "s3cret", testUserID)
	gateway := newGateway(t, backend.Router(), "")

	_, err := gateway.ForgotPassword(context.Background(), "nobody@shop.io")
	assert.ErrorIs(t, err, err_gateway.ErrNotFound)

	message, err := gateway.ForgotPassword(context.Background(), "admin@shop.io")
	require.NoError(t, err)
	assert.Equal(t, "Reset password link sent to admin@shop.io", message)

	resetToken, ok := backend.ResetToken("admin@shop.io")
	require.True(t, ok)

	_, err = gateway.ResetPassword(context.Background(), entity.PasswordReset{Token: "stale", NewPassword: "n3w"})
	assert.ErrorIs(t, err, err_gateway.ErrServer)

	message, err = gateway.ResetPassword(context.Background(), entity.PasswordReset{Token: resetToken, NewPassword: "n3w"})
	require.NoError(t, err)
	assert.Equal(t, "Password reset successful", message)

	_, err = gateway.Login(context.Background(), entity.Credentials{Email: "admin@shop.io", Password: "s3cret"})
	assert.ErrorIs(t, err, err_gateway.ErrServer)

	account, err := gateway.Login(context.Background(), entity.Credentials{Email: "admin@shop.io", Password: "n3w"})
	require.NoError(t, err)
	assert.Equal(t, entity.UserID(testUserID), account.User.ID)
}

func TestFetchProfile(t *testing.T) {
	tests := []struct {
		name    string
		handler http.Handler
		userID  entity.UserID

		want    entity.Profile
		wantErr error
	}{
		{
			name:    "known user",
			handler: testBackend().Router(),
			userID:  testUserID,

			want: entity.Profile{ID: testUserID, Username: "admin", Email: "admin@shop.io"},
		},
		{
			name:    "unknown user",
			handler: testBackend().Router(),
			userID:  "6650a1f2ff",

			wantErr: err_gateway.ErrNotFound,
		},
		{
			name: "wrapped profile without id",
			handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"data":{"Fullname":"Shop Admin","email":"admin@shop.io"}}`))
			}),
			userID: testUserID,

			want: entity.Profile{ID: testUserID, FullName: "Shop Admin", Email: "admin@shop.io"},
		},
		{
			name: "empty profile",
			handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{}`))
			}),
			userID: testUserID,

			wantErr: err_gateway.ErrNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			gateway := newGateway(t, test.handler, adminToken(t))

			got, err := gateway.FetchProfile(context.Background(), test.userID)
			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestUpdateProfile(t *testing.T) {
	patch := entity.ProfilePatch{
		Username: ptr("shop-admin"),
		Avatar:   ptr("data:image/png;base64,iVBORw0KGgo="),
	}

	t.Run("echoed profile", func(t *testing.T) {
		backend := testBackend()
		gateway := newGateway(t, backend.Router(), adminToken(t))

		got, err := gateway.UpdateProfile(context.Background(), testUserID, patch)
		require.NoError(t, err)
		assert.Equal(t, entity.Profile{
			ID:       testUserID,
			Username: "shop-admin",
			Email:    "admin@shop.io",
			Avatar:   "data:image/png;base64,iVBORw0KGgo=",
		}, got)

		requests := backend.Requests()
		require.Len(t, requests, 1)
		assert.Equal(t, http.MethodPut, requests[0].Method)
		assert.Equal(t, "/user-profile/"+testUserID, requests[0].Path)
		assert.JSONEq(t,
			`{"username":"shop-admin","userImage":"data:image/png;base64,iVBORw0KGgo="}`,
			string(requests[0].Body))
	})

	t.Run("empty echo", func(t *testing.T) {
		gateway := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}), adminToken(t))

		got, err := gateway.UpdateProfile(context.Background(), testUserID, patch)
		require.NoError(t, err)
		assert.True(t, got.IsZero())
		assert.Equal(t, entity.UserID(testUserID), got.ID)
	})

	t.Run("unknown user", func(t *testing.T) {
		gateway := newGateway(t, testBackend().Router(), adminToken(t))

		_, err := gateway.UpdateProfile(context.Background(), "6650a1f2ff", patch)
		assert.ErrorIs(t, err, err_gateway.ErrNotFound)
	})
}

func TestRequestHeaders(t *testing.T) {
	accessToken := adminToken(t)

	backend := testBackend(fake.WithRequiredToken(accessToken))
	gateway := newGateway(t, backend.Router(), accessToken)

	_, err := gateway.FetchUserOrders(context.Background(), testUserID)
	require.NoError(t, err)
	_, err = gateway.FetchUserOrders(context.Background(), testUserID)
	require.NoError(t, err)

	requests := backend.Requests()
	require.Len(t, requests, 2)
	assert.Equal(t, token.SetBearer(accessToken), requests[0].Authorization)
	assert.NotEmpty(t, requests[0].RequestID)
	assert.NotEqual(t, requests[0].RequestID, requests[1].RequestID)
}

func TestMissingTokenIsRejected(t *testing.T) {
	backend := testBackend(fake.WithRequiredToken(adminToken(t)))
	gateway := newGateway(t, backend.Router(), "")

	_, err := gateway.FetchUserOrders(context.Background(), testUserID)
	require.ErrorIs(t, err, err_gateway.ErrServer)

	var statusErr *err_gateway.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
}

func TestNetworkErrors(t *testing.T) {
	t.Run("backend unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		server.Close()

		gateway, err := New(config.Config{BackendURL: server.URL, RequestTimeout: time.Second})
		require.NoError(t, err)

		err = gateway.DeleteOrder(context.Background(), testOrderID)
		assert.ErrorIs(t, err, err_gateway.ErrNetwork)
	})

	t.Run("undecodable body", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>oops</html>`))
		})
		gateway := newGateway(t, handler, "")

		_, err := gateway.FetchUserOrders(context.Background(), testUserID)
		assert.ErrorIs(t, err, err_gateway.ErrNetwork)
	})

	t.Run("cancelled context", func(t *testing.T) {
		gateway := newGateway(t, testBackend().Router(), "")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := gateway.FetchUserOrders(ctx, testUserID)
		assert.ErrorIs(t, err, err_gateway.ErrNetwork)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestErrorMessage(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error": "order is locked"}`))
	})
	gateway := newGateway(t, handler, "")

	err := gateway.DeleteOrder(context.Background(), testOrderID)

	var statusErr *err_gateway.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, "order is locked", statusErr.Message)
}
