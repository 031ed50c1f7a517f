package fake

import (
	"encoding/json"
	"net/http"
	"slices"
	"time"

	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/model"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type messageResponse struct {
	Message string `json:"message"`
}

type createOrderResponse struct {
	Message string              `json:"message"`
	Order   model.OrderResponse `json:"order"`
}

func (b *Backend) userOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if b.failed(w, RouteUserOrders) {
			return
		}

		userID := chi.URLParam(r, "userId")

		b.mutex.Lock()
		user, ok := b.users[userID]
		orders := slices.Clone(b.orders[userID])
		b.mutex.Unlock()

		if !ok {
			writeMessage(w, http.StatusNotFound, "User not found")
			return
		}
		if orders == nil {
			orders = model.OrderResponses{}
		}

		writeJSON(w, http.StatusOK, model.UserOrdersResponse{
			Data:   &user,
			Orders: orders,
		})
	}
}

func (b *Backend) updateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if b.failed(w, RouteUpdateOrder) {
			return
		}

		var request model.UpdateOrderRequest
		err := json.NewDecoder(r.Body).Decode(&request)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid update request")
			return
		}

		orderID := chi.URLParam(r, "orderId")

		b.mutex.Lock()
		userID, idx, ok := b.findOrder(orderID)
		if !ok {
			b.mutex.Unlock()
			writeMessage(w, http.StatusNotFound, "Order not found")
			return
		}
		order := applyUpdate(b.orders[userID][idx], request)
		b.orders[userID][idx] = order
		echo := b.echo
		b.mutex.Unlock()

		switch echo {
		case EchoWrapped:
			writeJSON(w, http.StatusOK, model.UpdateOrderResponse{Data: &order})
		case EchoStatusOnly:
			writeJSON(w, http.StatusOK, model.OrderResponse{ID: order.ID, Status: order.Status})
		case EchoEmpty:
			w.WriteHeader(http.StatusOK)
		default:
			writeJSON(w, http.StatusOK, order)
		}
	}
}

func (b *Backend) deleteOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if b.failed(w, RouteDeleteOrder) {
			return
		}

		var request model.DeleteOrderRequest
		err := json.NewDecoder(r.Body).Decode(&request)
		if err != nil || len(request.ID) == 0 {
			writeMessage(w, http.StatusBadRequest, "order id is required")
			return
		}

		b.mutex.Lock()
		userID, idx, ok := b.findOrder(request.ID)
		if ok {
			b.orders[userID] = slices.Delete(b.orders[userID], idx, idx+1)
		}
		b.mutex.Unlock()

		if !ok {
			writeMessage(w, http.StatusNotFound, "Order not found")
			return
		}

		writeMessage(w, http.StatusOK, "Order deleted successfully")
	}
}

func (b *Backend) createOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if b.failed(w, RouteCreateOrder) {
			return
		}

		var request model.CreateOrderRequest
		err := json.NewDecoder(r.Body).Decode(&request)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid create request")
			return
		}
		if len(request.ProductName) == 0 || request.Quantity < 1 || request.ProductPrice.IsNegative() {
			writeMessage(w, http.StatusBadRequest, "invalid order")
			return
		}

		id := uuid.NewString()
		status := "pending"
		createdAt := b.now().UTC().Format(time.RFC3339)
		order := model.OrderResponse{
			ID:           &id,
			ProductName:  &request.ProductName,
			ProductPrice: &request.ProductPrice,
			Quantity:     &request.Quantity,
			ProductImage: request.ProductImage,
			Status:       &status,
			CreatedAt:    &createdAt,
		}

		b.mutex.Lock()
		_, ok := b.users[request.AdminUserID]
		if ok {
			b.orders[request.AdminUserID] = append(b.orders[request.AdminUserID], order)
		}
		b.mutex.Unlock()

		if !ok {
			writeMessage(w, http.StatusNotFound, "User not found")
			return
		}

		writeJSON(w, http.StatusCreated, createOrderResponse{
			Message: "Order created successfully",
			Order:   order,
		})
	}
}

func (b *Backend) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if b.failed(w, RouteLogin) {
			return
		}

		var request model.LoginRequest
		err := json.NewDecoder(r.Body).Decode(&request)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid login request")
			return
		}

		b.mutex.Lock()
		acc, ok := b.accounts[request.Email]
		user := b.users[acc.userID]
		token := b.token
		b.mutex.Unlock()

		if !ok || acc.password != request.Password {
			writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		user.Token = token
		writeJSON(w, http.StatusOK, model.LoginResponse{
			Data:    &user,
			Message: "Login successful",
		})
	}
}

func (b *Backend) failed(w http.ResponseWriter, route Route) bool {
	status, ok := b.failure(route)
	if !ok {
		return false
	}

	writeMessage(w, status, http.StatusText(status))
	return true
}

func applyUpdate(order model.OrderResponse, request model.UpdateOrderRequest) model.OrderResponse {
	if request.ProductName != nil {
		order.ProductName = request.ProductName
	}
	if request.ProductPrice != nil {
		order.ProductPrice = request.ProductPrice
	}
	if request.Quantity != nil {
		order.Quantity = request.Quantity
	}
	if request.ProductImage != nil {
		order.ProductImage = request.ProductImage
	}
	if request.Status != nil {
		order.Status = request.Status
	}

	return order
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		zap.L().Error("error while encoding response", zap.Error(err))
	}
}
