// Package fake is an in-memory admin backend speaking the same HTTP API as the
// real one. It is used by tests and by local runs without a backend.
package fake

import (
	"slices"
	"sync"
	"time"

	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/model"
)

type Route string

const (
	RouteUserOrders  Route = "user-orders"
	RouteUpdateOrder Route = "update-order"
	RouteDeleteOrder Route = "delete-order"
	RouteCreateOrder Route = "create-order"
	RouteLogin       Route = "login"

	RouteSignup         Route = "signup"
	RouteForgotPassword Route = "forgot-password"
	RouteResetPassword  Route = "reset-password"
	RouteProfile        Route = "profile"
	RouteUpdateProfile  Route = "update-profile"
)

// EchoMode selects what the update endpoint sends back.
type EchoMode int

const (
	EchoFull EchoMode = iota
	EchoWrapped
	EchoStatusOnly
	EchoEmpty
)

// Request is one request as seen by the backend.
type Request struct {
	Method        string
	Path          string
	RequestID     string
	Authorization string
	Body          []byte
}

type account struct {
	password string
	userID   string
}

type Backend struct {
	mutex sync.Mutex

	users    map[string]model.UserResponse
	orders   map[string]model.OrderResponses
	accounts map[string]account
	resets   map[string]string
	failures map[Route]int
	requests []Request

	echo         EchoMode
	requireToken bool
	token        string
	now          func() time.Time
}

type Option func(*Backend)

func WithEchoMode(mode EchoMode) Option {
	return func(b *Backend) {
		b.echo = mode
	}
}

// WithRequiredToken makes the admin routes reject requests without a bearer
// token carrying a user id. token is handed out by the login route.
func WithRequiredToken(token string) Option {
	return func(b *Backend) {
		b.requireToken = true
		b.token = token
	}
}

func WithClock(now func() time.Time) Option {
	return func(b *Backend) {
		b.now = now
	}
}

func New(opts ...Option) *Backend {
	instance := &Backend{
		users:    make(map[string]model.UserResponse),
		orders:   make(map[string]model.OrderResponses),
		accounts: make(map[string]account),
		resets:   make(map[string]string),
		failures: make(map[Route]int),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(instance)
	}

	return instance
}

func (b *Backend) AddUser(user model.UserResponse, orders ...model.OrderResponse) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	id := userKey(user)
	b.users[id] = user
	b.orders[id] = append(b.orders[id], orders...)
}

func (b *Backend) AddAccount(email, password, userID string) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.accounts[email] = account{password: password, userID: userID}
}

func (b *Backend) User(userID string) (model.UserResponse, bool) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	user, ok := b.users[userID]
	return user, ok
}

// ResetToken returns the last password reset token issued for email.
func (b *Backend) ResetToken(email string) (string, bool) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	for token, owner := range b.resets {
		if owner == email {
			return token, true
		}
	}

	return "", false
}

// Fail makes every request to route answer with status until Heal is called.
func (b *Backend) Fail(route Route, status int) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.failures[route] = status
}

func (b *Backend) Heal(route Route) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	delete(b.failures, route)
}

func (b *Backend) Orders(userID string) model.OrderResponses {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	return slices.Clone(b.orders[userID])
}

func (b *Backend) Requests() []Request {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	return slices.Clone(b.requests)
}

func (b *Backend) record(request Request) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.requests = append(b.requests, request)
}

func (b *Backend) failure(route Route) (int, bool) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	status, ok := b.failures[route]
	return status, ok
}

// findOrder returns the owner and index of an order. Must be called with the lock held.
func (b *Backend) findOrder(id string) (string, int, bool) {
	for userID, orders := range b.orders {
		for i, order := range orders {
			if order.ID != nil && *order.ID == id {
				return userID, i, true
			}
		}
	}

	return "", 0, false
}

func userKey(user model.UserResponse) string {
	if len(user.ID) != 0 {
		return user.ID
	}

	return user.MongoID
}
