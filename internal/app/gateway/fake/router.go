package fake

import (
	"bytes"
	"io"
	"net/http"

	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/controller/http/middleware/logger"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/controller/http/middleware/token"
	usecase "github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/usecase/token"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func (b *Backend) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(logger.LoggerMiddleware)
	r.Use(b.recordMiddleware)
	r.Use(token.TokenParserMiddleware)

	r.Post("/account/login", b.login())
	r.Post("/account/signup", b.signup())
	r.Post("/account/forgot-password", b.forgotPassword())
	r.Post("/account/reset-password", b.resetPassword())

	r.Group(func(r chi.Router) {
		if b.requireToken {
			r.Use(token.RequireAdmin)
		}

		r.Get("/getusersAdmin/{userId}", b.userOrders())
		r.Put("/admin/update-order/{orderId}", b.updateOrder())
		r.Delete("/admin/delete-order", b.deleteOrder())
		r.Post("/admin/create-order/", b.createOrder())
		r.Get("/user-profile/{userId}", b.profile())
		r.Put("/user-profile/{userId}", b.updateProfile())
	})

	return r
}

func (b *Backend) recordMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			data, err := io.ReadAll(r.Body)
			if err != nil {
				zap.L().Error("error while reading request body", zap.Error(err))
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			r.Body.Close()

			body = data
			r.Body = io.NopCloser(bytes.NewReader(data))
		}

		b.record(Request{
			Method:        r.Method,
			Path:          r.URL.Path,
			RequestID:     r.Header.Get("X-Request-ID"),
			Authorization: r.Header.Get(usecase.AuthHeader),
			Body:          body,
		})

		next.ServeHTTP(w, r)
	})
}
