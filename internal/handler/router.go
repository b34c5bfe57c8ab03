package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	custommiddleware "github.com/goldclean/goldclean-system/internal/middleware"
)

// SetupRouter настраивает HTTP-маршруты и middleware сервиса Gold Clean.
func (h *Handler) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(custommiddleware.GzipMiddleware)
	r.Use(custommiddleware.Logger(h.logger))

	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.Register)
		r.Post("/user/login", h.Login)
		r.Post("/user/logout", h.Logout)

		r.Get("/services", h.GetServices)
		r.Get("/additional-services", h.GetAdditionalServices)
		r.Get("/cities", h.GetCities)
		r.Get("/reviews", h.GetReviews)
		r.Post("/reviews", h.CreateReview)

		// Расчёт и оформление заказа доступны гостям; черновик живёт
		// в анонимной сессии, авторизация учитывается при наличии.
		r.Group(func(r chi.Router) {
			r.Use(h.sessionMiddleware.Middleware)
			r.Use(h.authMiddleware.Optional)

			r.Post("/calculate", h.Calculate)
			r.Post("/calculate-windows", h.CalculateWindows)
			r.Post("/orders", h.CreateOrder)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.authMiddleware.Middleware)

			r.Get("/orders", h.GetOrders)
			r.Get("/orders/{id}", h.GetOrder)
			r.Post("/orders/{id}/edit", h.EditOrder)
			r.Get("/orders/{id}/cancel", h.GetCancelInfo)
			r.Post("/orders/{id}/cancel", h.CancelOrder)
		})

		r.With(h.authMiddleware.Optional).Post("/orders/{id}/checkout", h.CreateCheckout)

		r.Get("/payment/success", h.PaymentSuccess)
		r.Get("/payment/cancel", h.PaymentCancel)
		r.Post("/payment/webhook", h.Webhook)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return r
}
