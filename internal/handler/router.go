package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	custommiddleware "github.com/mmeshcher/shop-backend/internal/middleware"
)

// SetupRouter настраивает HTTP-маршруты и middleware сервиса магазина.
func (h *Handler) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(custommiddleware.GzipMiddleware)
	r.Use(custommiddleware.Logger(h.logger))

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)

	r.Route("/cart", func(r chi.Router) {
		r.Post("/add", h.AddCartItem)
		r.Get("/{userID}", h.GetCart)
		r.Get("/{userID}/total", h.GetCartTotal)
		r.Delete("/delete/{itemID}", h.DeleteCartItem)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
