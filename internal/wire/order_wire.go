package wire

import (
	"net/http"

	"marketplace/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	auth func(http.Handler) http.Handler,
) {
	r.Route("/order", func(r chi.Router) {
		r.Use(auth)

		r.Post("/", orderHandler.CreateOrder)
		r.Get("/", orderHandler.GetOrders)
	})
}
