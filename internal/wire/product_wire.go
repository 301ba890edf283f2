package wire

import (
	"net/http"

	"marketplace/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	auth func(http.Handler) http.Handler,
) {
	r.Route("/products", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		// GET /products?userId=&cat=&min=&max=&search=&sort=
		r.Get("/", productHandler.GetProducts)
		r.Get("/single/{id}", productHandler.GetProduct)

		// ==================== PROTECTED ROUTES (require auth) ====================
		r.Group(func(r chi.Router) {
			r.Use(auth)

			// sellers only
			r.Post("/", productHandler.CreateProduct)

			// owner only
			r.Put("/{id}", productHandler.UpdateProduct)
			r.Delete("/{id}", productHandler.DeleteProduct)
		})
	})
}
