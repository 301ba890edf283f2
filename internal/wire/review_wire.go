package wire

import (
	"net/http"

	"marketplace/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	auth func(http.Handler) http.Handler,
) {
	r.Route("/review", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/single/{id}", reviewHandler.GetReview)
		r.Get("/{productId}", reviewHandler.GetReviewsByProduct)

		// ==================== PROTECTED ROUTES (require auth) ====================
		// buyers only, one review per add
		r.With(auth).Post("/", reviewHandler.CreateReview)
	})
}
