// internal/wire/wire.go
package wire

import (
	"fmt"
	"net/http"

	"marketplace/internal/adaptor"
	"marketplace/internal/data/repository"
	"marketplace/internal/usecase"
	"marketplace/pkg/middleware"
	"marketplace/pkg/security"
	"marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface
type App struct {
	Router *chi.Mux
}

// Wiring builds the hasher, token service, services and handlers and mounts
// every route.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) (*App, error) {
	hasher := security.NewHasher(config.Hash.Cost, config.Hash.Workers)

	tokens, err := security.NewTokenService(config.JWT.Secret, config.JWT.Expiry())
	if err != nil {
		return nil, fmt.Errorf("token service: %w", err)
	}

	service := usecase.NewService(repo, hasher, tokens, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, tokens, logger)

	return &App{
		Router: router,
	}, nil
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	tokens middleware.TokenVerifier,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	auth := middleware.Auth(tokens, logger)

	// Apply routes
	wireAuth(r, handler.Auth, auth)
	wireProduct(r, handler.Product, auth)
	wireReview(r, handler.Review, auth)
	wireOrder(r, handler.Order, auth)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
