package adaptor

import (
	"errors"
	"net/http"

	"marketplace/internal/usecase"
	"marketplace/pkg/apperr"
	"marketplace/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Product *ProductHandler
	Review  *ReviewHandler
	Order   *OrderHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Product: NewProductHandler(service.Product, log),
		Review:  NewReviewHandler(service.Review, log),
		Order:   NewOrderHandler(service.Order, log),
	}
}

// handleServiceError answers a failed service call. Domain failures carry
// their own status and message; anything else is logged and reported as 500
// without detail.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		log.Debug(operation+" rejected",
			zap.String("operation", operation),
			zap.String("reason", appErr.Code))
		utils.ResponseError(w, appErr.Status(), appErr.Message)
		return
	}

	log.Error("Failed to "+operation,
		zap.Error(err),
		zap.String("operation", operation))
	utils.ResponseInternalError(w, "Something went wrong!")
}

// identity returns the caller set by the auth middleware, answering 401 when
// there is none.
func identity(w http.ResponseWriter, r *http.Request) (utils.Identity, bool) {
	id, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, apperr.ErrUnauthenticated.Message)
	}
	return id, ok
}
