package usecase

import (
	"context"

	"marketplace/internal/data/repository"
	"marketplace/pkg/apperr"
	"marketplace/pkg/security"
	"marketplace/pkg/utils"

	"go.uber.org/zap"
)

// PasswordHasher hashes and checks passwords. *security.Hasher implements it.
type PasswordHasher interface {
	Hash(ctx context.Context, plaintext string) (string, error)
	Verify(ctx context.Context, plaintext, digest string) (bool, error)
}

// TokenIssuer signs session tokens. *security.TokenService implements it.
type TokenIssuer interface {
	Issue(claims security.Claims) (string, error)
}

type Service struct {
	Auth    AuthService
	Product ProductService
	Review  ReviewService
	Order   OrderService
}

func NewService(repo *repository.Repository, hasher PasswordHasher, tokens TokenIssuer, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo.User, hasher, tokens, log),
		Product: NewProductService(repo, log),
		Review:  NewReviewService(repo, log),
		Order:   NewOrderService(repo, log),
	}
}

// validateRequest runs the struct validator and reports failures as
// apperr.ErrInvalidInput. Handlers validate first to return the per-field
// errors map; services check again so callers that do not go through the
// HTTP handlers get the same rules.
func validateRequest(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperr.ErrInvalidInput.WithMessage("validation failed: " + utils.FormatValidationErrors(errs))
	}
	return nil
}
