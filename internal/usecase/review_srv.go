package usecase

import (
	"context"
	"time"

	"marketplace/internal/data/entity"
	"marketplace/internal/data/repository"
	"marketplace/internal/dto/request"
	"marketplace/internal/dto/response"
	"marketplace/pkg/apperr"
	"marketplace/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, identity utils.Identity, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetReview(ctx context.Context, id string) (*response.ReviewResponse, error)
	GetReviewsByProduct(ctx context.Context, addID string) ([]response.ReviewResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

// CreateReview stores the caller's review of a product and adds its star to
// the product's rating counters. The insert and the counter update are two
// writes; if the second fails the review stays and the error is returned.
func (s *reviewService) CreateReview(ctx context.Context, identity utils.Identity, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if identity.IsSeller {
		s.log.Warn("Seller tried to create a review", zap.String("user_id", identity.UserID))
		return nil, apperr.ErrSellerNotAllowed
	}

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	product, err := s.repo.Product.FindByID(ctx, req.AddID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperr.ErrProductNotFound
	}

	existing, err := s.repo.Review.FindByProductAndUser(ctx, req.AddID, identity.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.log.Warn("Duplicate review",
			zap.String("user_id", identity.UserID),
			zap.String("add_id", req.AddID),
		)
		return nil, apperr.ErrDuplicateReview
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.NewString(),
			CreatedAt: time.Now(),
		},
		AddID:  req.AddID,
		UserID: identity.UserID,
		Star:   req.Star,
		Desc:   req.Desc,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		return nil, err
	}

	if err := s.repo.Product.IncrementRatingCounters(ctx, req.AddID, req.Star, 1); err != nil {
		s.log.Error("Review saved but rating counters not updated",
			zap.Error(err),
			zap.String("review_id", review.ID),
			zap.String("add_id", req.AddID),
		)
		return nil, err
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID),
		zap.String("user_id", identity.UserID),
		zap.String("add_id", req.AddID),
		zap.Int("star", req.Star),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) GetReview(ctx context.Context, id string) (*response.ReviewResponse, error) {
	review, err := s.repo.Review.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, apperr.ErrReviewNotFound
	}

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) GetReviewsByProduct(ctx context.Context, addID string) ([]response.ReviewResponse, error) {
	reviews, err := s.repo.Review.FindByProductID(ctx, addID)
	if err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		return nil, apperr.ErrNoProductReviews
	}

	responses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = response.ReviewToResponse(review)
	}

	return responses, nil
}
