package repository

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/data/entity"
	"marketplace/pkg/apperr"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id string) (*entity.Review, error)
	FindByProductAndUser(ctx context.Context, addID, userID string) (*entity.Review, error)
	FindByProductID(ctx context.Context, addID string) ([]*entity.Review, error)
}

type reviewRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewReviewRepository(coll *mongo.Collection, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		coll: coll,
		log:  log.With(zap.String("repository", "review")),
	}
}

// Create inserts review. The unique (addId, userId) index turns a concurrent
// second review into apperr.ErrDuplicateReview.
func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	_, err := r.coll.InsertOne(ctx, review)
	if mongo.IsDuplicateKeyError(err) {
		return apperr.ErrDuplicateReview
	}
	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID),
			zap.String("add_id", review.AddID),
		)
		return fmt.Errorf("create review for add %s by user %s: %w", review.AddID, review.UserID, err)
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id string) (*entity.Review, error) {
	var review entity.Review
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&review)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.String("review_id", id),
		)
		return nil, fmt.Errorf("find review by ID %s: %w", id, err)
	}

	return &review, nil
}

func (r *reviewRepository) FindByProductAndUser(ctx context.Context, addID, userID string) (*entity.Review, error) {
	var review entity.Review
	err := r.coll.FindOne(ctx, bson.M{"addId": addID, "userId": userID}).Decode(&review)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by user and add",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("add_id", addID),
		)
		return nil, fmt.Errorf("find review by user %s and add %s: %w", userID, addID, err)
	}

	return &review, nil
}

func (r *reviewRepository) FindByProductID(ctx context.Context, addID string) ([]*entity.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.M{"addId": addID}, opts)
	if err != nil {
		r.log.Error("Failed to find reviews by add ID",
			zap.Error(err),
			zap.String("add_id", addID),
		)
		return nil, fmt.Errorf("find reviews by add ID %s: %w", addID, err)
	}
	defer cursor.Close(ctx)

	reviews := make([]*entity.Review, 0)
	if err := cursor.All(ctx, &reviews); err != nil {
		r.log.Error("Failed to decode reviews", zap.Error(err))
		return nil, fmt.Errorf("decode reviews: %w", err)
	}

	return reviews, nil
}
