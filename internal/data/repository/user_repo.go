package repository

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/data/entity"
	"marketplace/pkg/apperr"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}

type userRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewUserRepository(coll *mongo.Collection, log *zap.Logger) UserRepository {
	return &userRepository{
		coll: coll,
		log:  log.With(zap.String("repository", "user")),
	}
}

// Create inserts a new user. A username already present fails with
// apperr.ErrUsernameTaken through the unique index.
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	_, err := ur.coll.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return apperr.ErrUsernameTaken
	}
	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("username", user.Username),
		)
		return fmt.Errorf("create user %s: %w", user.Username, err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return ur.findOne(ctx, bson.M{"_id": id}, "id", id)
}

func (ur *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return ur.findOne(ctx, bson.M{"username": username}, "username", username)
}

func (ur *userRepository) findOne(ctx context.Context, filter bson.M, field, value string) (*entity.User, error) {
	var user entity.User
	err := ur.coll.FindOne(ctx, filter).Decode(&user)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user",
			zap.Error(err),
			zap.String(field, value),
		)
		return nil, fmt.Errorf("find user by %s %s: %w", field, value, err)
	}

	return &user, nil
}
