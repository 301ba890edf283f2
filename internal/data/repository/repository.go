package repository

import (
	"marketplace/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Product ProductRepository
	Review  ReviewRepository
	Order   OrderRepository
}

func NewRepository(db *database.DB, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db.Collection(database.UsersCollection), log),
		Product: NewProductRepository(db.Collection(database.AddsCollection), log),
		Review:  NewReviewRepository(db.Collection(database.ReviewsCollection), log),
		Order:   NewOrderRepository(db.Collection(database.OrdersCollection), log),
	}
}
