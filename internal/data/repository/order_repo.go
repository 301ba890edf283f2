package repository

import (
	"context"
	"fmt"

	"marketplace/internal/data/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByBuyerID(ctx context.Context, buyerID string) ([]*entity.Order, error)
	FindBySellerID(ctx context.Context, sellerID string) ([]*entity.Order, error)
}

type orderRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewOrderRepository(coll *mongo.Collection, log *zap.Logger) OrderRepository {
	return &orderRepository{
		coll: coll,
		log:  log.With(zap.String("repository", "order")),
	}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("buyer_id", order.BuyerID),
			zap.String("add_id", order.AddID),
		)
		return fmt.Errorf("create order for add %s: %w", order.AddID, err)
	}

	return nil
}

func (r *orderRepository) FindByBuyerID(ctx context.Context, buyerID string) ([]*entity.Order, error) {
	return r.find(ctx, "buyerId", buyerID)
}

func (r *orderRepository) FindBySellerID(ctx context.Context, sellerID string) ([]*entity.Order, error) {
	return r.find(ctx, "sellerId", sellerID)
}

func (r *orderRepository) find(ctx context.Context, field, id string) ([]*entity.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.M{field: id}, opts)
	if err != nil {
		r.log.Error("Failed to find orders",
			zap.Error(err),
			zap.String(field, id),
		)
		return nil, fmt.Errorf("find orders by %s %s: %w", field, id, err)
	}
	defer cursor.Close(ctx)

	orders := make([]*entity.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		r.log.Error("Failed to decode orders", zap.Error(err))
		return nil, fmt.Errorf("decode orders: %w", err)
	}

	return orders, nil
}
