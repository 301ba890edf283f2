package database

import (
	"context"
	"fmt"

	"marketplace/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	UsersCollection   = "users"
	AddsCollection    = "adds"
	ReviewsCollection = "reviews"
	OrdersCollection  = "orders"
)

// DB wraps a connected client and the application database.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// Collection returns a handle on the named collection.
func (d *DB) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

func (d *DB) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, nil)
}

func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// InitDB connects to MongoDB and checks the connection.
func InitDB(config utils.DatabaseConfig) (*DB, error) {
	clientOpts := options.Client().
		ApplyURI(config.URL).
		SetConnectTimeout(config.Timeout).
		SetServerSelectionTimeout(config.Timeout)

	ctx, cancel := context.WithTimeout(context.Background(), config.Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	return &DB{client: client, db: client.Database(config.Name)}, nil
}

// Indexes lists the indexes the repositories rely on, per collection.
func Indexes() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		UsersCollection: {
			{
				Keys:    bson.D{{Key: "username", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_username"),
			},
		},
		AddsCollection: {
			{Keys: bson.D{{Key: "userId", Value: 1}}},
			{Keys: bson.D{{Key: "cat", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		ReviewsCollection: {
			{
				Keys:    bson.D{{Key: "addId", Value: 1}, {Key: "userId", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_add_user"),
			},
		},
		OrdersCollection: {
			{Keys: bson.D{{Key: "buyerId", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "sellerId", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
	}
}

// EnsureIndexes creates the indexes from Indexes. Existing ones are left alone.
func (d *DB) EnsureIndexes(ctx context.Context) error {
	for name, models := range Indexes() {
		if _, err := d.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}
