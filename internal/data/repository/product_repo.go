package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"marketplace/internal/data/entity"
	"marketplace/pkg/apperr"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ProductFilter narrows FindAll. Zero values mean "no constraint".
type ProductFilter struct {
	UserID string
	Cat    string
	Search string
	Min    *float64
	Max    *float64
	Sort   string // "createdAt" (default) or "sales"
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id string) (*entity.Product, error)
	FindAll(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error

	// IncrementRatingCounters adds to totalStars and starNumber in one update.
	IncrementRatingCounters(ctx context.Context, id string, starDelta, countDelta int) error
}

type productRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewProductRepository(coll *mongo.Collection, log *zap.Logger) ProductRepository {
	return &productRepository{
		coll: coll,
		log:  log.With(zap.String("repository", "product")),
	}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if _, err := r.coll.InsertOne(ctx, product); err != nil {
		r.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("title", product.Title),
			zap.String("user_id", product.UserID),
		)
		return fmt.Errorf("create product: %w", err)
	}

	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&product)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.String("product_id", id),
		)
		return nil, fmt.Errorf("find product by ID %s: %w", id, err)
	}

	return &product, nil
}

func (r *productRepository) FindAll(ctx context.Context, filter ProductFilter) ([]*entity.Product, error) {
	opts := options.Find().SetSort(productSort(filter))

	cursor, err := r.coll.Find(ctx, productQuery(filter), opts)
	if err != nil {
		r.log.Error("Failed to find products",
			zap.Error(err),
			zap.String("cat", filter.Cat),
			zap.String("user_id", filter.UserID),
		)
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cursor.Close(ctx)

	products := make([]*entity.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		r.log.Error("Failed to decode products", zap.Error(err))
		return nil, fmt.Errorf("decode products: %w", err)
	}

	return products, nil
}

// Update writes the descriptive fields of product. Rating counters and sales
// are not touched.
func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	update := bson.M{"$set": bson.M{
		"title":             product.Title,
		"desc":              product.Desc,
		"cat":               product.Cat,
		"price":             product.Price,
		"cover":             product.Cover,
		"images":            product.Images,
		"shortTitle":        product.ShortTitle,
		"shortDesc":         product.ShortDesc,
		"availableQuantity": product.AvailableQuantity,
		"updatedAt":         product.UpdatedAt,
	}}

	result, err := r.coll.UpdateByID(ctx, product.ID, update)
	if err != nil {
		r.log.Error("Failed to update product",
			zap.Error(err),
			zap.String("product_id", product.ID),
		)
		return fmt.Errorf("update product %s: %w", product.ID, err)
	}

	if result.MatchedCount == 0 {
		return apperr.ErrProductNotFound
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.log.Error("Failed to delete product",
			zap.Error(err),
			zap.String("product_id", id),
		)
		return fmt.Errorf("delete product %s: %w", id, err)
	}

	if result.DeletedCount == 0 {
		return apperr.ErrProductNotFound
	}

	r.log.Info("Product deleted", zap.String("product_id", id))
	return nil
}

func (r *productRepository) IncrementRatingCounters(ctx context.Context, id string, starDelta, countDelta int) error {
	update := bson.M{
		"$inc": bson.M{"totalStars": starDelta, "starNumber": countDelta},
		"$set": bson.M{"updatedAt": time.Now()},
	}

	result, err := r.coll.UpdateByID(ctx, id, update)
	if err != nil {
		r.log.Error("Failed to increment rating counters",
			zap.Error(err),
			zap.String("product_id", id),
			zap.Int("star_delta", starDelta),
			zap.Int("count_delta", countDelta),
		)
		return fmt.Errorf("increment rating counters of product %s: %w", id, err)
	}

	if result.MatchedCount == 0 {
		return apperr.ErrProductNotFound
	}

	return nil
}

func productQuery(filter ProductFilter) bson.M {
	query := bson.M{}

	if filter.UserID != "" {
		query["userId"] = filter.UserID
	}
	if filter.Cat != "" {
		query["cat"] = filter.Cat
	}
	if filter.Search != "" {
		query["title"] = bson.M{"$regex": regexp.QuoteMeta(filter.Search), "$options": "i"}
	}

	price := bson.M{}
	if filter.Min != nil {
		price["$gte"] = *filter.Min
	}
	if filter.Max != nil {
		price["$lte"] = *filter.Max
	}
	if len(price) > 0 {
		query["price"] = price
	}

	return query
}

func productSort(filter ProductFilter) bson.D {
	if filter.Sort == "sales" {
		return bson.D{{Key: "sales", Value: -1}, {Key: "createdAt", Value: -1}}
	}
	return bson.D{{Key: "createdAt", Value: -1}}
}
