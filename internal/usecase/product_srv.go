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

type ProductService interface {
	CreateProduct(ctx context.Context, identity utils.Identity, req *request.CreateProductRequest) (*response.ProductResponse, error)
	GetProduct(ctx context.Context, id string) (*response.ProductResponse, error)
	GetProducts(ctx context.Context, query *request.ProductQuery) ([]response.ProductResponse, error)
	UpdateProduct(ctx context.Context, identity utils.Identity, id string, req *request.UpdateProductRequest) (*response.ProductResponse, error)
	DeleteProduct(ctx context.Context, identity utils.Identity, id string) error
}

type productService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProductService(repo *repository.Repository, log *zap.Logger) ProductService {
	return &productService{
		repo: repo,
		log:  log.With(zap.String("service", "product")),
	}
}

func (s *productService) CreateProduct(ctx context.Context, identity utils.Identity, req *request.CreateProductRequest) (*response.ProductResponse, error) {
	if !identity.IsSeller {
		s.log.Warn("Non-seller tried to create a product", zap.String("user_id", identity.UserID))
		return nil, apperr.ErrSellerOnly
	}

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		Base: entity.Base{
			ID:        uuid.NewString(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:            identity.UserID,
		Title:             req.Title,
		Desc:              req.Desc,
		Cat:               req.Cat,
		Price:             req.Price,
		Cover:             req.Cover,
		Images:            req.Images,
		ShortTitle:        req.ShortTitle,
		ShortDesc:         req.ShortDesc,
		AvailableQuantity: req.AvailableQuantity,
	}

	if err := s.repo.Product.Create(ctx, product); err != nil {
		return nil, err
	}

	s.log.Info("Product created",
		zap.String("product_id", product.ID),
		zap.String("user_id", identity.UserID),
	)

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) GetProduct(ctx context.Context, id string) (*response.ProductResponse, error) {
	product, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) GetProducts(ctx context.Context, query *request.ProductQuery) ([]response.ProductResponse, error) {
	if err := validateRequest(query); err != nil {
		return nil, err
	}

	products, err := s.repo.Product.FindAll(ctx, repository.ProductFilter{
		UserID: query.UserID,
		Cat:    query.Cat,
		Search: query.Search,
		Min:    query.Min,
		Max:    query.Max,
		Sort:   query.Sort,
	})
	if err != nil {
		return nil, err
	}

	return response.ProductsToResponse(products), nil
}

func (s *productService) UpdateProduct(ctx context.Context, identity utils.Identity, id string, req *request.UpdateProductRequest) (*response.ProductResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	product, err := s.findOwned(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		product.Title = *req.Title
	}
	if req.Desc != nil {
		product.Desc = *req.Desc
	}
	if req.Cat != nil {
		product.Cat = *req.Cat
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Cover != nil {
		product.Cover = *req.Cover
	}
	if req.Images != nil {
		product.Images = *req.Images
	}
	if req.ShortTitle != nil {
		product.ShortTitle = *req.ShortTitle
	}
	if req.ShortDesc != nil {
		product.ShortDesc = *req.ShortDesc
	}
	if req.AvailableQuantity != nil {
		product.AvailableQuantity = *req.AvailableQuantity
	}
	product.UpdatedAt = time.Now()

	if err := s.repo.Product.Update(ctx, product); err != nil {
		return nil, err
	}

	s.log.Info("Product updated", zap.String("product_id", id))

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) DeleteProduct(ctx context.Context, identity utils.Identity, id string) error {
	if _, err := s.findOwned(ctx, identity, id); err != nil {
		return err
	}

	return s.repo.Product.Delete(ctx, id)
}

// ==================== HELPER METHODS ====================

func (s *productService) find(ctx context.Context, id string) (*entity.Product, error) {
	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperr.ErrProductNotFound
	}
	return product, nil
}

func (s *productService) findOwned(ctx context.Context, identity utils.Identity, id string) (*entity.Product, error) {
	product, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if product.UserID != identity.UserID {
		s.log.Warn("Product modification by non-owner",
			zap.String("product_id", id),
			zap.String("user_id", identity.UserID),
		)
		return nil, apperr.ErrNotOwner
	}

	return product, nil
}
