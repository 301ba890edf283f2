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

type OrderService interface {
	CreateOrder(ctx context.Context, identity utils.Identity, req *request.CreateOrderRequest) (*response.OrderResponse, error)
	GetOrders(ctx context.Context, identity utils.Identity) ([]response.OrderResponse, error)
}

type orderService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		log:  log.With(zap.String("service", "order")),
	}
}

func (s *orderService) CreateOrder(ctx context.Context, identity utils.Identity, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	if identity.IsSeller {
		s.log.Warn("Seller tried to place an order", zap.String("user_id", identity.UserID))
		return nil, apperr.ErrBuyerOnly
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

	// title, price and cover are copied so later edits of the add do not
	// rewrite past orders
	order := &entity.Order{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.NewString(),
			CreatedAt: time.Now(),
		},
		AddID:    product.ID,
		Img:      product.Cover,
		Title:    product.Title,
		Price:    product.Price,
		Quantity: req.Quantity,
		SellerID: product.UserID,
		BuyerID:  identity.UserID,
	}

	if err := s.repo.Order.Create(ctx, order); err != nil {
		return nil, err
	}

	s.log.Info("Order created",
		zap.String("order_id", order.ID),
		zap.String("buyer_id", identity.UserID),
		zap.String("add_id", product.ID),
		zap.Int("quantity", req.Quantity),
	)

	resp := response.OrderToResponse(order)
	return &resp, nil
}

// GetOrders lists the orders a seller received, or the orders a buyer placed.
func (s *orderService) GetOrders(ctx context.Context, identity utils.Identity) ([]response.OrderResponse, error) {
	var (
		orders []*entity.Order
		err    error
	)
	if identity.IsSeller {
		orders, err = s.repo.Order.FindBySellerID(ctx, identity.UserID)
	} else {
		orders, err = s.repo.Order.FindByBuyerID(ctx, identity.UserID)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]response.OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = response.OrderToResponse(order)
	}

	return responses, nil
}
