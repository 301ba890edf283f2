package usecase

import (
	"context"
	"testing"

	"marketplace/internal/data/entity"
	"marketplace/internal/dto/request"
	"marketplace/pkg/apperr"
	"marketplace/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_CreateOrder(t *testing.T) {
	fx := newServiceFixtures(t)
	buyer := utils.Identity{UserID: "buyer-1"}

	var stored *entity.Order
	fx.products.On("FindByID", mock.Anything, "P").Return(newProduct("P", "seller-1"), nil).Once()
	fx.orders.On("Create", mock.Anything, mock.AnythingOfType("*entity.Order")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*entity.Order) }).
		Return(nil).Once()

	order, err := fx.service.Order.CreateOrder(context.Background(), buyer,
		&request.CreateOrderRequest{AddID: "P", Quantity: 2})
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, "buyer-1", stored.BuyerID)
	assert.Equal(t, "seller-1", stored.SellerID)
	assert.Equal(t, "Logo design", stored.Title)
	assert.Equal(t, "cover.png", stored.Img)
	assert.False(t, stored.IsCompleted)
	assert.Equal(t, 99.0, order.Total)
}

func TestOrderService_SellerCannotOrder(t *testing.T) {
	fx := newServiceFixtures(t)

	_, err := fx.service.Order.CreateOrder(context.Background(),
		utils.Identity{UserID: "seller-1", IsSeller: true},
		&request.CreateOrderRequest{AddID: "P", Quantity: 1})
	assert.ErrorIs(t, err, apperr.ErrBuyerOnly)
	fx.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrderInvalid(t *testing.T) {
	fx := newServiceFixtures(t)
	buyer := utils.Identity{UserID: "buyer-1"}

	_, err := fx.service.Order.CreateOrder(context.Background(), buyer,
		&request.CreateOrderRequest{AddID: "P", Quantity: 0})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	fx.products.On("FindByID", mock.Anything, "gone").Return(nil, nil).Once()
	_, err = fx.service.Order.CreateOrder(context.Background(), buyer,
		&request.CreateOrderRequest{AddID: "gone", Quantity: 1})
	assert.ErrorIs(t, err, apperr.ErrProductNotFound)
}

func TestOrderService_GetOrders(t *testing.T) {
	fx := newServiceFixtures(t)

	fx.orders.On("FindByBuyerID", mock.Anything, "buyer-1").
		Return([]*entity.Order{{BaseSimple: entity.BaseSimple{ID: "o1"}, BuyerID: "buyer-1"}}, nil).Once()
	fx.orders.On("FindBySellerID", mock.Anything, "seller-1").
		Return([]*entity.Order{}, nil).Once()

	orders, err := fx.service.Order.GetOrders(context.Background(), utils.Identity{UserID: "buyer-1"})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "o1", orders[0].ID)

	orders, err = fx.service.Order.GetOrders(context.Background(), utils.Identity{UserID: "seller-1", IsSeller: true})
	require.NoError(t, err)
	assert.Empty(t, orders)
}
