package usecase

import (
	"context"
	"testing"

	"marketplace/internal/data/entity"
	"marketplace/internal/data/repository"
	"marketplace/internal/dto/request"
	"marketplace/pkg/apperr"
	"marketplace/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validCreateProduct() *request.CreateProductRequest {
	return &request.CreateProductRequest{
		Title:             "Logo design",
		Desc:              "A custom logo",
		Cat:               "design",
		Price:             49.5,
		Cover:             "cover.png",
		ShortTitle:        "Logo",
		AvailableQuantity: 3,
	}
}

func TestProductService_CreateProduct(t *testing.T) {
	fx := newServiceFixtures(t)
	seller := utils.Identity{UserID: "seller-1", IsSeller: true}

	var stored *entity.Product
	fx.products.On("Create", mock.Anything, mock.AnythingOfType("*entity.Product")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*entity.Product) }).
		Return(nil).Once()

	product, err := fx.service.Product.CreateProduct(context.Background(), seller, validCreateProduct())
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, "seller-1", stored.UserID)
	assert.Zero(t, stored.TotalStars)
	assert.Zero(t, stored.StarNumber)
	assert.Zero(t, stored.Sales)
	assert.Equal(t, 0.0, product.AverageRating)
	assert.Equal(t, []string{}, product.Images)
}

func TestProductService_CreateProductBuyer(t *testing.T) {
	fx := newServiceFixtures(t)

	_, err := fx.service.Product.CreateProduct(context.Background(),
		utils.Identity{UserID: "buyer-1"}, validCreateProduct())
	assert.ErrorIs(t, err, apperr.ErrSellerOnly)
	assert.Equal(t, "Only sellers can create an add!", err.Error())
}

func TestProductService_GetProduct(t *testing.T) {
	fx := newServiceFixtures(t)

	fx.products.On("FindByID", mock.Anything, "P").Return(newProduct("P", "seller-1"), nil).Once()
	fx.products.On("FindByID", mock.Anything, "missing").Return(nil, nil).Once()

	product, err := fx.service.Product.GetProduct(context.Background(), "P")
	require.NoError(t, err)
	assert.Equal(t, 4.0, product.AverageRating)

	_, err = fx.service.Product.GetProduct(context.Background(), "missing")
	assert.ErrorIs(t, err, apperr.ErrProductNotFound)
}

func TestProductService_GetProducts(t *testing.T) {
	fx := newServiceFixtures(t)
	minPrice := 10.0

	fx.products.On("FindAll", mock.Anything, repository.ProductFilter{Cat: "design", Min: &minPrice, Sort: "sales"}).
		Return([]*entity.Product{newProduct("P", "seller-1")}, nil).Once()

	products, err := fx.service.Product.GetProducts(context.Background(),
		&request.ProductQuery{Cat: "design", Min: &minPrice, Sort: "sales"})
	require.NoError(t, err)
	assert.Len(t, products, 1)

	_, err = fx.service.Product.GetProducts(context.Background(), &request.ProductQuery{Sort: "price"})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestProductService_UpdateProduct(t *testing.T) {
	fx := newServiceFixtures(t)
	owner := utils.Identity{UserID: "seller-1", IsSeller: true}
	product := newProduct("P", "seller-1")

	fx.products.On("FindByID", mock.Anything, "P").Return(product, nil)
	fx.products.On("Update", mock.Anything, product).Return(nil).Once()

	title := "Better logo"
	updated, err := fx.service.Product.UpdateProduct(context.Background(), owner, "P",
		&request.UpdateProductRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Better logo", updated.Title)
	assert.Equal(t, 49.5, updated.Price)
	assert.Equal(t, 8, updated.TotalStars)

	_, err = fx.service.Product.UpdateProduct(context.Background(),
		utils.Identity{UserID: "seller-2", IsSeller: true}, "P", &request.UpdateProductRequest{Title: &title})
	assert.ErrorIs(t, err, apperr.ErrNotOwner)
	fx.products.AssertNumberOfCalls(t, "Update", 1)
}

func TestProductService_DeleteProduct(t *testing.T) {
	fx := newServiceFixtures(t)
	owner := utils.Identity{UserID: "seller-1", IsSeller: true}

	fx.products.On("FindByID", mock.Anything, "P").Return(newProduct("P", "seller-1"), nil)
	fx.products.On("FindByID", mock.Anything, "missing").Return(nil, nil).Once()
	fx.products.On("Delete", mock.Anything, "P").Return(nil).Once()

	err := fx.service.Product.DeleteProduct(context.Background(), utils.Identity{UserID: "other"}, "P")
	assert.ErrorIs(t, err, apperr.ErrNotOwner)

	err = fx.service.Product.DeleteProduct(context.Background(), owner, "missing")
	assert.ErrorIs(t, err, apperr.ErrProductNotFound)

	require.NoError(t, fx.service.Product.DeleteProduct(context.Background(), owner, "P"))
}
