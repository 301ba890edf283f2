package usecase

import (
	"context"
	"testing"

	"marketplace/internal/data/entity"
	"marketplace/internal/data/repository"
	"marketplace/pkg/security"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepository struct{ mock.Mock }

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

type mockProductRepository struct{ mock.Mock }

func (m *mockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*entity.Product)
	return product, args.Error(1)
}

func (m *mockProductRepository) FindAll(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	args := m.Called(ctx, filter)
	products, _ := args.Get(0).([]*entity.Product)
	return products, args.Error(1)
}

func (m *mockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockProductRepository) IncrementRatingCounters(ctx context.Context, id string, starDelta, countDelta int) error {
	return m.Called(ctx, id, starDelta, countDelta).Error(0)
}

type mockReviewRepository struct{ mock.Mock }

func (m *mockReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *mockReviewRepository) FindByID(ctx context.Context, id string) (*entity.Review, error) {
	args := m.Called(ctx, id)
	review, _ := args.Get(0).(*entity.Review)
	return review, args.Error(1)
}

func (m *mockReviewRepository) FindByProductAndUser(ctx context.Context, addID, userID string) (*entity.Review, error) {
	args := m.Called(ctx, addID, userID)
	review, _ := args.Get(0).(*entity.Review)
	return review, args.Error(1)
}

func (m *mockReviewRepository) FindByProductID(ctx context.Context, addID string) ([]*entity.Review, error) {
	args := m.Called(ctx, addID)
	reviews, _ := args.Get(0).([]*entity.Review)
	return reviews, args.Error(1)
}

type mockOrderRepository struct{ mock.Mock }

func (m *mockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *mockOrderRepository) FindByBuyerID(ctx context.Context, buyerID string) ([]*entity.Order, error) {
	args := m.Called(ctx, buyerID)
	orders, _ := args.Get(0).([]*entity.Order)
	return orders, args.Error(1)
}

func (m *mockOrderRepository) FindBySellerID(ctx context.Context, sellerID string) ([]*entity.Order, error) {
	args := m.Called(ctx, sellerID)
	orders, _ := args.Get(0).([]*entity.Order)
	return orders, args.Error(1)
}

// serviceFixtures holds the services under test and their mocked repositories.
// Hashing and token signing run for real.
type serviceFixtures struct {
	service  *Service
	users    *mockUserRepository
	products *mockProductRepository
	reviews  *mockReviewRepository
	orders   *mockOrderRepository
	tokens   *security.TokenService
}

func newServiceFixtures(t *testing.T) serviceFixtures {
	t.Helper()

	users := &mockUserRepository{}
	products := &mockProductRepository{}
	reviews := &mockReviewRepository{}
	orders := &mockOrderRepository{}

	tokens, err := security.NewTokenService("usecase_test_secret", 0)
	require.NoError(t, err)

	repo := &repository.Repository{
		User:    users,
		Product: products,
		Review:  reviews,
		Order:   orders,
	}
	service := NewService(repo, security.NewHasher(bcrypt.MinCost, 2), tokens, zap.NewNop())

	t.Cleanup(func() {
		users.AssertExpectations(t)
		products.AssertExpectations(t)
		reviews.AssertExpectations(t)
		orders.AssertExpectations(t)
	})

	return serviceFixtures{
		service:  service,
		users:    users,
		products: products,
		reviews:  reviews,
		orders:   orders,
		tokens:   tokens,
	}
}
