package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/orderhub/backend/internal/domain/catalog"
	"github.com/orderhub/backend/internal/domain/shared"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindAllInStock(ctx context.Context, filter catalog.ProductListFilter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id int64) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func TestProductServiceListProducts(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewProductService(repo, zap.NewNop())

	widget := catalog.Product{Name: "Widget", Category: "tools", Price: decimal.NewFromInt(10), Stock: 3}
	widget.ID = 1

	t.Run("no filter", func(t *testing.T) {
		repo.On("FindAllInStock", mock.Anything, catalog.ProductListFilter{}).
			Return([]catalog.Product{widget}, nil).Once()

		products, err := svc.ListProducts(context.Background(), ProductListFilter{})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Widget", products[0].Name)
	})

	t.Run("empty category string means no filter", func(t *testing.T) {
		repo.On("FindAllInStock", mock.Anything, catalog.ProductListFilter{}).
			Return([]catalog.Product{widget}, nil).Once()

		empty := ""
		_, err := svc.ListProducts(context.Background(), ProductListFilter{Category: &empty})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("category filter is forwarded", func(t *testing.T) {
		tools := "tools"
		repo.On("FindAllInStock", mock.Anything, catalog.ProductListFilter{Category: &tools}).
			Return([]catalog.Product{widget}, nil).Once()

		_, err := svc.ListProducts(context.Background(), ProductListFilter{Category: &tools})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestProductServiceGetProduct(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewProductService(repo, zap.NewNop())

	repo.On("FindByID", mock.Anything, int64(99)).Return(nil, shared.ErrNotFound)

	_, err := svc.GetProduct(context.Background(), 99)
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestProductServiceListCategories(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewProductService(repo, zap.NewNop())

	repo.On("Categories", mock.Anything).Return([]string{"accessories", "tools"}, nil)

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"accessories", "tools"}, categories)
}
