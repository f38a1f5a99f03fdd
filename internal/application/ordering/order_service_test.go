package ordering

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/orderhub/backend/internal/domain/ordering"
	"github.com/orderhub/backend/internal/domain/partner"
	"github.com/orderhub/backend/internal/domain/shared"
)

// MockOrderRepository mocks ordering.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *ordering.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id int64) (*ordering.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter ordering.OrderListFilter) ([]ordering.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id int64, status ordering.Status, now time.Time) error {
	args := m.Called(ctx, id, status, now)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) AdvanceIdle(ctx context.Context, rule ordering.TransitionRule, now time.Time) (int64, error) {
	args := m.Called(ctx, rule, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CountByStatus(ctx context.Context) (map[ordering.Status]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[ordering.Status]int64), args.Error(1)
}

// MockCustomerRepository mocks partner.CustomerRepository.
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id int64) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByEmail(ctx context.Context, email string) (*partner.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func testCustomerEntity() *partner.Customer {
	c := &partner.Customer{Name: "Alice", Email: "alice@example.com", Mobile: "555-0100"}
	c.ID = 7
	return c
}

func newTestOrderService(orders *MockOrderRepository, customers *MockCustomerRepository) *OrderService {
	return NewOrderService(orders, customers, zap.NewNop(), fixedNow)
}

func TestOrderServiceCreateOrder(t *testing.T) {
	t.Run("creates order with computed total", func(t *testing.T) {
		orders := new(MockOrderRepository)
		customers := new(MockCustomerRepository)
		svc := newTestOrderService(orders, customers)

		customers.On("FindByID", mock.Anything, int64(7)).Return(testCustomerEntity(), nil)
		orders.On("Create", mock.Anything, mock.MatchedBy(func(o *ordering.Order) bool {
			return o.TotalAmount.Equal(decimal.NewFromInt(25)) &&
				o.Status == ordering.StatusPending &&
				o.CustomerName == "Alice"
		})).Return(nil)

		resp, err := svc.CreateOrder(context.Background(), CreateOrderRequest{
			CustomerID: 7,
			Items: []CreateOrderItemRequest{
				{ProductName: "Widget", Price: decimal.NewFromInt(10), Quantity: 2},
				{ProductName: "Gadget", Price: decimal.NewFromInt(5), Quantity: 1},
			},
		})
		require.NoError(t, err)
		assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(25)))
		assert.Equal(t, "pending", resp.Status)
		assert.Len(t, resp.Items, 2)
		orders.AssertExpectations(t)
		customers.AssertExpectations(t)
	})

	t.Run("unknown customer", func(t *testing.T) {
		orders := new(MockOrderRepository)
		customers := new(MockCustomerRepository)
		svc := newTestOrderService(orders, customers)

		customers.On("FindByID", mock.Anything, int64(99)).Return(nil, shared.ErrNotFound)

		_, err := svc.CreateOrder(context.Background(), CreateOrderRequest{
			CustomerID: 99,
			Items:      []CreateOrderItemRequest{{ProductName: "Widget", Price: decimal.NewFromInt(1), Quantity: 1}},
		})
		require.ErrorIs(t, err, shared.ErrNotFound)
		orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("invalid items never reach the repository", func(t *testing.T) {
		orders := new(MockOrderRepository)
		customers := new(MockCustomerRepository)
		svc := newTestOrderService(orders, customers)

		customers.On("FindByID", mock.Anything, int64(7)).Return(testCustomerEntity(), nil)

		_, err := svc.CreateOrder(context.Background(), CreateOrderRequest{
			CustomerID: 7,
			Items:      []CreateOrderItemRequest{{ProductName: "Widget", Price: decimal.NewFromInt(1), Quantity: 0}},
		})
		require.Error(t, err)

		var de *shared.DomainError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, shared.ErrCodeInvalidInput, de.Code)
		orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestOrderServiceListOrders(t *testing.T) {
	t.Run("passes a parsed status filter", func(t *testing.T) {
		orders := new(MockOrderRepository)
		svc := newTestOrderService(orders, new(MockCustomerRepository))

		pending := ordering.StatusPending
		orders.On("FindAll", mock.Anything, ordering.OrderListFilter{Status: &pending}).
			Return([]ordering.Order{}, nil)

		raw := "pending"
		_, err := svc.ListOrders(context.Background(), OrderListFilter{Status: &raw})
		require.NoError(t, err)
		orders.AssertExpectations(t)
	})

	t.Run("rejects an invalid status filter", func(t *testing.T) {
		orders := new(MockOrderRepository)
		svc := newTestOrderService(orders, new(MockCustomerRepository))

		raw := "shipped"
		_, err := svc.ListOrders(context.Background(), OrderListFilter{Status: &raw})
		require.Error(t, err)

		var de *shared.DomainError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, shared.ErrCodeInvalidStatus, de.Code)
		orders.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
	})
}

func TestOrderServiceUpdateOrderStatus(t *testing.T) {
	t.Run("accepts a backward move", func(t *testing.T) {
		orders := new(MockOrderRepository)
		svc := newTestOrderService(orders, new(MockCustomerRepository))

		updated := &ordering.Order{Status: ordering.StatusPending, CustomerName: "Alice"}
		updated.ID = 3
		orders.On("UpdateStatus", mock.Anything, int64(3), ordering.StatusPending, fixedNow()).Return(nil)
		orders.On("FindByID", mock.Anything, int64(3)).Return(updated, nil)

		resp, err := svc.UpdateOrderStatus(context.Background(), 3, UpdateOrderStatusRequest{Status: "pending"})
		require.NoError(t, err)
		assert.Equal(t, "pending", resp.Status)
		orders.AssertExpectations(t)
	})

	t.Run("rejects an unknown status value", func(t *testing.T) {
		orders := new(MockOrderRepository)
		svc := newTestOrderService(orders, new(MockCustomerRepository))

		_, err := svc.UpdateOrderStatus(context.Background(), 3, UpdateOrderStatusRequest{Status: "shipped"})
		require.Error(t, err)

		var de *shared.DomainError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, shared.ErrCodeInvalidStatus, de.Code)
		orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing order", func(t *testing.T) {
		orders := new(MockOrderRepository)
		svc := newTestOrderService(orders, new(MockCustomerRepository))

		orders.On("UpdateStatus", mock.Anything, int64(404), ordering.StatusShipping, fixedNow()).
			Return(shared.ErrNotFound)

		_, err := svc.UpdateOrderStatus(context.Background(), 404, UpdateOrderStatusRequest{Status: "shipping"})
		require.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestOrderServiceCancelOrder(t *testing.T) {
	pendingOrder := func() *ordering.Order {
		o := &ordering.Order{Status: ordering.StatusPending, CustomerName: "Alice"}
		o.ID = 5
		return o
	}

	t.Run("deletes a pending order", func(t *testing.T) {
		orders := new(MockOrderRepository)
		svc := newTestOrderService(orders, new(MockCustomerRepository))

		orders.On("FindByID", mock.Anything, int64(5)).Return(pendingOrder(), nil)
		orders.On("Delete", mock.Anything, int64(5)).Return(nil)

		resp, err := svc.CancelOrder(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, int64(5), resp.ID)
		orders.AssertExpectations(t)
	})

	t.Run("refuses a processing order", func(t *testing.T) {
		orders := new(MockOrderRepository)
		svc := newTestOrderService(orders, new(MockCustomerRepository))

		o := pendingOrder()
		o.Status = ordering.StatusProcessing
		orders.On("FindByID", mock.Anything, int64(5)).Return(o, nil)

		_, err := svc.CancelOrder(context.Background(), 5)
		require.Error(t, err)

		var de *shared.DomainError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, shared.ErrCodeInvalidTransition, de.Code)
		orders.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestOrderServiceOrderStats(t *testing.T) {
	orders := new(MockOrderRepository)
	svc := newTestOrderService(orders, new(MockCustomerRepository))

	orders.On("CountByStatus", mock.Anything).Return(map[ordering.Status]int64{
		ordering.StatusPending:   2,
		ordering.StatusDelivered: 3,
	}, nil)

	stats, err := svc.OrderStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.Total)
	assert.Equal(t, int64(2), stats.ByStatus["pending"])
	assert.Equal(t, int64(0), stats.ByStatus["processing"])
	assert.Equal(t, int64(3), stats.ByStatus["delivered"])
}
