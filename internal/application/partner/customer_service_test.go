package partner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/orderhub/backend/internal/domain/partner"
	"github.com/orderhub/backend/internal/domain/shared"
)

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

func TestCustomerServiceRegister(t *testing.T) {
	t.Run("registers a new customer", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		svc := NewCustomerService(repo, zap.NewNop())

		repo.On("ExistsByEmail", mock.Anything, "carol@example.com").Return(false, nil)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(c *partner.Customer) bool {
			return c.Email == "carol@example.com" && c.Name == "Carol"
		})).Return(nil)

		resp, err := svc.Register(context.Background(), RegisterCustomerRequest{
			Name: "Carol", Email: "Carol@Example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "carol@example.com", resp.Email)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		svc := NewCustomerService(repo, zap.NewNop())

		repo.On("ExistsByEmail", mock.Anything, "carol@example.com").Return(true, nil)

		_, err := svc.Register(context.Background(), RegisterCustomerRequest{
			Name: "Carol", Email: "carol@example.com",
		})
		require.Error(t, err)

		var de *shared.DomainError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, shared.ErrCodeAlreadyExists, de.Code)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCustomerServiceLogin(t *testing.T) {
	repo := new(MockCustomerRepository)
	svc := NewCustomerService(repo, zap.NewNop())

	existing := &partner.Customer{Name: "Carol", Email: "carol@example.com"}
	existing.ID = 4
	repo.On("FindByEmail", mock.Anything, "carol@example.com").Return(existing, nil)
	repo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, shared.ErrNotFound)

	resp, err := svc.Login(context.Background(), LoginRequest{Email: " Carol@example.com "})
	require.NoError(t, err)
	assert.Equal(t, int64(4), resp.ID)

	_, err = svc.Login(context.Background(), LoginRequest{Email: "nobody@example.com"})
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCustomerServiceUpdateCustomer(t *testing.T) {
	repo := new(MockCustomerRepository)
	svc := NewCustomerService(repo, zap.NewNop())

	existing := &partner.Customer{Name: "Carol", Email: "carol@example.com"}
	existing.ID = 4
	repo.On("FindByID", mock.Anything, int64(4)).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(c *partner.Customer) bool {
		return c.Name == "Caroline" && c.Email == "carol@example.com"
	})).Return(nil)

	resp, err := svc.UpdateCustomer(context.Background(), 4, UpdateCustomerRequest{
		Name: "Caroline", Mobile: "555-0103",
	})
	require.NoError(t, err)
	assert.Equal(t, "Caroline", resp.Name)
	assert.Equal(t, "carol@example.com", resp.Email)
	repo.AssertExpectations(t)
}
