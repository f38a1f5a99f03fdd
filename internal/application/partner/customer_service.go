package partner

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/orderhub/backend/internal/domain/partner"
	"github.com/orderhub/backend/internal/domain/shared"
)

// RegisterCustomerRequest creates a new customer account.
type RegisterCustomerRequest struct {
	Name   string `json:"name" binding:"required,min=1,max=200"`
	Email  string `json:"email" binding:"required,email"`
	Mobile string `json:"mobile" binding:"omitempty,max=50"`
}

// LoginRequest identifies a returning customer by email.
type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// UpdateCustomerRequest changes the mutable profile fields.
type UpdateCustomerRequest struct {
	Name   string `json:"name" binding:"required,min=1,max=200"`
	Mobile string `json:"mobile" binding:"omitempty,max=50"`
}

// CustomerResponse is a customer in API responses.
type CustomerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	CreatedAt time.Time `json:"created_at"`
}

func toCustomerResponse(c *partner.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Mobile:    c.Mobile,
		CreatedAt: c.CreatedAt,
	}
}

// CustomerService implements the customer use cases.
type CustomerService struct {
	customers partner.CustomerRepository
	logger    *zap.Logger
}

func NewCustomerService(customers partner.CustomerRepository, logger *zap.Logger) *CustomerService {
	return &CustomerService{customers: customers, logger: logger}
}

// Register creates a customer account. The email must not be taken.
func (s *CustomerService) Register(ctx context.Context, req RegisterCustomerRequest) (*CustomerResponse, error) {
	customer, err := partner.NewCustomer(req.Name, req.Email, req.Mobile)
	if err != nil {
		return nil, err
	}

	taken, err := s.customers.ExistsByEmail(ctx, customer.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shared.NewDomainError(shared.ErrCodeAlreadyExists,
			"email %s is already registered", customer.Email)
	}

	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}

	s.logger.Info("customer registered",
		zap.Int64("customer_id", customer.ID),
		zap.String("email", customer.Email))

	return toCustomerResponse(customer), nil
}

// Login looks a customer up by email. There is no credential check; the
// storefront identifies returning customers by their address alone.
func (s *CustomerService) Login(ctx context.Context, req LoginRequest) (*CustomerResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	customer, err := s.customers.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetCustomer returns one customer by id.
func (s *CustomerService) GetCustomer(ctx context.Context, id int64) (*CustomerResponse, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// UpdateCustomer changes name and mobile. Email stays fixed.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id int64, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := customer.UpdateProfile(req.Name, req.Mobile); err != nil {
		return nil, err
	}

	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, err
	}

	return toCustomerResponse(customer), nil
}
