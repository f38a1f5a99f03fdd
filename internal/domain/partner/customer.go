package partner

import (
	"context"
	"strings"

	"github.com/orderhub/backend/internal/domain/shared"
)

// Customer is a registered buyer. Email is the unique login identifier.
type Customer struct {
	shared.BaseEntity
	Name   string `gorm:"size:200;not null" json:"name"`
	Email  string `gorm:"size:200;not null;uniqueIndex" json:"email"`
	Mobile string `gorm:"size:50" json:"mobile"`
}

func (Customer) TableName() string { return "customers" }

// NewCustomer validates and builds a customer. Email is normalized to lower
// case so uniqueness is case-insensitive.
func NewCustomer(name, email, mobile string) (*Customer, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		return nil, shared.NewDomainError(shared.ErrCodeInvalidInput, "customer name is required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, shared.NewDomainError(shared.ErrCodeInvalidInput, "a valid email is required")
	}
	return &Customer{Name: name, Email: email, Mobile: strings.TrimSpace(mobile)}, nil
}

// UpdateProfile changes the mutable fields. Email is immutable because
// orders snapshot it and it doubles as the login identifier.
func (c *Customer) UpdateProfile(name, mobile string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError(shared.ErrCodeInvalidInput, "customer name is required")
	}
	c.Name = name
	c.Mobile = strings.TrimSpace(mobile)
	return nil
}

// CustomerRepository is the persistence port for customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *Customer) error
	FindByID(ctx context.Context, id int64) (*Customer, error)
	FindByEmail(ctx context.Context, email string) (*Customer, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, customer *Customer) error
}
