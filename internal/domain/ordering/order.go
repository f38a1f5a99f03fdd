package ordering

import (
	"github.com/shopspring/decimal"

	"github.com/orderhub/backend/internal/domain/shared"
)

// Order is the ordering aggregate root. Customer fields are denormalized
// snapshots taken at creation time so that later customer edits do not
// rewrite order history.
type Order struct {
	shared.BaseEntity
	CustomerID     int64           `gorm:"not null;index" json:"customer_id"`
	CustomerName   string          `gorm:"size:200;not null" json:"customer_name"`
	CustomerEmail  string          `gorm:"size:200;not null" json:"customer_email"`
	CustomerMobile string          `gorm:"size:50" json:"customer_mobile"`
	Status         Status          `gorm:"size:20;not null;default:pending;index" json:"status"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"total_amount"`
	Items          []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// OrderItem is a line on an order. ProductID is nullable because the product
// may be deleted after the order was placed; the name and price snapshots
// keep the line meaningful.
type OrderItem struct {
	shared.BaseEntity
	OrderID     int64           `gorm:"not null;index" json:"order_id"`
	ProductID   *int64          `gorm:"index" json:"product_id"`
	ProductName string          `gorm:"size:200;not null" json:"product_name"`
	Price       decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"price"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"subtotal"`
}

func (Order) TableName() string     { return "orders" }
func (OrderItem) TableName() string { return "order_items" }

// CustomerSnapshot carries the denormalized customer fields for a new order.
type CustomerSnapshot struct {
	CustomerID int64
	Name       string
	Email      string
	Mobile     string
}

// NewOrderItemInput is one requested line for a new order.
type NewOrderItemInput struct {
	ProductID   *int64
	ProductName string
	Price       decimal.Decimal
	Quantity    int
}

// NewOrder builds a pending order from a customer snapshot and item inputs.
// Line subtotals and the order total are always computed here; amounts sent
// by clients are ignored.
func NewOrder(customer CustomerSnapshot, items []NewOrderItemInput) (*Order, error) {
	if customer.CustomerID <= 0 {
		return nil, shared.NewDomainError(shared.ErrCodeInvalidInput, "customer id is required")
	}
	if customer.Name == "" {
		return nil, shared.NewDomainError(shared.ErrCodeInvalidInput, "customer name is required")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError(shared.ErrCodeInvalidInput, "order must contain at least one item")
	}

	order := &Order{
		CustomerID:     customer.CustomerID,
		CustomerName:   customer.Name,
		CustomerEmail:  customer.Email,
		CustomerMobile: customer.Mobile,
		Status:         StatusPending,
		TotalAmount:    decimal.Zero,
	}
	for _, in := range items {
		if in.ProductName == "" {
			return nil, shared.NewDomainError(shared.ErrCodeInvalidInput, "item product name is required")
		}
		if in.Quantity < 1 {
			return nil, shared.NewDomainError(shared.ErrCodeInvalidInput,
				"item %q quantity must be at least 1", in.ProductName)
		}
		if in.Price.IsNegative() {
			return nil, shared.NewDomainError(shared.ErrCodeInvalidInput,
				"item %q price must not be negative", in.ProductName)
		}
		subtotal := in.Price.Mul(decimal.NewFromInt(int64(in.Quantity)))
		order.Items = append(order.Items, OrderItem{
			ProductID:   in.ProductID,
			ProductName: in.ProductName,
			Price:       in.Price,
			Quantity:    in.Quantity,
			Subtotal:    subtotal,
		})
		order.TotalAmount = order.TotalAmount.Add(subtotal)
	}
	return order, nil
}

// SetStatus applies a manual status change. Any valid status is accepted,
// including moves backwards through the lifecycle; operators use this to
// correct mis-advanced orders, and the automatic sweep picks the order up
// again from the new state.
func (o *Order) SetStatus(s Status) error {
	if !s.IsValid() {
		return shared.NewDomainError(shared.ErrCodeInvalidStatus, "invalid status %q", s.String())
	}
	o.Status = s
	return nil
}

// CanCancel reports whether the order may still be cancelled. Once the order
// has entered fulfilment it can no longer be withdrawn.
func (o *Order) CanCancel() bool {
	return o.Status == StatusPending
}
