package ordering

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/orderhub/backend/internal/domain/ordering"
)

// CreateOrderRequest is a request to place a new order. Item name and price
// are snapshotted from the client's current view of the catalog; amounts are
// recomputed server-side.
type CreateOrderRequest struct {
	CustomerID int64                    `json:"customer_id" binding:"required"`
	Items      []CreateOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CreateOrderItemRequest is one line of a new order.
type CreateOrderItemRequest struct {
	ProductID   *int64          `json:"product_id"`
	ProductName string          `json:"product_name" binding:"required,min=1,max=200"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Quantity    int             `json:"quantity" binding:"required,min=1"`
}

// UpdateOrderStatusRequest is a manual status change.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderListFilter narrows the order listing.
type OrderListFilter struct {
	Status *string `form:"status"`
}

// OrderResponse is an order in API responses.
type OrderResponse struct {
	ID             int64               `json:"id"`
	CustomerID     int64               `json:"customer_id"`
	CustomerName   string              `json:"customer_name"`
	CustomerEmail  string              `json:"customer_email"`
	CustomerMobile string              `json:"customer_mobile"`
	Status         string              `json:"status"`
	TotalAmount    decimal.Decimal     `json:"total_amount"`
	Items          []OrderItemResponse `json:"items"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// OrderItemResponse is an order line in API responses.
type OrderItemResponse struct {
	ID          int64           `json:"id"`
	ProductID   *int64          `json:"product_id,omitempty"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// OrderStatsResponse reports order counts per lifecycle status.
type OrderStatsResponse struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"by_status"`
}

// ToOrderResponse maps a domain order to its API shape.
func ToOrderResponse(o *ordering.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal,
		})
	}
	return OrderResponse{
		ID:             o.ID,
		CustomerID:     o.CustomerID,
		CustomerName:   o.CustomerName,
		CustomerEmail:  o.CustomerEmail,
		CustomerMobile: o.CustomerMobile,
		Status:         o.Status.String(),
		TotalAmount:    o.TotalAmount,
		Items:          items,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}
