package ordering

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/orderhub/backend/internal/domain/ordering"
	"github.com/orderhub/backend/internal/domain/partner"
	"github.com/orderhub/backend/internal/domain/shared"
)

// OrderService implements the order use cases.
type OrderService struct {
	orders    ordering.OrderRepository
	customers partner.CustomerRepository
	logger    *zap.Logger
	now       func() time.Time
}

// NewOrderService creates an OrderService. A nil now defaults to time.Now.
func NewOrderService(
	orders ordering.OrderRepository,
	customers partner.CustomerRepository,
	logger *zap.Logger,
	now func() time.Time,
) *OrderService {
	if now == nil {
		now = time.Now
	}
	return &OrderService{orders: orders, customers: customers, logger: logger, now: now}
}

// CreateOrder places an order for an existing customer. The customer fields
// are snapshotted onto the order and the total is computed from the items.
func (s *OrderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	customer, err := s.customers.FindByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	items := make([]ordering.NewOrderItemInput, 0, len(req.Items))
	for _, in := range req.Items {
		items = append(items, ordering.NewOrderItemInput{
			ProductID:   in.ProductID,
			ProductName: in.ProductName,
			Price:       in.Price,
			Quantity:    in.Quantity,
		})
	}

	order, err := ordering.NewOrder(ordering.CustomerSnapshot{
		CustomerID: customer.ID,
		Name:       customer.Name,
		Email:      customer.Email,
		Mobile:     customer.Mobile,
	}, items)
	if err != nil {
		return nil, err
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("order created",
		zap.Int64("order_id", order.ID),
		zap.Int64("customer_id", order.CustomerID),
		zap.String("total_amount", order.TotalAmount.String()),
		zap.Int("item_count", len(order.Items)))

	resp := ToOrderResponse(order)
	return &resp, nil
}

// GetOrder returns one order with its items.
func (s *OrderService) GetOrder(ctx context.Context, id int64) (*OrderResponse, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToOrderResponse(order)
	return &resp, nil
}

// ListOrders returns orders newest first, optionally filtered by status.
func (s *OrderService) ListOrders(ctx context.Context, filter OrderListFilter) ([]OrderResponse, error) {
	var domainFilter ordering.OrderListFilter
	if filter.Status != nil && *filter.Status != "" {
		status, err := ordering.ParseStatus(*filter.Status)
		if err != nil {
			return nil, err
		}
		domainFilter.Status = &status
	}

	orders, err := s.orders.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, ToOrderResponse(&orders[i]))
	}
	return responses, nil
}

// UpdateOrderStatus applies a manual status change. Any valid status is
// accepted, including backward moves; the value is validated but the
// transition is not restricted.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id int64, req UpdateOrderStatusRequest) (*OrderResponse, error) {
	status, err := ordering.ParseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	if err := s.orders.UpdateStatus(ctx, id, status, s.now()); err != nil {
		return nil, err
	}

	s.logger.Info("order status updated manually",
		zap.Int64("order_id", id),
		zap.String("status", status.String()))

	return s.GetOrder(ctx, id)
}

// CancelOrder removes a pending order and its items permanently. Orders that
// have entered fulfilment cannot be cancelled.
func (s *OrderService) CancelOrder(ctx context.Context, id int64) (*OrderResponse, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.CanCancel() {
		return nil, shared.NewDomainError(shared.ErrCodeInvalidTransition,
			"only pending orders can be cancelled, order %d is %s", id, order.Status)
	}

	if err := s.orders.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.logger.Info("order cancelled", zap.Int64("order_id", id))

	resp := ToOrderResponse(order)
	return &resp, nil
}

// OrderStats returns order counts per status.
func (s *OrderService) OrderStats(ctx context.Context) (*OrderStatsResponse, error) {
	counts, err := s.orders.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := &OrderStatsResponse{ByStatus: make(map[string]int64, len(counts))}
	for _, status := range ordering.AllStatuses() {
		n := counts[status]
		stats.ByStatus[status.String()] = n
		stats.Total += n
	}
	return stats, nil
}
