package ordering

import (
	"context"
	"time"
)

// OrderListFilter narrows order listings. A nil Status means all orders.
type OrderListFilter struct {
	Status *Status
}

// OrderRepository is the persistence port for the ordering aggregate.
type OrderRepository interface {
	// Create persists the order together with its items atomically.
	Create(ctx context.Context, order *Order) error

	// FindByID loads an order with its items.
	FindByID(ctx context.Context, id int64) (*Order, error)

	// FindAll returns orders newest first, optionally filtered by status.
	// Items are included.
	FindAll(ctx context.Context, filter OrderListFilter) ([]Order, error)

	// UpdateStatus sets the status and updated_at of a single order.
	// Returns shared.ErrNotFound when no row matches.
	UpdateStatus(ctx context.Context, id int64, status Status, now time.Time) error

	// Delete hard-deletes an order and its items.
	Delete(ctx context.Context, id int64) error

	// AdvanceIdle applies one transition rule as a single conditional bulk
	// update: every order in rule.From whose updated_at is at or before
	// now minus rule.MinIdle moves to rule.To with updated_at set to now.
	// Returns the number of orders advanced.
	AdvanceIdle(ctx context.Context, rule TransitionRule, now time.Time) (int64, error)

	// CountByStatus returns the number of orders per status.
	CountByStatus(ctx context.Context) (map[Status]int64, error)
}
