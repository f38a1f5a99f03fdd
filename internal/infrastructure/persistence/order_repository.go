package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/orderhub/backend/internal/domain/ordering"
	"github.com/orderhub/backend/internal/domain/shared"
)

// GormOrderRepository implements ordering.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Create persists the order and its items in one transaction.
func (r *GormOrderRepository) Create(ctx context.Context, order *ordering.Order) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (r *GormOrderRepository) FindByID(ctx context.Context, id int64) (*ordering.Order, error) {
	var order ordering.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	return &order, nil
}

func (r *GormOrderRepository) FindAll(ctx context.Context, filter ordering.OrderListFilter) ([]ordering.Order, error) {
	var orders []ordering.Order
	query := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC, id DESC")
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if err := query.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus writes the status and updated_at in one statement so manual
// updates and the lifecycle sweep compose as last-writer-wins.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id int64, status ordering.Status, now time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&ordering.Order{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status.String(),
			"updated_at": now,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update order status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes the order and its items. Items are deleted explicitly so
// the hard delete does not depend on the database-level cascade.
func (r *GormOrderRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&ordering.OrderItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete order items: %w", err)
		}
		result := tx.Delete(&ordering.Order{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete order: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// AdvanceIdle applies one transition rule as a single conditional update.
// The status check in the WHERE clause makes each row's advance atomic: a
// row grabbed by a concurrent manual update simply no longer matches.
func (r *GormOrderRepository) AdvanceIdle(ctx context.Context, rule ordering.TransitionRule, now time.Time) (int64, error) {
	cutoff := now.Add(-rule.MinIdle)
	result := r.db.WithContext(ctx).
		Model(&ordering.Order{}).
		Where("status = ? AND updated_at <= ?", rule.From.String(), cutoff).
		Updates(map[string]any{
			"status":     rule.To.String(),
			"updated_at": now,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to advance orders from %s: %w", rule.From, result.Error)
	}
	return result.RowsAffected, nil
}

func (r *GormOrderRepository) CountByStatus(ctx context.Context) (map[ordering.Status]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&ordering.Order{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count orders by status: %w", err)
	}

	counts := make(map[ordering.Status]int64, len(rows))
	for _, row := range rows {
		counts[ordering.Status(row.Status)] = row.Count
	}
	return counts, nil
}

var _ ordering.OrderRepository = (*GormOrderRepository)(nil)
