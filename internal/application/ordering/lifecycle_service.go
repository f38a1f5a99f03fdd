package ordering

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/orderhub/backend/internal/domain/ordering"
)

// ErrNoTransitionRules is returned when a lifecycle sweep is requested but
// no rules are configured.
var ErrNoTransitionRules = errors.New("no transition rules configured")

// SweepResult summarizes one lifecycle sweep across all rules.
type SweepResult struct {
	Advanced map[ordering.Status]int64
	Failed   int
}

// TotalAdvanced returns the number of orders moved during the sweep.
func (r SweepResult) TotalAdvanced() int64 {
	var total int64
	for _, n := range r.Advanced {
		total += n
	}
	return total
}

// LifecycleService advances idle orders through the lifecycle chain. Each
// rule is applied as one atomic conditional update, so an order moves at
// most one stage per sweep and concurrent manual updates cannot be clobbered
// beyond last-writer-wins on the status column.
type LifecycleService struct {
	orders ordering.OrderRepository
	rules  []ordering.TransitionRule
	logger *zap.Logger
	now    func() time.Time
}

// NewLifecycleService creates a LifecycleService. A nil now defaults to
// time.Now.
func NewLifecycleService(
	orders ordering.OrderRepository,
	rules []ordering.TransitionRule,
	logger *zap.Logger,
	now func() time.Time,
) *LifecycleService {
	if now == nil {
		now = time.Now
	}
	return &LifecycleService{orders: orders, rules: rules, logger: logger, now: now}
}

// Sweep applies every rule once against a single observation of the clock.
// A rule that fails is logged and skipped; the remaining rules still run and
// the failed rule is simply retried on the next sweep. Sweep only returns an
// error when no rule could be applied at all.
func (s *LifecycleService) Sweep(ctx context.Context) (SweepResult, error) {
	if len(s.rules) == 0 {
		return SweepResult{}, ErrNoTransitionRules
	}

	now := s.now()
	result := SweepResult{Advanced: make(map[ordering.Status]int64, len(s.rules))}

	for _, rule := range s.rules {
		advanced, err := s.orders.AdvanceIdle(ctx, rule, now)
		if err != nil {
			result.Failed++
			s.logger.Error("lifecycle rule failed, will retry next sweep",
				zap.String("from", rule.From.String()),
				zap.String("to", rule.To.String()),
				zap.Error(err))
			continue
		}
		result.Advanced[rule.To] += advanced
		if advanced > 0 {
			s.logger.Info("orders advanced",
				zap.String("from", rule.From.String()),
				zap.String("to", rule.To.String()),
				zap.Int64("count", advanced))
		}
	}

	if result.Failed == len(s.rules) {
		return result, errors.New("all lifecycle rules failed")
	}
	return result, nil
}
