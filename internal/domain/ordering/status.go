package ordering

import (
	"time"

	"github.com/orderhub/backend/internal/domain/shared"
)

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipping   Status = "shipping"
	StatusDelivered  Status = "delivered"
)

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusProcessing, StatusShipping, StatusDelivered}
}

// IsValid reports whether s is one of the four lifecycle states.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipping, StatusDelivered:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the lifecycle sweep has nowhere to move s.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered
}

// ParseStatus validates a raw status value. Matching is exact and
// case-sensitive, so values like "shipped" or "Pending" are rejected.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", shared.NewDomainError(shared.ErrCodeInvalidStatus,
			"invalid status %q, must be one of: pending, processing, shipping, delivered", raw)
	}
	return s, nil
}

// TransitionRule describes one automatic lifecycle advancement: orders in
// From that have been idle for at least MinIdle move to To.
type TransitionRule struct {
	From    Status
	To      Status
	MinIdle time.Duration
}

// DefaultTransitionRules returns the forward chain
// pending -> processing -> shipping -> delivered with the given idle
// thresholds, in sweep order.
func DefaultTransitionRules(pendingIdle, processingIdle, shippingIdle time.Duration) []TransitionRule {
	return []TransitionRule{
		{From: StatusPending, To: StatusProcessing, MinIdle: pendingIdle},
		{From: StatusProcessing, To: StatusShipping, MinIdle: processingIdle},
		{From: StatusShipping, To: StatusDelivered, MinIdle: shippingIdle},
	}
}
