package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/orderhub/backend/internal/application/ordering"
)

// LifecycleScheduler periodically sweeps idle orders forward through their
// lifecycle. Each tick runs one sweep; a failed sweep is logged and retried
// on the next tick, so transient database errors never stop the loop.
type LifecycleScheduler struct {
	lifecycle *ordering.LifecycleService
	logger    *zap.Logger
	config    LifecycleSchedulerConfig
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
}

// LifecycleSchedulerConfig holds configuration for the lifecycle scheduler
type LifecycleSchedulerConfig struct {
	// Enabled determines if the scheduler is active
	Enabled bool

	// PollInterval is how often the sweep runs
	PollInterval time.Duration

	// SweepTimeout is the maximum time for a single sweep
	SweepTimeout time.Duration
}

// DefaultLifecycleSchedulerConfig returns default configuration
func DefaultLifecycleSchedulerConfig() LifecycleSchedulerConfig {
	return LifecycleSchedulerConfig{
		Enabled:      true,
		PollInterval: 30 * time.Second,
		SweepTimeout: 15 * time.Second,
	}
}

// NewLifecycleScheduler creates a new lifecycle scheduler
func NewLifecycleScheduler(
	lifecycle *ordering.LifecycleService,
	logger *zap.Logger,
	config LifecycleSchedulerConfig,
) (*LifecycleScheduler, error) {
	if config.PollInterval <= 0 || config.SweepTimeout <= 0 {
		return nil, ErrInvalidConfig
	}
	return &LifecycleScheduler{
		lifecycle: lifecycle,
		logger:    logger,
		config:    config,
	}, nil
}

// Start starts the sweep loop. Starting an already-running or disabled
// scheduler is a no-op.
func (s *LifecycleScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return nil
	}
	if !s.config.Enabled {
		s.mu.Unlock()
		s.logger.Info("Lifecycle scheduler is disabled")
		return nil
	}
	s.isRunning = true
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.runSweepLoop(ctx)

	s.logger.Info("Lifecycle scheduler started",
		zap.Duration("poll_interval", s.config.PollInterval),
		zap.Duration("sweep_timeout", s.config.SweepTimeout),
	)
	return nil
}

// Stop gracefully stops the scheduler, waiting for an in-flight sweep to
// finish until ctx expires.
func (s *LifecycleScheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = false
	s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("Lifecycle scheduler stopped gracefully")
		return nil
	case <-ctx.Done():
		s.logger.Warn("Lifecycle scheduler stop timed out")
		return ctx.Err()
	}
}

// IsRunning returns whether the scheduler is currently running
func (s *LifecycleScheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isRunning
}

// TriggerImmediate runs one sweep outside the regular schedule.
func (s *LifecycleScheduler) TriggerImmediate(ctx context.Context) error {
	if !s.IsRunning() {
		return ErrSchedulerNotRunning
	}
	s.executeSweep(ctx)
	return nil
}

func (s *LifecycleScheduler) runSweepLoop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.executeSweep(ctx)
		}
	}
}

func (s *LifecycleScheduler) executeSweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, s.config.SweepTimeout)
	defer cancel()

	start := time.Now()
	result, err := s.lifecycle.Sweep(sweepCtx)
	if err != nil {
		s.logger.Error("Lifecycle sweep failed, will retry next tick",
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return
	}

	if result.TotalAdvanced() > 0 || result.Failed > 0 {
		s.logger.Info("Lifecycle sweep completed",
			zap.Int64("advanced", result.TotalAdvanced()),
			zap.Int("failed_rules", result.Failed),
			zap.Duration("duration", time.Since(start)))
	}
}
