package collect

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/webboost/webboost/internal/model"
)

// Collector defines the interface for individual signal collectors.
// Each collector fills exactly one field of the signal bundle.
//
// Design decision: We use an interface rather than concrete types because:
//  1. Allows for easy extension with new collectors
//  2. Enables testing with mock collectors
//  3. The runner can treat network probes and local computation uniformly
type Collector interface {
	// Name returns the collector's name for logging.
	Name() string

	// Collect fills the collector's section of the bundle from the
	// snapshot. Collectors own disjoint bundle fields, so concurrent
	// collection needs no locking.
	Collect(ctx context.Context, snapshot *model.PageSnapshot, bundle *model.SignalBundle) error
}

// Runner executes a set of collectors concurrently against one snapshot.
type Runner struct {
	// collectors is the list of registered collectors to run.
	collectors []Collector

	// logger receives per-collector progress and failure warnings.
	logger *slog.Logger
}

// NewRunner creates a Runner over the given collectors.
// A nil logger falls back to slog.Default().
func NewRunner(logger *slog.Logger, collectors ...Collector) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{collectors: collectors, logger: logger}
}

// Run executes all collectors concurrently and waits for them to finish.
// A failed collector leaves its bundle section at the zero value; the
// failure is logged and never aborts the other collectors. Only context
// cancellation is returned as an error.
func (r *Runner) Run(ctx context.Context, snapshot *model.PageSnapshot, bundle *model.SignalBundle) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, c := range r.collectors {
		c := c
		g.Go(func() error {
			r.logger.DebugContext(ctx, "collecting signal", "collector", c.Name())
			if err := c.Collect(ctx, snapshot, bundle); err != nil {
				// Missing signals degrade to zero values downstream.
				r.logger.WarnContext(ctx, "signal collection failed",
					"collector", c.Name(),
					"error", err,
				)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
