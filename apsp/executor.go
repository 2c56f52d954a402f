// SPDX-License-Identifier: MIT

package apsp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/tiledapsp/matrix"
)

const opRun = "Executor.Run"

// Executor runs the tiled Floyd–Warshall schedule over a distance matrix.
// An Executor holds no per-run state and may be reused sequentially or
// concurrently on different matrices.
type Executor struct {
	workers int
	logger  *slog.Logger
}

// NewExecutor returns an Executor using workers goroutines (minimum 1).
// A nil logger discards output.
func NewExecutor(workers int, logger *slog.Logger) *Executor {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Executor{workers: workers, logger: logger}
}

// Workers returns the pool size.
func (e *Executor) Workers() int { return e.workers }

// Run closes d under shortest paths in place, tiling it with factor.
//
// For each primary block p, in order:
//
//	barrier → pivot (p,p) → barrier → cross (row p, column p) → barrier →
//	remaining tiles → barrier
//
// Tiles within a phase are relaxed concurrently; their write regions are
// disjoint, so d is not locked. ctx is observed only at barriers: when it is
// done the run stops and returns an error wrapping ErrAborted and ctx.Err().
// The matrix is then partially relaxed and must be discarded.
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrNonSquare for a bad d.
//   - matrix.ErrBadBlockingFactor for factor < 1.
//   - ErrAborted on cancellation.
//
// Complexity: O(n³) work; O(n/factor) sequential iterations of three phases.
func (e *Executor) Run(ctx context.Context, d *matrix.Dense, factor int) (err error) {
	if err = matrix.ValidateSquare(d); err != nil {
		return fmt.Errorf("%s: %w", opRun, err)
	}
	n := d.Rows()

	sched, err := newSchedule(n, factor)
	if err != nil {
		return fmt.Errorf("%s: %w", opRun, err)
	}
	blocks := sched.Blocks()

	ctx, span := startSpan(ctx, "apsp.Executor.Run",
		attribute.Int("n", n),
		attribute.Int("factor", min(factor, n)),
		attribute.Int("blocks", len(blocks)),
		attribute.Int("workers", e.workers),
	)
	defer span.End()

	start := time.Now()
	outcome := outcomeOK
	defer func() {
		runDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	}()

	pool := startPool(d, e.workers)
	defer pool.close()

	e.logger.Debug("tiled relaxation started",
		slog.Int("n", n),
		slog.Int("blocks", len(blocks)),
		slog.Int("last_block", blocks[len(blocks)-1].Len()),
		slog.Int("workers", e.workers),
	)

	for {
		batch, ok := sched.Next()
		if !ok {
			break
		}
		if batch.Phase == PhasePivot {
			// Entry barrier: every earlier primary block is fully applied.
			if err = e.barrier(ctx, batch.Primary, "entry"); err != nil {
				outcome = outcomeAborted
				return failSpan(span, err)
			}
		}

		pool.runBatch(batch.Tasks)
		relaxTasksTotal.WithLabelValues(batch.Phase.String()).Add(float64(len(batch.Tasks)))

		if err = e.barrier(ctx, batch.Primary, batch.Phase.String()); err != nil {
			outcome = outcomeAborted
			return failSpan(span, err)
		}
		if batch.Phase == PhaseRemaining {
			e.logger.Debug("primary block closed",
				slog.Int("primary", batch.Primary),
				slog.String("range", blocks[batch.Primary].String()),
			)
		}
	}

	e.logger.Debug("tiled relaxation finished", slog.Duration("elapsed", time.Since(start)))

	return nil
}

// barrier records a crossed barrier and reports cancellation. at names the
// barrier: "entry" or the phase that just completed.
func (e *Executor) barrier(ctx context.Context, primary int, at string) error {
	barriersTotal.Inc()
	if cerr := ctx.Err(); cerr != nil {
		e.logger.Debug("relaxation aborted at barrier",
			slog.Int("primary", primary),
			slog.String("barrier", at),
		)
		return fmt.Errorf("%s: primary block %d, barrier %s: %w: %w", opRun, primary, at, ErrAborted, cerr)
	}

	return nil
}
