// SPDX-License-Identifier: MIT

package apsp

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tiledapsp/matrix"
)

// workerPool is a fixed set of goroutines draining kernel tasks for one run.
// runBatch returns only after every task of the batch has finished, which is
// the barrier between phases.
type workerPool struct {
	d       *matrix.Dense
	workers int
	tasks   chan Task
	pending sync.WaitGroup
	group   errgroup.Group
}

// startPool launches workers goroutines relaxing tiles of d.
func startPool(d *matrix.Dense, workers int) *workerPool {
	p := &workerPool{d: d, workers: workers, tasks: make(chan Task, workers)}
	for w := 0; w < workers; w++ {
		p.group.Go(func() error {
			for t := range p.tasks {
				relax(p.d, t.Pivot, t.Rows, t.Cols)
				p.pending.Done()
			}
			return nil
		})
	}

	return p
}

// runBatch executes tasks and blocks until all have completed. A batch with a
// single task, or a single-worker pool, runs on the caller's goroutine.
func (p *workerPool) runBatch(tasks []Task) {
	if len(tasks) == 1 || p.workers == 1 {
		for _, t := range tasks {
			relax(p.d, t.Pivot, t.Rows, t.Cols)
		}
		return
	}

	p.pending.Add(len(tasks))
	for _, t := range tasks {
		p.tasks <- t
	}
	p.pending.Wait()
}

// close stops the workers and waits for them to exit.
func (p *workerPool) close() {
	close(p.tasks)
	_ = p.group.Wait() // workers never fail
}
