// SPDX-License-Identifier: MIT

package apsp

import (
	"fmt"

	"github.com/katalvlaran/tiledapsp/matrix"
)

// Phase identifies one step of a primary-block iteration.
type Phase int

const (
	// PhasePivot relaxes the diagonal tile (p,p).
	PhasePivot Phase = iota
	// PhaseCross relaxes the tiles of row p and column p.
	PhaseCross
	// PhaseRemaining relaxes every tile outside row p and column p.
	PhaseRemaining
	// PhaseDone marks an exhausted schedule.
	PhaseDone
)

// String implements fmt.Stringer; values double as metric labels.
func (ph Phase) String() string {
	switch ph {
	case PhasePivot:
		return "pivot"
	case PhaseCross:
		return "cross"
	case PhaseRemaining:
		return "remaining"
	case PhaseDone:
		return "done"
	default:
		return fmt.Sprintf("Phase(%d)", int(ph))
	}
}

// Task is one kernel invocation: relax tile (Rows, Cols) through Pivot.
type Task struct {
	Phase Phase
	Pivot matrix.Block
	Rows  matrix.Block
	Cols  matrix.Block
}

// Batch is the set of tasks between two barriers. Tasks in a batch write
// pairwise disjoint tiles.
type Batch struct {
	Primary int // primary block index p
	Phase   Phase
	Tasks   []Task
}

// schedule is the state machine driving the executor: (primary block, phase).
// Each Next call yields the batch for the current state and advances it.
type schedule struct {
	blocks  []matrix.Block
	primary int
	phase   Phase
}

// newSchedule tiles [0,n) with factor and positions the machine at (0, PhasePivot).
func newSchedule(n, factor int) (*schedule, error) {
	blocks, err := matrix.Partition(n, factor)
	if err != nil {
		return nil, err
	}

	return &schedule{blocks: blocks}, nil
}

// Blocks returns the tiling.
func (s *schedule) Blocks() []matrix.Block { return s.blocks }

// Next returns the next batch, or ok == false once every primary block has
// completed all three phases.
func (s *schedule) Next() (b Batch, ok bool) {
	if s.primary >= len(s.blocks) {
		s.phase = PhaseDone
		return Batch{Phase: PhaseDone}, false
	}

	b = Batch{Primary: s.primary, Phase: s.phase}
	switch s.phase {
	case PhasePivot:
		b.Tasks = s.pivotTasks()
		s.phase = PhaseCross
	case PhaseCross:
		b.Tasks = s.crossTasks()
		s.phase = PhaseRemaining
	case PhaseRemaining:
		b.Tasks = s.remainingTasks()
		s.primary++
		s.phase = PhasePivot
	}

	return b, true
}

func (s *schedule) pivotTasks() []Task {
	k := s.blocks[s.primary]
	return []Task{{Phase: PhasePivot, Pivot: k, Rows: k, Cols: k}}
}

// crossTasks covers row p (k, block b) and column p (block b, k) for b ≠ p.
func (s *schedule) crossTasks() []Task {
	p := s.primary
	k := s.blocks[p]
	tasks := make([]Task, 0, 2*(len(s.blocks)-1))
	for b, blk := range s.blocks {
		if b == p {
			continue
		}
		tasks = append(tasks,
			Task{Phase: PhaseCross, Pivot: k, Rows: k, Cols: blk},
			Task{Phase: PhaseCross, Pivot: k, Rows: blk, Cols: k},
		)
	}

	return tasks
}

// remainingTasks covers (bi, bj) with bi ≠ p and bj ≠ p. Row p and column p
// are already closed under k and are read by these tasks, so they are not
// rewritten here.
func (s *schedule) remainingTasks() []Task {
	p := s.primary
	k := s.blocks[p]
	rest := len(s.blocks) - 1
	tasks := make([]Task, 0, rest*rest)
	for bi, rows := range s.blocks {
		if bi == p {
			continue
		}
		for bj, cols := range s.blocks {
			if bj == p {
				continue
			}
			tasks = append(tasks, Task{Phase: PhaseRemaining, Pivot: k, Rows: rows, Cols: cols})
		}
	}

	return tasks
}
