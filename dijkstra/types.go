// SPDX-License-Identifier: MIT

package dijkstra

import "errors"

var (
	// ErrNegativeWeight reports an arc with length < 0.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadWeight reports a NaN or infinite arc length.
	ErrBadWeight = errors.New("dijkstra: NaN or infinite edge weight")

	// ErrVertexOutOfRange reports an arc endpoint or source outside [0, n).
	ErrVertexOutOfRange = errors.New("dijkstra: vertex index out of range")

	// ErrEmptyGraph reports n <= 0.
	ErrEmptyGraph = errors.New("dijkstra: graph has no vertices")
)

// Arc is a directed edge From → To of length Weight.
type Arc struct {
	From, To int
	Weight   float64
}

// halfArc is an adjacency entry: the head vertex and the arc length.
type halfArc struct {
	to int
	w  float64
}

// nodeItem is a heap entry: vertex and its tentative distance.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by dist. Stale entries are left in
// place and skipped when popped (lazy decrease-key).
type nodePQ []nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
