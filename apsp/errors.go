// SPDX-License-Identifier: MIT

package apsp

import "errors"

// Sentinel errors. Call sites wrap them with fmt.Errorf("Op: ...: %w"); match
// with errors.Is.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("apsp: graph is nil")

	// ErrBadNodeList reports a node ordering that is not a duplicate-free
	// permutation of the graph's vertices.
	ErrBadNodeList = errors.New("apsp: malformed node list")

	// ErrUnknownNode reports an edge endpoint or query node absent from the node list.
	ErrUnknownNode = errors.New("apsp: unknown node")

	// ErrInvalidWeight reports a NaN or infinite edge weight.
	ErrInvalidWeight = errors.New("apsp: invalid edge weight")

	// ErrInvalidWorkers reports a worker count of zero.
	ErrInvalidWorkers = errors.New("apsp: worker count must not be zero")

	// ErrAborted reports a run stopped at a barrier because its context ended.
	// The distance matrix is partially relaxed and must be discarded.
	ErrAborted = errors.New("apsp: relaxation aborted")

	// ErrVerifyMismatch reports a distance that disagrees with the Dijkstra oracle.
	ErrVerifyMismatch = errors.New("apsp: distance disagrees with single-source oracle")
)
