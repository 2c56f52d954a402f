// SPDX-License-Identifier: MIT

package apsp

import (
	"fmt"

	"github.com/katalvlaran/tiledapsp/core"
)

// NodeList is an ordered, duplicate-free sequence of node IDs. Position i is
// row and column i of the distance matrix. The index map is built once.
type NodeList struct {
	ids   []string
	index map[string]int
}

// NewNodeList validates ids and builds the position index.
//
// Errors:
//   - ErrBadNodeList on an empty ID or a duplicate.
//
// Complexity: O(n).
func NewNodeList(ids []string) (NodeList, error) {
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		if id == "" {
			return NodeList{}, fmt.Errorf("NewNodeList: position %d: empty id: %w", i, ErrBadNodeList)
		}
		if prev, dup := index[id]; dup {
			return NodeList{}, fmt.Errorf("NewNodeList: %q at %d and %d: %w", id, prev, i, ErrBadNodeList)
		}
		index[id] = i
	}

	return NodeList{ids: append([]string(nil), ids...), index: index}, nil
}

// Len returns the number of nodes.
func (nl NodeList) Len() int { return len(nl.ids) }

// ID returns the node at position i. Panics when i is out of range, like a
// slice index.
func (nl NodeList) ID(i int) string { return nl.ids[i] }

// IndexOf returns the position of id.
func (nl NodeList) IndexOf(id string) (int, bool) {
	i, ok := nl.index[id]
	return i, ok
}

// IDs returns a copy of the ordered IDs.
func (nl NodeList) IDs() []string { return append([]string(nil), nl.ids...) }

// resolveNodeList returns the matrix ordering for g: the explicit list when
// given, otherwise g.Vertices() (lexicographic). An explicit list must be a
// permutation of the vertex set.
func resolveNodeList(g *core.Graph, explicit []string) (NodeList, error) {
	vertices := g.Vertices()
	if explicit == nil {
		return NewNodeList(vertices)
	}
	if len(explicit) != len(vertices) {
		return NodeList{}, fmt.Errorf("node list has %d entries, graph has %d vertices: %w",
			len(explicit), len(vertices), ErrBadNodeList)
	}
	nl, err := NewNodeList(explicit)
	if err != nil {
		return NodeList{}, err
	}
	// Same length and no duplicates: one missing vertex implies one unknown entry.
	for _, v := range vertices {
		if _, ok := nl.index[v]; !ok {
			return NodeList{}, fmt.Errorf("vertex %q missing from node list: %w", v, ErrBadNodeList)
		}
	}

	return nl, nil
}
