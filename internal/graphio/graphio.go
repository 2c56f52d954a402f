// SPDX-License-Identifier: MIT

// Package graphio reads graph description files (YAML or TOML) into
// core.Graph values and writes distance and closeness results.
//
// File layout (YAML shown, TOML uses the same keys):
//
//	directed: true
//	nodes: [a, b, c]        # optional: fixes row order, declares isolated nodes
//	edges:
//	  - {from: a, to: b, weight: 2}
//	  - {from: b, to: c, attrs: {cost: 5}}
//	  - {from: c, to: a, directed: false}
//
// The graph is weighted when at least one edge carries a weight; edges
// without one then weigh 1. Parallel edges and self-loops are accepted.
package graphio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tiledapsp/core"
)

var (
	// ErrUnsupportedFormat reports an unknown file extension.
	ErrUnsupportedFormat = errors.New("graphio: unsupported file format")

	// ErrMalformed reports a structurally invalid graph file.
	ErrMalformed = errors.New("graphio: malformed graph file")
)

// File is the decoded form of a graph description.
type File struct {
	Directed bool       `yaml:"directed" toml:"directed"`
	Nodes    []string   `yaml:"nodes,omitempty" toml:"nodes,omitempty"`
	Edges    []EdgeSpec `yaml:"edges,omitempty" toml:"edges,omitempty"`
}

// EdgeSpec is one edge entry. Weight and Directed are optional.
type EdgeSpec struct {
	From     string             `yaml:"from" toml:"from"`
	To       string             `yaml:"to" toml:"to"`
	Weight   *float64           `yaml:"weight,omitempty" toml:"weight"`
	Directed *bool              `yaml:"directed,omitempty" toml:"directed"`
	Attrs    map[string]float64 `yaml:"attrs,omitempty" toml:"attrs,omitempty"`
}

// ReadFile decodes the graph file at path; the extension selects the format.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read graph file: %w", err)
	}
	f, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("graph %s: %w", path, err)
	}

	return f, nil
}

// Decode parses data as ".yaml"/".yml" or ".toml".
func Decode(data []byte, ext string) (*File, error) {
	var f File
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, fmt.Errorf("failed to parse toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown key %q: %w", undecoded[0].String(), ErrMalformed)
		}
	default:
		return nil, fmt.Errorf("%q: %w", ext, ErrUnsupportedFormat)
	}

	return &f, nil
}

// Graph builds a core.Graph from f.
//
// When Nodes is non-empty every edge endpoint must be declared there.
//
// Errors: ErrMalformed for empty or undeclared endpoints, empty node IDs
// and empty attribute keys; core errors are wrapped with the edge position.
func (f *File) Graph() (*core.Graph, error) {
	weighted, mixed := false, false
	for _, e := range f.Edges {
		if e.Weight != nil {
			weighted = true
		}
		if e.Directed != nil && *e.Directed != f.Directed {
			mixed = true
		}
	}

	opts := []core.GraphOption{core.WithDirected(f.Directed), core.WithMultiEdges(), core.WithLoops()}
	if weighted {
		opts = append(opts, core.WithWeighted())
	}
	if mixed {
		opts = append(opts, core.WithMixedEdges())
	}
	g := core.NewGraph(opts...)

	for i, id := range f.Nodes {
		if id == "" {
			return nil, fmt.Errorf("nodes[%d]: empty id: %w", i, ErrMalformed)
		}
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("nodes[%d]: %w", i, err)
		}
	}

	for i, e := range f.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("edges[%d]: missing endpoint: %w", i, ErrMalformed)
		}
		if len(f.Nodes) > 0 && (!g.HasVertex(e.From) || !g.HasVertex(e.To)) {
			return nil, fmt.Errorf("edges[%d] %s->%s: undeclared node: %w", i, e.From, e.To, ErrMalformed)
		}
		var w float64
		if weighted {
			w = 1
			if e.Weight != nil {
				w = *e.Weight
			}
		}
		var eopts []core.EdgeOption
		if e.Directed != nil {
			eopts = append(eopts, core.WithEdgeDirected(*e.Directed))
		}
		for k, v := range e.Attrs {
			if k == "" {
				return nil, fmt.Errorf("edges[%d]: empty attribute key: %w", i, ErrMalformed)
			}
			eopts = append(eopts, core.WithEdgeAttr(k, v))
		}
		if _, err := g.AddEdge(e.From, e.To, w, eopts...); err != nil {
			return nil, fmt.Errorf("edges[%d] %s->%s: %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}

// NodeOrder returns the explicit node list when present, else nil (engine
// default ordering).
func (f *File) NodeOrder() []string {
	if len(f.Nodes) == 0 {
		return nil
	}

	return append([]string(nil), f.Nodes...)
}

// FromGraph describes g as a File. Vertices are listed in g.Vertices() order
// and edges in g.Edges() order; weights are recorded only for weighted graphs
// and per-edge direction only where it differs from the graph default.
func FromGraph(g *core.Graph) *File {
	f := &File{Directed: g.Directed(), Nodes: g.Vertices()}
	weighted := g.Weighted()
	for _, e := range g.Edges() {
		entry := EdgeSpec{From: e.From, To: e.To}
		if weighted {
			w := e.Weight
			entry.Weight = &w
		}
		if e.Directed != f.Directed {
			d := e.Directed
			entry.Directed = &d
		}
		if len(e.Attrs) > 0 {
			entry.Attrs = make(map[string]float64, len(e.Attrs))
			for k, v := range e.Attrs {
				entry.Attrs[k] = v
			}
		}
		f.Edges = append(f.Edges, entry)
	}

	return f
}

// Encode writes f as ".yaml"/".yml" or ".toml".
func Encode(w io.Writer, f *File, ext string) error {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return writeYAML(w, f)
	case ".toml":
		if err := toml.NewEncoder(w).Encode(f); err != nil {
			return fmt.Errorf("failed to encode toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%q: %w", ext, ErrUnsupportedFormat)
	}
}

// Load is ReadFile followed by Graph.
func Load(path string) (*File, *core.Graph, error) {
	f, err := ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	g, err := f.Graph()
	if err != nil {
		return nil, nil, fmt.Errorf("graph %s: %w", path, err)
	}

	return f, g, nil
}
