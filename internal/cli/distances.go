// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tiledapsp/apsp"
	"github.com/katalvlaran/tiledapsp/core"
	"github.com/katalvlaran/tiledapsp/internal/graphio"
)

func newDistancesCmd(g *globals) *cobra.Command {
	var (
		format, output string
		verify         int
	)

	cmd := &cobra.Command{
		Use:   "distances <graph.yaml|graph.toml>",
		Short: "Print all-pairs shortest path lengths",
		Long: `Print all-pairs shortest path lengths.

The graph file's node list (when present) fixes the row and column order;
otherwise nodes are sorted by ID. Unreachable pairs print as "inf" in TSV
and ".inf" in YAML.

--verify K re-derives K evenly spread rows with Dijkstra before printing
(non-negative lengths only).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.runDistances(cmd.Context(), cmd.OutOrStdout(), args[0], format, output, verify)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", graphio.FormatTSV, "output format: tsv, yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().IntVar(&verify, "verify", 0, "cross-check this many rows against Dijkstra")

	return cmd
}

func (g *globals) runDistances(ctx context.Context, stdout io.Writer, input, format, output string, verify int) error {
	logger := loggerFromContext(ctx)
	run, err := g.compute(ctx, input)
	if err != nil {
		return err
	}
	res := run.res
	if verify > 0 {
		if err := apsp.Verify(ctx, run.graph, res, verify, run.opts...); err != nil {
			return err
		}
		logger.Info("verified against dijkstra", "rows", min(verify, res.Nodes.Len()))
	}

	return writeTo(stdout, output, func(w io.Writer) error {
		if err := graphio.WriteDistances(w, res, format); err != nil {
			return err
		}
		logger.Debug("distances written", "format", format, "output", output)
		return nil
	})
}

// computation bundles a finished run with the inputs that produced it.
type computation struct {
	graph *core.Graph
	opts  []apsp.Option
	res   *apsp.Result
}

// compute loads input and runs the engine with the resolved options.
func (g *globals) compute(ctx context.Context, input string) (*computation, error) {
	logger := loggerFromContext(ctx)
	f, graph, err := graphio.Load(input)
	if err != nil {
		return nil, fmt.Errorf("load graph: %w", err)
	}
	logger.Debug("graph loaded", "path", input, "nodes", graph.VertexCount(), "edges", graph.EdgeCount())

	opts := g.engineOptions(ctx)
	if order := f.NodeOrder(); order != nil {
		opts = append(opts, apsp.WithNodeList(order))
	}

	prog := newProgress(logger)
	res, err := apsp.Compute(ctx, graph, opts...)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("computed %d nodes, blocking factor %d, %d workers", res.Nodes.Len(), res.BlockingFactor, res.Workers))

	return &computation{graph: graph, opts: opts, res: res}, nil
}

// writeTo runs fn against path, or stdout when path is empty.
func writeTo(stdout io.Writer, path string, fn func(io.Writer) error) (err error) {
	if path == "" {
		return fn(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return fn(f)
}
