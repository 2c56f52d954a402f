// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tiledapsp/apsp"
	"github.com/katalvlaran/tiledapsp/internal/graphio"
)

func newClosenessCmd(g *globals) *cobra.Command {
	var (
		format string
		node   string
		wf     bool
	)

	cmd := &cobra.Command{
		Use:   "closeness <graph.yaml|graph.toml>",
		Short: "Print closeness centrality",
		Long: `Print closeness centrality of every node, or of --node alone.

Distances are measured toward each node. With --wf-improved (default) the
score is scaled by the fraction of the graph that reaches the node.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("wf-improved") {
				g.cfg.WFImproved = &wf
			}
			return g.runCloseness(cmd.Context(), cmd.OutOrStdout(), args[0], node, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", graphio.FormatTSV, "output format: tsv, yaml")
	cmd.Flags().StringVarP(&node, "node", "n", "", "score only this node")
	cmd.Flags().BoolVar(&wf, "wf-improved", apsp.DefaultWFImproved, "scale by the reachable fraction of the graph")

	return cmd
}

func (g *globals) runCloseness(ctx context.Context, stdout io.Writer, input, node, format string) error {
	f, graph, err := graphio.Load(input)
	if err != nil {
		return fmt.Errorf("load graph: %w", err)
	}

	opts := g.engineOptions(ctx)
	if order := f.NodeOrder(); order != nil {
		opts = append(opts, apsp.WithNodeList(order))
	}

	if node != "" {
		c, err := apsp.ClosenessOf(ctx, graph, node, opts...)
		if err != nil {
			return err
		}
		if format == graphio.FormatTSV {
			_, err = fmt.Fprintln(stdout, strconv.FormatFloat(c, 'g', -1, 64))
			return err
		}
		return graphio.WriteCloseness(stdout, map[string]float64{node: c}, format)
	}

	prog := newProgress(loggerFromContext(ctx))
	scores, err := apsp.Closeness(ctx, graph, opts...)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("scored %d nodes", len(scores)))

	return graphio.WriteCloseness(stdout, scores, format)
}
