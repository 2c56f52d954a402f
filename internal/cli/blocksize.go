// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tiledapsp/apsp"
)

func newBlocksizeCmd(g *globals) *cobra.Command {
	var target int

	cmd := &cobra.Command{
		Use:   "blocksize <n>",
		Short: "Show the blocking factor chosen for n nodes",
		Long: `Show the blocking factor chosen for n nodes.

The target parallelism defaults to the resolved worker count. The output
reports the factor, the number of primary blocks and whether the last block
absorbs a remainder.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("n must be a positive integer, got %q", args[0])
			}
			if !cmd.Flags().Changed("target") {
				target = runtime.GOMAXPROCS(0)
				if g.cfg.Workers != 0 {
					if target, err = apsp.ResolveWorkers(g.cfg.Workers); err != nil {
						return err
					}
				}
			}

			factor, irregular := apsp.SelectBlockingFactor(n, target)
			loggerFromContext(cmd.Context()).Debug("blocking factor selected", "n", n, "target", target)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "factor=%d blocks=%d irregular=%t\n", factor, n/factor, irregular)
			return err
		},
	}
	cmd.Flags().IntVarP(&target, "target", "t", 0, "target parallelism (default: resolved workers)")

	return cmd
}
