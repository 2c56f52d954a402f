// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tiledapsp/apsp"
	"github.com/katalvlaran/tiledapsp/internal/config"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// main calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// globals holds the persistent flags and the configuration resolved from them.
type globals struct {
	configPath string
	workers    int
	factor     int
	weightKey  string
	unweighted bool
	undirected bool
	verbose    bool

	cfg config.Config
}

// Execute runs the tiledapsp CLI under ctx.
//
//	func main() {
//	    cli.SetVersion("v1.0.0", "abc123", "2026-10-19")
//	    if err := cli.Execute(context.Background()); err != nil {
//	        os.Exit(1)
//	    }
//	}
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:          "tiledapsp",
		Short:        "tiledapsp computes all-pairs shortest paths with a tiled Floyd-Warshall engine",
		Long:         `tiledapsp reads a graph description (YAML or TOML), computes every shortest path length with a blocked, parallel Floyd-Warshall and reports distances or closeness centrality.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if g.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(stderr, level)))

			return g.resolve(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.SetVersionTemplate(fmt.Sprintf("tiledapsp %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	pf := root.PersistentFlags()
	pf.StringVarP(&g.configPath, "config", "c", "", "config file (.yaml, .yml or .toml)")
	pf.IntVarP(&g.workers, "workers", "j", 0, "worker count; negative counts back from the CPU total (-1 = all)")
	pf.IntVarP(&g.factor, "blocking-factor", "b", 0, "tile edge; omitted selects automatically")
	pf.StringVar(&g.weightKey, "weight-key", apsp.DefaultWeightKey, "edge attribute used as length")
	pf.BoolVar(&g.unweighted, "unweighted", false, "treat every edge as length 1")
	pf.BoolVar(&g.undirected, "undirected", false, "ignore edge direction")
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newDistancesCmd(g))
	root.AddCommand(newClosenessCmd(g))
	root.AddCommand(newBlocksizeCmd(g))
	root.AddCommand(newGenerateCmd())

	return root
}

// resolve layers config file, environment and explicitly set flags into g.cfg.
func (g *globals) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("workers") {
		if _, err := apsp.ResolveWorkers(g.workers); err != nil {
			return fmt.Errorf("--workers: %w", err)
		}
		cfg.Workers = g.workers
	}
	if flags.Changed("blocking-factor") {
		if g.factor < 1 {
			return fmt.Errorf("--blocking-factor %d: %w", g.factor, config.ErrInvalid)
		}
		cfg.BlockingFactor = g.factor
	}
	if flags.Changed("weight-key") {
		key := g.weightKey
		cfg.WeightKey = &key
	}
	g.cfg = cfg

	return nil
}

// engineOptions turns the resolved configuration into apsp options for ctx.
func (g *globals) engineOptions(ctx context.Context) []apsp.Option {
	opts := g.cfg.Options()
	if g.unweighted {
		opts = append(opts, apsp.WithUnweighted())
	}
	if g.undirected {
		opts = append(opts, apsp.WithUndirected())
	}

	return append(opts, apsp.WithLogger(engineLogger(loggerFromContext(ctx))))
}
