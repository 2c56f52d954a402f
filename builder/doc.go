// SPDX-License-Identifier: MIT

// Package builder generates deterministic graph topologies used as engine
// inputs and benchmark fixtures: paths, cycles, complete graphs, grids,
// stars and seeded Erdős–Rényi random graphs.
//
// Constructors are composable closures applied in order by BuildGraph:
//
//	g, err := builder.BuildGraph(
//	    []core.GraphOption{core.WithDirected(true), core.WithWeighted()},
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(1, 10))},
//	    builder.RandomSparse(512, 0.02),
//	)
//
// Determinism: vertex IDs come from the ID scheme, edges are emitted in
// ascending index order and weights depend only on the seeded RNG.
// Builders return sentinel errors and never panic; option constructors panic
// on meaningless arguments.
package builder
