// SPDX-License-Identifier: MIT

package apsp_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/tiledapsp/apsp"
	"github.com/katalvlaran/tiledapsp/core"
)

// ExampleAllPairs runs the engine on the directed 4-cycle 0→1→2→3→0.
func ExampleAllPairs() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for i := 0; i < 4; i++ {
		_, _ = g.AddEdge(fmt.Sprint(i), fmt.Sprint((i+1)%4), 1)
	}

	dist, err := apsp.AllPairs(context.Background(), g, apsp.WithWorkers(2))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(dist["0"]["3"], dist["3"]["0"], dist["0"]["0"])
	// Output: 3 1 0
}

// ExampleSelectBlockingFactor shows the fallback for a prime dimension.
func ExampleSelectBlockingFactor() {
	fmt.Println(apsp.SelectBlockingFactor(100, 8))
	fmt.Println(apsp.SelectBlockingFactor(13, 4))
	// Output:
	// 10 false
	// 4 true
}

// ExampleClosenessOf scores the middle of a three-node path.
func ExampleClosenessOf() {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b", 0)
	_, _ = g.AddEdge("b", "c", 0)

	c, _ := apsp.ClosenessOf(context.Background(), g, "b")
	fmt.Println(c)
	// Output: 1
}
