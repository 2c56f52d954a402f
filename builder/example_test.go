// SPDX-License-Identifier: MIT

package builder_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/tiledapsp/apsp"
	"github.com/katalvlaran/tiledapsp/builder"
)

// ExampleBuildGraph measures the diameter of a 3×3 grid.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	d, _ := apsp.AllPairs(context.Background(), g)
	fmt.Println(g.VertexCount(), g.EdgeCount(), d["0"]["8"])
	// Output: 9 12 4
}

