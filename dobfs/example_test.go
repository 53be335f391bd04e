package dobfs_test

import (
	"fmt"

	"github.com/kastelov/grapnel/dobfs"
	"github.com/kastelov/grapnel/gen"
)

// ExampleRun traverses a directed path; with a unique predecessor per
// vertex the resulting tree is fully determined.
func ExampleRun() {
	g, _ := gen.Path(4, true)

	parent, _ := dobfs.Run(g, 0)
	fmt.Println("parent:", parent)

	if err := dobfs.Verify(g, 0, parent); err == nil {
		fmt.Println("forest: valid")
	}

	// Output:
	// parent: [0 0 1 2]
	// forest: valid
}

// ExampleRun_tuning shows overriding the direction-switch heuristics.
func ExampleRun_tuning() {
	g, _ := gen.Star(6, true)

	// alpha=1 keeps the whole traversal top-down
	parent, _ := dobfs.Run(g, 0, dobfs.WithAlpha(1), dobfs.WithWorkers(2))

	stats := dobfs.TreeStats(g, parent)
	fmt.Printf("reached %d vertices\n", stats.TreeNodes)

	// Output:
	// reached 6 vertices
}
