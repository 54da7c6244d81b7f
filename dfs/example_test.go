package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridtrace/dfs"
	"github.com/katalvlaran/gridtrace/grid"
)

// ExampleRun shows that DFS follows the first open direction as deep as it
// can, which need not give the shortest route.
func ExampleRun() {
	st := grid.MustParse(`
S..
...
..E
`)
	tr, err := dfs.Run(st)
	if err != nil {
		panic(err)
	}
	fmt.Println(tr.Path)
	fmt.Printf("explored=%d cost=%d length=%d\n", tr.Stats.Explored, tr.Stats.Cost, tr.Stats.Length)
	// Output:
	// [(0,0) (0,1) (0,2) (1,2) (2,2)]
	// explored=5 cost=4 length=4
}
