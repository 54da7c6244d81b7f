package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridtrace/bfs"
	"github.com/katalvlaran/gridtrace/grid"
)

// ExampleRun finds the fewest-hop route around a wall.
func ExampleRun() {
	st := grid.MustParse(`
S#E
...
`)
	tr, err := bfs.Run(st)
	if err != nil {
		panic(err)
	}
	fmt.Println(tr.Path)
	fmt.Println(tr.Stats)
	// Output:
	// [(0,0) (1,0) (1,1) (1,2) (0,2)]
	// {5 4 4}
}
