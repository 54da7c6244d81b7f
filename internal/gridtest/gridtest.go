// Package gridtest holds grid builders and brute-force reference solvers
// shared by the strategy and replay tests.
package gridtest

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/gridtrace/grid"
)

// P is shorthand for grid.Pos{Row: r, Col: c}.
func P(r, c int) grid.Pos { return grid.Pos{Row: r, Col: c} }

// Open returns an all-empty rows×cols state with the given endpoints.
func Open(rows, cols int, start, end grid.Pos) *grid.State {
	g, err := grid.NewGrid(rows, cols)
	if err != nil {
		panic(err)
	}
	g.ClearStart()
	g.ClearEnd()
	must(g.SetStart(start))
	must(g.SetEnd(end))

	return g.Snapshot()
}

// Paint returns a copy of st with tool applied at each position.
func Paint(st *grid.State, tool grid.Tool, ps ...grid.Pos) *grid.State {
	g := grid.FromState(st)
	for _, p := range ps {
		must(g.Paint(p, tool))
	}

	return g.Snapshot()
}

// Random builds a rows×cols maze with random distinct endpoints.
func Random(rng *rand.Rand, rows, cols int, wallProb, mudProb float64) *grid.State {
	g, err := grid.NewGrid(rows, cols)
	if err != nil {
		panic(err)
	}
	g.ClearStart()
	g.ClearEnd()
	a := grid.Pos{Row: rng.Intn(rows), Col: rng.Intn(cols)}
	b := a
	for b == a {
		b = grid.Pos{Row: rng.Intn(rows), Col: rng.Intn(cols)}
	}
	must(g.SetStart(a))
	must(g.SetEnd(b))
	must(g.RandomMaze(wallProb, mudProb, grid.WithRand(rng)))

	return g.Snapshot()
}

// HopDistance returns the fewest hops from start to end, by exhaustive
// relaxation over every passable cell.
func HopDistance(st *grid.State) (int, bool) {
	return relaxAll(st, func(grid.Neighbor) int { return 1 })
}

// MinCost returns the cheapest sum of entered-cell costs from start to end,
// by exhaustive relaxation over every passable cell.
func MinCost(st *grid.State) (int, bool) {
	return relaxAll(st, func(n grid.Neighbor) int { return n.Cost })
}

func relaxAll(st *grid.State, weight func(grid.Neighbor) int) (int, bool) {
	start, ok1 := st.Start()
	end, ok2 := st.End()
	if !ok1 || !ok2 {
		return 0, false
	}
	n := st.Rows() * st.Cols()
	dist := make([]int, n)
	for i := range dist {
		dist[i] = math.MaxInt
	}
	dist[st.Index(start)] = 0
	for changed := true; changed; {
		changed = false
		for i := 0; i < n; i++ {
			if dist[i] == math.MaxInt {
				continue
			}
			for _, nb := range st.Neighbors(st.Coordinate(i)) {
				j := st.Index(nb.Pos)
				if d := dist[i] + weight(nb); d < dist[j] {
					dist[j] = d
					changed = true
				}
			}
		}
	}
	d := dist[st.Index(end)]

	return d, d != math.MaxInt
}

// Contiguous reports whether consecutive path positions are orthogonal
// neighbours.
func Contiguous(path []grid.Pos) bool {
	for i := 1; i < len(path); i++ {
		dr := abs(path[i].Row - path[i-1].Row)
		dc := abs(path[i].Col - path[i-1].Col)
		if dr+dc != 1 {
			return false
		}
	}

	return true
}

// PathCost sums the cost of every path cell after the first.
func PathCost(st *grid.State, path []grid.Pos) int {
	total := 0
	for i := 1; i < len(path); i++ {
		total += st.Cost(path[i])
	}

	return total
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
