// Package gridtrace computes paths on a weighted grid with breadth-first,
// depth-first or uniform-cost search, and records every search as a
// replayable trace of discrete events.
//
// A trace can be played, paused, stepped forward and backward, scrubbed to
// any position and replayed at variable speed; the running statistics
// (explored, cost, length) always equal a fresh derivation up to the
// displayed step.
//
// Packages:
//
//	grid/         cells, immutable State snapshots, Grid editor, ASCII format, mazes
//	frontier/     FIFO queue, LIFO stack, stable min-priority queue
//	trace/        Event, Trace, Stats and the event Recorder
//	bfs/ dfs/ ucs/  the three strategies
//	search/       strategy registry and the instrumented Runner
//	replay/       Player, Observer, Scheduler, FrameScheduler, Loop
//	render/       Board and Tree presenters
//	simulator/    control surface for start, pause, step, edit and generate
//	logging/      Logger interface over log/slog
//	viewer/       ebiten front end (build tag ebiten)
//
// Quick example:
//
//	st := grid.MustParse("S.#\n..E\n")
//	tr, _ := ucs.Run(st)
//	pl := replay.NewPlayer(tr, st)
//	pl.Seek(tr.Len())
//	fmt.Println(pl.Stats()) // {5 3 3}
//
// Commands live in cmd/gridtrace (terminal) and cmd/gridtrace-gui.
package gridtrace
