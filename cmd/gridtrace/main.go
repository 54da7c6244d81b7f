// Command gridtrace runs a grid search strategy and prints, or animates,
// how it explored the grid.
//
//	gridtrace -algo ucs -rows 12 -cols 30 -replay
//	gridtrace -algo dfs -grid maze.txt -tree
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/katalvlaran/gridtrace/grid"
	"github.com/katalvlaran/gridtrace/logging"
	"github.com/katalvlaran/gridtrace/render"
	"github.com/katalvlaran/gridtrace/replay"
	"github.com/katalvlaran/gridtrace/search"
	"github.com/katalvlaran/gridtrace/trace"
)

const clearScreen = "\033[H\033[2J"

func main() {
	cfg := NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "gridtrace:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *Config, stdout, stderr io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := logging.ParseLevel(cfg.LogLevel)
	log := logging.NewLogger(logging.Config{
		Level: level, Format: cfg.LogFormat, Output: stderr, Component: "gridtrace",
	})

	st, err := loadGrid(cfg)
	if err != nil {
		return err
	}
	log.Debug("grid ready", "rows", st.Rows(), "cols", st.Cols())

	runner := search.NewRunner(search.WithLogger(log))
	tr, err := runner.Run(ctx, cfg.Algo, st)
	if err != nil {
		return err
	}

	board, tree := render.NewBoard(st), render.NewTree()
	obs := replay.Multi(board, tree)
	if cfg.Replay {
		if err := animate(ctx, tr, st, board, obs, cfg.Speed, log, stdout); err != nil {
			return err
		}
	} else {
		replay.NewPlayer(tr, st, replay.WithObserver(obs)).Seek(tr.Len())
		fmt.Fprint(stdout, board)
	}

	if cfg.Tree {
		fmt.Fprint(stdout, tree)
	}
	printSummary(stdout, tr)

	return nil
}

func loadGrid(cfg *Config) (*grid.State, error) {
	if cfg.GridFile != "" {
		f, err := os.Open(cfg.GridFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return grid.Parse(f)
	}
	g, err := grid.NewGrid(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}
	if err := g.RandomMaze(cfg.Walls, cfg.Mud, grid.WithSeed(cfg.Seed)); err != nil {
		return nil, err
	}

	return g.Snapshot(), nil
}

// animate replays tr on a Loop, redrawing the board after every step, and
// returns once the replay finished or ctx is cancelled.
func animate(
	ctx context.Context,
	tr *trace.Trace,
	st *grid.State,
	board *render.Board,
	obs replay.Observer,
	speed int,
	log logging.Logger,
	out io.Writer,
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loop := replay.NewLoop(replay.DefaultFrame)
	redraw := replay.Funcs{Stats: func(trace.Stats) {
		fmt.Fprint(out, clearScreen, board)
	}}
	player := replay.NewPlayer(tr, st,
		replay.WithObserver(replay.Multi(obs, redraw)),
		replay.WithScheduler(loop.Scheduler()),
		replay.WithLogger(log),
		replay.WithSpeed(speed),
		replay.WithOnFinish(cancel),
	)

	go func() {
		if err := loop.Do(ctx, player.Start); err != nil {
			log.Debug("replay not started", "error", err)
		}
	}()
	err := loop.Run(ctx)
	if player.State() == replay.Finished {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		// interrupted: show where the replay stopped
		fmt.Fprintln(out, "interrupted at step", player.Cursor(), "of", player.Len())
		return nil
	}

	return err
}

func printSummary(w io.Writer, tr *trace.Trace) {
	status := "found"
	if !tr.Found() {
		status = "no path"
	}
	fmt.Fprintf(w, "%s: %s, %d events, %s\n", tr.Algorithm, status, len(tr.Events), render.StatsLine(tr.Stats))
}
