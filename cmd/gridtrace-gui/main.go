//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/katalvlaran/gridtrace/logging"
	"github.com/katalvlaran/gridtrace/viewer"
)

func main() {
	cfg := viewer.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := logging.NewLogger(logging.Config{Level: logging.LevelInfo, Output: os.Stderr, Component: "gridtrace-gui"})
	game, err := viewer.New(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}

	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle("gridtrace")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
