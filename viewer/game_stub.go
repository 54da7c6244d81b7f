//go:build !ebiten

package viewer

import (
	"errors"

	"github.com/katalvlaran/gridtrace/logging"
)

// ErrNoGUI is returned by the headless build.
var ErrNoGUI = errors.New("viewer: build with the 'ebiten' tag for GUI support")

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New reports that the ebiten build tag is required.
func New(*Config, logging.Logger) (*Game, error) { return nil, ErrNoGUI }

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error { return ErrNoGUI }

// Draw is a no-op placeholder.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
