//go:build !sdl

package sdl

import (
	"time"

	"chosenoffset.com/lightrays/internal/render"
)

// Available reports whether this binary was built with SDL support.
const Available = false

var _ render.Engine = (*Engine)(nil)

// Engine is a placeholder that refuses to run.
type Engine struct{}

// NewEngine returns an engine whose RunGame always fails
func NewEngine(delay time.Duration) *Engine {
	return &Engine{}
}

// SetWindowSize does nothing without SDL
func (e *Engine) SetWindowSize(width, height int) {}

// SetWindowTitle does nothing without SDL
func (e *Engine) SetWindowTitle(title string) {}

// InputManager returns nil; there is no window to read input from
func (e *Engine) InputManager() render.InputManager {
	return nil
}

// RunGame always returns ErrUnavailable
func (e *Engine) RunGame(game render.Game) error {
	return ErrUnavailable
}
