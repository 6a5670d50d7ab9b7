// Package headless runs a game without a window, for scripted runs and
// regression snapshots.
package headless

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"sync"

	"chosenoffset.com/lightrays/internal/render"
)

// Screen is an in-memory render.Image that keeps the last presented frame.
type Screen struct {
	img *image.RGBA
}

// NewScreen creates a screen of the given size
func NewScreen(width, height int) *Screen {
	return &Screen{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Bounds returns the bounds of the screen
func (s *Screen) Bounds() image.Rectangle {
	return s.img.Bounds()
}

// Size returns the width and height of the screen
func (s *Screen) Size() (width, height int) {
	return s.img.Bounds().Dx(), s.img.Bounds().Dy()
}

// WritePixels copies a full frame onto the screen
func (s *Screen) WritePixels(pix []byte) {
	copy(s.img.Pix, pix)
}

// Image returns the last presented frame
func (s *Screen) Image() *image.RGBA {
	return s.img
}

// Input is a queue of scripted events.
type Input struct {
	mu      sync.Mutex
	pending []render.Event
}

// Queue adds events delivered on the next poll
func (in *Input) Queue(events ...render.Event) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.pending = append(in.pending, events...)
}

// PollEvents drains the queue
func (in *Input) PollEvents() []render.Event {
	in.mu.Lock()
	defer in.mu.Unlock()
	events := in.pending
	in.pending = nil
	return events
}

var _ render.Engine = (*Engine)(nil)

// Engine drives a game for a fixed number of frames with no display.
type Engine struct {
	ctx      context.Context
	frames   int
	width    int
	height   int
	title    string
	snapshot string

	input     *Input
	screen    *Screen
	presented int
}

// NewEngine creates an engine that stops after frames frames, when the game
// terminates, or when ctx is cancelled. frames <= 0 means no frame limit.
func NewEngine(ctx context.Context, frames int) *Engine {
	return &Engine{
		ctx:    ctx,
		frames: frames,
		input:  &Input{},
	}
}

// SetWindowSize sets the size passed to the game's Layout
func (e *Engine) SetWindowSize(width, height int) {
	e.width, e.height = width, height
}

// SetWindowTitle records the title; it is only used for logging
func (e *Engine) SetWindowTitle(title string) {
	e.title = title
}

// SetSnapshot makes RunGame write the last frame to path as a PNG
func (e *Engine) SetSnapshot(path string) {
	e.snapshot = path
}

// InputManager returns the scripted input queue
func (e *Engine) InputManager() render.InputManager {
	return e.input
}

// Input returns the scripted input queue
func (e *Engine) Input() *Input {
	return e.input
}

// Screen returns the screen frames are presented to. It is nil until RunGame starts.
func (e *Engine) Screen() *Screen {
	return e.screen
}

// Presented returns the number of frames presented so far
func (e *Engine) Presented() int {
	return e.presented
}

// RunGame runs the loop until a stop condition is met
func (e *Engine) RunGame(game render.Game) error {
	w, h := game.Layout(e.width, e.height)
	e.screen = NewScreen(w, h)
	log.Printf("Running %q headless at %dx%d", e.title, w, h)

	for e.frames <= 0 || e.presented < e.frames {
		if err := e.ctx.Err(); err != nil {
			break
		}
		if err := game.Update(); err != nil {
			if errors.Is(err, render.ErrTerminated) {
				break
			}
			return err
		}
		game.Draw(e.screen)
		e.presented++
	}

	if e.snapshot != "" {
		if err := e.writeSnapshot(); err != nil {
			return err
		}
		log.Printf("Wrote snapshot of frame %d to %s", e.presented, e.snapshot)
	}
	return nil
}

func (e *Engine) writeSnapshot() error {
	f, err := os.Create(e.snapshot)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	if err := png.Encode(f, e.screen.Image()); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}
