package render

import (
	"errors"
	"image"
	"image/color"
)

// ErrTerminated is returned from Game.Update once the game has stopped.
// Engines treat it as a clean shutdown, not a failure.
var ErrTerminated = errors.New("render: game terminated")

// Surface is a CPU-side pixel target the scene is rasterized onto.
// It abstracts the backend so the same drawing code feeds every engine.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)

	// FillRect paints a w×h rectangle with its top-left corner at (x, y).
	// Parts outside the surface are clipped.
	FillRect(x, y, w, h int, clr color.Color)

	// Fill paints the whole surface.
	Fill(clr color.Color)
}

// Image represents a display target a finished frame is presented to.
type Image interface {
	// Bounds returns the bounds of the display target.
	Bounds() image.Rectangle

	// Size returns the width and height of the display target.
	Size() (width, height int)

	// WritePixels replaces the whole target with RGBA pixel data laid out
	// like image.RGBA.Pix for an image of Size(). Backends whose display is
	// a different resolution scale it themselves.
	WritePixels(pix []byte)
}

// EventType identifies the kind of input event.
type EventType int

const (
	// EventQuit is a request to close the window or stop the program.
	EventQuit EventType = iota
	// EventMouseMotion reports the pointer moving to an absolute position.
	EventMouseMotion
)

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// ButtonMask is a set of held mouse buttons. Zero means no button is held.
type ButtonMask uint8

// Has reports whether b is held
func (m ButtonMask) Has(b MouseButton) bool {
	return m&(1<<uint(b)) != 0
}

// With returns the mask with b held
func (m ButtonMask) With(b MouseButton) ButtonMask {
	return m | 1<<uint(b)
}

// Event is a single input event delivered to the game.
type Event struct {
	Type EventType
	// Pointer position for EventMouseMotion, in logical screen pixels.
	X, Y int
	// Buttons held while the pointer moved.
	Buttons ButtonMask
}

// Dragging reports whether the event is pointer motion with a button held
func (e Event) Dragging() bool {
	return e.Type == EventMouseMotion && e.Buttons != 0
}

// InputManager delivers input from the user (window, keyboard, mouse).
type InputManager interface {
	// PollEvents drains every event that arrived since the last call.
	// It never blocks.
	PollEvents() []Event
}

// Game represents the game interface that the engine will call.
type Game interface {
	// Update runs one frame of the game. It returns ErrTerminated once the
	// game has stopped.
	Update() error

	// Draw presents the most recent frame to screen.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine owns the window (or terminal) and drives the game loop.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// InputManager returns the input source bound to this engine.
	InputManager() InputManager

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends and the
	// display resources have been released.
	RunGame(game Game) error
}
