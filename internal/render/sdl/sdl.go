//go:build sdl

// Package sdl presents the scene through an SDL2 window surface.
// It needs cgo and the SDL2 development libraries, so it is only built with
// the "sdl" build tag.
package sdl

import (
	"errors"
	"fmt"
	"image"
	"log"
	"time"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"chosenoffset.com/lightrays/internal/render"
)

// Available reports whether this binary was built with SDL support.
const Available = true

// Input converts SDL events into render events.
type Input struct{}

// PollEvents drains the SDL event queue
func (in *Input) PollEvents() []render.Event {
	var out []render.Event
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			out = append(out, render.Event{Type: render.EventQuit})
		case *sdl.KeyboardEvent:
			if e.State == sdl.PRESSED && e.Keysym.Sym == sdl.K_ESCAPE {
				out = append(out, render.Event{Type: render.EventQuit})
			}
		case *sdl.MouseMotionEvent:
			out = append(out, render.Event{
				Type:    render.EventMouseMotion,
				X:       int(e.X),
				Y:       int(e.Y),
				Buttons: buttons(e.State),
			})
		}
	}
	return out
}

func buttons(state uint32) render.ButtonMask {
	var mask render.ButtonMask
	if state&sdl.ButtonLMask() != 0 {
		mask = mask.With(render.MouseButtonLeft)
	}
	if state&sdl.ButtonRMask() != 0 {
		mask = mask.With(render.MouseButtonRight)
	}
	if state&sdl.ButtonMMask() != 0 {
		mask = mask.With(render.MouseButtonMiddle)
	}
	// Extra buttons still count as a drag
	if mask == 0 && state != 0 {
		mask = mask.With(render.MouseButtonLeft)
	}
	return mask
}

// surfaceImage blits RGBA frames onto the window surface.
type surfaceImage struct {
	window        *sdl.Window
	width, height int
}

func (s *surfaceImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

func (s *surfaceImage) Size() (int, int) {
	return s.width, s.height
}

func (s *surfaceImage) WritePixels(pix []byte) {
	if len(pix) == 0 {
		return
	}
	frame, err := wrapFrame(pix, s.width, s.height)
	if err != nil {
		log.Printf("Failed to wrap frame: %v", err)
		return
	}
	defer frame.Free()

	dst, err := s.window.GetSurface()
	if err != nil {
		log.Printf("Failed to get window surface: %v", err)
		return
	}
	if err := frame.Blit(nil, dst, nil); err != nil {
		log.Printf("Failed to blit frame: %v", err)
	}
}

// wrapFrame views image.RGBA-ordered bytes as an SDL surface without copying.
// RGBA32 names the byte order, so it holds on either endianness.
func wrapFrame(pix []byte, width, height int) (*sdl.Surface, error) {
	return sdl.CreateRGBSurfaceWithFormatFrom(unsafe.Pointer(&pix[0]),
		int32(width), int32(height), 32, int32(4*width), sdl.PIXELFORMAT_RGBA32)
}

var _ render.Engine = (*Engine)(nil)

// Engine drives the game in an SDL window.
type Engine struct {
	delay         time.Duration
	width, height int
	title         string
	input         *Input
}

// NewEngine creates an SDL engine waiting delay between frames
func NewEngine(delay time.Duration) *Engine {
	return &Engine{delay: delay, input: &Input{}}
}

// SetWindowSize sets the window size in pixels
func (e *Engine) SetWindowSize(width, height int) {
	e.width, e.height = width, height
}

// SetWindowTitle sets the window title
func (e *Engine) SetWindowTitle(title string) {
	e.title = title
}

// InputManager returns the SDL input source
func (e *Engine) InputManager() render.InputManager {
	return e.input
}

// RunGame opens a centred window and runs the loop until the game stops.
// The window and SDL itself are released before returning.
func (e *Engine) RunGame(game render.Game) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("failed to initialize SDL: %w", err)
	}
	defer sdl.Quit()

	w, h := game.Layout(e.width, e.height)
	window, err := sdl.CreateWindow(e.title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(w), int32(h), sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer window.Destroy()

	target := &surfaceImage{window: window, width: w, height: h}
	for {
		if err := game.Update(); err != nil {
			if errors.Is(err, render.ErrTerminated) {
				return nil
			}
			return err
		}
		game.Draw(target)
		if err := window.UpdateSurface(); err != nil {
			log.Printf("Failed to update window surface: %v", err)
		}
		sdl.Delay(uint32(e.delay / time.Millisecond))
	}
}
