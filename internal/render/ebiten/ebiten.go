package ebiten

import (
	"errors"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"chosenoffset.com/lightrays/internal/render"
)

// EbitenImage wraps an ebiten.Image to implement the render.Image interface.
type EbitenImage struct {
	img *ebiten.Image
}

// Bounds returns the bounds of the image.
func (i *EbitenImage) Bounds() image.Rectangle {
	return i.img.Bounds()
}

// Size returns the width and height of the image.
func (i *EbitenImage) Size() (width, height int) {
	return i.img.Bounds().Dx(), i.img.Bounds().Dy()
}

// WritePixels uploads a full frame of RGBA pixels.
func (i *EbitenImage) WritePixels(pix []byte) {
	i.img.WritePixels(pix)
}

// EbitenInputManager implements the InputManager interface using Ebiten.
// Ebiten exposes input as per-tick state, so motion events are synthesized
// by comparing the cursor with its position on the previous poll.
type EbitenInputManager struct {
	lastX, lastY int
	seen         bool
}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() *EbitenInputManager {
	return &EbitenInputManager{}
}

// PollEvents returns the events for the current tick.
func (m *EbitenInputManager) PollEvents() []render.Event {
	var events []render.Event

	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		events = append(events, render.Event{Type: render.EventQuit})
	}

	x, y := ebiten.CursorPosition()
	if ev, ok := m.motion(x, y, heldButtons()); ok {
		events = append(events, ev)
	}

	return events
}

// motion returns a motion event when the cursor differs from the last
// position seen. The first call always reports, so a press before any
// movement still places the light.
func (m *EbitenInputManager) motion(x, y int, buttons render.ButtonMask) (render.Event, bool) {
	if m.seen && x == m.lastX && y == m.lastY {
		return render.Event{}, false
	}
	m.lastX, m.lastY, m.seen = x, y, true
	return render.Event{
		Type:    render.EventMouseMotion,
		X:       x,
		Y:       y,
		Buttons: buttons,
	}, true
}

// heldButtons returns the mouse buttons currently pressed.
func heldButtons() render.ButtonMask {
	var mask render.ButtonMask
	for _, b := range []render.MouseButton{render.MouseButtonLeft, render.MouseButtonRight, render.MouseButtonMiddle} {
		if ebiten.IsMouseButtonPressed(mouseButtonToEbiten(b)) {
			mask = mask.With(b)
		}
	}
	return mask
}

// mouseButtonToEbiten converts a render.MouseButton to an ebiten.MouseButton.
func mouseButtonToEbiten(button render.MouseButton) ebiten.MouseButton {
	switch button {
	case render.MouseButtonLeft:
		return ebiten.MouseButtonLeft
	case render.MouseButtonRight:
		return ebiten.MouseButtonRight
	case render.MouseButtonMiddle:
		return ebiten.MouseButtonMiddle
	default:
		return ebiten.MouseButtonLeft
	}
}

var _ render.Engine = (*EbitenEngine)(nil)

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct {
	input *EbitenInputManager
	tps   int
	hud   bool
}

// NewEngine creates a new Ebiten-based game engine ticking tps times a second.
func NewEngine(tps int) *EbitenEngine {
	return &EbitenEngine{
		input: NewInputManager(),
		tps:   tps,
	}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetHUD enables the TPS/FPS overlay.
func (e *EbitenEngine) SetHUD(enabled bool) {
	e.hud = enabled
}

// InputManager returns the engine's input source.
func (e *EbitenEngine) InputManager() render.InputManager {
	return e.input
}

// RunGame runs the game loop with the provided game. The window is
// released by ebiten when this returns.
func (e *EbitenEngine) RunGame(game render.Game) error {
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)
	if e.tps > 0 {
		ebiten.SetTPS(e.tps)
	}

	if err := ebiten.RunGame(&gameAdapter{game: game, hud: e.hud}); err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	game render.Game
	hud  bool
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	err := a.game.Update()
	if errors.Is(err, render.ErrTerminated) {
		return ebiten.Termination
	}
	return err
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenImage{img: screen})
	if a.hud {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f  FPS: %0.1f", ebiten.ActualTPS(), ebiten.ActualFPS()), 4, 4)
	}
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
