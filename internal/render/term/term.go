// Package term presents the scene in a terminal using half-block cells.
// Each cell shows two vertically stacked samples of the framebuffer, and
// mouse drags inside the terminal move the light source.
package term

import (
	"errors"
	"fmt"
	"image"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	xdraw "golang.org/x/image/draw"

	"chosenoffset.com/lightrays/internal/render"
)

const halfBlock = '▀'

// Downsample scales src to cols×rows*2 so each terminal cell can show an
// upper and a lower sample.
func Downsample(src *image.RGBA, cols, rows int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// CellToPixel maps the centre of a terminal cell to logical screen pixels.
func CellToPixel(col, row, cols, rows, width, height int) (x, y int) {
	if cols <= 0 || rows <= 0 {
		return 0, 0
	}
	x = (2*col + 1) * width / (2 * cols)
	y = (2*row + 1) * height / (2 * rows)
	return x, y
}

// Input converts tcell events into render events.
type Input struct {
	events        chan tcell.Event
	width, height int
	screen        tcell.Screen
}

// PollEvents drains the pending terminal events without blocking
func (in *Input) PollEvents() []render.Event {
	var out []render.Event
	for {
		select {
		case ev := <-in.events:
			if e, ok := in.translate(ev); ok {
				out = append(out, e)
			}
		default:
			return out
		}
	}
}

func (in *Input) translate(ev tcell.Event) (render.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
			return render.Event{Type: render.EventQuit}, true
		}

	case *tcell.EventMouse:
		cols, rows := in.screen.Size()
		col, row := ev.Position()
		x, y := CellToPixel(col, row, cols, rows, in.width, in.height)
		return render.Event{
			Type:    render.EventMouseMotion,
			X:       x,
			Y:       y,
			Buttons: buttons(ev.Buttons()),
		}, true

	case *tcell.EventResize:
		in.screen.Sync()
	}
	return render.Event{}, false
}

func buttons(b tcell.ButtonMask) render.ButtonMask {
	var mask render.ButtonMask
	if b&tcell.Button1 != 0 {
		mask = mask.With(render.MouseButtonLeft)
	}
	if b&tcell.Button2 != 0 {
		mask = mask.With(render.MouseButtonRight)
	}
	if b&tcell.Button3 != 0 {
		mask = mask.With(render.MouseButtonMiddle)
	}
	return mask
}

// cellImage is the terminal as a render.Image of the game's logical size.
type cellImage struct {
	screen        tcell.Screen
	width, height int
}

func (c *cellImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

func (c *cellImage) Size() (int, int) {
	return c.width, c.height
}

func (c *cellImage) WritePixels(pix []byte) {
	cols, rows := c.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	frame := &image.RGBA{Pix: pix, Stride: 4 * c.width, Rect: c.Bounds()}
	small := Downsample(frame, cols, rows)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := small.RGBAAt(col, row*2)
			bottom := small.RGBAAt(col, row*2+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			c.screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
}

var _ render.Engine = (*Engine)(nil)

// Engine runs the game in the current terminal.
type Engine struct {
	delay         time.Duration
	width, height int
	title         string
	input         *Input
}

// NewEngine creates a terminal engine presenting one frame every delay
func NewEngine(delay time.Duration) *Engine {
	if delay <= 0 {
		delay = 10 * time.Millisecond
	}
	return &Engine{
		delay: delay,
		input: &Input{events: make(chan tcell.Event, 100)},
	}
}

// SetWindowSize sets the size passed to the game's Layout
func (e *Engine) SetWindowSize(width, height int) {
	e.width, e.height = width, height
}

// SetWindowTitle records the title; terminals keep their own
func (e *Engine) SetWindowTitle(title string) {
	e.title = title
}

// InputManager returns the terminal input source
func (e *Engine) InputManager() render.InputManager {
	return e.input
}

// RunGame takes over the terminal until the game stops
func (e *Engine) RunGame(game render.Game) error {
	log.Printf("Running %q in terminal", e.title)
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	w, h := game.Layout(e.width, e.height)
	e.input.screen = screen
	e.input.width, e.input.height = w, h
	target := &cellImage{screen: screen, width: w, height: h}

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			select {
			case e.input.events <- ev:
			default:
			}
		}
	}()

	ticker := time.NewTicker(e.delay)
	defer ticker.Stop()

	for {
		if err := game.Update(); err != nil {
			if errors.Is(err, render.ErrTerminated) {
				return nil
			}
			return err
		}
		game.Draw(target)
		screen.Show()
		<-ticker.C
	}
}
