package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"chosenoffset.com/lightrays/internal/audio"
	"chosenoffset.com/lightrays/internal/game"
	"chosenoffset.com/lightrays/internal/render"
	ebitenrender "chosenoffset.com/lightrays/internal/render/ebiten"
	"chosenoffset.com/lightrays/internal/render/headless"
	sdlrender "chosenoffset.com/lightrays/internal/render/sdl"
	"chosenoffset.com/lightrays/internal/render/term"
	"chosenoffset.com/lightrays/internal/simulation"
)

func main() {
	backend := flag.String("backend", "ebiten", "Presentation backend: ebiten | sdl | term | headless")
	sound := flag.Bool("sound", false, "Play a tick when the shadow circle bounces")
	hud := flag.Bool("hud", false, "Show a TPS/FPS overlay (ebiten only)")
	frames := flag.Int("frames", 1, "Frames to render before exiting (headless only, 0 = until interrupted)")
	snapshot := flag.String("snapshot", "", "Write the last frame to this PNG file (headless only)")
	flag.Parse()

	opts := options{
		backend:  *backend,
		sound:    *sound,
		hud:      *hud,
		frames:   *frames,
		snapshot: *snapshot,
	}
	if err := run(opts); err != nil {
		log.Fatal(err)
	}
	log.Println("Exiting")
}

type options struct {
	backend  string
	sound    bool
	hud      bool
	frames   int
	snapshot string
}

// run sets up the backend and blocks until the scene stops. Every resource
// it opens is released before it returns.
func run(opts options) error {
	cfg := simulation.DefaultConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	engine, err := newEngine(ctx, opts.backend, cfg, opts.hud, opts.frames, opts.snapshot)
	if err != nil {
		return fmt.Errorf("failed to set up backend: %w", err)
	}
	engine.SetWindowSize(cfg.Width, cfg.Height)
	engine.SetWindowTitle(cfg.Title)

	g := game.NewGame(cfg, engine.InputManager())

	if opts.sound {
		ticker := audio.NewTicker()
		if err := ticker.Initialize(); err != nil {
			// Non-fatal, the scene runs without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer ticker.Close()
			g.SetBounceListener(ticker)
		}
	}

	log.Printf("Starting %s backend with %d rays...", opts.backend, cfg.RayCount)
	if err := engine.RunGame(g); err != nil {
		return fmt.Errorf("backend %s failed: %w", opts.backend, err)
	}
	return nil
}

func newEngine(ctx context.Context, backend string, cfg *simulation.Config, hud bool, frames int, snapshot string) (render.Engine, error) {
	switch backend {
	case "ebiten":
		e := ebitenrender.NewEngine(cfg.TPS())
		e.SetHUD(hud)
		return e, nil
	case "sdl":
		if !sdlrender.Available {
			return nil, sdlrender.ErrUnavailable
		}
		return sdlrender.NewEngine(cfg.FrameDelay), nil
	case "term":
		// The terminal is the display; log lines would tear through it
		log.SetOutput(io.Discard)
		return term.NewEngine(cfg.FrameDelay), nil
	case "headless":
		e := headless.NewEngine(ctx, frames)
		e.SetSnapshot(snapshot)
		return e, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}
