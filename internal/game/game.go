package game

import (
	"log"

	"chosenoffset.com/lightrays/internal/core/physics"
	"chosenoffset.com/lightrays/internal/core/shadows"
	"chosenoffset.com/lightrays/internal/render"
	"chosenoffset.com/lightrays/internal/render/lighting"
	"chosenoffset.com/lightrays/internal/render/raster"
	"chosenoffset.com/lightrays/internal/simulation"
)

// Game holds all scene state and drives one frame per Update.
type Game struct {
	Config   *simulation.Config
	InputMgr render.InputManager
	State    State

	// Scene
	Light       *lighting.LightSource
	Shadow      shadows.Circle
	ShadowSpeed float64

	// Software surface every frame is painted onto before it is presented
	Frame *raster.Framebuffer

	// Optional, may be nil
	Bounce BounceListener

	// Debug
	FrameCount int
	LastStats  raster.Stats
}

// NewGame creates a game in the running state from cfg.
func NewGame(cfg *simulation.Config, input render.InputManager) *Game {
	return &Game{
		Config:      cfg,
		InputMgr:    input,
		State:       StateRunning,
		Light:       lighting.NewLightSource(cfg.Light, cfg.RayCount),
		Shadow:      cfg.Shadow,
		ShadowSpeed: cfg.ShadowSpeed,
		Frame:       raster.NewFramebuffer(cfg.Width, cfg.Height),
	}
}

// SetBounceListener registers a listener for obstacle direction changes.
func (g *Game) SetBounceListener(l BounceListener) {
	g.Bounce = l
}

// Update runs one frame: input, rasterization and physics. A quit event
// lets the current frame finish; the following call returns
// render.ErrTerminated.
func (g *Game) Update() error {
	if g.State == StateStopped {
		return render.ErrTerminated
	}

	g.handleEvents()
	g.renderFrame()
	g.updateShadow()

	g.FrameCount++
	return nil
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Config.Width, g.Config.Height
}

// Stop moves the game to the stopped state.
func (g *Game) Stop() {
	if g.State != StateStopped {
		log.Printf("Stopping after %d frames", g.FrameCount)
	}
	g.State = StateStopped
}

func (g *Game) handleEvents() {
	if g.InputMgr == nil {
		return
	}
	for _, ev := range g.InputMgr.PollEvents() {
		switch {
		case ev.Type == render.EventQuit:
			g.Stop()
		case ev.Dragging():
			g.Light.MoveTo(float64(ev.X), float64(ev.Y))
		}
	}
}

func (g *Game) updateShadow() {
	before := g.ShadowSpeed
	g.ShadowSpeed = physics.Bounce(&g.Shadow, g.ShadowSpeed, float64(g.Config.Height))
	if g.Bounce != nil && physics.Reversed(before, g.ShadowSpeed) {
		g.Bounce.OnBounce()
	}
}
