package game

import (
	"log"

	"chosenoffset.com/lightrays/internal/render"
	"chosenoffset.com/lightrays/internal/render/raster"
)

// renderFrame paints the scene onto the framebuffer. The obstacle is
// drawn after the rays and the light source last so nothing covers it.
func (g *Game) renderFrame() {
	cfg := g.Config

	g.Frame.Fill(cfg.Background)
	g.LastStats = raster.TraceRays(g.Frame, g.Shadow, g.Light.Rays(), cfg.Viewport(), cfg.LightColor)
	raster.FillCircle(g.Frame, g.Shadow, cfg.ShadowColor)
	raster.FillCircle(g.Frame, g.Light.Circle(), cfg.LightColor)

	if g.FrameCount == 0 {
		log.Printf("First frame: %d rays, %d hit the obstacle, %d left the screen, %d pixels traced, longest ray %.0f",
			g.LastStats.Rays, g.LastStats.Hits, g.LastStats.Exits, g.LastStats.Pixels, g.LastStats.Longest)
	}
}

// Draw presents the last rendered frame to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.WritePixels(g.Frame.Pix())
}
