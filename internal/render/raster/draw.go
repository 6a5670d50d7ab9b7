package raster

import (
	"image/color"

	"chosenoffset.com/lightrays/internal/core/shadows"
	"chosenoffset.com/lightrays/internal/render"
)

// FillCircle paints every integer-aligned point of the circle's bounding
// square that passes the containment test, one pixel at a time.
// A negative radius paints nothing.
func FillCircle(dst render.Surface, c shadows.Circle, clr color.Color) {
	for x := c.X - c.R; x <= c.X+c.R; x++ {
		for y := c.Y - c.R; y <= c.Y+c.R; y++ {
			if c.Contains(x, y) {
				dst.FillRect(int(x), int(y), 1, 1, clr)
			}
		}
	}
}

// Stats summarises one pass of ray tracing.
type Stats struct {
	Rays   int
	Hits   int
	Exits  int
	Pixels int
	// Longest is the greatest distance any ray travelled before stopping.
	Longest float64
}

// FillRays marches every ray against the obstacle and paints each step.
func FillRays(dst render.Surface, obstacle shadows.Circle, rays []shadows.Ray, vp shadows.Viewport, clr color.Color) {
	TraceRays(dst, obstacle, rays, vp, clr)
}

// TraceRays is FillRays that also reports what happened to the rays.
func TraceRays(dst render.Surface, obstacle shadows.Circle, rays []shadows.Ray, vp shadows.Viewport, clr color.Color) Stats {
	var stats Stats
	plot := func(x, y float64) {
		dst.FillRect(int(x), int(y), 1, 1, clr)
		stats.Pixels++
	}

	for i := range rays {
		term := shadows.March(&rays[i], obstacle, vp, plot)
		stats.Rays++
		if term.Hit() {
			stats.Hits++
		}
		if term.Exited() {
			stats.Exits++
		}
		if l := rays[i].Length(); l > stats.Longest {
			stats.Longest = l
		}
	}
	return stats
}
