package raster

import (
	"bytes"
	"image/color"
	"math"
	"testing"

	"chosenoffset.com/lightrays/internal/core/shadows"
)

var (
	yellow = color.RGBA{0xFF, 0xEC, 0x30, 0xFF}
	green  = color.RGBA{0x2E, 0xCF, 0x19, 0xFF}
)

func countColor(fb *Framebuffer, clr color.RGBA) int {
	w, h := fb.Size()
	n := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if fb.At(x, y) == clr {
				n++
			}
		}
	}
	return n
}

func TestFillCircle(t *testing.T) {
	fb := NewFramebuffer(20, 20)
	FillCircle(fb, shadows.Circle{X: 10, Y: 10, R: 5}, green)

	// Lattice points with x²+y² <= 25
	if got := countColor(fb, green); got != 81 {
		t.Errorf("Expected 81 painted pixels, got %d", got)
	}
	if fb.At(15, 10) != green {
		t.Error("Expected boundary pixel (15, 10) to be painted")
	}
	if fb.At(14, 14) == green {
		t.Error("Expected corner pixel (14, 14) to be outside the circle")
	}
}

func TestFillCircleDegenerate(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	FillCircle(fb, shadows.Circle{X: 5, Y: 5, R: -2}, green)
	if got := countColor(fb, green); got != 0 {
		t.Errorf("Expected nothing painted for negative radius, got %d", got)
	}

	FillCircle(fb, shadows.Circle{X: 3, Y: 3, R: 0}, green)
	if got := countColor(fb, green); got != 1 {
		t.Errorf("Expected only the centre painted for zero radius, got %d", got)
	}
	if fb.At(3, 3) != green {
		t.Error("Expected centre pixel (3, 3) to be painted")
	}
}

func TestFillCircleClipped(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	FillCircle(fb, shadows.Circle{X: 0, Y: 0, R: 3}, green)

	// Only the quadrant with x,y >= 0 lands on the surface
	if got := countColor(fb, green); got != 11 {
		t.Errorf("Expected 11 painted pixels in the visible quadrant, got %d", got)
	}
}

func TestFillCircleDeterministic(t *testing.T) {
	c := shadows.Circle{X: 160, Y: 160, R: 40}

	a := NewFramebuffer(400, 400)
	FillCircle(a, c, yellow)
	b := NewFramebuffer(400, 400)
	FillCircle(b, c, yellow)

	if !bytes.Equal(a.Pix(), b.Pix()) {
		t.Error("Expected identical pixels from identical inputs")
	}
}

func TestFillRectClipping(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.FillRect(-1, -1, 1, 1, green)
	fb.FillRect(4, 0, 1, 1, green)
	if got := countColor(fb, green); got != 0 {
		t.Errorf("Expected off-surface rects to be dropped, got %d pixels", got)
	}

	fb.FillRect(2, 2, 5, 5, green)
	if got := countColor(fb, green); got != 4 {
		t.Errorf("Expected 4 pixels from the clipped rect, got %d", got)
	}
}

func TestFill(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.Fill(yellow)
	if got := countColor(fb, yellow); got != 6 {
		t.Errorf("Expected all 6 pixels filled, got %d", got)
	}
}

func TestTraceRaysDefaultScene(t *testing.T) {
	fb := NewFramebuffer(1300, 900)
	vp := shadows.Viewport{Width: 1300, Height: 900}
	obstacle := shadows.Circle{X: 650, Y: 300, R: 140}
	rays := shadows.GenerateRays(shadows.Circle{X: 160, Y: 160, R: 40}, 100)

	stats := TraceRays(fb, obstacle, rays, vp, yellow)

	if stats.Rays != 100 {
		t.Errorf("Expected 100 rays traced, got %d", stats.Rays)
	}
	if stats.Hits == 0 || stats.Exits == 0 {
		t.Errorf("Expected both hits and exits, got %+v", stats)
	}
	if stats.Hits+stats.Exits < 100 {
		t.Errorf("Expected every ray to terminate, got %+v", stats)
	}
	if stats.Pixels == 0 {
		t.Error("Expected ray pixels to be plotted")
	}

	// Ray 0 runs right along y=160 and stops where it grazes the obstacle top
	if fb.At(600, 160) != yellow {
		t.Error("Expected ray 0 to paint (600, 160)")
	}
	if fb.At(700, 160) == yellow {
		t.Error("Expected ray 0 to stop at the obstacle")
	}
	// Obstacle centre is shadowed from the source
	if fb.At(650, 300) == yellow {
		t.Error("Expected the obstacle centre to receive no ray pixels")
	}
}

func TestFillRaysOrderIndependent(t *testing.T) {
	vp := shadows.Viewport{Width: 300, Height: 200}
	obstacle := shadows.Circle{X: 200, Y: 100, R: 30}
	source := shadows.Circle{X: 50, Y: 50, R: 10}

	forward := shadows.GenerateRays(source, 100)
	reversed := shadows.GenerateRays(source, 100)
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}

	a := NewFramebuffer(300, 200)
	FillRays(a, obstacle, forward, vp, yellow)
	b := NewFramebuffer(300, 200)
	FillRays(b, obstacle, reversed, vp, yellow)

	if !bytes.Equal(a.Pix(), b.Pix()) {
		t.Error("Expected the same image regardless of ray order")
	}
}

func TestTraceRaysLongest(t *testing.T) {
	fb := NewFramebuffer(300, 200)
	vp := shadows.Viewport{Width: 300, Height: 200}
	// Obstacle off the surface so every ray runs to the edge
	obstacle := shadows.Circle{X: -100, Y: -100, R: 1}
	// Ray 0 points right, ray 1 points left
	rays := shadows.GenerateRays(shadows.Circle{X: 50, Y: 50, R: 10}, 2)

	stats := TraceRays(fb, obstacle, rays, vp, yellow)

	if stats.Exits != 2 || stats.Hits != 0 {
		t.Errorf("Expected both rays to leave the surface, got %+v", stats)
	}
	// Right: x=50 to x=301; left: x=50 to x=-1
	if math.Abs(stats.Longest-251) > 1e-9 {
		t.Errorf("Expected longest ray 251, got %v", stats.Longest)
	}
	if got := rays[1].Length(); math.Abs(got-51) > 1e-6 {
		t.Errorf("Expected left ray length 51, got %v", got)
	}
}
