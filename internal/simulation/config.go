// Package simulation holds the compiled-in constants that define the scene.
// Nothing here is read from disk; DefaultConfig is the only source.
package simulation

import (
	"image/color"
	"time"

	"chosenoffset.com/lightrays/internal/core/shadows"
)

// Config holds every parameter of the scene
type Config struct {
	// Window
	Title  string
	Width  int
	Height int

	// Rays
	RayCount int

	// Colors
	Background  color.RGBA
	LightColor  color.RGBA // Light source circle and its rays
	ShadowColor color.RGBA // Obstacle circle

	// Initial circles
	Light  shadows.Circle
	Shadow shadows.Circle

	// Obstacle vertical speed in pixels per frame
	ShadowSpeed float64

	// Delay between frames
	FrameDelay time.Duration
}

// DefaultConfig returns the scene the program always runs with
func DefaultConfig() *Config {
	return &Config{
		Title:       "Ray tracing",
		Width:       1300,
		Height:      900,
		RayCount:    100,
		Background:  HexColor(0x000000),
		LightColor:  HexColor(0xFFEC30),
		ShadowColor: HexColor(0x2ECF19),
		Light:       shadows.Circle{X: 160, Y: 160, R: 40},
		Shadow:      shadows.Circle{X: 650, Y: 300, R: 140},
		ShadowSpeed: 3,
		FrameDelay:  10 * time.Millisecond,
	}
}

// Viewport returns the area rays are traced within
func (c *Config) Viewport() shadows.Viewport {
	return shadows.Viewport{Width: float64(c.Width), Height: float64(c.Height)}
}

// TPS returns the number of frames per second implied by FrameDelay
func (c *Config) TPS() int {
	if c.FrameDelay <= 0 {
		return 60
	}
	return int(time.Second / c.FrameDelay)
}

// HexColor converts a 0xRRGGBB value to an opaque color
func HexColor(rgb uint32) color.RGBA {
	return color.RGBA{
		R: uint8(rgb >> 16),
		G: uint8(rgb >> 8),
		B: uint8(rgb),
		A: 0xFF,
	}
}
