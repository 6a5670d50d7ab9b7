package simulation

import (
	"image/color"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width != 1300 || cfg.Height != 900 {
		t.Errorf("Expected 1300x900, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.RayCount != 100 {
		t.Errorf("Expected 100 rays, got %d", cfg.RayCount)
	}
	if cfg.Light.X != 160 || cfg.Light.Y != 160 || cfg.Light.R != 40 {
		t.Errorf("Expected light (160, 160, 40), got %+v", cfg.Light)
	}
	if cfg.Shadow.X != 650 || cfg.Shadow.Y != 300 || cfg.Shadow.R != 140 {
		t.Errorf("Expected shadow (650, 300, 140), got %+v", cfg.Shadow)
	}
	if cfg.ShadowSpeed != 3 {
		t.Errorf("Expected shadow speed 3, got %v", cfg.ShadowSpeed)
	}
	if cfg.FrameDelay != 10*time.Millisecond {
		t.Errorf("Expected 10ms frame delay, got %v", cfg.FrameDelay)
	}
	if cfg.TPS() != 100 {
		t.Errorf("Expected 100 TPS, got %d", cfg.TPS())
	}
}

func TestHexColor(t *testing.T) {
	want := color.RGBA{0xFF, 0xEC, 0x30, 0xFF}
	if got := HexColor(0xFFEC30); got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if got := DefaultConfig().Background; got != (color.RGBA{0, 0, 0, 0xFF}) {
		t.Errorf("Expected opaque black background, got %v", got)
	}
}

func TestViewport(t *testing.T) {
	vp := DefaultConfig().Viewport()
	if vp.Width != 1300 || vp.Height != 900 {
		t.Errorf("Expected viewport 1300x900, got %vx%v", vp.Width, vp.Height)
	}
}
