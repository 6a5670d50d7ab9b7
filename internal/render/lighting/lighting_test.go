package lighting

import (
	"testing"

	"chosenoffset.com/lightrays/internal/core/shadows"
)

func TestNewLightSource(t *testing.T) {
	l := NewLightSource(shadows.Circle{X: 160, Y: 160, R: 40}, 100)

	if len(l.Rays()) != 100 {
		t.Fatalf("Expected 100 rays, got %d", len(l.Rays()))
	}
	if c := l.Circle(); c.X != 160 || c.Y != 160 || c.R != 40 {
		t.Errorf("Expected circle (160, 160, 40), got %+v", c)
	}
}

func TestMoveToRegeneratesRays(t *testing.T) {
	l := NewLightSource(shadows.Circle{X: 100, Y: 100, R: 40}, 100)
	angles := make([]float64, 0, 100)
	for _, r := range l.Rays() {
		angles = append(angles, r.Angle)
	}

	l.MoveTo(200, 50)

	if c := l.Circle(); c.X != 200 || c.Y != 50 || c.R != 40 {
		t.Errorf("Expected circle (200, 50, 40), got %+v", c)
	}
	rays := l.Rays()
	if len(rays) != 100 {
		t.Fatalf("Expected 100 rays after move, got %d", len(rays))
	}
	for i, r := range rays {
		if r.X0 != 200 || r.Y0 != 50 {
			t.Errorf("Ray %d: expected origin (200, 50), got (%v, %v)", i, r.X0, r.Y0)
		}
		if r.Angle != angles[i] {
			t.Errorf("Ray %d: expected angle %v, got %v", i, angles[i], r.Angle)
		}
	}
}
