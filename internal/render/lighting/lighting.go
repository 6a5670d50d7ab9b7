package lighting

import (
	"chosenoffset.com/lightrays/internal/core/shadows"
)

// LightSource is the mouse-driven circle together with the rays it emits.
// The ray set always has exactly the count it was created with and is
// rebuilt in full whenever the source moves.
type LightSource struct {
	circle shadows.Circle
	rays   []shadows.Ray
}

// NewLightSource creates a light source at circle emitting rayCount rays
func NewLightSource(circle shadows.Circle, rayCount int) *LightSource {
	return &LightSource{
		circle: circle,
		rays:   shadows.GenerateRays(circle, rayCount),
	}
}

// Circle returns the current light source circle
func (l *LightSource) Circle() shadows.Circle {
	return l.circle
}

// Rays returns the ray set. The slice is owned by the light source; marching
// updates the ray tips in place.
func (l *LightSource) Rays() []shadows.Ray {
	return l.rays
}

// MoveTo moves the source centre and regenerates every ray
func (l *LightSource) MoveTo(x, y float64) {
	l.circle.X = x
	l.circle.Y = y
	shadows.RegenerateRays(l.circle, l.rays)
}
