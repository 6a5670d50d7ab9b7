package shadows

import "math"

// Step is the distance a ray tip advances per marching iteration.
const Step = 1.0

// Termination describes why a ray stopped. Both bits can be set when the tip
// leaves the viewport on the same step it enters the obstacle.
type Termination uint8

const (
	ExitedViewport Termination = 1 << iota
	HitObstacle
)

// Exited reports whether the ray left the viewport
func (t Termination) Exited() bool {
	return t&ExitedViewport != 0
}

// Hit reports whether the ray struck the obstacle
func (t Termination) Hit() bool {
	return t&HitObstacle != 0
}

func (t Termination) String() string {
	switch t {
	case ExitedViewport:
		return "exited"
	case HitObstacle:
		return "hit"
	case ExitedViewport | HitObstacle:
		return "exited+hit"
	default:
		return "running"
	}
}

// GenerateRays builds n rays spread evenly around the circle centre.
// Ray i points at 2π·i/n and its tip starts at the origin.
func GenerateRays(source Circle, n int) []Ray {
	if n <= 0 {
		return nil
	}
	rays := make([]Ray, n)
	RegenerateRays(source, rays)
	return rays
}

// RegenerateRays rebuilds every ray in place for a moved source circle.
// The length of rays decides how many angles the full circle is split into.
func RegenerateRays(source Circle, rays []Ray) {
	n := len(rays)
	for i := range rays {
		angle := 2 * math.Pi * (float64(i) / float64(n))
		rays[i] = Ray{
			X0:    source.X,
			Y0:    source.Y,
			Angle: angle,
			Xn:    source.X,
			Yn:    source.Y,
		}
	}
}

// March advances the ray tip from its origin one Step at a time, calling plot
// after every advance, until the tip leaves vp or falls inside obstacle.
// The tip is left at the terminal position.
//
// Termination is guaranteed for any finite viewport since every step moves
// the tip a full unit along a fixed direction.
func March(r *Ray, obstacle Circle, vp Viewport, plot func(x, y float64)) Termination {
	dx := Step * math.Cos(r.Angle)
	dy := Step * math.Sin(r.Angle)

	r.Xn, r.Yn = r.X0, r.Y0
	for {
		r.Xn += dx
		r.Yn += dy

		if plot != nil {
			plot(r.Xn, r.Yn)
		}

		var t Termination
		if !vp.Contains(r.Xn, r.Yn) {
			t |= ExitedViewport
		}
		if obstacle.Contains(r.Xn, r.Yn) {
			t |= HitObstacle
		}
		if t != 0 {
			return t
		}
	}
}
