// Package physics moves the obstacle circle around the viewport.
package physics

import "chosenoffset.com/lightrays/internal/core/shadows"

// Bounce moves c vertically by speed and returns the speed for the next call.
// When the moved circle pokes past the top (y-r < 0) or the bottom
// (y+r > height) the returned speed is negated. The position is never clamped,
// so the circle can overshoot a bound by up to |speed| before it turns around.
func Bounce(c *shadows.Circle, speed, height float64) float64 {
	c.Y += speed

	if OutOfBounds(*c, height) {
		return -speed
	}
	return speed
}

// OutOfBounds reports whether any part of c is above 0 or below height
func OutOfBounds(c shadows.Circle, height float64) bool {
	return c.Y-c.R < 0 || c.Y+c.R > height
}

// Reversed reports whether a Bounce call flipped the direction of travel
func Reversed(before, after float64) bool {
	return (before < 0) != (after < 0) && before != 0
}
