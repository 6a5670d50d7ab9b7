package shadows

// Point represents a 2D point in space
type Point struct {
	X, Y float64
}

// Circle is either the light source or the obstacle that casts the shadow.
// It is a plain value; callers mutate it in place to move it.
type Circle struct {
	X, Y float64
	R    float64
}

// Ray is a single light ray. The origin and angle are fixed when the ray is
// generated; the tip (Xn, Yn) moves while the ray is marched.
type Ray struct {
	X0, Y0 float64
	Angle  float64 // Radians
	Xn, Yn float64
}

// Origin returns the fixed starting point of the ray
func (r Ray) Origin() Point {
	return Point{X: r.X0, Y: r.Y0}
}

// Tip returns the current traced end of the ray
func (r Ray) Tip() Point {
	return Point{X: r.Xn, Y: r.Yn}
}

// Length is how far the tip has travelled from the origin
func (r Ray) Length() float64 {
	return Distance(r.Origin(), r.Tip())
}

// Viewport is the visible area rays are traced within, [0,Width]x[0,Height].
type Viewport struct {
	Width, Height float64
}

// Contains reports whether (x, y) lies inside the viewport. Edges count as inside.
func (v Viewport) Contains(x, y float64) bool {
	return x >= 0 && x <= v.Width && y >= 0 && y <= v.Height
}
