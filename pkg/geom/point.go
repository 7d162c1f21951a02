package geom

import "math"

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns a new Point with other subtracted.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// In returns true if the point is inside the given rectangle.
func (p Point) In(r Rect) bool {
	return r.Contains(p)
}

// Size is a width and height pair.
type Size struct {
	Width, Height float64
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h float64) Size { return Size{Width: w, Height: h} }

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool { return s.Width == 0 && s.Height == 0 }

// Max returns the component-wise maximum of s and other.
func (s Size) Max(other Size) Size {
	return Size{Width: math.Max(s.Width, other.Width), Height: math.Max(s.Height, other.Height)}
}

// Clamp replaces negative or NaN dimensions with zero. Item sizes reported by
// callers pass through Clamp before they enter any accumulator.
func (s Size) Clamp() Size {
	return Size{Width: nonNegative(s.Width), Height: nonNegative(s.Height)}
}

func nonNegative(v float64) float64 {
	if v > 0 {
		return v
	}
	return 0
}
