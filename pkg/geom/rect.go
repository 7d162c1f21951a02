package geom

import "math"

// Rect is an axis-aligned rectangle described by its top-left origin and size.
type Rect struct {
	Origin Point
	Size   Size
}

// R builds a rectangle from its origin and dimensions.
func R(x, y, w, h float64) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// MinX returns the left edge.
func (r Rect) MinX() float64 { return r.Origin.X }

// MinY returns the top edge.
func (r Rect) MinY() float64 { return r.Origin.Y }

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.Origin.X + r.Size.Width }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Origin.Y + r.Size.Height }

// MidX returns the horizontal center.
func (r Rect) MidX() float64 { return r.Origin.X + r.Size.Width/2 }

// MidY returns the vertical center.
func (r Rect) MidY() float64 { return r.Origin.Y + r.Size.Height/2 }

// Width returns the horizontal span of the rectangle.
func (r Rect) Width() float64 { return r.Size.Width }

// Height returns the vertical span of the rectangle.
func (r Rect) Height() float64 { return r.Size.Height }

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool { return r.Size.Width <= 0 || r.Size.Height <= 0 }

// Offset returns the rectangle translated by d.
func (r Rect) Offset(d Point) Rect {
	return Rect{Origin: r.Origin.Add(d), Size: r.Size}
}

// Inset shrinks the rectangle by d on every side. A negative d grows it.
// The size never goes below zero.
func (r Rect) Inset(d float64) Rect {
	return R(r.MinX()+d, r.MinY()+d, math.Max(0, r.Width()-2*d), math.Max(0, r.Height()-2*d))
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive so adjacent cells never both contain a point.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.X < r.MaxX() && p.Y >= r.MinY() && p.Y < r.MaxY()
}

// Intersects reports whether r and other share any area.
func (r Rect) Intersects(other Rect) bool {
	return r.MinX() < other.MaxX() && other.MinX() < r.MaxX() &&
		r.MinY() < other.MaxY() && other.MinY() < r.MaxY()
}

// Union returns the smallest rectangle containing both r and other.
// An empty rectangle contributes nothing.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	minX := math.Min(r.MinX(), other.MinX())
	minY := math.Min(r.MinY(), other.MinY())
	maxX := math.Max(r.MaxX(), other.MaxX())
	maxY := math.Max(r.MaxY(), other.MaxY())
	return R(minX, minY, maxX-minX, maxY-minY)
}
