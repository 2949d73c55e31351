package model

// Point represents a 2D point in page coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect represents a bounding box in corner form. The invariant for a valid
// rectangle is X0 < X1 and Y0 < Y1; use IsDegenerate to test it.
type Rect struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// NewRect creates a rectangle from two corner coordinates.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// IsDegenerate reports whether the rectangle has non-positive extent on
// either axis.
func (r Rect) IsDegenerate() bool {
	return r.X0 >= r.X1 || r.Y0 >= r.Y1
}

// Contains reports whether the point lies inside the rectangle (edges
// inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X <= r.X1 && p.Y >= r.Y0 && p.Y <= r.Y1
}

// Intersects reports whether two rectangles have a non-empty geometric
// overlap. Partial overlap is sufficient; containment is not required.
func (r Rect) Intersects(other Rect) bool {
	return !(r.X1 < other.X0 || r.X0 > other.X1 ||
		r.Y1 < other.Y0 || r.Y0 > other.Y1)
}

// Union returns the smallest rectangle covering both rectangles.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		X0: min(r.X0, other.X0),
		Y0: min(r.Y0, other.Y0),
		X1: max(r.X1, other.X1),
		Y1: max(r.Y1, other.Y1),
	}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.X0 + r.X1) / 2, Y: (r.Y0 + r.Y1) / 2}
}

// Clamp01 clamps a value into the [0,1] interval.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Normalize converts an absolute coordinate into a page-relative coordinate
// in [0,1]. The dimension must be positive; callers validate page geometry
// before normalizing.
func Normalize(coord, dim float64) float64 {
	return Clamp01(coord / dim)
}

// NormalizePoint converts an absolute point into page-relative coordinates.
func NormalizePoint(p Point, width, height float64) Point {
	return Point{
		X: Normalize(p.X, width),
		Y: Normalize(p.Y, height),
	}
}

// Normalized converts an absolute rectangle into page-relative coordinates,
// with every coordinate clamped to [0,1].
func (r Rect) Normalized(width, height float64) Rect {
	return Rect{
		X0: Normalize(r.X0, width),
		Y0: Normalize(r.Y0, height),
		X1: Normalize(r.X1, width),
		Y1: Normalize(r.Y1, height),
	}
}

// DualPoint carries a point in both absolute and normalized coordinates.
type DualPoint struct {
	Abs  Point `json:"abs"`
	Norm Point `json:"norm"`
}

// DualRect carries a rectangle in both absolute and normalized coordinates.
type DualRect struct {
	Abs  Rect `json:"abs"`
	Norm Rect `json:"norm"`
}

// Place builds a DualPoint for a page of the given dimensions.
func Place(p Point, width, height float64) DualPoint {
	return DualPoint{Abs: p, Norm: NormalizePoint(p, width, height)}
}

// PlaceRect builds a DualRect for a page of the given dimensions.
func PlaceRect(r Rect, width, height float64) DualRect {
	return DualRect{Abs: r, Norm: r.Normalized(width, height)}
}
