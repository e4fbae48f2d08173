// Package geom implements the computational-geometry primitives the nesting
// engine is built on: points, vectors, polygons, convex hulls, minimum
// bounding boxes, smallest enclosing circles, no-fit polygons and offset
// curves.
package geom

import "math"

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// Translate returns p shifted by v.
func (p Point) Translate(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y}
}

// TranslateInt returns p shifted by an integer-lattice vector.
func (p Point) TranslateInt(v IntegerVector) Point {
	return Point{p.X + float64(v.X), p.Y + float64(v.Y)}
}

// Rotate returns p rotated by angle radians around origin.
func (p Point) Rotate(origin Point, angle float64) Point {
	sin, cos := math.Sincos(angle)
	dx, dy := p.X-origin.X, p.Y-origin.Y
	return Point{
		X: origin.X + dx*cos - dy*sin,
		Y: origin.Y + dx*sin + dy*cos,
	}
}

// Rotate180 returns p rotated by 180 degrees around origin. Equivalent to
// Rotate(origin, math.Pi) but exact (no trig error).
func (p Point) Rotate180(origin Point) Point {
	return Point{2*origin.X - p.X, 2*origin.Y - p.Y}
}

// Minus returns the vector from q to p.
func (p Point) Minus(q Point) Vector {
	return Vector{p.X - q.X, p.Y - q.Y}
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return p.Minus(q).Length()
}

// ToVector reinterprets p as a position vector from the origin.
func (p Point) ToVector() Vector {
	return Vector{p.X, p.Y}
}
