package geom

import "math"

// Circle is a circle with a center and radius.
type Circle struct {
	Center Point
	Radius float64
}

// Contains reports whether p lies strictly inside the circle. The strict
// inequality matters at the table boundary: the simple driver's on-table
// filter (nest.SimpleNesting.onTableFilter) uses it to exclude points
// exactly on the edge.
func (c Circle) Contains(p Point) bool {
	return c.Center.DistanceTo(p) < c.Radius
}

// Area returns the circle's area.
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// FromDiameter returns the smallest circle having a and b as diametrically
// opposite points.
func FromDiameter(a, b Point) Circle {
	center := Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
	return Circle{Center: center, Radius: center.DistanceTo(a)}
}

// CircleFrom3Points returns the circle through a, b and c. ok is false if the
// three points are collinear (no finite circumscribing circle).
func CircleFrom3Points(a, b, c Point) (Circle, bool) {
	ax, ay := a.X, a.Y
	bx, by := b.X, b.Y
	cx, cy := c.X, c.Y

	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if math.Abs(d) < 1e-9 {
		return Circle{}, false
	}

	ux := ((ax*ax+ay*ay)*(by-cy) + (bx*bx+by*by)*(cy-ay) + (cx*cx+cy*cy)*(ay-by)) / d
	uy := ((ax*ax+ay*ay)*(cx-bx) + (bx*bx+by*by)*(ax-cx) + (cx*cx+cy*cy)*(bx-ax)) / d

	center := Point{ux, uy}
	return Circle{Center: center, Radius: center.DistanceTo(a)}, true
}
