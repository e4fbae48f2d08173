package geom

// AxisAlignedRectangle is a rectangle aligned with the coordinate axes,
// given by its bottom-left corner and non-negative width/height.
type AxisAlignedRectangle struct {
	Min           Point
	Width, Height float64
}

// Center returns the rectangle's center point.
func (r AxisAlignedRectangle) Center() Point {
	return Point{r.Min.X + r.Width/2, r.Min.Y + r.Height/2}
}

// Contains reports whether p lies within the rectangle, inclusive of its
// boundary.
func (r AxisAlignedRectangle) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Min.X+r.Width &&
		p.Y >= r.Min.Y && p.Y <= r.Min.Y+r.Height
}

// Area returns width * height.
func (r AxisAlignedRectangle) Area() float64 {
	return r.Width * r.Height
}

// Rectangle is an oriented rectangle given by its center, half-extents along
// its own axes, and the angle of its width axis from the x axis.
type Rectangle struct {
	Center               Point
	HalfWidth, HalfHeight float64
	Angle                float64
}

// Vertices returns the four corners in counter-clockwise order.
func (r Rectangle) Vertices() [4]Point {
	local := [4]Vector{
		{-r.HalfWidth, -r.HalfHeight},
		{r.HalfWidth, -r.HalfHeight},
		{r.HalfWidth, r.HalfHeight},
		{-r.HalfWidth, r.HalfHeight},
	}
	var out [4]Point
	for i, v := range local {
		p := Point{v.X, v.Y}.Rotate(Point{}, r.Angle)
		out[i] = p.Translate(r.Center.ToVector())
	}
	return out
}

// Area returns the rectangle's area.
func (r Rectangle) Area() float64 {
	return 4 * r.HalfWidth * r.HalfHeight
}
