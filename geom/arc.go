package geom

import "math"

// CircularArc is an arc of a circle, swept counter-clockwise from
// StartAngle to EndAngle (radians).
type CircularArc struct {
	Center              Point
	Radius              float64
	StartAngle, EndAngle float64
}

// CentralAngle returns the arc's sweep, normalized to (0, 2*pi].
func (a CircularArc) CentralAngle() float64 {
	d := a.EndAngle - a.StartAngle
	for d <= 0 {
		d += 2 * math.Pi
	}
	for d > 2*math.Pi {
		d -= 2 * math.Pi
	}
	return d
}

// PointAt returns the point on the arc at the given angle offset from
// StartAngle.
func (a CircularArc) PointAt(angleFromStart float64) Point {
	angle := a.StartAngle + angleFromStart
	return Point{
		X: a.Center.X + a.Radius*math.Cos(angle),
		Y: a.Center.Y + a.Radius*math.Sin(angle),
	}
}
