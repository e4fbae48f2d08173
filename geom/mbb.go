package geom

import "math"

// MinimumBoundingBox returns the minimum-area oriented bounding box of the
// convex polygon given by hull (counter-clockwise vertices), using rotating
// calipers. hull must have at least 3 points.
func MinimumBoundingBox(hull []Point) Rectangle {
	n := len(hull)
	if n == 1 {
		return Rectangle{Center: hull[0]}
	}
	if n == 2 {
		mid := Point{(hull[0].X + hull[1].X) / 2, (hull[0].Y + hull[1].Y) / 2}
		length := hull[0].DistanceTo(hull[1])
		angle := hull[1].Minus(hull[0]).Angle()
		return Rectangle{Center: mid, HalfWidth: length / 2, HalfHeight: 0, Angle: angle}
	}

	// Extremal points: min-y, max-x, max-y, min-x, each the caliper's
	// initial antipodal vertex; axis-aligned calipers to start.
	idx := extremalIndices(hull)
	callerAngles := [4]float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2}

	best := Rectangle{}
	bestArea := math.Inf(1)
	rotated := 0.0

	for rotated <= math.Pi/2+Epsilon {
		// Angle from each caliper to its supporting edge.
		minAngle := math.Inf(1)
		minCaliper := 0
		for c := 0; c < 4; c++ {
			i := idx[c]
			edgeAngle := normalizeAngle(hull[next(i, n)].Minus(hull[i]).Angle())
			callerAngle := normalizeAngle(callerAngles[c])
			delta := normalizeAngle(edgeAngle - callerAngle)
			if delta < minAngle {
				minAngle = delta
				minCaliper = c
			}
		}

		for c := 0; c < 4; c++ {
			callerAngles[c] += minAngle
		}
		rotated += minAngle
		idx[minCaliper] = next(idx[minCaliper], n)

		rect := calipersRectangle(hull, idx, callerAngles)
		area := rect.Area()
		if area < bestArea {
			bestArea = area
			best = rect
		}
	}

	return best
}

func next(i, n int) int {
	return (i + 1) % n
}

func normalizeAngle(a float64) float64 {
	for a < 0 {
		a += 2 * math.Pi
	}
	for a >= 2*math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

func extremalIndices(hull []Point) [4]int {
	var minY, maxX, maxY, minX int
	for i, p := range hull {
		if p.Y < hull[minY].Y {
			minY = i
		}
		if p.X > hull[maxX].X {
			maxX = i
		}
		if p.Y > hull[maxY].Y {
			maxY = i
		}
		if p.X < hull[minX].X {
			minX = i
		}
	}
	return [4]int{minY, maxX, maxY, minX}
}

// calipersRectangle builds the rectangle whose four sides are the lines
// through hull[idx[c]] at direction callerAngles[c].
func calipersRectangle(hull []Point, idx [4]int, callerAngles [4]float64) Rectangle {
	lines := make([]Line, 4)
	for c := 0; c < 4; c++ {
		p := hull[idx[c]]
		dir := Vector{math.Cos(callerAngles[c]), math.Sin(callerAngles[c])}
		q := p.Translate(dir)
		lines[c] = LineThrough(p, q)
	}
	var corners [4]Point
	for c := 0; c < 4; c++ {
		corners[c], _ = lines[c].Intersect(lines[(c+1)%4])
	}
	width := corners[0].DistanceTo(corners[1])
	height := corners[1].DistanceTo(corners[2])
	center := Point{
		X: (corners[0].X + corners[2].X) / 2,
		Y: (corners[0].Y + corners[2].Y) / 2,
	}
	return Rectangle{
		Center:     center,
		HalfWidth:  width / 2,
		HalfHeight: height / 2,
		Angle:      callerAngles[0],
	}
}
