package nest

import "github.com/saebelma/nesting/geom"

// Result is the outcome of evaluating a candidate position: the position
// itself and the score (hull or enclosing-circle area) the placement would
// produce there.
type Result struct {
	Position   geom.IntegerVector
	Evaluation float64
}

// Criterion scores candidate positions for the next placement by the area
// of the resulting total arrangement, after some bounding construction
// (convex hull or smallest enclosing circle). Two interchangeable
// implementations exist; the caller picks one at construction time.
type Criterion interface {
	// AddPolygon folds the vertices of polygon, translated by pos, into the
	// criterion's running state.
	AddPolygon(pos geom.IntegerVector, polygon geom.Polygon)
	// AddPolygons folds several polygons, all translated by the same pos,
	// into the criterion's running state in one step (used when a tuple of
	// parts is committed to a single position as a unit).
	AddPolygons(pos geom.IntegerVector, polygons []geom.Polygon)
	// Evaluate scores every position in positions as a candidate placement
	// of polygon, returning the position with the minimum score. ok is
	// false if positions is empty.
	Evaluate(positions []geom.IntegerVector, polygon geom.Polygon) (Result, bool)
	// EvaluateMulti is Evaluate generalized to a probe made of several
	// polygons at once (used by tuple nesting, where the thing being placed
	// next to an arrangement is itself a pair or quadruple of parts).
	EvaluateMulti(positions []geom.IntegerVector, polygons []geom.Polygon) (Result, bool)
	// ConvexHullTotal returns the convex hull of all vertices folded in so
	// far.
	ConvexHullTotal() []geom.Point
}

func mergedVertices(polygons []geom.Polygon, pos geom.IntegerVector) []geom.Point {
	var out []geom.Point
	for _, p := range polygons {
		out = append(out, p.TranslateInt(pos).Vertices...)
	}
	return out
}

// ConvexHullCriterion scores a position by the area of the convex hull of
// every placed polygon's vertices, including the candidate placement.
type ConvexHullCriterion struct {
	total *geom.PointSet
}

// NewConvexHullCriterion returns a blank convex-hull criterion.
func NewConvexHullCriterion() *ConvexHullCriterion {
	return &ConvexHullCriterion{total: geom.NewPointSet()}
}

// AddPolygon implements Criterion.
func (c *ConvexHullCriterion) AddPolygon(pos geom.IntegerVector, polygon geom.Polygon) {
	translated := polygon.TranslateInt(pos)
	c.total.AddAll(translated.Vertices)
}

// AddPolygons implements Criterion.
func (c *ConvexHullCriterion) AddPolygons(pos geom.IntegerVector, polygons []geom.Polygon) {
	c.total.AddAll(mergedVertices(polygons, pos))
}

// Evaluate implements Criterion.
func (c *ConvexHullCriterion) Evaluate(positions []geom.IntegerVector, polygon geom.Polygon) (Result, bool) {
	if len(positions) == 0 {
		return Result{}, false
	}
	var best Result
	bestSet := false
	for _, pos := range positions {
		clone := c.total.Clone()
		clone.AddAll(polygon.TranslateInt(pos).Vertices)
		hull := geom.ConvexHullOfSet(clone)
		area := geom.Polygon{Vertices: hull}.Area()
		if !bestSet || area < best.Evaluation {
			best = Result{Position: pos, Evaluation: area}
			bestSet = true
		}
	}
	return best, true
}

// EvaluateMulti implements Criterion.
func (c *ConvexHullCriterion) EvaluateMulti(positions []geom.IntegerVector, polygons []geom.Polygon) (Result, bool) {
	if len(positions) == 0 {
		return Result{}, false
	}
	var best Result
	bestSet := false
	for _, pos := range positions {
		clone := c.total.Clone()
		clone.AddAll(mergedVertices(polygons, pos))
		hull := geom.ConvexHullOfSet(clone)
		area := geom.Polygon{Vertices: hull}.Area()
		if !bestSet || area < best.Evaluation {
			best = Result{Position: pos, Evaluation: area}
			bestSet = true
		}
	}
	return best, true
}

// ConvexHullTotal implements Criterion.
func (c *ConvexHullCriterion) ConvexHullTotal() []geom.Point {
	return geom.ConvexHullOfSet(c.total)
}

// SECCriterion scores a position by the area of the smallest enclosing
// circle of every placed polygon's vertices, including the candidate
// placement. The convex hull of the placed vertices is still maintained, as
// an optimization to bound the input set handed to the SEC construction.
type SECCriterion struct {
	total   *geom.PointSet
	builder *geom.SECBuilder
}

// NewSECCriterion returns a blank smallest-enclosing-circle criterion using
// the given RNG seed for determinism.
func NewSECCriterion(seed int64) *SECCriterion {
	return &SECCriterion{total: geom.NewPointSet(), builder: geom.NewSECBuilder(seed)}
}

// AddPolygon implements Criterion.
func (c *SECCriterion) AddPolygon(pos geom.IntegerVector, polygon geom.Polygon) {
	hull := geom.ConvexHullOfSet(c.total)
	translated := polygon.TranslateInt(pos).Vertices
	c.total = geom.NewPointSet(append(hull, translated...)...)
	c.total = geom.NewPointSet(geom.ConvexHullOfSet(c.total)...)
}

// AddPolygons implements Criterion.
func (c *SECCriterion) AddPolygons(pos geom.IntegerVector, polygons []geom.Polygon) {
	hull := geom.ConvexHullOfSet(c.total)
	merged := mergedVertices(polygons, pos)
	c.total = geom.NewPointSet(append(hull, merged...)...)
	c.total = geom.NewPointSet(geom.ConvexHullOfSet(c.total)...)
}

// Evaluate implements Criterion.
func (c *SECCriterion) Evaluate(positions []geom.IntegerVector, polygon geom.Polygon) (Result, bool) {
	if len(positions) == 0 {
		return Result{}, false
	}
	base := c.total.Slice()
	var best Result
	bestSet := false
	for _, pos := range positions {
		candidate := make([]geom.Point, len(base), len(base)+polygon.N())
		copy(candidate, base)
		candidate = append(candidate, polygon.TranslateInt(pos).Vertices...)
		circle := c.builder.SmallestEnclosingCircle(candidate)
		area := circle.Area()
		if !bestSet || area < best.Evaluation {
			best = Result{Position: pos, Evaluation: area}
			bestSet = true
		}
	}
	return best, true
}

// EvaluateMulti implements Criterion.
func (c *SECCriterion) EvaluateMulti(positions []geom.IntegerVector, polygons []geom.Polygon) (Result, bool) {
	if len(positions) == 0 {
		return Result{}, false
	}
	base := c.total.Slice()
	var best Result
	bestSet := false
	for _, pos := range positions {
		candidate := make([]geom.Point, len(base), len(base)+64)
		copy(candidate, base)
		candidate = append(candidate, mergedVertices(polygons, pos)...)
		circle := c.builder.SmallestEnclosingCircle(candidate)
		area := circle.Area()
		if !bestSet || area < best.Evaluation {
			best = Result{Position: pos, Evaluation: area}
			bestSet = true
		}
	}
	return best, true
}

// ConvexHullTotal implements Criterion.
func (c *SECCriterion) ConvexHullTotal() []geom.Point {
	return c.total.Slice()
}
