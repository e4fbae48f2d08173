package tuple

import (
	"math"

	"github.com/saebelma/nesting/geom"
	"github.com/saebelma/nesting/nest"
)

// Arrangement is the result of placing copies of one quadruple variant
// across the table. Offset holds the clearance-inflated polygons, in the
// same order and positions as Polygons; the table-boundary search in
// Driver.search and Driver.evaluateCenter works against Offset, since
// keeping the offset polygon inside the table disk is what guarantees
// clearance to the boundary. Polygons holds the corresponding original part
// outlines and is what Driver.Run ultimately reports; the Arrangement that
// Driver.Run returns carries Polygons only, with Offset left nil.
type Arrangement struct {
	Polygons []geom.Polygon
	Offset   []geom.Polygon
}

// Driver runs the hybrid tuple nesting pipeline for one part: it builds the
// four 1:1 fit/no-fit spaces once, then composes them, via Space.AddSubtract
// and PolygonSet.Reflect/Combine, into the pair, quadruple and final
// compound spaces the pipeline needs, without ever re-deriving a raster from
// scratch.
type Driver struct {
	params nest.Params

	// shapeN and shapeR each pair an offset (clearance-inflated) polygon
	// with the original part polygon it was offset from, for the N and R
	// orientations respectively. All fit/no-fit/criterion/search-space work
	// below uses the offset side; final output uses the original side.
	shapeN, shapeR geom.Shape

	spaceNN, spaceNR, spaceRR, spaceRN Space
}

// NewDriver builds a tuple nesting driver for part under params.
func NewDriver(part geom.Polygon, params nest.Params) *Driver {
	normalized := part.Normalize()
	offsetN := geom.OffsetCurve(normalized, params.PartClearance, params.MaxNormalError)
	shapeN := geom.OffsetShape(offsetN, normalized)
	shapeR := shapeN.Rotate180()
	nfs := nest.BuildNoFitSpace(offsetN, params.RasterStep, params.MaxNormalError)

	return &Driver{
		params:  params,
		shapeN:  shapeN,
		shapeR:  shapeR,
		spaceNN: NewSpace(nfs.FitPoints[nest.CaseNN], nfs.NoFitPoints[nest.CaseNN]),
		spaceNR: NewSpace(nfs.FitPoints[nest.CaseNR], nfs.NoFitPoints[nest.CaseNR]),
		spaceRR: NewSpace(nfs.FitPoints[nest.CaseRR], nfs.NoFitPoints[nest.CaseRR]),
		spaceRN: NewSpace(nfs.FitPoints[nest.CaseRN], nfs.NoFitPoints[nest.CaseRN]),
	}
}

// singleSpace returns the 1:1 space for a single anchor polygon of the given
// orientation against a single probe polygon of the given orientation.
func (d *Driver) singleSpace(anchor, probe nest.Orientation) Space {
	switch {
	case anchor == nest.OrientationN && probe == nest.OrientationN:
		return d.spaceNN
	case anchor == nest.OrientationN && probe == nest.OrientationR:
		return d.spaceNR
	case anchor == nest.OrientationR && probe == nest.OrientationR:
		return d.spaceRR
	default:
		return d.spaceRN
	}
}

func (d *Driver) polygons(ps PolygonSet) []geom.Polygon {
	return polygons(ps, d.shapeN.Polygon, d.shapeR.Polygon)
}

// originalPolygons returns, for each member of ps, the original (non-offset)
// part polygon placed at that member's offset and orientation. This is what
// actually gets reported as output: the offset polygons above drive
// fit/no-fit geometry and the table-containment search, and appear only in
// an Arrangement's Offset field, never in its Polygons.
func (d *Driver) originalPolygons(ps PolygonSet) []geom.Polygon {
	return polygons(ps, d.shapeN.Original, d.shapeR.Original)
}

// spaceAgainstSingleProbe builds the space for placing one probe polygon,
// with the given orientation, against every member of anchor (whose own
// member offsets are already fixed). anchor's first member must sit at the
// local origin.
func (d *Driver) spaceAgainstSingleProbe(anchor PolygonSet, probeOrientation nest.Orientation) Space {
	space := d.singleSpace(anchor.Members[0].Orientation, probeOrientation)
	for _, m := range anchor.Members[1:] {
		next := d.singleSpace(m.Orientation, probeOrientation)
		space = space.AddSubtract(next, m.Offset)
	}
	return space
}

// composeSpace generalizes the pairwise/quadruple space construction to any
// pair of frozen polygon sets: the space in which probe (referenced by its
// own local origin) can be placed next to every member of anchor. Both
// anchor's and probe's first member must sit at their set's local origin.
func (d *Driver) composeSpace(anchor, probe PolygonSet) Space {
	space := d.spaceAgainstSingleProbe(anchor, probe.Members[0].Orientation)
	for _, m := range probe.Members[1:] {
		next := d.spaceAgainstSingleProbe(anchor, m.Orientation)
		space = space.AddSubtract(next, m.Offset)
	}
	return space
}

// bestRelativePosition scores every candidate position as a placement of
// probe next to anchor (anchor fixed at the origin), using a fresh
// criterion, and returns the position minimizing the score.
func (d *Driver) bestRelativePosition(anchor, probe PolygonSet, positions []geom.IntegerVector) (geom.IntegerVector, bool) {
	if len(positions) == 0 {
		return geom.IntegerVector{}, false
	}
	crit := nest.NewCriterion(d.params)
	crit.AddPolygons(geom.IntegerVector{}, d.polygons(anchor))
	result, ok := crit.EvaluateMulti(positions, d.polygons(probe))
	return result.Position, ok
}

// quadrupleVariant is one of the three ways a quadruple can be assembled:
// two N_N pairs side by side, two N_R pairs side by side, or an N_N pair
// next to its own reflection.
type quadrupleVariant struct {
	quad  PolygonSet
	space Space
}

// Run assembles the three quadruple variants, greedily nests copies of each
// across the table, and returns the polygons of the best resulting
// arrangement that fit inside the table at its chosen search center,
// translated so that center becomes the origin.
func (d *Driver) Run() Arrangement {
	variants := d.buildQuadrupleVariants()
	if len(variants) == 0 {
		return d.fallbackSingle()
	}

	var best searchResult
	haveBest := false
	for _, v := range variants {
		arrangement := d.nest(v.quad, v.space)
		if len(arrangement.Polygons) == 0 {
			continue
		}
		result := d.search(arrangement)
		if !haveBest || better(result, best) {
			best = result
			haveBest = true
		}
	}
	if !haveBest {
		return d.fallbackSingle()
	}

	// Keep only the polygons whose offset lies inside the table disk at the
	// chosen center, then move that center to the origin.
	table := geom.Circle{Center: best.center, Radius: d.params.TableRadius}
	var kept []geom.Polygon
	for i, off := range best.arrangement.Offset {
		inside := true
		for _, v := range off.Vertices {
			if !table.Contains(v) {
				inside = false
				break
			}
		}
		if inside {
			kept = append(kept, best.arrangement.Polygons[i])
		}
	}
	shift := best.center.ToVector().Negate()
	return Arrangement{Polygons: translateAll(kept, shift)}
}

func translateAll(polys []geom.Polygon, shift geom.Vector) []geom.Polygon {
	out := make([]geom.Polygon, len(polys))
	for i, p := range polys {
		out[i] = p.Translate(shift)
	}
	return out
}

func (d *Driver) fallbackSingle() Arrangement {
	table := geom.Circle{Radius: d.params.TableRadius}
	for _, v := range d.shapeN.Polygon.Vertices {
		if !table.Contains(v) {
			return Arrangement{}
		}
	}
	return Arrangement{Polygons: []geom.Polygon{d.shapeN.Original}}
}

func (d *Driver) buildQuadrupleVariants() []quadrupleVariant {
	pairNN, okNN := d.buildPair(single(nest.OrientationN), single(nest.OrientationN), d.spaceNN)
	pairNR, okNR := d.buildPair(single(nest.OrientationN), single(nest.OrientationR), d.spaceNR)

	var variants []quadrupleVariant
	if okNN {
		pairRR := pairNN.Reflect()
		if q, ok := d.buildQuadruple(pairNN, pairNN); ok {
			variants = append(variants, q)
		}
		if q, ok := d.buildQuadruple(pairNN, pairRR); ok {
			variants = append(variants, q)
		}
	}
	if okNR {
		if q, ok := d.buildQuadruple(pairNR, pairNR); ok {
			variants = append(variants, q)
		}
	}
	return variants
}

// buildPair finds the best relative position of probe next to anchor on
// space's fit points and assembles the resulting two-member PolygonSet.
// anchor and probe are each single-member sets here; space is the matching
// 1:1 fit/no-fit raster.
func (d *Driver) buildPair(anchor, probe PolygonSet, space Space) (PolygonSet, bool) {
	pos, ok := d.bestRelativePosition(anchor, probe, space.FitTotal())
	if !ok {
		return PolygonSet{}, false
	}
	return Combine(anchor, probe, pos), true
}

// buildQuadruple finds the best relative position of probe pair next to
// anchor pair and assembles the resulting four-member set and its own 4:4
// compound space.
func (d *Driver) buildQuadruple(anchor, probe PolygonSet) (quadrupleVariant, bool) {
	space := d.composeSpace(anchor, probe)
	pos, ok := d.bestRelativePosition(anchor, probe, space.FitTotal())
	if !ok {
		return quadrupleVariant{}, false
	}
	quad := Combine(anchor, probe, pos)
	quadSpace := d.composeSpace(quad, quad)
	return quadrupleVariant{quad: quad, space: quadSpace}, true
}

// nest greedily places copies of quad across the table, starting from the
// position that centers quad's own smallest enclosing circle on the origin,
// accepting only candidates within tableRadius + 1.0*SEC.radius of that
// start. It stops once no feasible position remains.
func (d *Driver) nest(quad PolygonSet, space Space) Arrangement {
	basePolys := d.polygons(quad)
	if len(basePolys) == 0 {
		return Arrangement{}
	}
	hull := geom.ConvexHull(allVertices(basePolys))
	sec := geom.NewSECBuilder(d.params.RNGSeed).SmallestEnclosingCircle(hull)
	initial := sec.Center.ToVector().Negate().ToIntegerVector()

	bound := d.params.TableRadius + sec.Radius
	filter := func(pos geom.IntegerVector) bool {
		return pos.ToVector().Minus(initial.ToVector()).Length() <= bound
	}

	ss := nest.NewSearchSpace()
	ss.AddPlacement(initial, space.FitTotal(), space.NoFitTotal(), filter)

	crit := nest.NewCriterion(d.params)
	crit.AddPolygons(initial, basePolys)
	placements := []geom.IntegerVector{initial}

	for {
		result, ok := crit.EvaluateMulti(ss.FitTotal(), basePolys)
		if !ok {
			break
		}
		ss.AddPlacement(result.Position, space.FitTotal(), space.NoFitTotal(), filter)
		crit.AddPolygons(result.Position, basePolys)
		placements = append(placements, result.Position)
	}

	outputBase := d.originalPolygons(quad)
	var out, offset []geom.Polygon
	for _, pos := range placements {
		for i, p := range basePolys {
			offset = append(offset, p.TranslateInt(pos))
			out = append(out, outputBase[i].TranslateInt(pos))
		}
	}
	return Arrangement{Polygons: out, Offset: offset}
}

// searchResult is the outcome of the final bounded planar search for one
// arrangement: the winning table center, how many polygons fit entirely
// inside the table disk centered there, and the maximal vertex-to-center
// distance among the ones that do.
type searchResult struct {
	arrangement Arrangement
	center      geom.Point
	count       int
	maxDist     float64
}

func better(a, b searchResult) bool {
	if a.count != b.count {
		return a.count > b.count
	}
	return a.maxDist < b.maxDist
}

// search performs the grid search over a square inscribed in the
// arrangement's smallest enclosing circle, at raster-step resolution,
// keeping the candidate center maximizing the count of fully-contained
// polygons and, among ties, minimizing the maximal vertex distance to that
// center. Containment is judged against the offset polygons, since it is
// the offset shape, not the bare part outline, that must clear the table
// boundary by the configured clearance.
func (d *Driver) search(arr Arrangement) searchResult {
	hull := geom.ConvexHull(allVertices(arr.Offset))
	sec := geom.NewSECBuilder(d.params.RNGSeed).SmallestEnclosingCircle(hull)

	half := sec.Radius / math.Sqrt2
	step := math.Max(float64(d.params.RasterStep), 1)

	best := searchResult{arrangement: arr, count: -1}
	for x := -half; x <= half; x += step {
		for y := -half; y <= half; y += step {
			center := geom.Point{X: sec.Center.X + x, Y: sec.Center.Y + y}
			result := d.evaluateCenter(arr, center)
			if better(result, best) {
				best = result
			}
		}
	}
	return best
}

func (d *Driver) evaluateCenter(arr Arrangement, center geom.Point) searchResult {
	table := geom.Circle{Center: center, Radius: d.params.TableRadius}
	count := 0
	maxDist := 0.0
	for _, p := range arr.Offset {
		inside := true
		localMax := 0.0
		for _, v := range p.Vertices {
			if !table.Contains(v) {
				inside = false
			}
			if dist := v.DistanceTo(center); dist > localMax {
				localMax = dist
			}
		}
		if inside {
			count++
			if localMax > maxDist {
				maxDist = localMax
			}
		}
	}
	return searchResult{arrangement: arr, center: center, count: count, maxDist: maxDist}
}
