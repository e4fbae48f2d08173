// Package nest implements the incremental placement search: the fit/no-fit
// raster for a single part, the ordered search space built from it, the two
// interchangeable area-minimizing placement criteria, and the one-part-at-
// a-time simple nesting driver.
package nest

import (
	"math"

	"github.com/saebelma/nesting/geom"
)

// Case identifies one of the four orientation pairings a fit/no-fit raster
// is built for: the first letter is the already-placed part's orientation,
// the second is the orientation of the part being placed next to it.
type Case int

const (
	CaseNN Case = iota
	CaseNR
	CaseRR
	CaseRN
)

// NoFitSpace holds, for each of the four orientation cases, the set of
// integer-lattice relative offsets at which two instances of a part (with
// the case's orientations) do not overlap (FitPoints) and do overlap
// (NoFitPoints).
type NoFitSpace struct {
	FitPoints   [4][]geom.IntegerVector
	NoFitPoints [4][]geom.IntegerVector
}

// BuildNoFitSpace builds the four fit/no-fit rasters for an offset polygon
// already at the required clearance, using an integer lattice with the
// given step. maxNormalError bounds the chord-to-arc error of the pruning
// no-fit polygon's own expansion curve, the same way it bounds the part's
// offset curve.
func BuildNoFitSpace(offset geom.Polygon, rasterStep int, maxNormalError float64) NoFitSpace {
	rotated := offset.Rotate180()
	hull := geom.NewPolygon(geom.ConvexHull(offset.Vertices))
	hullRotated := geom.NewPolygon(geom.ConvexHull(rotated.Vertices))

	var nfs NoFitSpace
	nfs.FitPoints[CaseNN], nfs.NoFitPoints[CaseNN] = buildCase(offset, offset, hull, hull, rasterStep, maxNormalError)
	nfs.FitPoints[CaseNR], nfs.NoFitPoints[CaseNR] = buildCase(offset, rotated, hull, hullRotated, rasterStep, maxNormalError)
	nfs.FitPoints[CaseRR], nfs.NoFitPoints[CaseRR] = negateAll(nfs.FitPoints[CaseNN]), negateAll(nfs.NoFitPoints[CaseNN])
	nfs.FitPoints[CaseRN], nfs.NoFitPoints[CaseRN] = negateAll(nfs.FitPoints[CaseNR]), negateAll(nfs.NoFitPoints[CaseNR])
	return nfs
}

// buildCase computes the fit/no-fit raster for one orientation pairing.
// fixed/orbiting are the actual (possibly non-convex) offset polygons used
// for the authoritative exact intersection test; fixedHull/orbitingHull are
// their convex hulls, used only to build the no-fit polygon that prunes the
// raster candidate set before that exact test runs.
func buildCase(fixed, orbiting, fixedHull, orbitingHull geom.Polygon, rasterStep int, maxNormalError float64) (fit, nofit []geom.IntegerVector) {
	nfp := geom.NoFitPolygon(fixedHull.Vertices, orbitingHull.Vertices)
	nfpPolygon := geom.NewPolygon(nfp)
	// The expanded curve repeats a vertex wherever the no-fit polygon has
	// collinear edges; taking its convex hull drops those zero-length edges,
	// which would otherwise make Contains reject every point.
	expanded := geom.NewPolygon(geom.ConvexHull(geom.OffsetCurve(nfpPolygon, math.Sqrt2*float64(rasterStep), maxNormalError).Vertices))

	bbox := fixed.BoundingBox()
	iMax := int(math.Ceil(bbox.Width/float64(rasterStep))) + 1
	jMax := int(math.Ceil(bbox.Height/float64(rasterStep))) + 1

	// The no-fit polygon is the locus of the orbiting hull's highest-rightmost
	// vertex, in the same frame as the fixed hull; moving the orbiting polygon
	// by v moves that vertex by v.
	refOrbitingNFP := geom.HighestRightmost(orbitingHull.Vertices)

	for i := -iMax; i <= iMax; i++ {
		for j := -jMax; j <= jMax; j++ {
			v := geom.IntegerVector{X: int64(i) * int64(rasterStep), Y: int64(j) * int64(rasterStep)}
			testPoint := refOrbitingNFP.Translate(v.ToVector())

			if !expanded.Contains(testPoint) {
				// Outside the (conservatively expanded) no-fit region:
				// guaranteed not to overlap.
				fit = append(fit, v)
				continue
			}

			if orbiting.TranslateInt(v).Intersects(fixed) {
				nofit = append(nofit, v)
			} else {
				fit = append(fit, v)
			}
		}
	}
	return fit, nofit
}

func negateAll(vs []geom.IntegerVector) []geom.IntegerVector {
	out := make([]geom.IntegerVector, len(vs))
	for i, v := range vs {
		out[i] = v.Negate()
	}
	return out
}
