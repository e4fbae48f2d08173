package nest

import "github.com/saebelma/nesting/geom"

// CriterionKind selects which placement criterion a driver uses.
type CriterionKind int

const (
	CriterionConvexHullArea CriterionKind = iota
	CriterionSEC
)

// Params carries the numeric knobs the nesting drivers in this package
// need. The root nesting package's Config is the public, validated form of
// this; it is kept separate here so this package does not import the root
// package (which in turn imports this one).
type Params struct {
	TableRadius    float64
	PartClearance  float64
	MaxNormalError float64
	RasterStep     int
	Criterion      CriterionKind
	RNGSeed        int64
}

// NewCriterion builds the Criterion implementation selected by p.Criterion.
func NewCriterion(p Params) Criterion {
	switch p.Criterion {
	case CriterionSEC:
		return NewSECCriterion(p.RNGSeed)
	default:
		return NewConvexHullCriterion()
	}
}

// Orientation is the orientation a part is placed in: as-is (N) or rotated
// 180 degrees about its own bounding-box center (R).
type Orientation int

const (
	OrientationN Orientation = iota
	OrientationR
)

// Placement is one placed copy of the part.
type Placement struct {
	Position    geom.IntegerVector
	Orientation Orientation
}

// SimpleNesting places one copy of a part at a time, always picking the
// feasible position (among both orientations) that minimizes the chosen
// criterion's score, until no feasible position remains in either
// orientation.
type SimpleNesting struct {
	params Params

	offsetN, offsetR geom.Polygon
	nfs              NoFitSpace

	searchN, searchR *SearchSpace
	criterion        Criterion

	placementsN, placementsR []geom.IntegerVector
}

// NewSimpleNesting builds a driver for part under params. part is
// normalized (its bounding-box center moved to the origin) before the
// offset curve and raster are built from it.
func NewSimpleNesting(part geom.Polygon, params Params) *SimpleNesting {
	normalized := part.Normalize()
	offsetN := geom.OffsetCurve(normalized, params.PartClearance, params.MaxNormalError)
	offsetR := offsetN.Rotate180()

	return &SimpleNesting{
		params:    params,
		offsetN:   offsetN,
		offsetR:   offsetR,
		nfs:       BuildNoFitSpace(offsetN, params.RasterStep, params.MaxNormalError),
		searchN:   NewSearchSpace(),
		searchR:   NewSearchSpace(),
		criterion: NewCriterion(params),
	}
}

// onTableFilter returns a SearchSpace filter that accepts a candidate
// position only if every vertex of offset, placed there, lies strictly
// inside the table disk centered at the origin.
func (n *SimpleNesting) onTableFilter(offset geom.Polygon) func(geom.IntegerVector) bool {
	table := geom.Circle{Radius: n.params.TableRadius}
	return func(v geom.IntegerVector) bool {
		for _, vertex := range offset.Vertices {
			if !table.Contains(vertex.TranslateInt(v)) {
				return false
			}
		}
		return true
	}
}

// Run executes the placement loop to completion and returns the resulting
// placements, normal orientation first, then rotated, each in placement
// order. If the part does not fit on the table at the origin, the result is
// empty.
func (n *SimpleNesting) Run() []Placement {
	origin := geom.IntegerVector{}
	if !n.onTableFilter(n.offsetN)(origin) {
		return nil
	}
	n.place(origin, OrientationN)

	for {
		rN, okN := n.criterion.Evaluate(n.searchN.FitTotal(), n.offsetN)
		rR, okR := n.criterion.Evaluate(n.searchR.FitTotal(), n.offsetR)
		if !okN && !okR {
			break
		}

		chooseN := okN && (!okR || rN.Evaluation <= rR.Evaluation)
		if chooseN {
			n.place(rN.Position, OrientationN)
		} else {
			n.place(rR.Position, OrientationR)
		}
	}

	placements := make([]Placement, 0, len(n.placementsN)+len(n.placementsR))
	for _, p := range n.placementsN {
		placements = append(placements, Placement{Position: p, Orientation: OrientationN})
	}
	for _, p := range n.placementsR {
		placements = append(placements, Placement{Position: p, Orientation: OrientationR})
	}
	return placements
}

func (n *SimpleNesting) place(pos geom.IntegerVector, orientation Orientation) {
	switch orientation {
	case OrientationN:
		n.placementsN = append(n.placementsN, pos)
		n.searchN.AddPlacement(pos, n.nfs.FitPoints[CaseNN], n.nfs.NoFitPoints[CaseNN], n.onTableFilter(n.offsetN))
		n.searchR.AddPlacement(pos, n.nfs.FitPoints[CaseNR], n.nfs.NoFitPoints[CaseNR], n.onTableFilter(n.offsetR))
		n.criterion.AddPolygon(pos, n.offsetN)
	case OrientationR:
		n.placementsR = append(n.placementsR, pos)
		n.searchN.AddPlacement(pos, n.nfs.FitPoints[CaseRN], n.nfs.NoFitPoints[CaseRN], n.onTableFilter(n.offsetN))
		n.searchR.AddPlacement(pos, n.nfs.FitPoints[CaseRR], n.nfs.NoFitPoints[CaseRR], n.onTableFilter(n.offsetR))
		n.criterion.AddPolygon(pos, n.offsetR)
	}
}
