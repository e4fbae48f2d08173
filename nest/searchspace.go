package nest

import "github.com/saebelma/nesting/geom"

// SearchSpace is an ordered integer-lattice search structure: the set of
// positions where the next part could still be placed without overlapping
// any part placed so far. It is maintained incrementally, once per
// placement, rather than recomputed from scratch.
type SearchSpace struct {
	fitTotal   *geom.VectorSet
	noFitTotal *geom.VectorSet
}

// NewSearchSpace returns an empty search space.
func NewSearchSpace() *SearchSpace {
	return &SearchSpace{
		fitTotal:   geom.NewVectorSet(),
		noFitTotal: geom.NewVectorSet(),
	}
}

// NewSearchSpaceFrom seeds a search space directly from an existing fit/nofit
// pair, rather than building it up placement by placement. Tuple nesting uses
// this to treat a single fit/no-fit raster (or a space already composed from
// several of them) as the starting point for further composition.
func NewSearchSpaceFrom(fit, nofit []geom.IntegerVector) *SearchSpace {
	return &SearchSpace{
		fitTotal:   geom.NewVectorSet(fit...),
		noFitTotal: geom.NewVectorSet(nofit...),
	}
}

// Clone returns an independent copy of s.
func (s *SearchSpace) Clone() *SearchSpace {
	return &SearchSpace{
		fitTotal:   s.fitTotal.Clone(),
		noFitTotal: s.noFitTotal.Clone(),
	}
}

// AddPlacement folds in a newly placed part at pos: fit points translated by
// pos are added to fitTotal (unless already excluded by noFitTotal or
// rejected by filter), and no-fit points translated by pos are moved from
// fitTotal into noFitTotal. filter is used, in the simple driver, to reject
// candidate positions whose part would not fit on the table; pass a filter
// that always returns true to skip that check.
func (s *SearchSpace) AddPlacement(pos geom.IntegerVector, fit, nofit []geom.IntegerVector, filter func(geom.IntegerVector) bool) {
	for _, f := range fit {
		translated := f.Plus(pos)
		if !filter(translated) {
			continue
		}
		if s.noFitTotal.Contains(translated) {
			continue
		}
		s.fitTotal.Add(translated)
	}

	for _, nf := range nofit {
		translated := nf.Plus(pos)
		s.fitTotal.Remove(translated)
		s.noFitTotal.Add(translated)
	}
}

// FitTotal returns the current set of feasible positions, in ascending
// (x, y) order.
func (s *SearchSpace) FitTotal() []geom.IntegerVector {
	return s.fitTotal.Slice()
}

// NoFitTotal returns the current set of excluded positions, in ascending
// (x, y) order.
func (s *SearchSpace) NoFitTotal() []geom.IntegerVector {
	return s.noFitTotal.Slice()
}

// Empty reports whether no feasible position remains.
func (s *SearchSpace) Empty() bool {
	return s.fitTotal.Len() == 0
}

// AlwaysFit is a no-op filter for callers that don't need a table-bounds
// check (e.g. tuple nesting's compound spaces, which filter separately).
func AlwaysFit(geom.IntegerVector) bool { return true }
