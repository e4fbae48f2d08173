// Package tuple implements the hybrid tuple nesting driver: 1:1 pair spaces
// composed into 2:1, 2:2, 4:2 and 4:4 compound spaces, a greedy placement of
// the resulting quadruple arrangement, and a final bounded planar search that
// picks the best of the three quadruple variants and centers it on the
// table.
package tuple

import (
	"github.com/saebelma/nesting/geom"
	"github.com/saebelma/nesting/nest"
)

// Space is a fit/no-fit pair of ordered position sets, the same shape a
// single-part no-fit raster has, but used here for spaces composed from
// several parts at once. It is a thin wrapper over nest.SearchSpace, whose
// AddPlacement already implements the fold-in rule tuple nesting calls
// addSubtract: translate a second space's fit points by an offset, keep only
// those not already excluded, then let its no-fit points override them.
type Space struct {
	*nest.SearchSpace
}

// NewSpace wraps a raw fit/no-fit pair, such as one of the four cases of a
// single-part NoFitSpace, as a Space.
func NewSpace(fit, nofit []geom.IntegerVector) Space {
	return Space{nest.NewSearchSpaceFrom(fit, nofit)}
}

// Reflect returns the point reflection of s: every fit and no-fit position
// negated. Used to derive an R-anchored space from its N-anchored
// counterpart without rebuilding the raster.
func (s Space) Reflect() Space {
	return NewSpace(negateAll(s.FitTotal()), negateAll(s.NoFitTotal()))
}

// AddSubtract folds other into s, shifted by d: other's fit points
// (translated by d) are added unless already excluded, and other's no-fit
// points (translated by d) are removed from the fit total and added to the
// no-fit total. s is left untouched; the result is a new Space.
func (s Space) AddSubtract(other Space, d geom.IntegerVector) Space {
	clone := Space{s.Clone()}
	clone.AddPlacement(d, other.FitTotal(), other.NoFitTotal(), nest.AlwaysFit)
	return clone
}

func negateAll(vs []geom.IntegerVector) []geom.IntegerVector {
	out := make([]geom.IntegerVector, len(vs))
	for i, v := range vs {
		out[i] = v.Negate()
	}
	return out
}
