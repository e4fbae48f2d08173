package tuple

import (
	"github.com/saebelma/nesting/geom"
	"github.com/saebelma/nesting/nest"
)

// Member is one polygon in a PolygonSet: its position relative to the set's
// own local origin, and the orientation (N or R) it was placed in.
type Member struct {
	Offset      geom.IntegerVector
	Orientation nest.Orientation
}

// PolygonSet is a rigid group of offset-polygon copies, frozen at fixed
// relative positions: a single part, a pair, or a quadruple. By convention
// the first member always sits at the local origin, so a PolygonSet can be
// translated or composed with another one purely in terms of that first
// member's frame.
type PolygonSet struct {
	Members []Member
}

func single(o nest.Orientation) PolygonSet {
	return PolygonSet{Members: []Member{{Orientation: o}}}
}

func opposite(o nest.Orientation) nest.Orientation {
	if o == nest.OrientationN {
		return nest.OrientationR
	}
	return nest.OrientationN
}

// Reflect returns the point reflection of ps about the origin: every
// member's offset is negated and its orientation flipped. This is how an
// R-anchored pair or quadruple is derived from its N-anchored counterpart,
// since offsetR is itself offsetN rotated 180 degrees about the same center
// the two share.
func (ps PolygonSet) Reflect() PolygonSet {
	members := make([]Member, len(ps.Members))
	for i, m := range ps.Members {
		members[i] = Member{Offset: m.Offset.Negate(), Orientation: opposite(m.Orientation)}
	}
	return PolygonSet{Members: members}
}

// Combine merges a and b into one set, with b's members shifted by d and
// appended after a's. a's members keep their offsets, so the combined set
// still has its first member (a's first member) at the local origin.
func Combine(a, b PolygonSet, d geom.IntegerVector) PolygonSet {
	members := make([]Member, 0, len(a.Members)+len(b.Members))
	members = append(members, a.Members...)
	for _, m := range b.Members {
		members = append(members, Member{Offset: m.Offset.Plus(d), Orientation: m.Orientation})
	}
	return PolygonSet{Members: members}
}

// polygons returns the absolute polygon for each member, in the set's own
// local frame (not yet translated to a placement position).
func polygons(ps PolygonSet, offsetN, offsetR geom.Polygon) []geom.Polygon {
	out := make([]geom.Polygon, len(ps.Members))
	for i, m := range ps.Members {
		base := offsetN
		if m.Orientation == nest.OrientationR {
			base = offsetR
		}
		out[i] = base.TranslateInt(m.Offset)
	}
	return out
}

func allVertices(polys []geom.Polygon) []geom.Point {
	var out []geom.Point
	for _, p := range polys {
		out = append(out, p.Vertices...)
	}
	return out
}
