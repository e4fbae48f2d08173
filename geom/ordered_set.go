package geom

import "sort"

// VectorSet is an ordered set of IntegerVectors, kept sorted in
// lexicographic (X, Y) order at all times. SearchSpace and the fit/no-fit
// rasters depend on this ordering for deterministic iteration and
// tie-breaking; a map would not preserve it.
type VectorSet struct {
	items []IntegerVector
}

// NewVectorSet returns an empty vector set, optionally seeded with vs.
func NewVectorSet(vs ...IntegerVector) *VectorSet {
	s := &VectorSet{}
	s.AddAll(vs)
	return s
}

func (s *VectorSet) search(v IntegerVector) int {
	return sort.Search(len(s.items), func(i int) bool {
		return !s.items[i].Less(v)
	})
}

// Contains reports whether v is a member of the set.
func (s *VectorSet) Contains(v IntegerVector) bool {
	i := s.search(v)
	return i < len(s.items) && s.items[i] == v
}

// Add inserts v, returning true if it was not already present.
func (s *VectorSet) Add(v IntegerVector) bool {
	i := s.search(v)
	if i < len(s.items) && s.items[i] == v {
		return false
	}
	s.items = append(s.items, IntegerVector{})
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = v
	return true
}

// AddAll inserts every element of vs.
func (s *VectorSet) AddAll(vs []IntegerVector) {
	for _, v := range vs {
		s.Add(v)
	}
}

// Remove deletes v, returning true if it was present.
func (s *VectorSet) Remove(v IntegerVector) bool {
	i := s.search(v)
	if i >= len(s.items) || s.items[i] != v {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true
}

// Slice returns the set's members in ascending order. The backing array is
// shared; callers must not mutate it.
func (s *VectorSet) Slice() []IntegerVector {
	return s.items
}

// Len returns the number of members.
func (s *VectorSet) Len() int {
	return len(s.items)
}

// Clone returns an independent copy of the set.
func (s *VectorSet) Clone() *VectorSet {
	c := &VectorSet{items: make([]IntegerVector, len(s.items))}
	copy(c.items, s.items)
	return c
}

// PointSet is an ordered set of Points kept sorted in (X, Y) order, with
// exact (X, Y) equality treated as duplicates. Used by the convex-hull
// criterion to accumulate placed-polygon vertices across a nesting run.
type PointSet struct {
	items []Point
}

// NewPointSet returns an empty point set, optionally seeded with pts.
func NewPointSet(pts ...Point) *PointSet {
	s := &PointSet{}
	s.AddAll(pts)
	return s
}

func lessPoint(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

func (s *PointSet) search(p Point) int {
	return sort.Search(len(s.items), func(i int) bool {
		return !lessPoint(s.items[i], p)
	})
}

// Add inserts p, returning true if it was not already present.
func (s *PointSet) Add(p Point) bool {
	i := s.search(p)
	if i < len(s.items) && s.items[i] == p {
		return false
	}
	s.items = append(s.items, Point{})
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = p
	return true
}

// AddAll inserts every element of pts.
func (s *PointSet) AddAll(pts []Point) {
	for _, p := range pts {
		s.Add(p)
	}
}

// Slice returns the set's members in ascending (X, Y) order.
func (s *PointSet) Slice() []Point {
	return s.items
}

// Len returns the number of members.
func (s *PointSet) Len() int {
	return len(s.items)
}

// Clone returns an independent copy of the set.
func (s *PointSet) Clone() *PointSet {
	c := &PointSet{items: make([]Point, len(s.items))}
	copy(c.items, s.items)
	return c
}
