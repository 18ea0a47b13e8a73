// SPDX-License-Identifier: Apache-2.0

package valueset

import (
	"math"
	"strings"

	"github.com/google/btree"

	"github.com/digitalocean/go-valueset/internal/notation"
)

const pointSetDegree = 16

// PointSet is an ordered set of scalars. The zero value is an empty set
// ready to use.
//
// Like a map, a PointSet copied by assignment shares its storage with
// the original; use [PointSet.Clone] for an independent copy.
type PointSet struct {
	tree *btree.BTreeG[float64]
}

func NewPointSet(points ...float64) PointSet {
	var s PointSet
	for _, p := range points {
		s.Add(p)
	}
	return s
}

func (s *PointSet) init() {
	if s.tree == nil {
		s.tree = btree.NewOrderedG[float64](pointSetDegree)
	}
}

// Add inserts p and reports whether it was not already present. NaN
// stands for "no value" and is never stored.
func (s *PointSet) Add(p float64) bool {
	if math.IsNaN(p) {
		return false
	}
	s.init()
	_, replaced := s.tree.ReplaceOrInsert(p)
	return !replaced
}

// Delete removes p and reports whether it was present.
func (s *PointSet) Delete(p float64) bool {
	if s.tree == nil || math.IsNaN(p) {
		return false
	}
	_, found := s.tree.Delete(p)
	return found
}

func (s PointSet) Has(p float64) bool {
	if s.tree == nil || math.IsNaN(p) {
		return false
	}
	return s.tree.Has(p)
}

func (s PointSet) Len() int {
	if s.tree == nil {
		return 0
	}
	return s.tree.Len()
}

func (s PointSet) Min() (float64, bool) {
	if s.tree == nil {
		return 0, false
	}
	return s.tree.Min()
}

func (s PointSet) Max() (float64, bool) {
	if s.tree == nil {
		return 0, false
	}
	return s.tree.Max()
}

// Ascend calls fn for each point in ascending order until fn returns
// false. fn must not modify the set.
func (s PointSet) Ascend(fn func(p float64) bool) {
	if s.tree == nil {
		return
	}
	s.tree.Ascend(fn)
}

// Values returns the points in ascending order.
func (s PointSet) Values() []float64 {
	out := make([]float64, 0, s.Len())
	s.Ascend(func(p float64) bool {
		out = append(out, p)
		return true
	})
	return out
}

// Clone returns an independent copy. The underlying tree is copied
// lazily, so cloning is cheap until either side is written to.
func (s PointSet) Clone() PointSet {
	if s.tree == nil {
		return PointSet{}
	}
	return PointSet{tree: s.tree.Clone()}
}

func (s PointSet) Union(o PointSet) PointSet {
	out := s.Clone()
	o.Ascend(func(p float64) bool {
		out.Add(p)
		return true
	})
	return out
}

func (s PointSet) Difference(o PointSet) PointSet {
	out := s.Clone()
	o.Ascend(func(p float64) bool {
		out.Delete(p)
		return true
	})
	return out
}

func (s PointSet) Intersect(o PointSet) PointSet {
	var out PointSet
	s.Ascend(func(p float64) bool {
		if o.Has(p) {
			out.Add(p)
		}
		return true
	})
	return out
}

func (s PointSet) Equal(o PointSet) bool {
	if s.Len() != o.Len() {
		return false
	}
	equal := true
	s.Ascend(func(p float64) bool {
		equal = o.Has(p)
		return equal
	})
	return equal
}

// String formats the set as "{1,2.5}".
func (s PointSet) String() string {
	var b strings.Builder
	b.WriteByte(notation.POINTS_OPEN)
	first := true
	s.Ascend(func(p float64) bool {
		if !first {
			b.WriteByte(notation.SEPARATOR)
		}
		first = false
		b.WriteString(formatNumber(p))
		return true
	})
	b.WriteByte(notation.POINTS_CLOSE)
	return b.String()
}
