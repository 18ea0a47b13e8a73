// SPDX-License-Identifier: Apache-2.0

package valueset

import (
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/digitalocean/go-valueset/internal/notation"
)

// Value is a subset of the scalar domain made of discrete points and
// intervals. It is always kept in canonical form:
//
//   - the intervals are trimmed: ascending, non-empty, pairwise neither
//     overlapping nor adjoining, and never a single point [x,x];
//   - no point lies inside or on the edge of an interval. A point that
//     would sit on an excluded edge is merged into the interval by
//     including that edge.
//
// The zero Value is the empty set.
//
// Methods with value receivers never modify their operands. The Into
// methods modify their receiver in place and are meant for tight loops;
// a Value copied by assignment shares storage with its original, so
// call Clone before handing a copy to an Into method.
type Value struct {
	points    PointSet
	intervals []Interval
}

// New builds a Value from raw operands of any kind Classify accepts,
// nested sequences included.
func New(raw ...any) (Value, error) {
	e, err := Classify(raw)
	if err != nil {
		return Value{}, err
	}
	return FromElements(e)
}

// FromElements builds a Value from elements.
func FromElements(elems ...Element) (Value, error) {
	points, intervals, err := Flatten(Element{kind: KindNested, nested: elems})
	if err != nil {
		return Value{}, err
	}
	return FromParts(points, intervals), nil
}

// FromParts builds a Value from points and intervals in any order.
func FromParts(points []float64, intervals []Interval) Value {
	v := Value{
		points:    NewPointSet(points...),
		intervals: Trim(intervals),
	}
	v.normalize()
	return v
}

// normalize restores canonical form after the intervals were trimmed:
// single-point intervals become points, and points touching an interval
// are absorbed into it.
func (v *Value) normalize() {
	kept := v.intervals[:0]
	for _, iv := range v.intervals {
		switch {
		case iv.IsEmpty():
		case iv.Left == iv.Right:
			v.points.Add(iv.Left)
		default:
			kept = append(kept, iv)
		}
	}
	v.intervals = kept
	if len(v.intervals) == 0 || v.points.Len() == 0 {
		return
	}

	var absorbed []float64
	i := 0
	v.points.Ascend(func(p float64) bool {
		for i < len(v.intervals) && v.intervals[i].Right < p {
			i++
		}
		if i == len(v.intervals) {
			return false
		}
		iv := &v.intervals[i]
		switch {
		case p < iv.Left:
			return true
		case p == iv.Left:
			iv.IncludingLeft = true
		case p == iv.Right:
			iv.IncludingRight = true
		}
		absorbed = append(absorbed, p)
		return true
	})
	for _, p := range absorbed {
		v.points.Delete(p)
	}
	v.intervals = coalesce(v.intervals)
}

// Clone returns a copy of v sharing no storage with it.
func (v Value) Clone() Value {
	return Value{
		points:    v.points.Clone(),
		intervals: slices.Clone(v.intervals),
	}
}

// Points returns the separate points of v in ascending order.
func (v Value) Points() []float64 {
	return v.points.Values()
}

// Intervals returns a copy of the trimmed intervals of v.
func (v Value) Intervals() []Interval {
	return slices.Clone(v.intervals)
}

// Element returns v as a nested element: its point set followed by its
// intervals.
func (v Value) Element() Element {
	elems := make([]Element, 0, len(v.intervals)+1)
	elems = append(elems, Element{kind: KindPointSet, points: v.points.Values()})
	for _, iv := range v.intervals {
		elems = append(elems, IntervalElem(iv))
	}
	return Element{kind: KindNested, nested: elems}
}

func (v Value) IsEmpty() bool {
	return v.points.Len() == 0 && len(v.intervals) == 0
}

// Union returns v ∪ o.
func (v Value) Union(o Value) Value {
	w := v.Clone()
	w.UnionInto(o)
	return w
}

// UnionInto sets v to v ∪ o, reusing v's storage.
func (v *Value) UnionInto(o Value) {
	// o may share its tree with v, which must not change mid-iteration.
	for _, p := range o.points.Values() {
		v.points.Add(p)
	}
	v.intervals = Merge(v.intervals, o.intervals)
	v.normalize()
}

// UnionAny is Union with an operand of any kind Classify accepts.
func (v Value) UnionAny(raw any) (Value, error) {
	o, err := New(raw)
	if err != nil {
		return Value{}, err
	}
	return v.Union(o), nil
}

// Difference returns v - o.
func (v Value) Difference(o Value) Value {
	w := v.Clone()
	w.DifferenceInto(o)
	return w
}

// DifferenceInto sets v to v - o, reusing v's storage.
func (v *Value) DifferenceInto(o Value) {
	if v.points.Len() > 0 {
		for _, p := range pointsInTrimmed(o.intervals, v.points.Values()) {
			v.points.Delete(p)
		}
		for _, p := range o.points.Values() {
			v.points.Delete(p)
		}
	}
	ivs := DiffTrimmed(v.intervals, o.intervals)
	if o.points.Len() > 0 {
		ivs = DiffTrimmed(ivs, singletons(o.points.Values()))
	}
	v.intervals = ivs
	v.normalize()
}

// DifferenceAny is Difference with an operand of any kind Classify
// accepts.
func (v Value) DifferenceAny(raw any) (Value, error) {
	o, err := New(raw)
	if err != nil {
		return Value{}, err
	}
	return v.Difference(o), nil
}

// Intersect returns v ∩ o.
func (v Value) Intersect(o Value) Value {
	w := Value{
		points:    v.points.Intersect(o.points),
		intervals: IntersectTrimmed(v.intervals, o.intervals),
	}
	for _, p := range pointsInTrimmed(o.intervals, v.points.Values()) {
		w.points.Add(p)
	}
	for _, p := range pointsInTrimmed(v.intervals, o.points.Values()) {
		w.points.Add(p)
	}
	w.normalize()
	return w
}

// Complement returns everything in (-Inf, +Inf) that is not in v.
func (v Value) Complement() Value {
	ivs := ComplementTrimmed(v.intervals)
	if v.points.Len() > 0 {
		ivs = DiffTrimmed(ivs, singletons(v.points.Values()))
	}
	w := Value{intervals: ivs}
	w.normalize()
	return w
}

// Contains reports whether x is in v.
func (v Value) Contains(x float64) bool {
	if v.points.Has(x) {
		return true
	}
	i := sort.Search(len(v.intervals), func(i int) bool {
		return !v.intervals[i].Before(x)
	})
	return i < len(v.intervals) && v.intervals[i].Contains(x)
}

// ContainsInterval reports whether every point of iv is in v. An empty
// iv is not contained.
func (v Value) ContainsInterval(iv Interval) bool {
	if iv.IsEmpty() {
		return false
	}
	if iv.Left == iv.Right {
		return v.Contains(iv.Left)
	}
	// In canonical form a connected range can only sit inside one
	// interval, the first one reaching at least as far.
	i := sort.Search(len(v.intervals), func(i int) bool {
		return compareUpper(v.intervals[i].upper(), iv.upper()) >= 0
	})
	return i < len(v.intervals) && v.intervals[i].ContainsInterval(iv)
}

// ContainsValue reports whether o is a subset of v.
func (v Value) ContainsValue(o Value) bool {
	contained := true
	o.points.Ascend(func(p float64) bool {
		contained = v.Contains(p)
		return contained
	})
	if !contained {
		return false
	}
	for _, iv := range o.intervals {
		if !v.ContainsInterval(iv) {
			return false
		}
	}
	return true
}

// ContainsElement reports whether every scalar and interval inside e is
// in v. Invalid or over-nested elements are not contained.
func (v Value) ContainsElement(e Element) bool {
	points, intervals, err := Flatten(e)
	if err != nil {
		return false
	}
	for _, p := range points {
		if !v.Contains(p) {
			return false
		}
	}
	for _, iv := range intervals {
		if !v.ContainsInterval(iv) {
			return false
		}
	}
	return true
}

// Equal reports whether v and o hold the same points, by containment
// both ways.
func (v Value) Equal(o Value) bool {
	return v.ContainsValue(o) && o.ContainsValue(v)
}

// Min returns the smallest key of v: its smallest point or the Min of
// its first interval, whichever is lower.
func (v Value) Min() (float64, bool) {
	lo, ok := v.points.Min()
	if len(v.intervals) > 0 {
		if k := v.intervals[0].Min(); !ok || k < lo {
			lo, ok = k, true
		}
	}
	return lo, ok
}

// Max is Min from the other end.
func (v Value) Max() (float64, bool) {
	hi, ok := v.points.Max()
	if n := len(v.intervals); n > 0 {
		if k := v.intervals[n-1].Max(); !ok || k > hi {
			hi, ok = k, true
		}
	}
	return hi, ok
}

// Before reports whether every point of a non-empty v is less than x.
func (v Value) Before(x float64) bool {
	if v.IsEmpty() || math.IsNaN(x) {
		return false
	}
	if hi, ok := v.points.Max(); ok && hi >= x {
		return false
	}
	n := len(v.intervals)
	return n == 0 || v.intervals[n-1].Before(x)
}

// After reports whether every point of a non-empty v is greater than x.
func (v Value) After(x float64) bool {
	if v.IsEmpty() || math.IsNaN(x) {
		return false
	}
	if lo, ok := v.points.Min(); ok && lo <= x {
		return false
	}
	return len(v.intervals) == 0 || v.intervals[0].After(x)
}

// String formats v as "{1,2},[3,4),(5,6]": the braced points followed
// by the intervals. ParseValue reads it back.
func (v Value) String() string {
	var b strings.Builder
	b.WriteString(v.points.String())
	for _, iv := range v.intervals {
		b.WriteByte(notation.SEPARATOR)
		b.WriteString(iv.String())
	}
	return b.String()
}
