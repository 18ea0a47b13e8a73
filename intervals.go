// SPDX-License-Identifier: Apache-2.0

package valueset

import (
	"math"
	"slices"
)

// The functions in this file operate on plain interval lists. A list is
// trimmed when it is sorted ascending and its intervals pairwise neither
// overlap nor adjoin; Trim produces that form. Functions with a Trimmed
// suffix require trimmed input and do not check it: handing them
// anything else yields an unspecified result.
//
// None of these functions modifies its arguments, TrimInPlace excepted.
// Every list they return is ascending.

// Trim returns the canonical form of intervals: empty intervals dropped,
// overlapping and adjoining ones merged, the rest sorted ascending.
func Trim(intervals []Interval) []Interval {
	return TrimInPlace(slices.Clone(intervals))
}

// TrimDescending is Trim with the result in descending order.
func TrimDescending(intervals []Interval) []Interval {
	out := Trim(intervals)
	slices.Reverse(out)
	return out
}

// TrimInPlace is Trim reusing the backing array of intervals, whose
// previous contents are lost.
func TrimInPlace(intervals []Interval) []Interval {
	// NaN edges have no order, so empties go before sorting.
	intervals = slices.DeleteFunc(intervals, Interval.IsEmpty)
	slices.SortFunc(intervals, compareIntervals)
	return coalesce(intervals)
}

func compareIntervals(a, b Interval) int {
	if c := compareLower(a.lower(), b.lower()); c != 0 {
		return c
	}
	return compareUpper(a.upper(), b.upper())
}

// coalesce merges neighbours of a list sorted by lower bound, in place.
func coalesce(intervals []Interval) []Interval {
	out := intervals[:0]
	for _, iv := range intervals {
		out = appendMerged(out, iv)
	}
	return out
}

func appendMerged(out []Interval, iv Interval) []Interval {
	if iv.IsEmpty() {
		return out
	}
	if n := len(out); n > 0 && out[n-1].Extend(iv).IsEmpty() {
		return out
	}
	return append(out, iv)
}

// Merge joins two trimmed lists in a single pass.
func Merge(left, right []Interval) []Interval {
	out := make([]Interval, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) || j < len(right) {
		if j == len(right) || (i < len(left) && compareIntervals(left[i], right[j]) <= 0) {
			out = appendMerged(out, left[i])
			i++
		} else {
			out = appendMerged(out, right[j])
			j++
		}
	}
	return out
}

// Union returns the trimmed union of two lists.
func Union(left, right []Interval) []Interval {
	return Merge(Trim(left), Trim(right))
}

// UnionTrimmed is Union for trimmed input.
func UnionTrimmed(left, right []Interval) []Interval {
	return Merge(left, right)
}

// Diff returns left - right.
func Diff(left, right []Interval) []Interval {
	return DiffTrimmed(Trim(left), Trim(right))
}

// DiffTrimmed is Diff for trimmed input.
func DiffTrimmed(left, right []Interval) []Interval {
	out := make([]Interval, 0, len(left))
	j := 0
	for _, cur := range left {
		for j < len(right) && right[j].Less(cur) {
			j++
		}
		// right[j:] may reach past cur, so j stays put for the next
		// left interval.
		for k := j; k < len(right) && right[k].Overlaps(cur, false); k++ {
			if piece := cur.Remove(right[k], KeepRight); !piece.IsEmpty() {
				out = append(out, piece)
			}
			if cur.IsEmpty() {
				break
			}
		}
		if !cur.IsEmpty() {
			out = append(out, cur)
		}
	}
	return out
}

// DiffPoints returns intervals with every point removed. An interior
// point splits its interval into two open-ended halves.
func DiffPoints(intervals []Interval, points []float64) []Interval {
	return DiffTrimmed(Trim(intervals), singletons(sortedPoints(points)))
}

// PointsDiff returns the points not covered by intervals, ascending and
// without duplicates.
func PointsDiff(points []float64, intervals []Interval) []float64 {
	return pointsDiffTrimmed(sortedPoints(points), Trim(intervals))
}

func pointsDiffTrimmed(points []float64, intervals []Interval) []float64 {
	rest := DiffTrimmed(singletons(points), intervals)
	out := make([]float64, len(rest))
	for i, iv := range rest {
		out[i] = iv.Left
	}
	return out
}

// UnionPoints reconciles a list of intervals with a list of points. A
// point inside an interval is absorbed by it, and a point on an excluded
// edge is absorbed by including that edge. The points that remain
// separate are returned ascending with the trimmed intervals.
func UnionPoints(intervals []Interval, points []float64) ([]float64, []Interval) {
	return absorb(Trim(intervals), sortedPoints(points))
}

// absorb is UnionPoints for a trimmed list it may modify and points that
// are sorted and unique.
func absorb(intervals []Interval, points []float64) ([]float64, []Interval) {
	var rest []float64
	i := 0
	for _, p := range points {
		for i < len(intervals) && intervals[i].Right < p {
			i++
		}
		if i == len(intervals) {
			rest = append(rest, p)
			continue
		}

		iv := &intervals[i]
		switch {
		case p < iv.Left:
			rest = append(rest, p)
		case p == iv.Left:
			iv.IncludingLeft = true
		case p == iv.Right:
			iv.IncludingRight = true
		}
	}
	// An edge turned inclusive may now adjoin its neighbour.
	return rest, coalesce(intervals)
}

// Complement returns the parts of (-Inf, +Inf) not covered by intervals.
func Complement(intervals []Interval) []Interval {
	return ComplementTrimmed(Trim(intervals))
}

// ComplementTrimmed is Complement for trimmed input.
func ComplementTrimmed(intervals []Interval) []Interval {
	return DiffTrimmed([]Interval{UniversalInterval()}, intervals)
}

// Intersect returns the points covered by both lists.
func Intersect(left, right []Interval) []Interval {
	return IntersectTrimmed(Trim(left), Trim(right))
}

// IntersectTrimmed is Intersect for trimmed input.
func IntersectTrimmed(left, right []Interval) []Interval {
	var out []Interval
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		a, b := left[i], right[j]
		out = appendMerged(out, between(maxLower(a.lower(), b.lower()), minUpper(a.upper(), b.upper())))
		if compareUpper(a.upper(), b.upper()) < 0 {
			i++
		} else {
			j++
		}
	}
	return out
}

// IntersectPoints returns the points covered by intervals, ascending and
// without duplicates.
func IntersectPoints(intervals []Interval, points []float64) []float64 {
	return pointsInTrimmed(Trim(intervals), sortedPoints(points))
}

func pointsInTrimmed(intervals []Interval, points []float64) []float64 {
	outside := pointsDiffTrimmed(points, intervals)
	out := make([]float64, 0, len(points)-len(outside))
	k := 0
	for _, p := range points {
		if k < len(outside) && outside[k] == p {
			k++
			continue
		}
		out = append(out, p)
	}
	return out
}

func singletons(points []float64) []Interval {
	out := make([]Interval, len(points))
	for i, p := range points {
		out[i] = Singleton(p)
	}
	return out
}

// sortedPoints returns a sorted, duplicate-free copy of points with NaN
// dropped.
func sortedPoints(points []float64) []float64 {
	out := make([]float64, 0, len(points))
	for _, p := range points {
		if !math.IsNaN(p) {
			out = append(out, p)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
