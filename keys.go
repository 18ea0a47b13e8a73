// SPDX-License-Identifier: Apache-2.0

package valueset

import (
	"cmp"
	"math"
	"slices"

	"github.com/digitalocean/go-valueset/internal/span"
)

// MinKey returns the ordering key for sorting heterogeneous elements
// ascending: a scalar is its own key, an interval is keyed by Min, a
// point set by its smallest member, and a nested element by the smallest
// key inside it.
func MinKey(e Element) (float64, error) {
	return elementKey(e, true)
}

// MaxKey is MinKey from the other end: Max for intervals, the largest
// member for point sets.
func MaxKey(e Element) (float64, error) {
	return elementKey(e, false)
}

func elementKey(e Element, lowest bool) (float64, error) {
	pick := func(a, b float64) float64 {
		if lowest {
			return min(a, b)
		}
		return max(a, b)
	}

	switch e.kind {
	case KindScalar:
		return e.scalar, nil
	case KindInterval:
		if lowest {
			return e.interval.Min(), nil
		}
		return e.interval.Max(), nil
	case KindPointSet:
		if len(e.points) == 0 {
			break
		}
		if lowest {
			return e.points[0], nil
		}
		return e.points[len(e.points)-1], nil
	case KindNested:
		points, intervals, err := Flatten(e)
		if err != nil {
			return 0, err
		}
		if len(points) == 0 && len(intervals) == 0 {
			break
		}
		key := math.Inf(1)
		if !lowest {
			key = math.Inf(-1)
		}
		for _, p := range points {
			key = pick(key, p)
		}
		for _, iv := range intervals {
			if lowest {
				key = pick(key, iv.Min())
			} else {
				key = pick(key, iv.Max())
			}
		}
		return key, nil
	default:
		return 0, unsupported(e)
	}
	return 0, &PreconditionError{Cause: ErrEmptyGroup, Message: "no key for empty " + e.kind.String()}
}

// SortElements sorts elems ascending by MinKey, keeping the original
// order of elements with equal keys. elems is left untouched when a key
// cannot be computed.
func SortElements(elems []Element) error {
	type keyed struct {
		key  float64
		elem Element
	}
	ks := make([]keyed, len(elems))
	for i, e := range elems {
		k, err := MinKey(e)
		if err != nil {
			return err
		}
		ks[i] = keyed{k, e}
	}
	slices.SortStableFunc(ks, func(a, b keyed) int {
		return cmp.Compare(a.key, b.key)
	})
	for i := range ks {
		elems[i] = ks[i].elem
	}
	return nil
}

// IsIn reports whether elem belongs to container. What that means
// depends on the container:
//
//   - scalar: elem is the same scalar
//   - interval: elem is a scalar inside it, or an interval it covers
//   - point set: elem is a scalar member
//   - nested: elem is in any of its children
//
// Any other pairing, an invalid element included, is simply false.
func IsIn(elem, container Element) bool {
	switch container.kind {
	case KindScalar:
		x, ok := elem.Scalar()
		return ok && x == container.scalar
	case KindInterval:
		switch elem.kind {
		case KindScalar:
			return container.interval.Contains(elem.scalar)
		case KindInterval:
			return container.interval.ContainsInterval(elem.interval)
		}
	case KindPointSet:
		if x, ok := elem.Scalar(); ok {
			_, found := slices.BinarySearch(container.points, x)
			return found
		}
	case KindNested:
		for _, c := range container.nested {
			if IsIn(elem, c) {
				return true
			}
		}
	}
	return false
}

// FindAll returns the indexes of the elements of seq that hold target,
// in the sense of IsIn.
func FindAll(seq []Element, target Element) []int {
	var idx []int
	for i, e := range seq {
		if IsIn(target, e) {
			idx = append(idx, i)
		}
	}
	return idx
}

// IsOverlapped reports whether any two neighbouring elements of seq,
// taken in MinKey order, overlap: the MaxKey of one reaches the MinKey
// of the next. seq itself is not reordered.
func IsOverlapped(seq []Element) (bool, error) {
	sorted := slices.Clone(seq)
	if err := SortElements(sorted); err != nil {
		return false, err
	}
	var prev span.Span[float64]
	for i, e := range sorted {
		lo, err := MinKey(e)
		if err != nil {
			return false, err
		}
		hi, err := MaxKey(e)
		if err != nil {
			return false, err
		}
		cur := span.Span[float64]{Start: lo, End: hi}
		if i > 0 && prev.Overlaps(cur) {
			return true, nil
		}
		prev = cur
	}
	return false, nil
}

// ConcatOrdered combines a group of elements into a single one. If any
// of them is an interval the result is one interval spanning from the
// lowest to the highest edge of the group; a scalar or point at either
// end is included in the span. Otherwise the result is the point set of
// all their scalars.
func ConcatOrdered(elems []Element) (Element, error) {
	if len(elems) == 0 {
		return Element{}, &PreconditionError{Cause: ErrEmptyGroup}
	}
	points, intervals, err := Flatten(Element{kind: KindNested, nested: elems})
	if err != nil {
		return Element{}, err
	}

	if len(intervals) == 0 {
		if len(points) == 0 {
			return Element{}, &PreconditionError{Cause: ErrEmptyGroup, Message: "group holds only empty members"}
		}
		return PointsElem(points...), nil
	}

	lo, hi := intervals[0].lower(), intervals[0].upper()
	for _, iv := range intervals[1:] {
		lo = minLower(lo, iv.lower())
		hi = maxUpper(hi, iv.upper())
	}
	for _, p := range points {
		lo = minLower(lo, bound{p, true})
		hi = maxUpper(hi, bound{p, true})
	}
	return IntervalElem(between(lo, hi)), nil
}
