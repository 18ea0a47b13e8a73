// SPDX-License-Identifier: Apache-2.0

package valueset

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/digitalocean/go-valueset/internal/notation"
)

// MaxNestingDepth bounds how deeply sequences may nest inside one
// another when classifying or flattening an operand.
const MaxNestingDepth = 64

type Kind uint8

const (
	KindInvalid Kind = iota
	KindScalar
	KindInterval
	KindPointSet
	KindNested
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindInterval:
		return "interval"
	case KindPointSet:
		return "point set"
	case KindNested:
		return "nested"
	}
	return "invalid"
}

// Element is one operand of the algebra: a scalar, an interval, a set
// of points, or a sequence of further elements. The zero Element is
// invalid and is rejected wherever an operand is expected.
type Element struct {
	kind     Kind
	scalar   float64
	interval Interval
	points   []float64
	nested   []Element
}

func ScalarElem(x float64) Element {
	return Element{kind: KindScalar, scalar: x}
}

func IntervalElem(iv Interval) Element {
	return Element{kind: KindInterval, interval: iv}
}

// PointsElem returns a point-set element. Duplicates and NaN are dropped.
func PointsElem(points ...float64) Element {
	return Element{kind: KindPointSet, points: sortedPoints(points)}
}

func NestedElem(elems ...Element) Element {
	return Element{kind: KindNested, nested: slices.Clone(elems)}
}

func (e Element) Kind() Kind { return e.kind }

func (e Element) Scalar() (float64, bool) {
	return e.scalar, e.kind == KindScalar
}

func (e Element) Interval() (Interval, bool) {
	return e.interval, e.kind == KindInterval
}

// Points returns the members of a point-set element in ascending order.
func (e Element) Points() ([]float64, bool) {
	if e.kind != KindPointSet {
		return nil, false
	}
	return slices.Clone(e.points), true
}

func (e Element) Nested() ([]Element, bool) {
	if e.kind != KindNested {
		return nil, false
	}
	return slices.Clone(e.nested), true
}

// String formats scalars, intervals and point sets in the notation
// ParseElement reads. Nested elements are written as "<a b ...>".
func (e Element) String() string {
	switch e.kind {
	case KindScalar:
		return formatNumber(e.scalar)
	case KindInterval:
		return e.interval.String()
	case KindPointSet:
		parts := make([]string, len(e.points))
		for i, p := range e.points {
			parts[i] = formatNumber(p)
		}
		return string(notation.POINTS_OPEN) + strings.Join(parts, string(notation.SEPARATOR)) + string(notation.POINTS_CLOSE)
	case KindNested:
		parts := make([]string, len(e.nested))
		for i, n := range e.nested {
			parts[i] = n.String()
		}
		return "<" + strings.Join(parts, " ") + ">"
	}
	return "<invalid>"
}

// Classify turns a Go value into an Element. It accepts the numeric
// kinds, time.Time (as Unix seconds), Interval, *Interval, PointSet,
// Value, Element, map[float64]struct{} and map[float64]bool (as point
// sets), and []any, []float64, []int and []Interval (as sequences).
// Sequences nested inside []any are walked iteratively; nesting deeper
// than MaxNestingDepth, which includes a slice that contains itself,
// is rejected.
func Classify(v any) (Element, error) {
	root, ok := v.([]any)
	if !ok {
		return classifyLeaf(v)
	}

	type frame struct {
		items []any
		next  int
		elems []Element
	}
	stack := []*frame{{items: root}}
	for {
		top := stack[len(stack)-1]
		if top.next == len(top.items) {
			stack = stack[:len(stack)-1]
			done := Element{kind: KindNested, nested: top.elems}
			if len(stack) == 0 {
				return done, nil
			}
			parent := stack[len(stack)-1]
			parent.elems = append(parent.elems, done)
			continue
		}

		item := top.items[top.next]
		top.next++
		if sub, ok := item.([]any); ok {
			if len(stack) >= MaxNestingDepth {
				return Element{}, &UnsupportedOperandError{
					Cause: ErrNestingTooDeep,
					Type:  fmt.Sprintf("depth > %d", MaxNestingDepth),
				}
			}
			stack = append(stack, &frame{items: sub})
			continue
		}

		e, err := classifyLeaf(item)
		if err != nil {
			return Element{}, err
		}
		top.elems = append(top.elems, e)
	}
}

func classifyLeaf(v any) (Element, error) {
	switch v := v.(type) {
	case Element:
		if v.kind == KindInvalid {
			return Element{}, unsupported(v)
		}
		return v, nil
	case float64:
		return ScalarElem(v), nil
	case float32:
		return ScalarElem(float64(v)), nil
	case int:
		return ScalarElem(float64(v)), nil
	case int8:
		return ScalarElem(float64(v)), nil
	case int16:
		return ScalarElem(float64(v)), nil
	case int32:
		return ScalarElem(float64(v)), nil
	case int64:
		return ScalarElem(float64(v)), nil
	case uint:
		return ScalarElem(float64(v)), nil
	case uint8:
		return ScalarElem(float64(v)), nil
	case uint16:
		return ScalarElem(float64(v)), nil
	case uint32:
		return ScalarElem(float64(v)), nil
	case uint64:
		return ScalarElem(float64(v)), nil
	case time.Time:
		return ScalarElem(Timestamp(v)), nil
	case Interval:
		return IntervalElem(v), nil
	case *Interval:
		if v == nil {
			return Element{}, unsupported(v)
		}
		return IntervalElem(*v), nil
	case PointSet:
		return Element{kind: KindPointSet, points: v.Values()}, nil
	case Value:
		return v.Element(), nil
	case map[float64]struct{}:
		points := make([]float64, 0, len(v))
		for p := range v {
			points = append(points, p)
		}
		return PointsElem(points...), nil
	case map[float64]bool:
		points := make([]float64, 0, len(v))
		for p, in := range v {
			if in {
				points = append(points, p)
			}
		}
		return PointsElem(points...), nil
	case []float64:
		elems := make([]Element, len(v))
		for i, x := range v {
			elems[i] = ScalarElem(x)
		}
		return Element{kind: KindNested, nested: elems}, nil
	case []int:
		elems := make([]Element, len(v))
		for i, x := range v {
			elems[i] = ScalarElem(float64(x))
		}
		return Element{kind: KindNested, nested: elems}, nil
	case []Interval:
		elems := make([]Element, len(v))
		for i, iv := range v {
			elems[i] = IntervalElem(iv)
		}
		return Element{kind: KindNested, nested: elems}, nil
	}
	return Element{}, unsupported(v)
}

// Timestamp converts t to the scalar domain: seconds since the Unix
// epoch, with the fraction kept to microsecond precision or better.
func Timestamp(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

// Flatten splits e into its scalars and its intervals. NaN scalars and
// empty intervals are dropped. The walk is iterative and fails once
// nesting exceeds MaxNestingDepth.
func Flatten(e Element) (points []float64, intervals []Interval, err error) {
	type item struct {
		elem  Element
		depth int
	}
	stack := []item{{elem: e}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch it.elem.kind {
		case KindScalar:
			if !math.IsNaN(it.elem.scalar) {
				points = append(points, it.elem.scalar)
			}
		case KindInterval:
			if !it.elem.interval.IsEmpty() {
				intervals = append(intervals, it.elem.interval)
			}
		case KindPointSet:
			points = append(points, it.elem.points...)
		case KindNested:
			if it.depth >= MaxNestingDepth {
				return nil, nil, &UnsupportedOperandError{
					Cause: ErrNestingTooDeep,
					Type:  fmt.Sprintf("depth > %d", MaxNestingDepth),
				}
			}
			for i := len(it.elem.nested) - 1; i >= 0; i-- {
				stack = append(stack, item{elem: it.elem.nested[i], depth: it.depth + 1})
			}
		default:
			return nil, nil, unsupported(it.elem)
		}
	}
	return points, intervals, nil
}
