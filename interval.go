// SPDX-License-Identifier: Apache-2.0

package valueset

import (
	"math"
	"strconv"
	"strings"

	"github.com/digitalocean/go-valueset/internal/notation"
	"github.com/digitalocean/go-valueset/internal/span"
)

// MinPad is the distance by which Min and Max move an excluded edge
// inward, so that open and closed edges sort in a total order.
const MinPad = 1e-13

// Interval is a contiguous range of the scalar domain whose edges are
// included or excluded independently. Edges may be infinite. An interval
// with a NaN edge is empty; see [EmptyInterval].
//
// Interval is a value type: assignment copies it, so the only way to
// share one is through an explicit pointer.
type Interval struct {
	Left, Right                   float64
	IncludingLeft, IncludingRight bool
}

// Keep selects which remainder [Interval.Remove] leaves in its receiver.
type Keep int

const (
	// KeepAuto keeps the right remainder unless it is empty, in which
	// case the receiver takes the left remainder instead.
	KeepAuto Keep = iota
	KeepRight
	KeepLeft
)

func NewInterval(left, right float64, includingLeft, includingRight bool) Interval {
	return Interval{
		Left:           left,
		Right:          right,
		IncludingLeft:  includingLeft,
		IncludingRight: includingRight,
	}
}

// EmptyInterval returns the empty interval, whose edges are both NaN.
// A fresh value is returned each time, so the sentinel cannot be
// altered through a caller's copy.
func EmptyInterval() Interval {
	return Interval{Left: math.NaN(), Right: math.NaN()}
}

// UniversalInterval returns (-Inf, +Inf).
func UniversalInterval() Interval {
	return Interval{Left: math.Inf(-1), Right: math.Inf(1)}
}

// Singleton returns the closed interval [x, x]. A NaN x yields the empty
// interval.
func Singleton(x float64) Interval {
	if math.IsNaN(x) {
		return EmptyInterval()
	}
	return Interval{Left: x, Right: x, IncludingLeft: true, IncludingRight: true}
}

// ParseInterval parses the form written by [Interval.String], such as
// "[1,2)" or "(-Inf, 3]".
func ParseInterval(s string) (Interval, error) {
	tok, err := notation.SplitInterval(s)
	if err != nil {
		if isBracket(err) {
			return Interval{}, formatErr(s, ErrBracket, "%v", err)
		}
		return Interval{}, formatErr(s, ErrSyntax, "%v", err)
	}

	left, err := parseNumber(tok.Left)
	if err != nil {
		return Interval{}, formatErr(s, ErrNumber, "left edge %q", tok.Left)
	}
	right, err := parseNumber(tok.Right)
	if err != nil {
		return Interval{}, formatErr(s, ErrNumber, "right edge %q", tok.Right)
	}

	iv := NewInterval(left, right, tok.IncludingLeft, tok.IncludingRight)
	if math.IsNaN(left) && math.IsNaN(right) {
		return iv, nil
	}
	if err := iv.bounds().Check(); err != nil {
		return Interval{}, formatErr(s, ErrEdgeOrder, "%v", err)
	}
	return iv, nil
}

func (iv Interval) bounds() span.Span[float64] {
	return span.Span[float64]{Start: iv.Left, End: iv.Right}
}

// Min returns the left edge, moved right by MinPad when it is excluded.
func (iv Interval) Min() float64 {
	if iv.IncludingLeft {
		return iv.Left
	}
	return iv.Left + MinPad
}

// Max returns the right edge, moved left by MinPad when it is excluded.
func (iv Interval) Max() float64 {
	if iv.IncludingRight {
		return iv.Right
	}
	return iv.Right - MinPad
}

// IsEmpty reports whether the interval holds no point. This is decided
// from the edges and flags exactly rather than from Min and Max, because
// MinPad vanishes below the float64 resolution of large edges.
func (iv Interval) IsEmpty() bool {
	if math.IsNaN(iv.Left) || math.IsNaN(iv.Right) {
		return true
	}
	if iv.Left != iv.Right {
		return iv.Left > iv.Right
	}
	return !iv.IncludingLeft || !iv.IncludingRight
}

// Contains reports whether x lies in the interval, honouring the edge
// flags.
func (iv Interval) Contains(x float64) bool {
	if iv.IsEmpty() {
		return false
	}
	return meets(iv.lower(), bound{x, true}) && meets(bound{x, true}, iv.upper())
}

// ContainsClosed reports whether x lies between the raw edges, treating
// both as included.
func (iv Interval) ContainsClosed(x float64) bool {
	if iv.IsEmpty() {
		return false
	}
	return iv.bounds().ContainsPoint(x)
}

// ContainsAll reports whether every x in xs lies in the interval. With
// closed set, the edge flags are ignored as in ContainsClosed.
func (iv Interval) ContainsAll(xs []float64, closed bool) bool {
	if iv.IsEmpty() {
		return false
	}
	for _, x := range xs {
		if closed && !iv.ContainsClosed(x) {
			return false
		}
		if !closed && !iv.Contains(x) {
			return false
		}
	}
	return true
}

// ContainsInterval reports whether o is entirely covered by iv. Empty
// intervals are neither containers nor contained.
func (iv Interval) ContainsInterval(o Interval) bool {
	if iv.IsEmpty() || o.IsEmpty() {
		return false
	}
	return compareLower(iv.lower(), o.lower()) <= 0 && compareUpper(o.upper(), iv.upper()) <= 0
}

// ContainsIntervalClosed is ContainsInterval on the raw edges of both
// intervals.
func (iv Interval) ContainsIntervalClosed(o Interval) bool {
	if iv.IsEmpty() || o.IsEmpty() {
		return false
	}
	return iv.bounds().Contains(o.bounds())
}

// Before reports whether every point of the interval is less than x.
func (iv Interval) Before(x float64) bool {
	if iv.IsEmpty() || math.IsNaN(x) {
		return false
	}
	return !meets(bound{x, true}, iv.upper())
}

// After reports whether every point of the interval is greater than x.
func (iv Interval) After(x float64) bool {
	if iv.IsEmpty() || math.IsNaN(x) {
		return false
	}
	return !meets(iv.lower(), bound{x, true})
}

// Less reports whether iv lies entirely before o.
//
// Ordering is only meaningful for intervals that do not overlap: for
// overlapping ones the result is unspecified. Trim the intervals first,
// or use [Interval.Compare], which checks.
func (iv Interval) Less(o Interval) bool {
	if iv.IsEmpty() || o.IsEmpty() {
		return false
	}
	return !meets(o.lower(), iv.upper())
}

// Compare returns -1 if iv lies entirely before o and +1 if entirely
// after. Overlapping or empty intervals have no order and yield a
// *PreconditionError.
func (iv Interval) Compare(o Interval) (int, error) {
	if iv.IsEmpty() || o.IsEmpty() {
		return 0, &PreconditionError{Cause: ErrEmptyInterval, Message: iv.String() + " vs " + o.String()}
	}
	switch {
	case iv.Less(o):
		return -1, nil
	case o.Less(iv):
		return 1, nil
	}
	return 0, &PreconditionError{Cause: ErrOverlap, Message: iv.String() + " vs " + o.String()}
}

// Overlaps reports whether the intervals share a point. With adjoined
// set, intervals that merely touch also overlap, provided at least one
// of them includes the shared edge: [0,1) and [1,2) adjoin, (0,1) and
// (1,2) do not.
func (iv Interval) Overlaps(o Interval, adjoined bool) bool {
	if iv.IsEmpty() || o.IsEmpty() {
		return false
	}
	if adjoined {
		return touches(iv.lower(), o.upper()) && touches(o.lower(), iv.upper())
	}
	return meets(iv.lower(), o.upper()) && meets(o.lower(), iv.upper())
}

// Extend grows iv to cover o when the two overlap or adjoin and returns
// the empty interval. Otherwise iv is left alone and o is returned, so
// that the caller knows to keep it separately. An empty receiver absorbs
// o outright.
func (iv *Interval) Extend(o Interval) Interval {
	if o.IsEmpty() {
		return EmptyInterval()
	}
	if iv.IsEmpty() {
		*iv = o
		return EmptyInterval()
	}
	if !iv.Overlaps(o, true) {
		return o
	}
	*iv = between(minLower(iv.lower(), o.lower()), maxUpper(iv.upper(), o.upper()))
	return EmptyInterval()
}

// Remove subtracts o from iv, which may leave a remainder on either side.
// keep decides which remainder iv retains; the other one is returned, or
// the empty interval if there is none.
func (iv *Interval) Remove(o Interval, keep Keep) Interval {
	if iv.IsEmpty() || o.IsEmpty() {
		return EmptyInterval()
	}

	left := between(iv.lower(), minUpper(iv.upper(), o.lower().flip()))
	right := between(maxLower(iv.lower(), o.upper().flip()), iv.upper())

	switch keep {
	case KeepLeft:
		*iv = left
		return right
	case KeepAuto:
		if right.IsEmpty() {
			*iv = left
			return EmptyInterval()
		}
	}
	*iv = right
	return left
}

// SetWith overwrites iv with o.
func (iv *Interval) SetWith(o Interval) {
	*iv = o
}

// Clear makes iv the empty interval.
func (iv *Interval) Clear() {
	*iv = EmptyInterval()
}

// String formats the interval as "[1,2)", with "[" or "]" marking an
// included edge. The output is accepted by ParseInterval.
func (iv Interval) String() string {
	var b strings.Builder
	if iv.IncludingLeft {
		b.WriteByte(notation.LEFT_CLOSED)
	} else {
		b.WriteByte(notation.LEFT_OPEN)
	}
	b.WriteString(formatNumber(iv.Left))
	b.WriteByte(notation.SEPARATOR)
	b.WriteString(formatNumber(iv.Right))
	if iv.IncludingRight {
		b.WriteByte(notation.RIGHT_CLOSED)
	} else {
		b.WriteByte(notation.RIGHT_OPEN)
	}
	return b.String()
}

func formatNumber(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
