// SPDX-License-Identifier: Apache-2.0

package span

import (
	"fmt"
)

type Number interface {
	~int | ~int64 | ~uint64 | ~float64
}

// Span represents the raw extent between two points on a number line
// (inclusive), ignoring whether either edge is excluded.
//
// See [Span.Check] for constraints on how this type should be used.
type Span[T Number] struct {
	Start, End T
}

// Check asserts that start does not exceed end. A span with an
// incomparable edge (NaN) fails the check as well.
func (s Span[T]) Check() error {
	if s.Start <= s.End {
		return nil
	}
	return fmt.Errorf("bad span: start must not exceed end [%v,%v]", s.Start, s.End)
}

// Contains returns true if the other span is completely contained
// by the receiving span. It returns false even for partially overlapping
// spans.
func (s Span[T]) Contains(other Span[T]) bool {
	return other.Start >= s.Start && other.End <= s.End
}

// ContainsPoint returns true if p lies within the span, edges included.
func (s Span[T]) ContainsPoint(p T) bool {
	return s.Start <= p && p <= s.End
}

// Overlaps returns true if the two spans share any common region,
// a single touching edge included.
func (s Span[T]) Overlaps(other Span[T]) bool {
	return s.Start <= other.End && other.Start <= s.End
}
