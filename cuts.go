// SPDX-License-Identifier: Apache-2.0

package valueset

import (
	"fmt"
	"math"
)

// CutEdge selects how FromCuts treats the outer edge of the first or last
// bin.
type CutEdge int

const (
	// CutExclude leaves the cut point out of the bin.
	CutExclude CutEdge = iota
	// CutInclude puts the cut point in the bin.
	CutInclude
	// CutInf adds one more bin reaching to infinity beyond the cut point.
	CutInf
)

func (c CutEdge) String() string {
	switch c {
	case CutExclude:
		return "exclude"
	case CutInclude:
		return "include"
	case CutInf:
		return "inf"
	}
	return fmt.Sprintf("CutEdge(%d)", int(c))
}

// FromCuts builds consecutive bins from strictly ascending cut points.
// Every bin between two neighbouring cuts is left-open and right-closed,
// (c[i], c[i+1]], so the bins tile the covered range without gaps or
// overlap. first and last adjust the outer edges:
//
//	first  CutExclude  (c[0], c[1]]
//	       CutInclude  [c[0], c[1]]
//	       CutInf      (-Inf, c[0]] is added in front
//	last   CutInclude  (c[n-2], c[n-1]]
//	       CutExclude  (c[n-2], c[n-1])
//	       CutInf      (c[n-1], +Inf) is added behind
//
// A single cut makes sense only when one of the edges is CutInf.
func FromCuts(cuts []float64, first, last CutEdge) ([]Interval, error) {
	if len(cuts) == 0 {
		return nil, &PreconditionError{Cause: ErrEmptyGroup, Message: "no cut points"}
	}
	for i, c := range cuts {
		if math.IsNaN(c) {
			return nil, &PreconditionError{Cause: ErrCutOrder, Message: fmt.Sprintf("cut %d is NaN", i)}
		}
		if i > 0 && cuts[i-1] >= c {
			return nil, &PreconditionError{
				Cause:   ErrCutOrder,
				Message: fmt.Sprintf("cut %d (%s) after %s", i, formatNumber(c), formatNumber(cuts[i-1])),
			}
		}
	}
	if len(cuts) == 1 && first != CutInf && last != CutInf {
		return nil, &PreconditionError{Cause: ErrEmptyGroup, Message: "a single cut point needs an infinite edge"}
	}

	out := make([]Interval, 0, len(cuts)+1)
	if first == CutInf {
		out = append(out, NewInterval(math.Inf(-1), cuts[0], false, true))
	}
	inner := len(out)
	for i := 1; i < len(cuts); i++ {
		out = append(out, NewInterval(cuts[i-1], cuts[i], false, true))
	}
	if len(cuts) > 1 {
		if first == CutInclude {
			out[inner].IncludingLeft = true
		}
		if last == CutExclude {
			out[len(out)-1].IncludingRight = false
		}
	}
	if last == CutInf {
		out = append(out, NewInterval(cuts[len(cuts)-1], math.Inf(1), false, false))
	}
	return out, nil
}
