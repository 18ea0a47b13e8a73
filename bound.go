// SPDX-License-Identifier: Apache-2.0

package valueset

// bound is one edge of an interval together with whether the edge value
// itself belongs to the interval.
type bound struct {
	at     float64
	closed bool
}

func (iv Interval) lower() bound { return bound{iv.Left, iv.IncludingLeft} }
func (iv Interval) upper() bound { return bound{iv.Right, iv.IncludingRight} }

// compareLower orders lower bounds. At equal values a closed bound
// starts first.
func compareLower(a, b bound) int {
	switch {
	case a.at < b.at:
		return -1
	case a.at > b.at:
		return 1
	case a.closed == b.closed:
		return 0
	case a.closed:
		return -1
	default:
		return 1
	}
}

// compareUpper orders upper bounds. At equal values a closed bound
// ends last.
func compareUpper(a, b bound) int {
	switch {
	case a.at < b.at:
		return -1
	case a.at > b.at:
		return 1
	case a.closed == b.closed:
		return 0
	case a.closed:
		return 1
	default:
		return -1
	}
}

// meets reports whether a region starting at lo and a region ending at
// up have at least one point in common.
func meets(lo, up bound) bool {
	return lo.at < up.at || (lo.at == up.at && lo.closed && up.closed)
}

// touches is meets, relaxed so that two regions sharing an edge that
// only one of them includes still count: together they leave no gap.
func touches(lo, up bound) bool {
	return lo.at < up.at || (lo.at == up.at && (lo.closed || up.closed))
}

func minLower(a, b bound) bound {
	if compareLower(a, b) <= 0 {
		return a
	}
	return b
}

func maxLower(a, b bound) bound {
	if compareLower(a, b) >= 0 {
		return a
	}
	return b
}

func minUpper(a, b bound) bound {
	if compareUpper(a, b) <= 0 {
		return a
	}
	return b
}

func maxUpper(a, b bound) bound {
	if compareUpper(a, b) >= 0 {
		return a
	}
	return b
}

// flip turns the bound into the opposite edge of the complementary
// region, e.g. the lower edge "[3" becomes the upper edge "3)".
func (b bound) flip() bound {
	return bound{b.at, !b.closed}
}

func between(lo, up bound) Interval {
	iv := Interval{
		Left:           lo.at,
		Right:          up.at,
		IncludingLeft:  lo.closed,
		IncludingRight: up.closed,
	}
	if iv.IsEmpty() {
		return EmptyInterval()
	}
	return iv
}
