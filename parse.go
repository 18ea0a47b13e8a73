// SPDX-License-Identifier: Apache-2.0

package valueset

import (
	"errors"
	"strconv"

	"github.com/digitalocean/go-valueset/internal/notation"
)

// ParseValue parses the form written by [Value.String]: the braced
// points, then any intervals, as in "{1,2},[3,4),(5,+Inf)". The result is
// in canonical form whatever the order of the input.
func ParseValue(s string) (Value, error) {
	tok, err := notation.SplitValue(s)
	if err != nil {
		return Value{}, formatErr(s, ErrSyntax, "%v", err)
	}

	points := make([]float64, 0, len(tok.Points))
	for _, p := range tok.Points {
		x, err := parseNumber(p)
		if err != nil {
			return Value{}, formatErr(s, ErrNumber, "point %q", p)
		}
		points = append(points, x)
	}

	intervals := make([]Interval, 0, len(tok.Intervals))
	for _, part := range tok.Intervals {
		iv, err := ParseInterval(part)
		if err != nil {
			var fe *FormatError
			if errors.As(err, &fe) {
				return Value{}, formatErr(s, fe.Cause, "interval %q: %s", part, fe.Message)
			}
			return Value{}, err
		}
		intervals = append(intervals, iv)
	}
	return FromParts(points, intervals), nil
}

// ParseElement parses a single operand: a number, an interval such as
// "(1,2]", a point set such as "{1,2}", or a whole value such as
// "{1},[2,3)", which becomes a nested element.
func ParseElement(s string) (Element, error) {
	c := notation.Compact(s)
	if c == "" {
		return Element{}, formatErr(s, ErrSyntax, "empty element")
	}

	switch c[0] {
	case notation.LEFT_CLOSED, notation.LEFT_OPEN:
		iv, err := ParseInterval(c)
		if err != nil {
			return Element{}, err
		}
		return IntervalElem(iv), nil
	case notation.POINTS_OPEN:
		v, err := ParseValue(c)
		if err != nil {
			return Element{}, err
		}
		if len(v.intervals) == 0 {
			return Element{kind: KindPointSet, points: v.points.Values()}, nil
		}
		return v.Element(), nil
	}

	x, err := parseNumber(c)
	if err != nil {
		return Element{}, formatErr(s, ErrNumber, "")
	}
	return ScalarElem(x), nil
}

// parseNumber reads a decimal number, an integer, or one of the spellings
// strconv accepts for infinities such as "-Inf".
func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func isBracket(err error) bool {
	return errors.Is(err, notation.ErrBracket)
}
