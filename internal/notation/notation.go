// SPDX-License-Identifier: Apache-2.0

// Package notation tokenizes the textual form of intervals and values:
//
//	[1,2)              interval, left edge included, right edge excluded
//	{1,3},(4,5],[7,9)  value: braced points, then bracketed intervals
//
// It only splits text; turning tokens into numbers is left to the caller.
package notation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const (
	LEFT_CLOSED  byte = '['
	LEFT_OPEN    byte = '('
	RIGHT_CLOSED byte = ']'
	RIGHT_OPEN   byte = ')'

	POINTS_OPEN  byte = '{'
	POINTS_CLOSE byte = '}'

	SEPARATOR byte = ','
)

var (
	ErrBracket   = errors.New("bad bracket")
	ErrSeparator = errors.New("interval needs exactly one separator")
	ErrPoints    = errors.New("points must be enclosed in braces")
	ErrDangling  = errors.New("dangling interval edge")
)

// Interval is an interval in textual form.
type Interval struct {
	Left, Right                   string
	IncludingLeft, IncludingRight bool
}

// Value is a value in textual form.
type Value struct {
	Points    []string
	Intervals []string
}

// Compact drops every whitespace rune from s.
func Compact(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// SplitInterval splits an interval such as "(1, 2]" into its edges and
// inclusion flags.
func SplitInterval(s string) (Interval, error) {
	s = Compact(s)
	if len(s) < 2 {
		return Interval{}, fmt.Errorf("%w: %q too short", ErrBracket, s)
	}

	var iv Interval
	switch s[0] {
	case LEFT_CLOSED:
		iv.IncludingLeft = true
	case LEFT_OPEN:
	default:
		return Interval{}, fmt.Errorf("%w: leading %q", ErrBracket, s[0])
	}

	switch s[len(s)-1] {
	case RIGHT_CLOSED:
		iv.IncludingRight = true
	case RIGHT_OPEN:
	default:
		return Interval{}, fmt.Errorf("%w: trailing %q", ErrBracket, s[len(s)-1])
	}

	edges := strings.Split(s[1:len(s)-1], string(SEPARATOR))
	if len(edges) != 2 {
		return Interval{}, fmt.Errorf("%w: got %d edges", ErrSeparator, len(edges))
	}
	iv.Left, iv.Right = edges[0], edges[1]
	return iv, nil
}

// SplitValue splits a value into its point tokens and interval substrings.
// The interval part is a flat comma list, so tokens are reassembled two at
// a time into "l,r" pairs. A value wrapped in an extra pair of braces, as
// in "{{1},[2,3)}", is accepted too.
func SplitValue(s string) (Value, error) {
	s = Compact(s)
	if strings.HasPrefix(s, "{{") && strings.HasSuffix(s, string(POINTS_CLOSE)) {
		s = s[1 : len(s)-1]
	}

	if len(s) == 0 || s[0] != POINTS_OPEN {
		return Value{}, ErrPoints
	}
	end := strings.IndexByte(s, POINTS_CLOSE)
	if end < 0 {
		return Value{}, ErrPoints
	}

	var v Value
	if inner := s[1:end]; inner != "" {
		v.Points = strings.Split(inner, string(SEPARATOR))
	}

	rest := s[end+1:]
	if rest == "" {
		return v, nil
	}
	if rest[0] != SEPARATOR {
		return Value{}, fmt.Errorf("%w: expected %q after points", ErrPoints, SEPARATOR)
	}

	tokens := strings.Split(rest[1:], string(SEPARATOR))
	if len(tokens)%2 != 0 {
		return Value{}, fmt.Errorf("%w: %d tokens", ErrDangling, len(tokens))
	}
	for i := 0; i < len(tokens); i += 2 {
		v.Intervals = append(v.Intervals, tokens[i]+string(SEPARATOR)+tokens[i+1])
	}
	return v, nil
}
