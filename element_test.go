// SPDX-License-Identifier: Apache-2.0

package valueset

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	iv01 := iv("[0,1)")
	ts := time.Date(2024, 6, 1, 0, 0, 0, 500_000_000, time.UTC)

	tests := []struct {
		in   any
		kind Kind
		want string
	}{
		{in: 1, kind: KindScalar, want: "1"},
		{in: int8(-3), kind: KindScalar, want: "-3"},
		{in: uint64(7), kind: KindScalar, want: "7"},
		{in: float32(0.5), kind: KindScalar, want: "0.5"},
		{in: ts, kind: KindScalar, want: "1.7172000005e+09"},
		{in: iv01, kind: KindInterval, want: "[0,1)"},
		{in: &iv01, kind: KindInterval, want: "[0,1)"},
		{in: NewPointSet(2, 1), kind: KindPointSet, want: "{1,2}"},
		{in: map[float64]struct{}{3: {}, 1: {}}, kind: KindPointSet, want: "{1,3}"},
		{in: map[float64]bool{3: true, 1: false}, kind: KindPointSet, want: "{3}"},
		{in: []int{1, 2}, kind: KindNested, want: "<1 2>"},
		{in: []float64{1.5}, kind: KindNested, want: "<1.5>"},
		{in: []Interval{iv01}, kind: KindNested, want: "<[0,1)>"},
		{in: []any{1, []any{iv01}}, kind: KindNested, want: "<1 <[0,1)>>"},
		{in: ScalarElem(4), kind: KindScalar, want: "4"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%T", tt.in), func(t *testing.T) {
			e, err := Classify(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, e.Kind())
			assert.Equal(t, tt.want, e.String())
		})
	}
}

func TestClassifyUnsupported(t *testing.T) {
	for _, in := range []any{"1", nil, (*Interval)(nil), struct{}{}, Element{}, []string{"a"}} {
		t.Run(fmt.Sprintf("%T", in), func(t *testing.T) {
			_, err := Classify(in)
			assert.True(t, IsUnsupportedOperandErr(err), "got %v", err)
			assert.False(t, IsNestingTooDeepErr(err))
		})
	}
}

func TestElementAccessors(t *testing.T) {
	e := ScalarElem(2)
	x, ok := e.Scalar()
	assert.True(t, ok)
	assert.Equal(t, 2.0, x)
	_, ok = e.Interval()
	assert.False(t, ok)

	p := PointsElem(3, 1, math.NaN(), 3)
	pts, ok := p.Points()
	require.True(t, ok)
	assert.Equal(t, []float64{1, 3}, pts)
	pts[0] = 100
	pts, _ = p.Points()
	assert.Equal(t, []float64{1, 3}, pts, "Points returns a copy")

	n := NestedElem(e, p)
	children, ok := n.Nested()
	require.True(t, ok)
	assert.Len(t, children, 2)
	assert.Equal(t, "<2 {1,3}>", n.String())
	assert.Equal(t, "invalid", Element{}.Kind().String())
}

func TestFlatten(t *testing.T) {
	e := NestedElem(
		ScalarElem(1),
		ScalarElem(math.NaN()),
		IntervalElem(EmptyInterval()),
		IntervalElem(iv("[2,3]")),
		NestedElem(PointsElem(5, 4), NestedElem(IntervalElem(iv("(7,8)")))),
	)
	points, intervals, err := Flatten(e)
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{1, 4, 5}, points); diff != "" {
		t.Error(diff)
	}
	checkIntervals(t, ivs("[2,3]", "(7,8)"), intervals)

	deep := ScalarElem(1)
	for i := 0; i <= MaxNestingDepth; i++ {
		deep = NestedElem(deep)
	}
	_, _, err = Flatten(deep)
	assert.True(t, IsNestingTooDeepErr(err), "got %v", err)

	_, _, err = Flatten(NestedElem(Element{}))
	assert.True(t, IsUnsupportedOperandErr(err), "got %v", err)
}

func TestParseElement(t *testing.T) {
	tests := []struct {
		in    string
		kind  Kind
		want  string
		check func(error) bool
	}{
		{in: "3", kind: KindScalar, want: "3"},
		{in: " -Inf ", kind: KindScalar, want: "-Inf"},
		{in: "[1,2)", kind: KindInterval, want: "[1,2)"},
		{in: "{2,1}", kind: KindPointSet, want: "{1,2}"},
		{in: "{1},[2,3)", kind: KindNested, want: "<{1} [2,3)>"},
		{in: "x", check: IsNumberErr},
		{in: "", check: IsSyntaxErr},
		{in: "[1,2", check: IsBracketErr},
		{in: "{1,", check: IsSyntaxErr},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			e, err := ParseElement(tt.in)
			if tt.check != nil {
				require.Error(t, err)
				assert.True(t, tt.check(err), "unexpected error %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.kind, e.Kind())
			assert.Equal(t, tt.want, e.String())
		})
	}
}
