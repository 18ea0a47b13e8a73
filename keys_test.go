// SPDX-License-Identifier: Apache-2.0

package valueset

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	tests := []struct {
		elem     Element
		min, max float64
	}{
		{elem: ScalarElem(3), min: 3, max: 3},
		{elem: IntervalElem(iv("(1,2]")), min: 1 + MinPad, max: 2},
		{elem: PointsElem(9, 4), min: 4, max: 9},
		{elem: NestedElem(ScalarElem(1), IntervalElem(iv("[5,6)"))), min: 1, max: 6 - MinPad},
	}

	for _, tt := range tests {
		t.Run(tt.elem.String(), func(t *testing.T) {
			lo, err := MinKey(tt.elem)
			require.NoError(t, err)
			hi, err := MaxKey(tt.elem)
			require.NoError(t, err)
			assert.Equal(t, tt.min, lo)
			assert.Equal(t, tt.max, hi)
		})
	}

	_, err := MinKey(PointsElem())
	assert.True(t, IsEmptyGroupErr(err), "got %v", err)
	_, err = MaxKey(NestedElem())
	assert.True(t, IsEmptyGroupErr(err), "got %v", err)
	_, err = MinKey(Element{})
	assert.True(t, IsUnsupportedOperandErr(err), "got %v", err)
}

func TestSortElements(t *testing.T) {
	elems := []Element{IntervalElem(iv("[5,6]")), ScalarElem(3), PointsElem(1, 9), ScalarElem(3)}
	require.NoError(t, SortElements(elems))

	got := make([]string, len(elems))
	for i, e := range elems {
		got[i] = e.String()
	}
	assert.Equal(t, []string{"{1,9}", "3", "3", "[5,6]"}, got)

	bad := []Element{ScalarElem(2), Element{}, ScalarElem(1)}
	assert.Error(t, SortElements(bad))
	assert.Equal(t, "2", bad[0].String(), "elements stay put on error")
}

func TestIsIn(t *testing.T) {
	tests := []struct {
		elem, container Element
		want            bool
	}{
		{elem: ScalarElem(3), container: ScalarElem(3), want: true},
		{elem: ScalarElem(3), container: ScalarElem(4), want: false},
		{elem: ScalarElem(3), container: IntervalElem(iv("[0,5)")), want: true},
		{elem: ScalarElem(5), container: IntervalElem(iv("[0,5)")), want: false},
		{elem: IntervalElem(iv("[1,2]")), container: IntervalElem(iv("[0,5)")), want: true},
		{elem: IntervalElem(iv("[1,5]")), container: IntervalElem(iv("[0,5)")), want: false},
		{elem: PointsElem(1), container: IntervalElem(iv("[0,5)")), want: false},
		{elem: ScalarElem(2), container: PointsElem(1, 2), want: true},
		{elem: ScalarElem(3), container: PointsElem(1, 2), want: false},
		{elem: IntervalElem(iv("[1,2]")), container: PointsElem(1, 2), want: false},
		{elem: ScalarElem(5), container: NestedElem(IntervalElem(iv("[0,1]")), PointsElem(5)), want: true},
		{elem: ScalarElem(0.5), container: NestedElem(IntervalElem(iv("[0,1]")), PointsElem(5)), want: true},
		{elem: ScalarElem(3), container: NestedElem(IntervalElem(iv("[0,1]")), PointsElem(5)), want: false},
		{elem: ScalarElem(3), container: Element{}, want: false},
		{elem: Element{}, container: IntervalElem(iv("[0,5)")), want: false},
	}

	for _, tt := range tests {
		name := fmt.Sprintf("%s in %s", tt.elem, tt.container)
		t.Run(name, func(t *testing.T) {
			if got := IsIn(tt.elem, tt.container); got != tt.want {
				t.Errorf("want %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFindAll(t *testing.T) {
	seq := []Element{
		IntervalElem(iv("[0,5)")),
		PointsElem(3, 4),
		ScalarElem(3),
		IntervalElem(iv("[10,20]")),
	}
	assert.Equal(t, []int{0, 1, 2}, FindAll(seq, ScalarElem(3)))
	assert.Equal(t, []int{3}, FindAll(seq, IntervalElem(iv("(11,12)"))))
	assert.Empty(t, FindAll(seq, ScalarElem(7)))
}

func TestIsOverlapped(t *testing.T) {
	tests := []struct {
		name string
		seq  []Element
		want bool
	}{
		{name: "disjoint", seq: []Element{ScalarElem(1), IntervalElem(iv("[2,3]")), PointsElem(5)}, want: false},
		{name: "unsorted overlap", seq: []Element{ScalarElem(1), IntervalElem(iv("[0,2]"))}, want: true},
		{name: "shared closed edge", seq: []Element{IntervalElem(iv("[0,1]")), IntervalElem(iv("[1,2]"))}, want: true},
		{name: "open edges", seq: []Element{IntervalElem(iv("[0,1)")), IntervalElem(iv("(1,2]"))}, want: false},
		{name: "interleaved point sets", seq: []Element{PointsElem(1, 5), PointsElem(3)}, want: true},
		{name: "empty", seq: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsOverlapped(tt.seq)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := IsOverlapped([]Element{ScalarElem(1), PointsElem()})
	assert.True(t, IsEmptyGroupErr(err), "got %v", err)
}

func TestConcatOrdered(t *testing.T) {
	tests := []struct {
		name  string
		elems []Element
		want  string
	}{
		{name: "scalars", elems: []Element{ScalarElem(2), ScalarElem(1)}, want: "{1,2}"},
		{name: "point sets", elems: []Element{PointsElem(1, 3), ScalarElem(5)}, want: "{1,3,5}"},
		{name: "interval forces span", elems: []Element{IntervalElem(iv("(0,1]")), ScalarElem(2)}, want: "(0,2]"},
		{name: "point before open edge", elems: []Element{ScalarElem(0), IntervalElem(iv("(0,1)"))}, want: "[0,1)"},
		{name: "gap is bridged", elems: []Element{IntervalElem(iv("[0,1)")), IntervalElem(iv("(5,6)"))}, want: "[0,6)"},
		{name: "nested", elems: []Element{NestedElem(ScalarElem(-1), PointsElem(4))}, want: "{-1,4}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConcatOrdered(tt.elems)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}

	_, err := ConcatOrdered(nil)
	assert.True(t, IsEmptyGroupErr(err), "got %v", err)
	_, err = ConcatOrdered([]Element{PointsElem()})
	assert.True(t, IsEmptyGroupErr(err), "got %v", err)
	_, err = ConcatOrdered([]Element{ScalarElem(1), Element{}})
	assert.True(t, IsUnsupportedOperandErr(err), "got %v", err)
}
