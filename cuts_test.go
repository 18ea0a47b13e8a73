// SPDX-License-Identifier: Apache-2.0

package valueset

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCuts(t *testing.T) {
	tests := []struct {
		cuts        []float64
		first, last CutEdge
		want        []Interval
	}{
		{cuts: []float64{0, 1, 2}, first: CutInclude, last: CutInclude, want: ivs("[0,1]", "(1,2]")},
		{cuts: []float64{0, 1, 2}, first: CutExclude, last: CutExclude, want: ivs("(0,1]", "(1,2)")},
		{cuts: []float64{0, 1, 2}, first: CutInf, last: CutInf, want: ivs("(-Inf,0]", "(0,1]", "(1,2]", "(2,+Inf)")},
		{cuts: []float64{0, 1}, first: CutInclude, last: CutExclude, want: ivs("[0,1)")},
		{cuts: []float64{5}, first: CutInf, last: CutInclude, want: ivs("(-Inf,5]")},
		{cuts: []float64{5}, first: CutExclude, last: CutInf, want: ivs("(5,+Inf)")},
	}

	for _, tt := range tests {
		name := fmt.Sprintf("%v first=%s last=%s", tt.cuts, tt.first, tt.last)
		t.Run(name, func(t *testing.T) {
			got, err := FromCuts(tt.cuts, tt.first, tt.last)
			require.NoError(t, err)
			checkIntervals(t, tt.want, got)

			// Neighbouring bins adjoin, so together they cover one range.
			assert.Len(t, Trim(got), 1)
		})
	}
}

func TestFromCutsErrors(t *testing.T) {
	_, err := FromCuts(nil, CutInclude, CutInclude)
	assert.True(t, IsEmptyGroupErr(err), "got %v", err)

	_, err = FromCuts([]float64{1}, CutInclude, CutInclude)
	assert.True(t, IsEmptyGroupErr(err), "got %v", err)

	_, err = FromCuts([]float64{0, 1, 1}, CutInclude, CutInclude)
	assert.True(t, IsCutOrderErr(err), "got %v", err)

	_, err = FromCuts([]float64{2, 1}, CutInclude, CutInclude)
	assert.True(t, IsCutOrderErr(err), "got %v", err)

	_, err = FromCuts([]float64{0, math.NaN()}, CutInclude, CutInclude)
	assert.True(t, IsCutOrderErr(err), "got %v", err)
}
