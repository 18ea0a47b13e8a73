// SPDX-License-Identifier: Apache-2.0

package span

import (
	"fmt"
	"math"
	"testing"
)

func TestSpanContains(t *testing.T) {
	tests := []struct {
		a, b Span[int]
		want bool
	}{
		{a: Span[int]{5, 10}, b: Span[int]{6, 10}, want: true},
		{a: Span[int]{4, 9}, b: Span[int]{1, 5}, want: false},
		{a: Span[int]{1, 3}, b: Span[int]{1, 3}, want: true},
		{a: Span[int]{0, 5}, b: Span[int]{6, 10}, want: false},
		{a: Span[int]{0, 5}, b: Span[int]{3, 5}, want: true},
		{a: Span[int]{0, 5}, b: Span[int]{3, 6}, want: false},
		{a: Span[int]{0, 5}, b: Span[int]{2, 3}, want: true},
	}

	for _, tt := range tests {
		result := "contains"
		if !tt.want {
			result = "does not contain"
		}

		name := fmt.Sprintf("(%d, %d) %s (%d, %d)",
			tt.a.Start, tt.a.End, result, tt.b.Start, tt.b.End)

		t.Run(name, func(t *testing.T) {
			got := tt.a.Contains(tt.b)

			if got != tt.want {
				t.Errorf("want %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSpanOverlaps(t *testing.T) {
	tests := []struct {
		a, b Span[float64]
		want bool
	}{
		{a: Span[float64]{0, 1}, b: Span[float64]{1, 2}, want: true},
		{a: Span[float64]{0, 1}, b: Span[float64]{1.5, 2}, want: false},
		{a: Span[float64]{math.Inf(-1), 0}, b: Span[float64]{-3, -2}, want: true},
		{a: Span[float64]{2, 3}, b: Span[float64]{0, 1}, want: false},
	}

	for _, tt := range tests {
		name := fmt.Sprintf("[%v, %v] and [%v, %v]", tt.a.Start, tt.a.End, tt.b.Start, tt.b.End)
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("want %v, got %v", tt.want, got)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("reversed: want %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSpanCheck(t *testing.T) {
	if err := (Span[float64]{1, 1}).Check(); err != nil {
		t.Errorf("degenerate span should pass: %v", err)
	}
	if err := (Span[float64]{2, 1}).Check(); err == nil {
		t.Error("reversed span should fail")
	}
	if err := (Span[float64]{math.NaN(), 1}).Check(); err == nil {
		t.Error("NaN span should fail")
	}
}
