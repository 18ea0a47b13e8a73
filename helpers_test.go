// SPDX-License-Identifier: Apache-2.0

package valueset

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var cmpOpts = []cmp.Option{cmpopts.EquateNaNs(), cmpopts.EquateEmpty()}

func iv(s string) Interval {
	i, err := ParseInterval(s)
	if err != nil {
		panic(err)
	}
	return i
}

func ivs(ss ...string) []Interval {
	out := make([]Interval, len(ss))
	for i, s := range ss {
		out[i] = iv(s)
	}
	return out
}

func mustValue(t *testing.T, s string) Value {
	t.Helper()
	v, err := ParseValue(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return v
}

func checkIntervals(t *testing.T, want, got []Interval) {
	t.Helper()
	if !cmp.Equal(want, got, cmpOpts...) {
		t.Errorf("intervals mismatch (-want +got):\n%s", cmp.Diff(want, got, cmpOpts...))
	}
}
