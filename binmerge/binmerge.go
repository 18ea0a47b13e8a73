// SPDX-License-Identifier: Apache-2.0

// Package binmerge coarsens an ordered sequence of weighted bins so that
// every bin carries at least a minimum weight. Neighbouring bins are
// combined with [valueset.ConcatOrdered]: scalars and point sets merge
// into a point set, and a group holding any interval collapses into one
// interval spanning the whole group.
package binmerge

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	valueset "github.com/digitalocean/go-valueset"
)

// Bin is one entry of an ordered binning together with its weight,
// usually the share of observations that fall into it.
type Bin struct {
	Token  valueset.Element
	Weight float64
}

func (b Bin) String() string {
	return fmt.Sprintf("%s(%g)", b.Token, b.Weight)
}

type Strategy int

const (
	// StrategySequential accumulates bins from the left until the group
	// reaches the minimum weight.
	StrategySequential Strategy = iota
	// StrategyGreedy folds light bins into the group before them, and
	// lets a group that stays light absorb the next heavy bin.
	StrategyGreedy
)

func (s Strategy) String() string {
	switch s {
	case StrategySequential:
		return "sequential"
	case StrategyGreedy:
		return "greedy"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "sequential", "":
		return StrategySequential, nil
	case "greedy":
		return StrategyGreedy, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// Sequential merges bins left to right: bins join the current group until
// its weight reaches minWeight, which closes it. A light remainder at the
// end joins the last closed group, or stands alone if there is none.
func Sequential(bins []Bin, minWeight float64) ([]Bin, error) {
	return sequential(bins, minWeight, zap.NewNop())
}

// Greedy merges bins pairwise from the left. A bin lighter than minWeight
// joins the pending group. A heavier bin closes the pending group, and is
// absorbed into it first if the group is itself still lighter than
// minWeight. A light group left over at the end joins the last output bin.
func Greedy(bins []Bin, minWeight float64) ([]Bin, error) {
	return greedy(bins, minWeight, zap.NewNop())
}

func sequential(bins []Bin, minWeight float64, lg *zap.Logger) ([]Bin, error) {
	if err := validate(bins); err != nil {
		return nil, err
	}

	var out []Bin
	var g group
	for _, b := range bins {
		g.add(b, lg)
		if g.weight >= minWeight {
			merged, err := g.close()
			if err != nil {
				return nil, err
			}
			out = append(out, merged)
		}
	}
	return finish(out, g, lg)
}

func greedy(bins []Bin, minWeight float64, lg *zap.Logger) ([]Bin, error) {
	if err := validate(bins); err != nil {
		return nil, err
	}

	var out []Bin
	var g group
	for i := 0; i < len(bins); i++ {
		if g.empty() {
			g.add(bins[i], lg)
			i++
			if i == len(bins) {
				break
			}
		}

		cur := bins[i]
		if cur.Weight < minWeight {
			g.add(cur, lg)
			continue
		}

		next := group{}
		if g.weight < minWeight {
			g.add(cur, lg)
		} else {
			next.add(cur, lg)
		}
		merged, err := g.close()
		if err != nil {
			return nil, err
		}
		out = append(out, merged)
		g = next
	}

	if !g.empty() && g.weight >= minWeight {
		merged, err := g.close()
		if err != nil {
			return nil, err
		}
		return append(out, merged), nil
	}
	return finish(out, g, lg)
}

// finish folds a light trailing group into the last output bin.
func finish(out []Bin, g group, lg *zap.Logger) ([]Bin, error) {
	if g.empty() {
		return out, nil
	}
	if len(out) == 0 {
		merged, err := g.close()
		if err != nil {
			return nil, err
		}
		return []Bin{merged}, nil
	}

	last := group{members: []Bin{out[len(out)-1]}, weight: out[len(out)-1].Weight}
	for _, b := range g.members {
		last.add(b, lg)
	}
	merged, err := last.close()
	if err != nil {
		return nil, err
	}
	out[len(out)-1] = merged
	return out, nil
}

// group is a run of neighbouring bins waiting to be merged.
type group struct {
	members []Bin
	weight  float64
}

func (g *group) empty() bool { return len(g.members) == 0 }

func (g *group) add(b Bin, lg *zap.Logger) {
	if !g.empty() {
		lg.Debug("merge bin",
			zap.Stringer("bin", b.Token),
			zap.Float64("weight", b.Weight),
			zap.Stringers("group", tokens(g.members)),
		)
	}
	g.members = append(g.members, b)
	g.weight += b.Weight
}

// close combines the members into one bin. A lone member is returned
// untouched.
func (g *group) close() (Bin, error) {
	defer func() { *g = group{} }()
	if len(g.members) == 1 {
		return g.members[0], nil
	}
	token, err := valueset.ConcatOrdered(tokens(g.members))
	if err != nil {
		return Bin{}, err
	}
	return Bin{Token: token, Weight: g.weight}, nil
}

func tokens(bins []Bin) []valueset.Element {
	out := make([]valueset.Element, len(bins))
	for i, b := range bins {
		out[i] = b.Token
	}
	return out
}

func validate(bins []Bin) error {
	for i, b := range bins {
		if math.IsNaN(b.Weight) || b.Weight < 0 {
			return fmt.Errorf("bin %d (%s): %w", i, b.Token, ErrInvalidWeight)
		}
		if b.Token.Kind() == valueset.KindInvalid {
			return fmt.Errorf("bin %d: %w", i, &valueset.UnsupportedOperandError{
				Cause: valueset.ErrUnsupportedOperand,
				Type:  b.Token.Kind().String(),
			})
		}
	}
	return nil
}
