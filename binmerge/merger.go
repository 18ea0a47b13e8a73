// SPDX-License-Identifier: Apache-2.0

package binmerge

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Merger applies one merge strategy with one minimum weight, to a single
// binning or to many binnings keyed by feature name.
type Merger struct {
	// Bins lighter than MinWeight are merged into their neighbours.
	MinWeight float64

	// Zero value is StrategySequential.
	Strategy Strategy

	// Optional logger. Pass in nil to disable logging.
	Logger *zap.Logger

	// Upper bound on features merged at once by MergeAll. Zero or less
	// means runtime.GOMAXPROCS(0).
	Concurrency int
}

func (m *Merger) logger() *zap.Logger {
	if m.Logger == nil {
		return zap.NewNop()
	}
	return m.Logger
}

// Merge merges one ordered binning. bins is not modified.
func (m *Merger) Merge(bins []Bin) ([]Bin, error) {
	return m.merge(bins, m.logger())
}

func (m *Merger) merge(bins []Bin, lg *zap.Logger) ([]Bin, error) {
	switch m.Strategy {
	case StrategySequential:
		return sequential(bins, m.MinWeight, lg)
	case StrategyGreedy:
		return greedy(bins, m.MinWeight, lg)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, m.Strategy)
}

// MergeAll merges every binning in features concurrently. The first
// failure cancels the binnings not yet started and is returned as a
// *MergeError naming its feature.
func (m *Merger) MergeAll(ctx context.Context, features map[string][]Bin) (map[string][]Bin, error) {
	limit := m.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	lg := m.logger()

	var (
		mu  sync.Mutex
		out = make(map[string][]Bin, len(features))
	)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)
	for name, bins := range features {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return &MergeError{Feature: name, Cause: err}
			}

			flg := lg.With(zap.String("feature", name))
			merged, err := m.merge(bins, flg)
			if err != nil {
				return &MergeError{Feature: name, Cause: err}
			}
			flg.Info("merged feature",
				zap.Int("bins", len(bins)),
				zap.Int("merged", len(merged)),
				zap.Stringer("strategy", m.Strategy),
			)

			mu.Lock()
			out[name] = merged
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
