// Package classify: the batch driver.

package classify

import (
	"context"
	"runtime"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bilinv/factor"
	"github.com/katalvlaran/bilinv/invariant"
)

// Classify computes the combined invariant for every factorization of the
// batch and groups equal signatures.
//
// Stages:
//  1. Fan out invariant.Compute over a bounded errgroup pool; each worker
//     writes only its own index slot, so no locking is needed.
//  2. Fold results sequentially (deterministic class membership order),
//     recording per-item failures without aborting.
//
// Returns a non-nil Summary and nil error on any complete run, including
// runs where every item failed. The only error return is context
// cancellation, in which case partial results are discarded.
//
// Complexity: O(K·R·N⁹) work spread over Options.Workers goroutines,
// O(K) result memory.
func Classify(ctx context.Context, batch []factor.Factorization, opts Options) (*Summary, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logEvery := opts.LogEvery
	if logEvery <= 0 {
		logEvery = DefaultLogEvery
	}

	results := make([]Result, len(batch))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range batch {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sig, err := invariant.Compute(batch[i], opts.Invariant)
			results[i] = Result{Index: i, Signature: sig, Err: err}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sum := &Summary{
		Results: results,
		Classes: make(map[string][]int),
	}
	for i, res := range results {
		if res.Err != nil {
			sum.Failed++
			logger.Warn("factorization failed",
				zap.Int("index", res.Index),
				zap.Error(res.Err))
			continue
		}
		key := res.Signature.Key()
		sum.Classes[key] = append(sum.Classes[key], res.Index)
		if (i+1)%logEvery == 0 {
			logger.Info("classification progress",
				zap.Int("processed", i+1),
				zap.Int("total", len(batch)),
				zap.Int("distinct", len(sum.Classes)))
		}
	}
	sum.Distinct = len(sum.Classes)

	logger.Info("classification complete",
		zap.Int("total", len(batch)),
		zap.Int("distinct", sum.Distinct),
		zap.Int("failed", sum.Failed))

	return sum, nil
}

// ClassKeys returns the class keys in deterministic (lexicographic)
// order, for stable reporting.
func (s *Summary) ClassKeys() []string {
	keys := make([]string, 0, len(s.Classes))
	for k := range s.Classes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
