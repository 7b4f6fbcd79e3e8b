// Package classify: result types and options.
package classify

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/bilinv/invariant"
)

// DefaultLogEvery is the progress-log cadence (items) when unset.
const DefaultLogEvery = 100

// Result holds the outcome for one factorization of the batch.
// Exactly one of Signature/Err is meaningful: on error the signature is
// the zero value.
type Result struct {
	// Index is the position of the factorization in the input batch.
	Index int

	// Signature is the combined (rank, spectral) invariant pair.
	Signature invariant.Signature

	// Err records a per-item failure (shape defect, singular matrix,
	// non-integral coefficient). Never a batch-level condition.
	Err error
}

// Summary aggregates a finished batch.
type Summary struct {
	// Results is index-aligned with the input batch.
	Results []Result

	// Classes maps a signature key to the member indices sharing it,
	// in ascending index order. Failed items appear in no class.
	Classes map[string][]int

	// Distinct is len(Classes): the number of mutually inequivalent
	// signatures observed.
	Distinct int

	// Failed counts items whose Result carries an error.
	Failed int
}

// Options configures the batch driver.
//
// Fields:
//   - Workers   — worker-pool size; ≤ 0 means GOMAXPROCS.
//   - Invariant — numeric policy forwarded to the invariant package.
//   - Logger    — optional structured logger for progress lines and
//     per-item failure warnings; nil means silent (zap.NewNop).
//   - LogEvery  — log the running distinct-count every LogEvery items;
//     ≤ 0 means DefaultLogEvery.
type Options struct {
	Workers   int
	Invariant invariant.Options
	Logger    *zap.Logger
	LogEvery  int
}

// DefaultOptions returns a silent, GOMAXPROCS-wide configuration with the
// recommended numeric policy.
func DefaultOptions() Options {
	return Options{
		Workers:   0,
		Invariant: invariant.DefaultOptions(),
		Logger:    nil,
		LogEvery:  DefaultLogEvery,
	}
}
