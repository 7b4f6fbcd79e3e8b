// Package classify is the batch driver: it runs both invariants over a
// collection of factorizations and groups them into equivalence-class
// candidates by combined signature.
//
// 🚀 What does the driver add?
//
//	Each factorization's invariants are independent of every other's, so
//	the batch is embarrassingly parallel. classify fans the work out over
//	a bounded worker pool, keeps every result associated with its input
//	index, and accumulates:
//	  • Classes  — signature key → member indices
//	  • Distinct — the number of mutually inequivalent signatures found
//	  • Failed   — per-item failures (shape defects, singular stars)
//
// ✨ Failure semantics:
//   - A failing item NEVER aborts the batch: its error is recorded on its
//     Result and counted, and processing continues (computation is
//     deterministic, so there are no retries either).
//   - Only context cancellation stops the batch early.
//   - Factorizations with an inapplicable Kronecker invariant are not
//     failures; they share one class bucket by design.
//
// ⚙️ Usage:
//
//	opts := classify.DefaultOptions()
//	opts.Logger = logger            // optional *zap.Logger progress lines
//	sum, err := classify.Classify(ctx, batch, opts)
//	fmt.Println(sum.Distinct, "distinct classes")
//
// Performance: throughput scales with Options.Workers up to GOMAXPROCS;
// memory is O(K) results plus one in-flight Kronecker product per worker.
package classify
