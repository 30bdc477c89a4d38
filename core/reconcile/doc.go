// Package reconcile implements the order-to-catalog reconciliation pipeline.
//
// Raw order rows flow through a normalizer (canonical ISBN extraction), an
// eligibility filter (the "Jacket Y/N" predicate), and the engine, which
// joins eligible rows against the catalog store and applies the
// match/no-match/excluded-by-catalog policy. The output is an ordered,
// immutable Result consumed by the picklist and job-descriptor renderers.
//
// # Pipeline
//
//	rows -> NormalizeISBN -> IsJacketJob -> Reconcile (catalog join, Route) -> Result
//
// # Guarantees
//
//   - Input order is preserved; duplicate identifiers are not collapsed.
//   - Diagnostics are structured values in the Result, never log scraping;
//     they never block the run.
//   - The engine does no I/O; once rows are in memory the whole pipeline
//     runs synchronously within its run-scoped state.
//   - Summary counters satisfy matched <= eligible <= total, and the
//     zero-eligible and zero-matched-with-eligible outcomes are
//     distinguishable for operator guidance.
package reconcile
