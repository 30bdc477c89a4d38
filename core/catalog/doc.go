// Package catalog provides the read-only reference catalog of book
// production records.
//
// The catalog is loaded exactly once at startup from a configured source
// (local JSON file, storage object, or database table) and indexed by ISBN
// for constant-time lookup during reconciliation.
//
// # Readiness
//
// Loading happens asynchronously at server start. The Store exposes a
// readiness gate: until Populate is called, Ready reports false and callers
// must refuse reconciliation with a "catalog unavailable" condition rather
// than run against a partially-loaded store. A failed load is recorded via
// Fail and surfaced through Err, never as a silent empty catalog.
//
// # Integrity
//
// Duplicate ISBNs in the source are a catalog-integrity problem. The first
// record wins for lookups, and the shadowed keys are retained so the
// integrity feature and the catalog CLI command can report them.
package catalog
