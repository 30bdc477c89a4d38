// Package jackets implements the jacket order processing pipeline.
//
// An uploaded customer order workbook is parsed into loosely-typed rows,
// reconciled against the in-memory catalog, and turned into artifacts: a
// JSON preview of the matched jobs, a printable barcode picklist PDF, and a
// ZIP of per-job XML descriptors. Each upload is an isolated run; no state
// survives between files.
package jackets
