// Package picklist renders the printable PDF picklist for a processing run.
//
// The layout is a landscape A4 sheet: a header block with the production
// job number, order date, and quantity totals, then one table line per
// reconciled jacket job with a Code 128 barcode of its ISBN. Long runs
// paginate with repeated column headers and a page X of Y footer.
//
// The renderer consumes the engine's result set as-is. Routes and
// identifiers were computed once during reconciliation, so the sheet can
// never disagree with the preview or the exported descriptors.
package picklist
