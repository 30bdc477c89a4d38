package reconcile

import "jacket-manager/core/catalog"

// Reconcile joins the ordered input rows against the catalog and returns
// the result set plus structured diagnostics.
//
// Per eligible row, in input order: normalize the identifier, look up the
// catalog by exact string equality, then classify into exactly one of
// matched-and-included, matched-but-excluded, or unmatched. Rows matching
// the same catalog record each produce a separate job; nothing is collapsed.
//
// The computation performs no I/O and is deterministic: the same catalog
// snapshot and the same rows yield a byte-for-byte identical result on
// every run. It returns catalog.ErrUnavailable (or the load error) when the
// store has not finished loading, so a run can never execute against a
// partially-loaded catalog.
func Reconcile(rows []OrderRow, store *catalog.Store) (*Result, error) {
	if !store.Ready() {
		if err := store.Err(); err != nil {
			return nil, err
		}
		return nil, catalog.ErrUnavailable
	}

	res := &Result{
		Jobs:        []Job{},
		Diagnostics: []Diagnostic{},
		Summary:     Summary{TotalRows: len(rows)},
	}

	for _, row := range rows {
		if !IsJacketJob(row) {
			continue
		}
		res.Summary.EligibleRows++

		isbn := NormalizeISBN(row)
		rec, found := store.Lookup(isbn)

		switch {
		case !found:
			res.Diagnostics = append(res.Diagnostics, Diagnostic{
				Kind:   DiagnosticUnmatched,
				ISBN:   isbn,
				Title:  row.Field(FieldTitle).Trimmed(),
				Reason: "jacket job absent from catalog",
			})
		case !rec.HasJacket:
			res.Diagnostics = append(res.Diagnostics, Diagnostic{
				Kind:   DiagnosticExcludedByCatalog,
				ISBN:   isbn,
				Title:  row.Field(FieldTitle).Trimmed(),
				Reason: "declared jacket in input but catalog marks no jacket",
			})
		default:
			res.Jobs = append(res.Jobs, Job{
				Row:    row,
				Record: rec,
				ISBN:   isbn,
				Route:  Route(rec.TrimHeight.String(), rec.TrimWidth.String()),
			})
			res.Summary.MatchedJobs++
		}
	}

	return res, nil
}
