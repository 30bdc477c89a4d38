package integrity

import (
	"strconv"
	"strings"

	"jacket-manager/core/catalog"
)

// CheckCatalog inspects the loaded catalog for conditions that would make
// reconciliation silently wrong: duplicate identifiers, jacketed records
// whose trim dimensions cannot produce a route decision, and jacketed
// records with no artwork reference.
func CheckCatalog(store *catalog.Store) CatalogReport {
	report := CatalogReport{
		DuplicateISBNs:    []string{},
		UnroutableRecords: []string{},
		MissingArtwork:    []string{},
	}

	if !store.Ready() {
		report.Status = StatusFail
		report.Error = catalog.ErrUnavailable.Error()
		if err := store.Err(); err != nil {
			report.Error = err.Error()
		}
		return report
	}

	records := store.Records()
	report.TotalRecords = len(records)
	report.UniqueRecords = store.Len()
	report.DuplicateISBNs = append(report.DuplicateISBNs, store.Duplicates()...)

	for _, rec := range records {
		if !rec.HasJacket {
			continue
		}
		report.JacketedRecords++

		if !parsesAsNumber(rec.TrimHeight.String()) || !parsesAsNumber(rec.TrimWidth.String()) {
			report.UnroutableRecords = append(report.UnroutableRecords, rec.ISBN)
		}
		if strings.TrimSpace(rec.PDFUrl) == "" {
			report.MissingArtwork = append(report.MissingArtwork, rec.ISBN)
		}
	}

	report.Status = StatusPass
	if len(report.DuplicateISBNs) > 0 || len(report.UnroutableRecords) > 0 || len(report.MissingArtwork) > 0 {
		report.Status = StatusWarning
	}
	return report
}

func parsesAsNumber(v string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	return err == nil
}
