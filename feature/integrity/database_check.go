package integrity

import (
	"jacket-manager/core/catalog"
	"jacket-manager/core/database"

	"gorm.io/gorm"
)

// expectedColumns are the catalog table columns the record mapping reads.
var expectedColumns = []string{
	"isbn",
	"has_jacket",
	"book_description",
	"customer",
	"trim_height",
	"trim_width",
	"spine_size",
	"cover_media_treatment",
	"binding_type",
	"pagination",
	"stock_description",
	"weight_gsm",
	"pdf_url",
}

// CheckDatabase verifies that the catalog table exists and carries every
// column the record mapping expects.
func CheckDatabase(db *gorm.DB) DatabaseReport {
	report := DatabaseReport{MissingColumns: []string{}}

	if db == nil {
		report.Status = StatusSkipped
		return report
	}

	table := catalog.RecordModel{}.TableName()
	columns, err := database.GetTableColumns(db, table)
	if err != nil {
		report.Status = StatusFail
		report.Error = err.Error()
		return report
	}
	if len(columns) == 0 {
		report.Status = StatusFail
		report.Error = "table " + table + " not found"
		return report
	}
	report.TablePresent = true

	present := make(map[string]bool, len(columns))
	for _, col := range columns {
		present[col.Field] = true
	}
	for _, want := range expectedColumns {
		if !present[want] {
			report.MissingColumns = append(report.MissingColumns, want)
		}
	}

	report.Status = StatusPass
	if len(report.MissingColumns) > 0 {
		report.Status = StatusFail
	}
	return report
}
