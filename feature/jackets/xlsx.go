package jackets

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"jacket-manager/core/cell"
	"jacket-manager/core/reconcile"

	"github.com/xuri/excelize/v2"
)

// ErrInvalidFileType is returned for uploads that are not Excel workbooks.
// The check runs before any parsing so a rejected file changes no state.
var ErrInvalidFileType = errors.New("please upload a valid Excel file (.xlsx or .xls)")

// validExtension reports whether the filename carries an Excel extension.
func validExtension(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
		return true
	default:
		return false
	}
}

// ParseWorkbook reads the first sheet of an order workbook into
// loosely-typed rows. The first row supplies the column names; fully blank
// rows are skipped the way spreadsheet tools skip them. Cell values arrive
// as formatted text, which is exactly what the reconciliation pipeline's
// cell abstraction expects.
func ParseWorkbook(filename string, data []byte) ([]reconcile.OrderRow, error) {
	if !validExtension(filename) {
		return nil, ErrInvalidFileType
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rawRows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rawRows) == 0 {
		return []reconcile.OrderRow{}, nil
	}

	headers := rawRows[0]
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	rows := make([]reconcile.OrderRow, 0, len(rawRows)-1)
	for _, raw := range rawRows[1:] {
		row := make(reconcile.OrderRow, len(headers))
		empty := true
		for i, header := range headers {
			if header == "" || i >= len(raw) {
				continue
			}
			if raw[i] != "" {
				empty = false
			}
			row[header] = cell.Text(raw[i])
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}
