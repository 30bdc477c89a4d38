package picklist

import (
	"testing"
	"time"

	"jacket-manager/core/catalog"
	"jacket-manager/core/cell"
	"jacket-manager/core/reconcile"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func sampleJob(isbn string) reconcile.Job {
	return reconcile.Job{
		Row: reconcile.OrderRow{
			reconcile.FieldQty:             cell.Text("2"),
			reconcile.FieldCustomerOrderNo: cell.Text("PO-17"),
		},
		Record: &catalog.Record{
			ISBN:                isbn,
			HasJacket:           true,
			BookDescription:     "A Fine Example Cover",
			TrimHeight:          "280",
			TrimWidth:           "216",
			CoverMediaTreatment: "Gloss Laminate",
		},
		ISBN:  isbn,
		Route: reconcile.RouteIndigo,
	}
}

func TestRender_ProducesPDF(t *testing.T) {
	data, err := Render(Input{
		JobNumber:     "J1001",
		OrderDate:     "01/09/2026",
		GeneratedAt:   time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		Jobs:          []reconcile.Job{sampleJob("9780521000001")},
		TotalQuantity: 2,
		Logger:        zap.NewNop(),
	})
	assert.NoError(t, err)
	assert.Greater(t, len(data), 1000)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRender_PaginatesLongRuns(t *testing.T) {
	jobs := make([]reconcile.Job, 30)
	for i := range jobs {
		jobs[i] = sampleJob("9780521000001")
	}

	data, err := Render(Input{
		JobNumber:   "J1002",
		GeneratedAt: time.Now(),
		Jobs:        jobs,
	})
	assert.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRender_BarcodeFailureKeepsJob(t *testing.T) {
	// A Code 128 symbol cannot encode an empty string; the job line must
	// survive with the barcode omitted.
	job := sampleJob("")
	data, err := Render(Input{
		JobNumber:   "J1003",
		GeneratedAt: time.Now(),
		Jobs:        []reconcile.Job{job},
		Logger:      zap.NewNop(),
	})
	assert.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "this is...", truncate("this is far too long", 10))
}
