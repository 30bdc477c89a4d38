package jackets

import (
	"time"

	"jacket-manager/core/reconcile"

	"github.com/google/uuid"
)

// Run bundles the state of one upload/processing cycle. Everything in it is
// owned exclusively by the request that created it and discarded afterwards,
// so processing a second file can never see leftovers from the first.
type Run struct {
	// ID identifies the run in logs.
	ID uuid.UUID

	// Filename is the uploaded workbook's name.
	Filename string

	// Rows holds the parsed order rows in sheet order.
	Rows []reconcile.OrderRow

	// Result is the reconciliation output.
	Result *reconcile.Result

	// StartedAt is when processing began.
	StartedAt time.Time
}

// PaceJobNo returns the job number from the first order row, or "Unknown"
// when the column is absent. The whole sheet belongs to one production job.
func (r *Run) PaceJobNo() string {
	if len(r.Rows) == 0 {
		return "Unknown"
	}
	if v := r.Rows[0].Field(reconcile.FieldPaceJobNo).Trimmed(); v != "" {
		return v
	}
	return "Unknown"
}

// OrderDate returns the order date from the first order row, or "" when the
// column is absent.
func (r *Run) OrderDate() string {
	if len(r.Rows) == 0 {
		return ""
	}
	return r.Rows[0].Field(reconcile.FieldOrderDate).Trimmed()
}

// TotalQuantity sums the ordered quantities across all reconciled jobs.
func (r *Run) TotalQuantity() int {
	total := 0
	for _, job := range r.Result.Jobs {
		total += job.Quantity()
	}
	return total
}
