package reconcile

import (
	"strconv"

	"jacket-manager/core/catalog"
	"jacket-manager/core/cell"
)

// Well-known order row fields consulted by the pipeline. Rows carry
// arbitrary named fields; only these have meaning here.
const (
	FieldISBN            = "ISBN"
	FieldCode            = "Code"
	FieldJacket          = "Jacket Y/N"
	FieldQty             = "Qty"
	FieldTitle           = "Title"
	FieldPaceJobNo       = "Pace Job No"
	FieldCustomerOrderNo = "Customer Order No."
	FieldOrderDate       = "Order Date"
)

// OrderRow is one spreadsheet line: a loosely-typed map of column name to
// cell value. Rows are transient; they exist only for the duration of one
// processing run.
type OrderRow map[string]cell.Value

// Field returns the named cell, or an empty text cell when absent.
func (r OrderRow) Field(name string) cell.Value {
	if v, ok := r[name]; ok {
		return v
	}
	return cell.Text("")
}

// Job is one successfully reconciled jacket job. It exists if and only if
// its source row passed the eligibility filter, its normalized ISBN matched
// exactly one catalog record, and that record has the jacket flag set.
// Jobs are never mutated after creation.
type Job struct {
	// Row is the source order row.
	Row OrderRow `json:"-"`

	// Record is the matched catalog record.
	Record *catalog.Record `json:"record"`

	// ISBN is the normalized identifier used for the join.
	ISBN string `json:"isbn"`

	// Route is the manufacturing route computed from the record's trim size.
	// Both renderers read this single computed value so the on-screen summary
	// and the exported artifacts can never disagree.
	Route string `json:"route"`
}

// Title returns the cleaned title: the catalog description, falling back to
// the row's Title column, with any trailing "Cover" suffix stripped. May be
// empty when neither source names the title; display fallbacks belong to
// the renderers.
func (j Job) Title() string {
	raw := j.Record.BookDescription
	if raw == "" {
		raw = j.Row.Field(FieldTitle).Trimmed()
	}
	return CleanTitle(raw)
}

// Quantity returns the ordered quantity, defaulting to 1 when the column is
// absent or not numeric.
func (j Job) Quantity() int {
	n, err := strconv.Atoi(j.Row.Field(FieldQty).Trimmed())
	if err != nil || n == 0 {
		return 1
	}
	return n
}

// DiagnosticKind classifies a non-fatal reconciliation finding.
type DiagnosticKind string

const (
	// DiagnosticUnmatched marks a jacket-flagged row whose ISBN is absent
	// from the catalog.
	DiagnosticUnmatched DiagnosticKind = "unmatched"

	// DiagnosticExcludedByCatalog marks a row declared a jacket in the input
	// while the catalog record says the title has no jacket.
	DiagnosticExcludedByCatalog DiagnosticKind = "excluded_by_catalog"
)

// Diagnostic is a structured side-channel finding. Diagnostics never block
// the pipeline; the run always completes with whatever it could reconcile.
type Diagnostic struct {
	// Kind classifies the finding.
	Kind DiagnosticKind `json:"kind"`

	// ISBN is the normalized identifier of the affected row.
	ISBN string `json:"isbn"`

	// Title is the row's title, carried for operator follow-up.
	Title string `json:"title"`

	// Reason is a human-readable explanation.
	Reason string `json:"reason"`
}

// Summary exposes the run counters for display and downstream sizing.
// Invariant: MatchedJobs <= EligibleRows <= TotalRows.
type Summary struct {
	// TotalRows is the number of input rows.
	TotalRows int `json:"total_rows"`

	// EligibleRows is the number of rows passing the eligibility filter.
	EligibleRows int `json:"eligible_rows"`

	// MatchedJobs is the number of rows landing in the result set.
	MatchedJobs int `json:"matched_jobs"`
}

// HasJobs reports whether the run produced any jacket jobs. Exports are
// disabled entirely when false rather than producing empty artifacts.
func (s Summary) HasJobs() bool {
	return s.MatchedJobs > 0
}

// Guidance returns an actionable message for runs that produced no jobs.
// A zero-eligible run is a different problem from an eligible-but-unmatched
// run and the two must stay distinguishable. Returns "" when jobs exist.
func (s Summary) Guidance() string {
	switch {
	case s.MatchedJobs > 0:
		return ""
	case s.EligibleRows == 0:
		return "No jacket jobs found in the order file. Make sure the \"Jacket Y/N\" column contains true values."
	default:
		return "Found " + strconv.Itoa(s.EligibleRows) + " jacket job(s) in the order file, but none matched the catalog. " +
			"Check that the ISBNs exist in the catalog and that their records have the jacket flag set."
	}
}

// Result is the ordered, immutable output of one reconciliation run,
// order-preserving relative to the input rows. It is owned exclusively by
// the run that created it and discarded when a new file is processed.
type Result struct {
	// Jobs is the result set consumed by both renderers.
	Jobs []Job `json:"jobs"`

	// Diagnostics lists the rows omitted from the result set and why.
	Diagnostics []Diagnostic `json:"diagnostics"`

	// Summary carries the run counters.
	Summary Summary `json:"summary"`
}
