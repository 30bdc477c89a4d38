package reconcile

import "strings"

// IsJacketJob reports whether a row represents a jacket job, evaluated
// purely from the "Jacket Y/N" column.
//
// A native boolean cell decides directly. A text cell is eligible when it
// case-insensitively equals "true" or "yes", or is the literal "1". Any
// other text, or an absent or empty column, is not eligible.
//
// Several pipeline stages evaluate eligibility (the summary counter and the
// reconciliation pass); this single predicate is the only implementation so
// the count shown to the operator and the set actually reconciled cannot
// drift apart.
func IsJacketJob(row OrderRow) bool {
	v, ok := row[FieldJacket]
	if !ok {
		return false
	}
	if v.IsBool() {
		return v.BoolValue()
	}
	s := v.String()
	return strings.EqualFold(s, "true") || strings.EqualFold(s, "yes") || s == "1"
}
