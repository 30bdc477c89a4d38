// Package cell models a single loosely-typed spreadsheet cell.
//
// Order workbooks arrive with no fixed schema: the same column may hold a
// native boolean in one file and the text "Yes" in another. Value is a small
// tagged union (text or bool) so that consumers like the jacket eligibility
// predicate can branch exhaustively over both encodings without depending on
// the quirks of any particular tabular-parsing library.
//
// # Usage
//
//	v := cell.FromAny(raw)
//	if v.IsBool() {
//	    eligible = v.BoolValue()
//	}
package cell
