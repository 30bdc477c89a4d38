package reconcile

// NormalizeISBN extracts the canonical identifier from an order row.
// It prefers the ISBN column and falls back to Code when ISBN is absent or
// empty. The only canonicalization is string conversion plus whitespace
// trimming; the catalog join is exact-string, so no case folding or hyphen
// stripping happens here. Returns "" (never a sentinel) when both columns
// are absent. Pure function, shared by the engine and both renderers.
func NormalizeISBN(row OrderRow) string {
	v := row.Field(FieldISBN)
	if v.String() == "" {
		v = row.Field(FieldCode)
	}
	return v.Trimmed()
}
