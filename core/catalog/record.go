package catalog

import (
	"encoding/json"
	"strings"
)

// Scalar is a catalog field that may arrive as a JSON number or a JSON
// string depending on how the source file was exported. It always stores
// the string form; absent and null fields decode to the empty string.
type Scalar string

// UnmarshalJSON accepts numbers, strings, and null.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*s = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Scalar(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = Scalar(num.String())
	return nil
}

// String returns the raw string form.
func (s Scalar) String() string {
	return string(s)
}

// IsEmpty reports whether the field was absent or blank.
func (s Scalar) IsEmpty() bool {
	return strings.TrimSpace(string(s)) == ""
}

// Record is one book-production reference entry, keyed by ISBN.
// Records are immutable after load; the Store owns them for the lifetime
// of the process.
type Record struct {
	// ISBN is the canonical identifier and unique key.
	ISBN string `json:"isbn"`

	// HasJacket indicates whether the title is produced with a printed jacket.
	HasJacket bool `json:"has_jacket"`

	// BookDescription is the production title, often suffixed with "Cover".
	BookDescription string `json:"book_description"`

	// Customer is the publisher the title is produced for.
	Customer string `json:"customer"`

	// TrimHeight is the trimmed page height in millimetres. May be absent.
	TrimHeight Scalar `json:"trim_height"`

	// TrimWidth is the trimmed page width in millimetres. May be absent.
	TrimWidth Scalar `json:"trim_width"`

	// SpineSize is the spine thickness in millimetres.
	SpineSize Scalar `json:"spine_size"`

	// CoverMediaTreatment describes the jacket finish (e.g. gloss laminate).
	CoverMediaTreatment string `json:"cover_media_treatment"`

	// BindingType is the binding style (e.g. Cased, Limp).
	BindingType string `json:"binding_type"`

	// Pagination is the page extent.
	Pagination Scalar `json:"pagination"`

	// StockDescription describes the jacket stock.
	StockDescription string `json:"stock_description"`

	// WeightGSM is the stock weight in grams per square metre.
	WeightGSM Scalar `json:"weight_gsm"`

	// PDFUrl points at the source artwork file.
	PDFUrl string `json:"pdf_url"`
}
