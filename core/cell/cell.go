package cell

import (
	"fmt"
	"strings"
)

// Kind identifies the runtime type carried by a Value.
type Kind int

const (
	// KindText is a plain string cell.
	KindText Kind = iota
	// KindBool is a native boolean cell.
	KindBool
)

// Value is a tagged cell value from a loosely-typed spreadsheet row.
// Spreadsheet parsers surface cells as either text or native booleans;
// modelling the distinction explicitly keeps downstream branching exhaustive
// instead of relying on runtime type inspection.
type Value struct {
	kind    Kind
	text    string
	boolean bool
}

// Text creates a text value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Bool creates a native boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, boolean: b}
}

// FromAny converts an arbitrary cell value from a parser into a Value.
// Booleans keep their native kind; everything else is stringified.
func FromAny(v any) Value {
	switch val := v.(type) {
	case Value:
		return val
	case bool:
		return Bool(val)
	case string:
		return Text(val)
	case nil:
		return Text("")
	default:
		return Text(fmt.Sprintf("%v", val))
	}
}

// Kind returns the kind tag of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsBool reports whether the value is a native boolean.
func (v Value) IsBool() bool {
	return v.kind == KindBool
}

// BoolValue returns the native boolean. Only meaningful when IsBool is true.
func (v Value) BoolValue() bool {
	return v.boolean
}

// String returns the string form of the value.
// Booleans render as "true"/"false".
func (v Value) String() string {
	if v.kind == KindBool {
		if v.boolean {
			return "true"
		}
		return "false"
	}
	return v.text
}

// Trimmed returns the string form with leading and trailing whitespace removed.
func (v Value) Trimmed() string {
	return strings.TrimSpace(v.String())
}

// IsEmpty reports whether the trimmed string form is empty.
func (v Value) IsEmpty() bool {
	return v.kind == KindText && strings.TrimSpace(v.text) == ""
}
