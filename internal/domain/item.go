// Package domain defines the core records shared by the line-item editor:
// line items being edited and the reusable templates suggested for them.
package domain

import "strings"

// Field identifies one editable field of a line item.
type Field int

const (
	FieldDescription Field = iota
	FieldQuantity
	FieldAmount
)

// String returns the field name used in debug logs.
func (f Field) String() string {
	switch f {
	case FieldDescription:
		return "description"
	case FieldQuantity:
		return "quantity"
	case FieldAmount:
		return "amount"
	}
	return "unknown"
}

// LineItem is one priced row in the document being edited.
//
// LocalID is client-only identity: assigned once from a monotonic allocator,
// never reused, and unrelated to anything the server may assign when the
// hosting document is persisted. Quantity and Amount stay free text while
// editing; parsing happens only when a template is created from the row or
// when the host computes totals.
type LineItem struct {
	LocalID     int64
	Description string
	Quantity    string
	Amount      string
	Position    int
}

// IsEmpty reports whether every editable field is blank. Rows in this state
// are eligible for the backspace auto-remove rule.
func (li LineItem) IsEmpty() bool {
	return strings.TrimSpace(li.Description) == "" &&
		strings.TrimSpace(li.Quantity) == "" &&
		strings.TrimSpace(li.Amount) == ""
}

// Value returns the text of the given field.
func (li LineItem) Value(f Field) string {
	switch f {
	case FieldDescription:
		return li.Description
	case FieldQuantity:
		return li.Quantity
	case FieldAmount:
		return li.Amount
	}
	return ""
}
