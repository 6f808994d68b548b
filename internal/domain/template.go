package domain

import "strconv"

// Template is a saved, reusable description plus pricing defaults, offered
// as an autocomplete suggestion while editing line items.
//
// ID is server identity; it is zero for templates that have not been created
// yet (callers never invent one locally). The default fields are optional:
// nil means the template carries no default for that field.
type Template struct {
	ID              int64
	Description     string
	DefaultQuantity *float64
	DefaultAmount   *float64
}

// QuantityText returns the default quantity as editing text, or "" when the
// template has no quantity default.
func (t Template) QuantityText() string {
	return optionalText(t.DefaultQuantity)
}

// AmountText returns the default amount as editing text, or "" when the
// template has no amount default.
func (t Template) AmountText() string {
	return optionalText(t.DefaultAmount)
}

func optionalText(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// Float returns a pointer to v, for building templates with defaults.
func Float(v float64) *float64 {
	return &v
}
