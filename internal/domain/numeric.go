package domain

import (
	"strconv"
	"strings"
)

// ParseQuantity converts quantity text to a number, falling back to 1 when
// the text is blank or not a valid number. Used when a template is created
// from a row; the row's own text is never rewritten.
func ParseQuantity(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 1
	}
	return v
}

// ParseAmount converts amount text to an optional number: nil when the text
// is blank or unparseable.
func ParseAmount(s string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &v
}
