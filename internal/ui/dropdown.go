package ui

import "tally/internal/domain"

// noRow marks the dropdown as closed.
const noRow int64 = -1

// DropdownController tracks which single row's suggestion popup is open and
// which candidate is highlighted. At most one row is open at a time; opening
// a row implicitly closes any other. The highlight lives in
// [-1, len(candidates)-1] and resets to -1 whenever the open row or the
// filter text changes. Mouse hover and keyboard navigation share it.
type DropdownController struct {
	openRow    int64
	query      string
	candidates []domain.Template
	highlight  int
}

// NewDropdownController returns a closed controller.
func NewDropdownController() DropdownController {
	return DropdownController{openRow: noRow, highlight: -1}
}

// OpenFor opens (or re-syncs) the popup for the given row with the filtered
// candidates for query. Switching rows or changing the query resets the
// highlight.
func (d *DropdownController) OpenFor(row int64, query string, candidates []domain.Template) {
	if d.openRow != row || d.query != query {
		d.highlight = -1
	}
	d.openRow = row
	d.query = query
	d.candidates = candidates
}

// Close dismisses the popup and resets the highlight.
func (d *DropdownController) Close() {
	d.openRow = noRow
	d.query = ""
	d.candidates = nil
	d.highlight = -1
}

// IsOpen reports whether any row's popup is open.
func (d *DropdownController) IsOpen() bool {
	return d.openRow != noRow
}

// IsOpenFor reports whether the given row's popup is open.
func (d *DropdownController) IsOpenFor(row int64) bool {
	return d.openRow == row
}

// OpenRow returns the owning row's local id, or noRow.
func (d *DropdownController) OpenRow() int64 {
	return d.openRow
}

// Candidates returns the current filtered candidate list.
func (d *DropdownController) Candidates() []domain.Template {
	return d.candidates
}

// Highlight returns the highlighted candidate index, -1 for none.
func (d *DropdownController) Highlight() int {
	return d.highlight
}

// Highlighted returns the highlighted candidate, if any.
func (d *DropdownController) Highlighted() (domain.Template, bool) {
	if d.highlight < 0 || d.highlight >= len(d.candidates) {
		return domain.Template{}, false
	}
	return d.candidates[d.highlight], true
}

// MoveHighlight shifts the highlight by delta, clamped to the valid range:
// -1 below (no selection), the last candidate above.
func (d *DropdownController) MoveHighlight(delta int) {
	d.SetHighlight(d.highlight + delta)
}

// SetHighlight sets the highlight directly, clamped the same way. Used by
// mouse hover.
func (d *DropdownController) SetHighlight(i int) {
	if i < -1 {
		i = -1
	}
	if i > len(d.candidates)-1 {
		i = len(d.candidates) - 1
	}
	d.highlight = i
}
