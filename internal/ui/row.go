package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tally/internal/domain"
)

// Column widths for the row grid. Quantity comes first, then description,
// then amount, matching the tab order: qty -> description -> amount.
const (
	qtyColWidth        = 6
	amtColWidth        = 10
	descColMin         = 20
	posColWidth        = 4
	colGap             = 2
	descCharMax        = 200
	numCharMax         = 12
	dropdownMaxVisible = 6
)

// rowFields bundles the three textinputs backing one line item row.
type rowFields struct {
	localID int64
	qty     textinput.Model
	desc    textinput.Model
	amt     textinput.Model
}

func newRowFields(localID int64, descWidth int) *rowFields {
	qty := textinput.New()
	qty.Placeholder = "qty"
	qty.Prompt = ""
	qty.CharLimit = numCharMax
	qty.Width = qtyColWidth

	desc := textinput.New()
	desc.Placeholder = "description"
	desc.Prompt = ""
	desc.CharLimit = descCharMax
	desc.Width = descWidth

	amt := textinput.New()
	amt.Placeholder = "amount"
	amt.Prompt = ""
	amt.CharLimit = numCharMax
	amt.Width = amtColWidth

	return &rowFields{localID: localID, qty: qty, desc: desc, amt: amt}
}

// input returns the textinput backing the given field.
func (r *rowFields) input(f domain.Field) *textinput.Model {
	switch f {
	case domain.FieldQuantity:
		return &r.qty
	case domain.FieldAmount:
		return &r.amt
	}
	return &r.desc
}

func (r *rowFields) blurAll() {
	r.qty.Blur()
	r.desc.Blur()
	r.amt.Blur()
}

// focus focuses one field, blurring the row's others first.
func (r *rowFields) focus(f domain.Field) tea.Cmd {
	r.blurAll()
	return r.input(f).Focus()
}

// setValues pushes collection state into the inputs, used after a template
// is accepted so the visible text matches the model.
func (r *rowFields) setValues(it domain.LineItem) {
	r.qty.SetValue(it.Quantity)
	r.desc.SetValue(it.Description)
	r.amt.SetValue(it.Amount)
	r.qty.CursorEnd()
	r.desc.CursorEnd()
	r.amt.CursorEnd()
}

// setDescWidth resizes the description input on window resize.
func (r *rowFields) setDescWidth(w int) {
	if w < descColMin {
		w = descColMin
	}
	r.desc.Width = w
}
