package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tally/internal/catalog"
	"tally/internal/domain"
	"tally/internal/items"
)

// Editor is the line-item editing component: the ordered collection, one
// suggestion dropdown, and the focus coordination between rows. The hosting
// app owns the document around it and reads the collection between events.
type Editor struct {
	collection *items.Collection
	catalog    *catalog.Catalog
	dropdown   DropdownController
	focus      FocusCoordinator

	activeRow   int64
	activeField domain.Field
	descWidth   int
}

// NewEditor builds an editor over an already-seeded collection. The first
// row's description field receives the initial focus.
func NewEditor(collection *items.Collection, cat *catalog.Catalog) *Editor {
	e := &Editor{
		collection:  collection,
		catalog:     cat,
		dropdown:    NewDropdownController(),
		focus:       NewFocusCoordinator(),
		activeRow:   noRow,
		activeField: domain.FieldDescription,
		descWidth:   40,
	}
	for _, it := range collection.Items() {
		rf := newRowFields(it.LocalID, e.descWidth)
		rf.setValues(it)
		e.focus.Register(it.LocalID, rf)
	}
	if collection.Len() > 0 {
		e.focus.Request(collection.At(0).LocalID, domain.FieldDescription)
	}
	return e
}

// Init resolves the initial focus intent.
func (e *Editor) Init() tea.Cmd {
	return e.applyPendingFocus()
}

// Collection exposes the live sequence for the host (totals, snapshots).
func (e *Editor) Collection() *items.Collection {
	return e.collection
}

// Dropdown exposes the controller, mainly for the view and tests.
func (e *Editor) Dropdown() *DropdownController {
	return &e.dropdown
}

// ActiveRow returns the local id of the focused row, noRow when none.
func (e *Editor) ActiveRow() int64 {
	return e.activeRow
}

// ActiveField returns the focused field.
func (e *Editor) ActiveField() domain.Field {
	return e.activeField
}

// ActiveItem returns the focused line item.
func (e *Editor) ActiveItem() (domain.LineItem, bool) {
	return e.collection.Get(e.activeRow)
}

// SetDescWidth resizes the description column on window resize.
func (e *Editor) SetDescWidth(w int) {
	if w < descColMin {
		w = descColMin
	}
	e.descWidth = w
	for _, it := range e.collection.Items() {
		if rf, ok := e.focus.Fields(it.LocalID); ok {
			rf.setDescWidth(w)
		}
	}
}

// AddRow appends an empty row and schedules focus onto its description
// field. Returns the new row's local id.
func (e *Editor) AddRow() int64 {
	id := e.collection.Add()
	e.focus.Register(id, newRowFields(id, e.descWidth))
	e.focus.Request(id, domain.FieldDescription)
	return id
}

// RemoveRow deletes a row, dropping its field handles and closing its
// dropdown if open. Focus intents are the caller's concern.
func (e *Editor) RemoveRow(localID int64) {
	e.collection.Remove(localID)
	e.focus.Deregister(localID)
	if e.dropdown.IsOpenFor(localID) {
		e.dropdown.Close()
	}
}

// MoveActiveRow swaps the focused row with its neighbor. The row keeps
// focus on the same field after the move.
func (e *Editor) MoveActiveRow(direction int) {
	idx := e.collection.IndexOf(e.activeRow)
	if idx < 0 {
		return
	}
	e.collection.Move(idx, direction)
	e.dropdown.Close()
}

// ResyncDropdown refreshes the open dropdown's candidates against the
// catalog, used after the catalog finishes loading or grows.
func (e *Editor) ResyncDropdown() {
	if !e.dropdown.IsOpen() {
		return
	}
	row := e.dropdown.OpenRow()
	if rf, ok := e.focus.Fields(row); ok {
		val := rf.desc.Value()
		e.dropdown.OpenFor(row, val, e.catalog.Filter(val))
	}
}

// acceptTemplate applies a suggestion to the focused row: description and
// the template's defaults overwrite the fields (empty text when a default
// is absent), the dropdown closes, and focus moves to the amount field.
func (e *Editor) acceptTemplate(tpl domain.Template) {
	row := e.activeRow
	e.collection.Update(row, domain.FieldDescription, tpl.Description)
	e.collection.Update(row, domain.FieldQuantity, tpl.QuantityText())
	e.collection.Update(row, domain.FieldAmount, tpl.AmountText())
	if rf, ok := e.focus.Fields(row); ok {
		if it, found := e.collection.Get(row); found {
			rf.setValues(it)
		}
	}
	e.dropdown.Close()
	e.focus.Request(row, domain.FieldAmount)
}

// applyPendingFocus resolves a deferred focus intent, then keeps the
// dropdown consistent with the new focus: a description field with text
// reopens its suggestions, anything else closes a popup it does not own.
func (e *Editor) applyPendingFocus() tea.Cmd {
	req, cmd, ok := e.focus.Apply()
	if !ok {
		return nil
	}
	e.activeRow = req.Row
	e.activeField = req.Field

	if req.Field == domain.FieldDescription {
		if rf, found := e.focus.Fields(req.Row); found {
			if val := rf.desc.Value(); strings.TrimSpace(val) != "" {
				e.dropdown.OpenFor(req.Row, val, e.catalog.Filter(val))
				return cmd
			}
		}
	}
	if e.dropdown.IsOpen() && !e.dropdown.IsOpenFor(req.Row) {
		e.dropdown.Close()
	} else if e.dropdown.IsOpen() && req.Field != domain.FieldDescription {
		e.dropdown.Close()
	}
	return cmd
}

// updateActiveInput forwards a message to the focused textinput and keeps
// the collection and dropdown in sync with the new text.
func (e *Editor) updateActiveInput(msg tea.Msg) tea.Cmd {
	rf, ok := e.focus.Fields(e.activeRow)
	if !ok {
		return nil
	}
	in := rf.input(e.activeField)
	old := in.Value()
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	val := in.Value()
	if val != old {
		e.collection.Update(e.activeRow, e.activeField, val)
		if e.activeField == domain.FieldDescription {
			e.dropdown.OpenFor(e.activeRow, val, e.catalog.Filter(val))
		}
	}
	return cmd
}
