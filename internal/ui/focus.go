package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tally/internal/domain"
)

// FocusRequest names the field that should receive keyboard focus after the
// current mutation commits.
type FocusRequest struct {
	Row   int64
	Field domain.Field
}

// FocusCoordinator defers focus changes until the target row exists. A
// mutation records an intent with Request; the editor calls Apply after the
// structural change has taken effect. If the row is not registered yet the
// intent stays pending for a later pass; only one intent is kept, a newer
// request overriding an unfulfilled older one.
//
// The coordinator also owns the field-handle table: every live row registers
// its inputs here and deregisters on removal, so focus never reaches across
// to a row that no longer exists.
type FocusCoordinator struct {
	pending *FocusRequest
	fields  map[int64]*rowFields
}

// NewFocusCoordinator returns a coordinator with an empty handle table.
func NewFocusCoordinator() FocusCoordinator {
	return FocusCoordinator{fields: make(map[int64]*rowFields)}
}

// Register adds a row's field handles. Called when the row is created.
func (f *FocusCoordinator) Register(row int64, fields *rowFields) {
	f.fields[row] = fields
}

// Deregister drops a row's handles. A pending intent for that row is
// discarded with it.
func (f *FocusCoordinator) Deregister(row int64) {
	delete(f.fields, row)
	if f.pending != nil && f.pending.Row == row {
		f.pending = nil
	}
}

// Fields returns the handles for a registered row.
func (f *FocusCoordinator) Fields(row int64) (*rowFields, bool) {
	r, ok := f.fields[row]
	return r, ok
}

// Request records a focus intent, replacing any unfulfilled one.
func (f *FocusCoordinator) Request(row int64, field domain.Field) {
	f.pending = &FocusRequest{Row: row, Field: field}
}

// Pending returns the unfulfilled intent, if any.
func (f *FocusCoordinator) Pending() *FocusRequest {
	return f.pending
}

// Apply resolves the pending intent if its row is registered: all rows are
// blurred, the target input focused, and the intent cleared. Returns the
// fulfilled request and the textinput focus command.
func (f *FocusCoordinator) Apply() (FocusRequest, tea.Cmd, bool) {
	if f.pending == nil {
		return FocusRequest{}, nil, false
	}
	target, ok := f.fields[f.pending.Row]
	if !ok {
		return FocusRequest{}, nil, false
	}
	for _, r := range f.fields {
		r.blurAll()
	}
	cmd := target.focus(f.pending.Field)
	req := *f.pending
	f.pending = nil
	return req, cmd, true
}
