package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tally/internal/domain"
)

func motionAt(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion}
}

func clickAt(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestMouseHoverHighlightsCandidate(t *testing.T) {
	e := newTestEditor(t, 1, testTemplates()...)
	typeText(e, "win")

	e.HandleMouse(motionAt(descColX(), 1), 0)
	if got := e.Dropdown().Highlight(); got != 0 {
		t.Fatalf("highlight after hover on first candidate = %d, want 0", got)
	}

	e.HandleMouse(motionAt(descColX()+3, 2), 0)
	if got := e.Dropdown().Highlight(); got != 1 {
		t.Errorf("highlight after hover on second candidate = %d, want 1", got)
	}
}

func TestMouseClickAcceptsCandidate(t *testing.T) {
	e := newTestEditor(t, 1, testTemplates()...)
	row := e.ActiveRow()
	typeText(e, "win")

	e.HandleMouse(clickAt(descColX(), 2), 0)

	it, _ := e.Collection().Get(row)
	if it.Description != "Window Install" {
		t.Errorf("description = %q, want Window Install", it.Description)
	}
	if e.Dropdown().IsOpen() {
		t.Error("expected dropdown closed after click accept")
	}
	if e.ActiveField() != domain.FieldAmount {
		t.Errorf("expected amount focus after accept, got %v", e.ActiveField())
	}
}

func TestMouseClickOutsideClosesDropdown(t *testing.T) {
	e := newTestEditor(t, 1, testTemplates()...)
	typeText(e, "win")

	e.HandleMouse(clickAt(0, 7), 0)

	if e.Dropdown().IsOpen() {
		t.Error("expected dropdown closed after a click outside the popup and row")
	}
}

func TestMouseClickOnOwningRowKeepsDropdown(t *testing.T) {
	e := newTestEditor(t, 1, testTemplates()...)
	row := e.ActiveRow()
	typeText(e, "win")

	e.HandleMouse(clickAt(descColX()+1, 0), 0)

	if !e.Dropdown().IsOpenFor(row) {
		t.Error("expected dropdown to survive a click on its own description field")
	}
}

func TestMouseClickFocusesField(t *testing.T) {
	e := newTestEditor(t, 2)
	second := e.Collection().At(1).LocalID

	e.HandleMouse(clickAt(e.amtColX()+1, 1), 0)

	if e.ActiveRow() != second || e.ActiveField() != domain.FieldAmount {
		t.Errorf("focus = row %d field %v, want second row amount", e.ActiveRow(), e.ActiveField())
	}
}

func TestFieldAtX(t *testing.T) {
	e := newTestEditor(t, 1)

	if got := e.fieldAtX(0); got != domain.FieldQuantity {
		t.Errorf("fieldAtX(0) = %v, want quantity", got)
	}
	if got := e.fieldAtX(descColX()); got != domain.FieldDescription {
		t.Errorf("fieldAtX(desc) = %v, want description", got)
	}
	if got := e.fieldAtX(e.amtColX() + 2); got != domain.FieldAmount {
		t.Errorf("fieldAtX(amt) = %v, want amount", got)
	}
}
