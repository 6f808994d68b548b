package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tally/internal/catalog"
	"tally/internal/domain"
	"tally/internal/items"
)

func testTemplates() []domain.Template {
	return []domain.Template{
		{Description: "Window Cleaning", DefaultQuantity: domain.Float(1), DefaultAmount: domain.Float(40)},
		{Description: "Window Install", DefaultQuantity: domain.Float(1), DefaultAmount: domain.Float(250)},
		{Description: "Gutter Repair"},
	}
}

func newTestEditor(t *testing.T, rows int, templates ...domain.Template) *Editor {
	t.Helper()
	cat := catalog.New(catalog.NewMemStore(templates...))
	cat.Load(context.Background())
	coll := items.NewCollection(items.NewAllocator())
	seed := make([]domain.LineItem, rows)
	coll.Seed(seed)
	e := NewEditor(coll, cat)
	e.Init()
	return e
}

func typeText(e *Editor, s string) {
	for _, r := range s {
		e.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(e *Editor, kt tea.KeyType) {
	e.HandleKey(tea.KeyMsg{Type: kt})
}

func TestTypingOpensDropdown(t *testing.T) {
	e := newTestEditor(t, 1, testTemplates()...)
	row := e.ActiveRow()

	typeText(e, "wind")

	if !e.Dropdown().IsOpenFor(row) {
		t.Fatal("expected dropdown open for the active row")
	}
	cands := e.Dropdown().Candidates()
	if len(cands) != 2 {
		t.Fatalf("expected 2 candidates for 'wind', got %d", len(cands))
	}
	if cands[0].Description != "Window Cleaning" || cands[1].Description != "Window Install" {
		t.Errorf("candidates out of catalog order: %v", cands)
	}
	if got := e.Dropdown().Highlight(); got != -1 {
		t.Errorf("expected no initial highlight, got %d", got)
	}
}

func TestFilterIsCaseInsensitiveSubstring(t *testing.T) {
	e := newTestEditor(t, 1, testTemplates()...)

	typeText(e, "GUTT")

	cands := e.Dropdown().Candidates()
	if len(cands) != 1 || cands[0].Description != "Gutter Repair" {
		t.Fatalf("expected Gutter Repair only, got %v", cands)
	}
}

func TestArrowNavigationAndAccept(t *testing.T) {
	e := newTestEditor(t, 1, testTemplates()...)
	row := e.ActiveRow()

	typeText(e, "win")
	press(e, tea.KeyDown)
	press(e, tea.KeyDown)
	if got := e.Dropdown().Highlight(); got != 1 {
		t.Fatalf("expected highlight 1 after two downs, got %d", got)
	}

	press(e, tea.KeyEnter)

	it, ok := e.Collection().Get(row)
	if !ok {
		t.Fatal("row disappeared")
	}
	if it.Description != "Window Install" {
		t.Errorf("description = %q, want Window Install", it.Description)
	}
	if it.Quantity != "1" {
		t.Errorf("quantity = %q, want 1", it.Quantity)
	}
	if it.Amount != "250" {
		t.Errorf("amount = %q, want 250", it.Amount)
	}
	if e.Dropdown().IsOpen() {
		t.Error("expected dropdown closed after accept")
	}
	if e.ActiveField() != domain.FieldAmount {
		t.Errorf("expected focus on amount after accept, got %v", e.ActiveField())
	}
}

func TestAcceptTemplateWithoutDefaults(t *testing.T) {
	e := newTestEditor(t, 1, testTemplates()...)
	row := e.ActiveRow()

	typeText(e, "gutter")
	press(e, tea.KeyDown)
	press(e, tea.KeyEnter)

	it, _ := e.Collection().Get(row)
	if it.Description != "Gutter Repair" {
		t.Fatalf("description = %q", it.Description)
	}
	if it.Quantity != "" || it.Amount != "" {
		t.Errorf("expected empty quantity/amount for template without defaults, got %q %q", it.Quantity, it.Amount)
	}
}

func TestEnterWithoutHighlightDoesNothing(t *testing.T) {
	e := newTestEditor(t, 1, testTemplates()...)
	row := e.ActiveRow()

	typeText(e, "win")
	press(e, tea.KeyEnter)

	it, _ := e.Collection().Get(row)
	if it.Description != "win" {
		t.Errorf("description = %q, want the typed text untouched", it.Description)
	}
	if !e.Dropdown().IsOpenFor(row) {
		t.Error("expected dropdown to stay open")
	}
}

func TestHighlightResetsWhenQueryChanges(t *testing.T) {
	e := newTestEditor(t, 1, testTemplates()...)

	typeText(e, "win")
	press(e, tea.KeyDown)
	if e.Dropdown().Highlight() != 0 {
		t.Fatalf("highlight = %d, want 0", e.Dropdown().Highlight())
	}

	typeText(e, "d")
	if e.Dropdown().Highlight() != -1 {
		t.Errorf("highlight = %d after query change, want -1", e.Dropdown().Highlight())
	}
}

func TestEscapeClosesDropdown(t *testing.T) {
	e := newTestEditor(t, 1, testTemplates()...)

	typeText(e, "win")
	press(e, tea.KeyEscape)

	if e.Dropdown().IsOpen() {
		t.Error("expected dropdown closed after escape")
	}
}

func TestTabFromDescriptionMovesToAmount(t *testing.T) {
	e := newTestEditor(t, 1, testTemplates()...)
	row := e.ActiveRow()

	typeText(e, "win")
	press(e, tea.KeyTab)

	if e.Dropdown().IsOpen() {
		t.Error("expected dropdown closed on tab")
	}
	if e.ActiveRow() != row || e.ActiveField() != domain.FieldAmount {
		t.Errorf("focus = row %d field %v, want row %d amount", e.ActiveRow(), e.ActiveField(), row)
	}
}

func TestTabFromLastAmountAppendsRow(t *testing.T) {
	e := newTestEditor(t, 1)
	row := e.ActiveRow()

	press(e, tea.KeyTab) // description -> amount
	if e.ActiveField() != domain.FieldAmount {
		t.Fatalf("setup: expected amount focus, got %v", e.ActiveField())
	}

	press(e, tea.KeyTab)

	if e.Collection().Len() != 2 {
		t.Fatalf("expected 2 rows after grow-on-tab, got %d", e.Collection().Len())
	}
	if e.ActiveRow() == row {
		t.Error("expected focus on the new row")
	}
	if e.ActiveField() != domain.FieldDescription {
		t.Errorf("expected description focus on new row, got %v", e.ActiveField())
	}
}

func TestTabFromMiddleAmountDoesNotAppend(t *testing.T) {
	e := newTestEditor(t, 2)
	first := e.Collection().At(0).LocalID
	second := e.Collection().At(1).LocalID

	e.focus.Request(first, domain.FieldAmount)
	e.applyPendingFocus()

	press(e, tea.KeyTab)

	if e.Collection().Len() != 2 {
		t.Fatalf("expected no append from a non-last row, got %d rows", e.Collection().Len())
	}
	if e.ActiveRow() != second || e.ActiveField() != domain.FieldQuantity {
		t.Errorf("focus = row %d field %v, want next row quantity", e.ActiveRow(), e.ActiveField())
	}
}

func TestBackspaceOnEmptyRowRemovesIt(t *testing.T) {
	e := newTestEditor(t, 2)
	first := e.Collection().At(0).LocalID
	second := e.Collection().At(1).LocalID

	e.focus.Request(second, domain.FieldDescription)
	e.applyPendingFocus()

	press(e, tea.KeyBackspace)

	if e.Collection().Len() != 1 {
		t.Fatalf("expected 1 row after removal, got %d", e.Collection().Len())
	}
	if _, ok := e.Collection().Get(second); ok {
		t.Error("expected the empty row gone")
	}
	if e.ActiveRow() != first || e.ActiveField() != domain.FieldAmount {
		t.Errorf("focus = row %d field %v, want previous row amount", e.ActiveRow(), e.ActiveField())
	}
}

func TestBackspaceKeepsLastRow(t *testing.T) {
	e := newTestEditor(t, 1)

	press(e, tea.KeyBackspace)

	if e.Collection().Len() != 1 {
		t.Errorf("expected the only row kept, got %d rows", e.Collection().Len())
	}
}

func TestBackspaceOnNonEmptyRowEdits(t *testing.T) {
	e := newTestEditor(t, 2)
	row := e.ActiveRow()

	typeText(e, "ab")
	press(e, tea.KeyBackspace)

	if e.Collection().Len() != 2 {
		t.Fatalf("expected no row removal, got %d rows", e.Collection().Len())
	}
	it, _ := e.Collection().Get(row)
	if it.Description != "a" {
		t.Errorf("description = %q, want a", it.Description)
	}
}

func TestRemovedRowIdNeverReused(t *testing.T) {
	e := newTestEditor(t, 2)
	second := e.Collection().At(1).LocalID

	e.focus.Request(second, domain.FieldDescription)
	e.applyPendingFocus()
	press(e, tea.KeyBackspace)

	id := e.AddRow()
	if id == second {
		t.Errorf("local id %d reused after removal", id)
	}
}

func TestRefocusWithTextReopensDropdown(t *testing.T) {
	e := newTestEditor(t, 1, testTemplates()...)
	row := e.ActiveRow()

	typeText(e, "win")
	press(e, tea.KeyTab) // to amount, closes dropdown
	press(e, tea.KeyShiftTab)

	if !e.Dropdown().IsOpenFor(row) {
		t.Error("expected dropdown reopened on refocusing a description with text")
	}
	if e.Dropdown().Highlight() != -1 {
		t.Errorf("highlight = %d, want -1 on reopen", e.Dropdown().Highlight())
	}
}

func TestMoveActiveRowKeepsPositionsSequential(t *testing.T) {
	e := newTestEditor(t, 3)
	first := e.Collection().At(0).LocalID

	e.MoveActiveRow(1)

	if got := e.Collection().IndexOf(first); got != 1 {
		t.Fatalf("expected active row at index 1 after move down, got %d", got)
	}
	for i, it := range e.Collection().Items() {
		if it.Position != i {
			t.Errorf("position[%d] = %d", i, it.Position)
		}
	}
}
