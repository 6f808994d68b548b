package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tally/internal/domain"
)

// HandleKey interprets one keydown for the focused field. Navigation between
// suggestion entries, acceptance, dropdown dismissal, the backspace
// empty-row rule, and the grow-on-tab rule all live here; everything else
// passes through to the underlying textinput.
func (e *Editor) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if e.activeRow == noRow {
		return nil
	}
	var cmd tea.Cmd
	switch e.activeField {
	case domain.FieldQuantity:
		cmd = e.handleQuantityKey(msg)
	case domain.FieldAmount:
		cmd = e.handleAmountKey(msg)
	default:
		cmd = e.handleDescriptionKey(msg)
	}
	return tea.Batch(cmd, e.applyPendingFocus())
}

func (e *Editor) handleDescriptionKey(msg tea.KeyMsg) tea.Cmd {
	row := e.activeRow
	switch msg.Type {
	case tea.KeyDown:
		if e.dropdown.IsOpenFor(row) && len(e.dropdown.Candidates()) > 0 {
			e.dropdown.MoveHighlight(1)
		}
		return nil

	case tea.KeyUp:
		if e.dropdown.IsOpenFor(row) && len(e.dropdown.Candidates()) > 0 {
			e.dropdown.MoveHighlight(-1)
		}
		return nil

	case tea.KeyEnter:
		// Accept only with a real highlight; Enter never submits anything.
		if e.dropdown.IsOpenFor(row) {
			if tpl, ok := e.dropdown.Highlighted(); ok {
				e.acceptTemplate(tpl)
			}
		}
		return nil

	case tea.KeyEscape:
		e.dropdown.Close()
		return nil

	case tea.KeyTab:
		e.dropdown.Close()
		e.focus.Request(row, domain.FieldAmount)
		return nil

	case tea.KeyShiftTab:
		e.dropdown.Close()
		e.focus.Request(row, domain.FieldQuantity)
		return nil

	case tea.KeyBackspace:
		if it, ok := e.collection.Get(row); ok && it.IsEmpty() && e.collection.Len() > 1 {
			idx := e.collection.IndexOf(row)
			e.RemoveRow(row)
			if idx > 0 {
				e.focus.Request(e.collection.At(idx-1).LocalID, domain.FieldAmount)
			} else {
				// No previous row; keep the keyboard somewhere useful.
				e.focus.Request(e.collection.At(0).LocalID, domain.FieldDescription)
			}
			return nil
		}
	}
	return e.updateActiveInput(msg)
}

func (e *Editor) handleQuantityKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyTab:
		e.focus.Request(e.activeRow, domain.FieldDescription)
		return nil
	case tea.KeyShiftTab:
		if idx := e.collection.IndexOf(e.activeRow); idx > 0 {
			e.focus.Request(e.collection.At(idx-1).LocalID, domain.FieldAmount)
		}
		return nil
	case tea.KeyEnter:
		return nil
	}
	return e.updateActiveInput(msg)
}

func (e *Editor) handleAmountKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyTab:
		idx := e.collection.IndexOf(e.activeRow)
		if idx == e.collection.Len()-1 {
			// Tabbing out of the last amount field always grows the list.
			e.AddRow()
			return nil
		}
		e.focus.Request(e.collection.At(idx+1).LocalID, domain.FieldQuantity)
		return nil
	case tea.KeyShiftTab:
		e.focus.Request(e.activeRow, domain.FieldDescription)
		return nil
	case tea.KeyEnter:
		return nil
	}
	return e.updateActiveInput(msg)
}
