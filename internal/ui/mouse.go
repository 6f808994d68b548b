package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tally/internal/domain"
)

// Column x-offsets within an editor row. The position number and the
// quantity column are fixed width, so only the amount offset depends on the
// current description width.
func qtyColX() int  { return posColWidth + 1 }
func descColX() int { return qtyColX() + qtyColWidth + colGap }

func (e *Editor) amtColX() int {
	return descColX() + e.descWidth + colGap
}

func (e *Editor) fieldAtX(x int) domain.Field {
	switch {
	case x < descColX():
		return domain.FieldQuantity
	case x < e.amtColX():
		return domain.FieldDescription
	}
	return domain.FieldAmount
}

// dropdownWindowStart returns the first visible candidate index so the
// highlight stays inside the window.
func dropdownWindowStart(highlight, n int) int {
	if n <= dropdownMaxVisible {
		return 0
	}
	start := highlight - dropdownMaxVisible + 1
	if start < 0 {
		start = 0
	}
	if start > n-dropdownMaxVisible {
		start = n - dropdownMaxVisible
	}
	return start
}

// HandleMouse maps pointer events onto the shared dropdown/focus state:
// hovering a candidate highlights it, clicking accepts it, clicking outside
// the owning row dismisses the popup, and clicking a row's field moves
// focus there. originY is the first row's y coordinate in the frame.
func (e *Editor) HandleMouse(msg tea.MouseMsg, originY int) tea.Cmd {
	isPress := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
	isMotion := msg.Action == tea.MouseActionMotion
	if !isPress && !isMotion {
		return nil
	}

	if e.dropdown.IsOpen() {
		row := e.dropdown.OpenRow()
		idx := e.collection.IndexOf(row)
		cands := e.dropdown.Candidates()
		if idx >= 0 && len(cands) > 0 {
			start := dropdownWindowStart(e.dropdown.Highlight(), len(cands))
			visible := len(cands) - start
			if visible > dropdownMaxVisible {
				visible = dropdownMaxVisible
			}
			x0, y0 := descColX(), originY+idx+1
			inPopup := msg.X >= x0 && msg.X < x0+e.descWidth &&
				msg.Y >= y0 && msg.Y < y0+visible
			if inPopup {
				e.dropdown.SetHighlight(start + msg.Y - y0)
				if isPress {
					if tpl, ok := e.dropdown.Highlighted(); ok {
						e.acceptTemplate(tpl)
					}
					return e.applyPendingFocus()
				}
				return nil
			}
			if isPress && msg.Y != originY+idx {
				e.dropdown.Close()
			}
		}
	}

	if isPress {
		idx := msg.Y - originY
		if idx >= 0 && idx < e.collection.Len() {
			e.focus.Request(e.collection.At(idx).LocalID, e.fieldAtX(msg.X))
			return e.applyPendingFocus()
		}
	}
	return nil
}
