package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the row grid: position number, quantity, description, amount.
// The dropdown is not part of the grid; it is painted over it by the host via
// DropdownOverlay so it can cover the rows beneath.
func (e *Editor) View() string {
	items := e.collection.Items()
	lines := make([]string, 0, len(items))
	for _, it := range items {
		rf, ok := e.focus.Fields(it.LocalID)
		if !ok {
			continue
		}
		pos := stylePosition().Render(fmt.Sprintf("%*d.", posColWidth-1, it.Position+1))
		qty := lipgloss.NewStyle().Width(qtyColWidth).Render(rf.qty.View())
		desc := lipgloss.NewStyle().Width(e.descWidth).Render(rf.desc.View())
		amt := lipgloss.NewStyle().Width(amtColWidth).Render(rf.amt.View())
		gap := strings.Repeat(" ", colGap)
		line := pos + " " + qty + gap + desc + gap + amt
		if it.LocalID == e.activeRow && !e.catalog.IsExactMatch(it.Description) {
			line += gap + styleDropdownHint().Render("ctrl+s save as template")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// DropdownOverlay renders the open suggestion popup and its x,y offsets
// relative to the grid origin. The popup starts on the line directly below
// its owning row, left-aligned with the description column.
func (e *Editor) DropdownOverlay() (content string, x, y int, ok bool) {
	if !e.dropdown.IsOpen() {
		return "", 0, 0, false
	}
	idx := e.collection.IndexOf(e.dropdown.OpenRow())
	if idx < 0 {
		return "", 0, 0, false
	}
	cands := e.dropdown.Candidates()
	if len(cands) == 0 {
		return "", 0, 0, false
	}

	start := dropdownWindowStart(e.dropdown.Highlight(), len(cands))
	end := start + dropdownMaxVisible
	if end > len(cands) {
		end = len(cands)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		display := truncateLabel(cands[i].Description, e.descWidth-4)
		if i == e.dropdown.Highlight() {
			b.WriteString(styleDropdownHighlight().Width(e.descWidth).Render("▸ " + display))
		} else {
			b.WriteString(styleDropdownOption().Width(e.descWidth).Render("  " + display))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String(), descColX(), idx + 1, true
}

// truncateLabel shortens a suggestion so it fits the dropdown width.
func truncateLabel(s string, max int) string {
	if max <= 3 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
