package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// helpMarkdown builds the help text as markdown, rendered through glamour so
// the overlay picks up the terminal-appropriate styling.
func helpMarkdown(keys KeyMap) string {
	var b strings.Builder
	b.WriteString("# Tally\n\n")
	b.WriteString("## Editing\n\n")
	writeBinding(&b, "Tab / Shift+Tab", "Next / previous field")
	writeBinding(&b, "↑ / ↓", "Move suggestion highlight")
	writeBinding(&b, "Enter", "Accept highlighted suggestion")
	writeBinding(&b, "Esc", "Dismiss suggestions")
	writeBinding(&b, "Backspace", "On an empty row, remove it")
	b.WriteString("\n## Rows\n\n")
	for _, kb := range []key.Binding{keys.AddRow, keys.MoveRowUp, keys.SaveTemplate} {
		writeBinding(&b, kb.Help().Key, kb.Help().Desc)
	}
	b.WriteString("\n## Document\n\n")
	for _, kb := range []key.Binding{keys.Copy, keys.Help, keys.Quit} {
		writeBinding(&b, kb.Help().Key, kb.Help().Desc)
	}
	return b.String()
}

func writeBinding(b *strings.Builder, keyText, desc string) {
	fmt.Fprintf(b, "- `%s` %s\n", keyText, desc)
}

// renderHelpOverlay renders the bordered help modal at the given width.
func renderHelpOverlay(keys KeyMap, width int) string {
	contentWidth := width - 10
	if contentWidth > 60 {
		contentWidth = 60
	}
	if contentWidth < 30 {
		contentWidth = 30
	}
	render := buildMarkdownRenderer("dark", contentWidth)
	return styleHelpOverlay().Render(render(helpMarkdown(keys)))
}
