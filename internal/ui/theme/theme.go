// Package theme provides a semantic color system for the tally UI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the semantic colors used by the editor.
// All methods return AdaptiveColor for automatic light/dark terminal support.
type Theme interface {
	// Base colors
	Primary() lipgloss.AdaptiveColor   // Main accent (header, focused borders)
	Secondary() lipgloss.AdaptiveColor // Secondary accent (dropdown highlight)
	Accent() lipgloss.AdaptiveColor    // Totals, position numbers

	// Status colors
	Error() lipgloss.AdaptiveColor
	Warning() lipgloss.AdaptiveColor
	Success() lipgloss.AdaptiveColor

	// Text colors
	Text() lipgloss.AdaptiveColor
	TextMuted() lipgloss.AdaptiveColor

	// Background colors
	Background() lipgloss.AdaptiveColor
	BackgroundSecondary() lipgloss.AdaptiveColor // Dropdown, overlays

	// Border colors
	BorderNormal() lipgloss.AdaptiveColor
	BorderFocused() lipgloss.AdaptiveColor
	BorderDim() lipgloss.AdaptiveColor
}
