package theme

import "github.com/charmbracelet/lipgloss"

// DraculaTheme implements the Dracula color scheme.
type DraculaTheme struct{}

func (t DraculaTheme) Primary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#bd93f9", Light: "#7c3aed"}
}

func (t DraculaTheme) Secondary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#ff79c6", Light: "#c026d3"}
}

func (t DraculaTheme) Accent() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#ffb86c", Light: "#b45309"}
}

func (t DraculaTheme) Error() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#ff5555", Light: "#dc2626"}
}

func (t DraculaTheme) Warning() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#f1fa8c", Light: "#a16207"}
}

func (t DraculaTheme) Success() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#50fa7b", Light: "#16a34a"}
}

func (t DraculaTheme) Text() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#f8f8f2", Light: "#282a36"}
}

func (t DraculaTheme) TextMuted() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#6272a4", Light: "#64748b"}
}

func (t DraculaTheme) Background() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#282a36", Light: "#f8f8f2"}
}

func (t DraculaTheme) BackgroundSecondary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#44475a", Light: "#e2e8f0"}
}

func (t DraculaTheme) BorderNormal() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#44475a", Light: "#cbd5e1"}
}

func (t DraculaTheme) BorderFocused() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#bd93f9", Light: "#7c3aed"}
}

func (t DraculaTheme) BorderDim() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#343746", Light: "#e2e8f0"}
}

func init() {
	RegisterTheme("dracula", DraculaTheme{})
}
