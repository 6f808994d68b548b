package theme

import "github.com/charmbracelet/lipgloss"

// NordTheme implements the Nord color scheme.
type NordTheme struct{}

func (t NordTheme) Primary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#88c0d0", Light: "#5e81ac"}
}

func (t NordTheme) Secondary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#81a1c1", Light: "#81a1c1"}
}

func (t NordTheme) Accent() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#8fbcbb", Light: "#8fbcbb"}
}

func (t NordTheme) Error() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#bf616a", Light: "#bf616a"}
}

func (t NordTheme) Warning() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#d08770", Light: "#d08770"}
}

func (t NordTheme) Success() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#a3be8c", Light: "#a3be8c"}
}

func (t NordTheme) Text() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#eceff4", Light: "#2e3440"}
}

func (t NordTheme) TextMuted() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#8b95a7", Light: "#3b4252"}
}

func (t NordTheme) Background() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#2e3440", Light: "#eceff4"}
}

func (t NordTheme) BackgroundSecondary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#3b4252", Light: "#e5e9f0"}
}

func (t NordTheme) BorderNormal() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#434c5e", Light: "#4c566a"}
}

func (t NordTheme) BorderFocused() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#4c566a", Light: "#434c5e"}
}

func (t NordTheme) BorderDim() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#434c5e", Light: "#d8dee9"}
}

func init() {
	RegisterTheme("nord", NordTheme{})
}
