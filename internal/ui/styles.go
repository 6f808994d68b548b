package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"tally/internal/ui/theme"
)

// Styles are functions so a theme switch takes effect on the next render.

func styleAppHeader() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Text()).
		Background(theme.Current().Primary()).
		Bold(true).
		Padding(0, 1)
}

func styleHeaderTotal() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Accent()).
		Bold(true)
}

func stylePosition() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().TextMuted())
}

func styleFieldText() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Text())
}

func styleFieldFocused() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Secondary()).
		Bold(true)
}

func styleDropdown() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().BorderFocused()).
		Background(theme.Current().BackgroundSecondary())
}

func styleDropdownOption() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Text()).
		PaddingLeft(2)
}

func styleDropdownHighlight() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Secondary()).
		Bold(true).
		PaddingLeft(2)
}

func styleDropdownHint() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().TextMuted())
}

func styleFooterKey() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(theme.Current().Primary()).
		Foreground(theme.Current().Text()).
		Bold(true)
}

func styleFooterDesc() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().TextMuted())
}

func styleSuccessToast() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().Success()).
		Foreground(theme.Current().Text()).
		Padding(0, 1)
}

func styleErrorToast() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().Error()).
		Foreground(theme.Current().Text()).
		Padding(0, 1)
}

func styleHelpOverlay() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().Primary()).
		Padding(1, 2)
}

func buildMarkdownRenderer(format string, width int) func(string) string {
	fallback := func(input string) string {
		return wordwrap.String(input, width)
	}

	style := strings.ToLower(strings.TrimSpace(format))
	if style == "" || style == "rich" || style == "dark" {
		style = "dark"
	}
	if style == "plain" {
		return fallback
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fallback
	}
	return func(input string) string {
		out, err := renderer.Render(input)
		if err != nil {
			return fallback(input)
		}
		return strings.TrimSpace(out)
	}
}
