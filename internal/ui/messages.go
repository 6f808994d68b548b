package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tally/internal/catalog"
	"tally/internal/domain"
)

type catalogLoadedMsg struct {
	count int
}

// loadCatalogCmd loads the template catalog in the background. Load never
// fails outward, so the message only carries the resulting count.
func loadCatalogCmd(cat *catalog.Catalog) tea.Cmd {
	return func() tea.Msg {
		cat.Load(context.Background())
		return catalogLoadedMsg{count: cat.Len()}
	}
}

type templateSavedMsg struct {
	template domain.Template
	err      error
}

// saveTemplateCmd persists the given row as a catalog template. The editor
// never waits on this; failure surfaces only in the debug log.
func saveTemplateCmd(cat *catalog.Catalog, desc, qtyText, amtText string) tea.Cmd {
	return func() tea.Msg {
		tpl, err := cat.CreateFromRow(context.Background(), desc, qtyText, amtText)
		return templateSavedMsg{template: tpl, err: err}
	}
}

type copyToastTickMsg struct{}

func scheduleCopyToastTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return copyToastTickMsg{}
	})
}

type templateToastTickMsg struct{}

func scheduleTemplateToastTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return templateToastTickMsg{}
	})
}
