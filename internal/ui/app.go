package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tally/internal/catalog"
	"tally/internal/debug"
	"tally/internal/document"
	"tally/internal/items"
)

// rowsOriginY is the y coordinate of the first editor row in the frame:
// header line, then one blank line.
const rowsOriginY = 2

const (
	copyToastDuration     = 3 * time.Second
	templateToastDuration = 3 * time.Second
)

// Config carries everything the App needs from main.
type Config struct {
	Doc     document.Document
	DocPath string
	Catalog *catalog.Catalog
	Version string
}

// App is the Bubble Tea model hosting the line-item editor: it owns the
// document around the collection, routes keys and mouse events, and paints
// the frame with the dropdown and overlays on top.
type App struct {
	width  int
	height int
	ready  bool

	keys   KeyMap
	editor *Editor
	cat    *catalog.Catalog

	docKind  document.Kind
	docTitle string
	docPath  string
	version  string

	showHelp bool

	showCopyToast  bool
	copyToastStart time.Time

	showTemplateToast  bool
	templateToastStart time.Time
	templateToastDesc  string
}

// NewApp seeds the collection from the document and builds the editor.
func NewApp(cfg Config) *App {
	collection := items.NewCollection(items.NewAllocator())
	collection.Seed(cfg.Doc.SeedItems())
	return &App{
		keys:     DefaultKeyMap(),
		editor:   NewEditor(collection, cfg.Catalog),
		cat:      cfg.Catalog,
		docKind:  cfg.Doc.Kind,
		docTitle: cfg.Doc.Title,
		docPath:  cfg.DocPath,
		version:  cfg.Version,
	}
}

func (m *App) Init() tea.Cmd {
	return tea.Batch(m.editor.Init(), loadCatalogCmd(m.cat))
}

// Editor exposes the editing component, mainly for tests.
func (m *App) Editor() *Editor {
	return m.editor
}

func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.editor.SetDescWidth(m.width - descColX() - amtColWidth - 2*colGap)
		return m, nil

	case catalogLoadedMsg:
		debug.Logf("app: catalog ready with %d templates", msg.count)
		m.editor.ResyncDropdown()
		return m, nil

	case templateSavedMsg:
		if msg.err != nil {
			// Already logged by the catalog; the editor stays silent.
			return m, nil
		}
		m.showTemplateToast = true
		m.templateToastStart = time.Now()
		m.templateToastDesc = msg.template.Description
		m.editor.ResyncDropdown()
		return m, scheduleTemplateToastTick()

	case copyToastTickMsg:
		if time.Since(m.copyToastStart) >= copyToastDuration {
			m.showCopyToast = false
			return m, nil
		}
		return m, scheduleCopyToastTick()

	case templateToastTickMsg:
		if time.Since(m.templateToastStart) >= templateToastDuration {
			m.showTemplateToast = false
			return m, nil
		}
		return m, scheduleTemplateToastTick()

	case tea.MouseMsg:
		if m.showHelp {
			return m, nil
		}
		return m, m.editor.HandleMouse(msg, rowsOriginY)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.save()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		summary := document.Summary(m.docKind, m.editor.Collection().Items())
		if err := clipboard.WriteAll(summary); err != nil {
			debug.Logf("app: clipboard write failed: %v", err)
			return m, nil
		}
		m.showCopyToast = true
		m.copyToastStart = time.Now()
		return m, scheduleCopyToastTick()

	case key.Matches(msg, m.keys.AddRow):
		m.editor.AddRow()
		return m, m.editor.applyPendingFocus()

	case key.Matches(msg, m.keys.MoveRowUp):
		m.editor.MoveActiveRow(-1)
		return m, nil

	case key.Matches(msg, m.keys.MoveRowDown):
		m.editor.MoveActiveRow(1)
		return m, nil

	case key.Matches(msg, m.keys.SaveTemplate):
		it, ok := m.editor.ActiveItem()
		if !ok || m.cat.IsExactMatch(it.Description) {
			return m, nil
		}
		return m, saveTemplateCmd(m.cat, it.Description, it.Quantity, it.Amount)
	}

	return m, m.editor.HandleKey(msg)
}

// save snapshots the collection back into the document file. Quit proceeds
// either way; a failed save only reaches the debug log.
func (m *App) save() {
	doc := document.Snapshot(m.docKind, m.docTitle, m.editor.Collection().Items())
	if err := doc.Save(m.docPath); err != nil {
		debug.Logf("app: save %s failed: %v", m.docPath, err)
	}
}

func (m *App) View() string {
	if !m.ready {
		return "Initializing..."
	}

	frame := m.renderHeader() + "\n\n" + m.editor.View()

	canvas := NewCanvas(m.width, m.height)
	canvas.DrawStringAt(0, 0, frame)
	canvas.DrawStringAt(0, m.height-1, m.renderFooter())

	if content, x, y, ok := m.editor.DropdownOverlay(); ok {
		canvas.DrawBlockAt(x, rowsOriginY+y, content)
	}
	if toast := m.renderTemplateToast(); toast != "" {
		canvas.bottomRightOverlay(toast, 1)
	} else if toast := m.renderCopyToast(); toast != "" {
		canvas.bottomRightOverlay(toast, 1)
	}
	if m.showHelp {
		canvas.centerOverlay(renderHelpOverlay(m.keys, m.width), 1, 1)
	}
	return canvas.Render()
}

func (m *App) renderHeader() string {
	title := strings.ToUpper(string(m.docKind))
	if m.docTitle != "" {
		title += " · " + m.docTitle
	}
	if m.version != "" {
		title += " · tally v" + m.version
	}
	left := styleAppHeader().Render(title)

	total := styleHeaderTotal().Render(fmt.Sprintf("Total: %.2f", document.Total(m.editor.Collection().Items())))
	padding := m.width - lipgloss.Width(left) - lipgloss.Width(total) - 1
	if padding < 1 {
		padding = 1
	}
	return left + strings.Repeat(" ", padding) + total
}

func (m *App) renderFooter() string {
	hints := []key.Binding{
		m.keys.AddRow,
		m.keys.MoveRowUp,
		m.keys.SaveTemplate,
		m.keys.Copy,
		m.keys.Help,
		m.keys.Quit,
	}
	parts := make([]string, 0, len(hints))
	for _, kb := range hints {
		h := kb.Help()
		parts = append(parts, styleFooterKey().Render(" "+h.Key+" ")+" "+styleFooterDesc().Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}

func (m *App) renderCopyToast() string {
	if !m.showCopyToast {
		return ""
	}
	return styleSuccessToast().Render("Copied summary to clipboard.")
}

func (m *App) renderTemplateToast() string {
	if !m.showTemplateToast || m.templateToastDesc == "" {
		return ""
	}
	return styleSuccessToast().Render(fmt.Sprintf("✓ Template saved: %s", m.templateToastDesc))
}
