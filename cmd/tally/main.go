package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tally/internal/catalog"
	"tally/internal/config"
	"tally/internal/debug"
	"tally/internal/document"
	"tally/internal/ui"
	"tally/internal/ui/theme"
)

const defaultDocumentPath = "quote.yaml"

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	catalogPathDefault := config.GetString(config.KeyCatalogPath)
	documentPathDefault := config.GetString(config.KeyDocumentPath)
	themeDefault := config.GetString(config.KeyTheme)
	debugDefault := config.GetBool(config.KeyDebug)

	versionFlag := flag.Bool("version", false, "Print version information and exit")
	catalogPathFlag := flag.String("catalog-path", catalogPathDefault, "Path to the template catalog database (empty runs without persistence)")
	documentFlag := flag.String("document", documentPathDefault, "Quote or bill file to edit")
	kindFlag := flag.String("kind", string(document.KindQuote), "Document kind when creating a new file (quote or bill)")
	themeFlag := flag.String("theme", themeDefault, "Color theme ("+strings.Join(theme.Available(), ", ")+")")
	debugFlag := flag.Bool("debug", debugDefault, "Write a debug log to ~/.tally/debug.log")
	flag.Parse()

	if *versionFlag {
		printVersion()
		os.Exit(0)
	}

	visited := map[string]struct{}{}
	flag.CommandLine.Visit(func(f *flag.Flag) {
		visited[f.Name] = struct{}{}
	})

	runtime := computeRuntimeOptions(runtimeFlags{
		catalogPath:  catalogPathFlag,
		documentPath: documentFlag,
		kind:         kindFlag,
		theme:        themeFlag,
		debugLog:     debugFlag,
	}, visited)

	if runtime.debugLog {
		if err := debug.Init(true); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: debug log unavailable: %v\n", err)
		}
		defer debug.Close()
	}

	if runtime.theme != "" && !theme.SetTheme(runtime.theme) {
		fmt.Fprintf(os.Stderr, "Warning: unknown theme %q, using %s\n", runtime.theme, theme.CurrentName())
	}

	cat, closeStore := buildCatalog(runtime.catalogPath)
	defer closeStore()

	doc, err := document.Load(runtime.documentPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if runtime.kindExplicit {
		doc.Kind = document.Kind(runtime.kind)
	}

	app := ui.NewApp(ui.Config{
		Doc:     doc,
		DocPath: runtime.documentPath,
		Catalog: cat,
		Version: Version,
	})

	prog := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := prog.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildCatalog opens the sqlite-backed catalog, falling back to an empty
// in-memory one when no path is configured or the database cannot be opened.
// The editor works either way; suggestions just start empty.
func buildCatalog(path string) (*catalog.Catalog, func()) {
	if strings.TrimSpace(path) == "" {
		return catalog.New(catalog.NewMemStore()), func() {}
	}
	store, err := catalog.NewSQLiteStore(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: catalog unavailable (%v), continuing without suggestions\n", err)
		debug.Logf("main: open catalog %s failed: %v", path, err)
		return catalog.New(catalog.NewMemStore()), func() {}
	}
	return catalog.New(store), func() {
		if err := store.Close(); err != nil {
			debug.Logf("main: close catalog: %v", err)
		}
	}
}

type runtimeFlags struct {
	catalogPath  *string
	documentPath *string
	kind         *string
	theme        *string
	debugLog     *bool
}

type runtimeOptions struct {
	catalogPath  string
	documentPath string
	kind         string
	kindExplicit bool
	theme        string
	debugLog     bool
}

func computeRuntimeOptions(flags runtimeFlags, visited map[string]struct{}) runtimeOptions {
	catalogPath := strings.TrimSpace(config.GetString(config.KeyCatalogPath))
	if flagWasExplicitlySet("catalog-path", visited) {
		catalogPath = strings.TrimSpace(*flags.catalogPath)
	}

	documentPath := strings.TrimSpace(config.GetString(config.KeyDocumentPath))
	if flagWasExplicitlySet("document", visited) {
		documentPath = strings.TrimSpace(*flags.documentPath)
	}
	if documentPath == "" {
		documentPath = defaultDocumentPath
	}

	kind := string(document.KindQuote)
	kindExplicit := flagWasExplicitlySet("kind", visited)
	if kindExplicit {
		kind = sanitizeKind(*flags.kind)
	}

	themeName := strings.TrimSpace(config.GetString(config.KeyTheme))
	if flagWasExplicitlySet("theme", visited) {
		themeName = strings.TrimSpace(*flags.theme)
	}

	debugLog := config.GetBool(config.KeyDebug)
	if flagWasExplicitlySet("debug", visited) {
		debugLog = *flags.debugLog
	}

	return runtimeOptions{
		catalogPath:  catalogPath,
		documentPath: documentPath,
		kind:         kind,
		kindExplicit: kindExplicit,
		theme:        themeName,
		debugLog:     debugLog,
	}
}

func flagWasExplicitlySet(name string, visited map[string]struct{}) bool {
	if _, ok := visited[name]; ok {
		return true
	}
	f := flag.CommandLine.Lookup(name)
	if f == nil {
		return false
	}
	return f.Value.String() != f.DefValue
}

func sanitizeKind(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(document.KindBill):
		return string(document.KindBill)
	default:
		return string(document.KindQuote)
	}
}
