// Package document is the hosting side of the editor: it loads and saves the
// YAML document the line items belong to and computes the running total shown
// in the header. Pricing beyond a plain quantity-times-amount sum is out of
// scope for the editor.
package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"tally/internal/domain"
	apperrors "tally/internal/errors"
)

// Kind distinguishes the two document workflows sharing the editor.
type Kind string

const (
	KindQuote Kind = "quote"
	KindBill  Kind = "bill"
)

// Entry is one persisted line item. Quantity and amount are stored as the
// editing text, so a half-typed document round-trips unchanged.
type Entry struct {
	Description string `yaml:"description"`
	Quantity    string `yaml:"quantity,omitempty"`
	Amount      string `yaml:"amount,omitempty"`
}

// Document is the persisted shape the host owns. The editor only ever sees
// the items as a seeded collection; saving happens here, on the host side.
type Document struct {
	Kind  Kind    `yaml:"kind"`
	Title string  `yaml:"title,omitempty"`
	Items []Entry `yaml:"items"`
}

// Load reads a document from path. A missing file yields a fresh quote with
// one empty row, matching how the editor starts a new document.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return New(KindQuote), nil
	}
	if err != nil {
		return Document{}, fmt.Errorf("read document %s: %w", path, err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, apperrors.New(apperrors.CodeDocumentInvalid, fmt.Sprintf("parse document %s", path), err)
	}
	if doc.Kind == "" {
		doc.Kind = KindQuote
	}
	if len(doc.Items) == 0 {
		doc.Items = []Entry{{}}
	}
	return doc, nil
}

// New returns a fresh document of the given kind with one empty row.
func New(kind Kind) Document {
	return Document{Kind: kind, Items: []Entry{{}}}
}

// Save writes the document to path.
func (d Document) Save(path string) error {
	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write document %s: %w", path, err)
	}
	return nil
}

// SeedItems converts the persisted entries into line items for seeding the
// editor collection (local ids are assigned by the collection).
func (d Document) SeedItems() []domain.LineItem {
	out := make([]domain.LineItem, len(d.Items))
	for i, e := range d.Items {
		out[i] = domain.LineItem{
			Description: e.Description,
			Quantity:    e.Quantity,
			Amount:      e.Amount,
		}
	}
	return out
}

// Snapshot captures the current editor sequence back into persistable form.
func Snapshot(kind Kind, title string, items []domain.LineItem) Document {
	doc := Document{Kind: kind, Title: title}
	for _, it := range items {
		doc.Items = append(doc.Items, Entry{
			Description: it.Description,
			Quantity:    it.Quantity,
			Amount:      it.Amount,
		})
	}
	return doc
}

// Total sums quantity times amount over the rows. Rows whose numbers do not
// parse contribute nothing; the editor never rejects or reformats them.
func Total(items []domain.LineItem) float64 {
	var total float64
	for _, it := range items {
		qty, err := strconv.ParseFloat(strings.TrimSpace(it.Quantity), 64)
		if err != nil {
			continue
		}
		amt, err := strconv.ParseFloat(strings.TrimSpace(it.Amount), 64)
		if err != nil {
			continue
		}
		total += qty * amt
	}
	return total
}

// Summary renders the rows as plain text for the clipboard.
func Summary(kind Kind, items []domain.LineItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", strings.ToUpper(string(kind)))
	for _, it := range items {
		if it.IsEmpty() {
			continue
		}
		fmt.Fprintf(&b, "%d. %s", it.Position+1, it.Description)
		if strings.TrimSpace(it.Quantity) != "" {
			fmt.Fprintf(&b, "  x%s", strings.TrimSpace(it.Quantity))
		}
		if strings.TrimSpace(it.Amount) != "" {
			fmt.Fprintf(&b, "  @ %s", strings.TrimSpace(it.Amount))
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Total: %s\n", strconv.FormatFloat(Total(items), 'f', 2, 64))
	return b.String()
}
