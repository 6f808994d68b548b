// Package catalog holds the template catalog and the suggestion logic built
// on top of it. The catalog is read once per editor session and grows only
// through successful template creation; everything here degrades silently,
// since suggestions are a convenience, never a correctness concern.
package catalog

import (
	"context"
	"strings"
	"sync"

	"tally/internal/debug"
	"tally/internal/domain"
)

// Store is the remote template contract: one list at editor start, one
// insert per save-as-template. Implementations may fail; callers treat a
// failed List as an empty catalog and a failed Create as a no-op.
type Store interface {
	List(ctx context.Context) ([]domain.Template, error)
	Create(ctx context.Context, t domain.Template) (domain.Template, error)
}

// Catalog is the in-memory template set plus the suggestion operations.
// Template creation completes on a background command, so access is guarded;
// every other mutation happens on the UI event loop.
type Catalog struct {
	mu        sync.RWMutex
	store     Store
	templates []domain.Template
}

// New returns an empty catalog backed by store.
func New(store Store) *Catalog {
	return &Catalog{store: store}
}

// Load fetches the template set. A failure leaves the catalog empty and is
// only logged: autocomplete degrades to "no suggestions".
func (c *Catalog) Load(ctx context.Context) {
	if c.store == nil {
		return
	}
	templates, err := c.store.List(ctx)
	if err != nil {
		debug.Logf("catalog: load failed, continuing without suggestions: %v", err)
		return
	}
	c.mu.Lock()
	c.templates = templates
	c.mu.Unlock()
}

// Templates returns the catalog in insertion order.
func (c *Catalog) Templates() []domain.Template {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Template, len(c.templates))
	copy(out, c.templates)
	return out
}

// Len returns the number of templates.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.templates)
}

// Filter returns the templates whose description contains the trimmed query,
// case-insensitively, in catalog order. A blank query returns the whole
// catalog; there is no ranking beyond match/no-match.
func (c *Catalog) Filter(query string) []domain.Template {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.Templates()
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []domain.Template
	for _, t := range c.templates {
		if strings.Contains(strings.ToLower(t.Description), q) {
			out = append(out, t)
		}
	}
	return out
}

// IsExactMatch reports whether desc already names a template, comparing
// trimmed and case-insensitive. Blank text counts as a match by convention:
// an empty row never offers the save-as-template control.
func (c *Catalog) IsExactMatch(desc string) bool {
	d := strings.ToLower(strings.TrimSpace(desc))
	if d == "" {
		return true
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, t := range c.templates {
		if strings.ToLower(strings.TrimSpace(t.Description)) == d {
			return true
		}
	}
	return false
}

// CreateFromRow submits a new template built from a row's current text.
// Quantity falls back to 1 and amount to none when the text does not parse.
// On success the created template is appended to the catalog; even if the
// originating row is gone by then, the template stays available to other
// rows. On failure nothing changes.
func (c *Catalog) CreateFromRow(ctx context.Context, desc, quantityText, amountText string) (domain.Template, error) {
	qty := domain.ParseQuantity(quantityText)
	created, err := c.store.Create(ctx, domain.Template{
		Description:     strings.TrimSpace(desc),
		DefaultQuantity: &qty,
		DefaultAmount:   domain.ParseAmount(amountText),
	})
	if err != nil {
		debug.Logf("catalog: create %q failed: %v", desc, err)
		return domain.Template{}, err
	}
	c.mu.Lock()
	c.templates = append(c.templates, created)
	c.mu.Unlock()
	return created, nil
}
