package document

import (
	"os"
	"path/filepath"
	"testing"

	"tally/internal/domain"
)

func TestLoadMissingFileYieldsFreshQuote(t *testing.T) {
	doc, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Kind != KindQuote {
		t.Errorf("kind = %q", doc.Kind)
	}
	if len(doc.Items) != 1 {
		t.Errorf("expected one empty seed row, got %d", len(doc.Items))
	}
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bill.yaml")
	doc := Snapshot(KindBill, "Garage job", []domain.LineItem{
		{Position: 0, Description: "Window Install", Quantity: "1", Amount: "250"},
		{Position: 1, Description: "half-typed", Quantity: "2."},
	})
	if err := doc.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Kind != KindBill || got.Title != "Garage job" {
		t.Errorf("header = %q/%q", got.Kind, got.Title)
	}
	if len(got.Items) != 2 {
		t.Fatalf("items = %d", len(got.Items))
	}
	// Malformed numeric text survives verbatim.
	if got.Items[1].Quantity != "2." {
		t.Errorf("quantity = %q, want 2.", got.Items[1].Quantity)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("items: [:"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestTotalSkipsMalformedRows(t *testing.T) {
	items := []domain.LineItem{
		{Quantity: "2", Amount: "10"},
		{Quantity: "x", Amount: "10"},
		{Quantity: "1", Amount: ""},
		{Quantity: "0.5", Amount: "100"},
	}
	if got := Total(items); got != 70 {
		t.Errorf("Total = %v, want 70", got)
	}
}

func TestSummarySkipsEmptyRows(t *testing.T) {
	items := []domain.LineItem{
		{Position: 0, Description: "Window Install", Quantity: "1", Amount: "250"},
		{Position: 1},
	}
	got := Summary(KindQuote, items)
	want := "QUOTE\n1. Window Install  x1  @ 250\nTotal: 250.00\n"
	if got != want {
		t.Errorf("Summary = %q, want %q", got, want)
	}
}
