package ui

import (
	"testing"

	"tally/internal/domain"
)

func TestFocusDefersUntilRowRegistered(t *testing.T) {
	f := NewFocusCoordinator()

	f.Request(5, domain.FieldDescription)
	if _, _, ok := f.Apply(); ok {
		t.Fatal("expected apply to defer for an unregistered row")
	}
	if f.Pending() == nil {
		t.Fatal("expected the intent kept pending")
	}

	f.Register(5, newRowFields(5, 40))
	req, _, ok := f.Apply()
	if !ok {
		t.Fatal("expected apply to resolve once the row exists")
	}
	if req.Row != 5 || req.Field != domain.FieldDescription {
		t.Errorf("resolved request = %+v", req)
	}
	if f.Pending() != nil {
		t.Error("expected the intent cleared after apply")
	}
}

func TestFocusLaterRequestOverridesEarlier(t *testing.T) {
	f := NewFocusCoordinator()
	f.Register(1, newRowFields(1, 40))
	f.Register(2, newRowFields(2, 40))

	f.Request(1, domain.FieldDescription)
	f.Request(2, domain.FieldAmount)

	req, _, ok := f.Apply()
	if !ok || req.Row != 2 || req.Field != domain.FieldAmount {
		t.Errorf("resolved request = %+v, want row 2 amount", req)
	}
}

func TestFocusDeregisterDropsPendingIntent(t *testing.T) {
	f := NewFocusCoordinator()
	f.Register(1, newRowFields(1, 40))

	f.Request(1, domain.FieldQuantity)
	f.Deregister(1)

	if f.Pending() != nil {
		t.Error("expected pending intent discarded with its row")
	}
	if _, _, ok := f.Apply(); ok {
		t.Error("expected nothing to apply")
	}
}

func TestFocusApplyBlursOtherRows(t *testing.T) {
	f := NewFocusCoordinator()
	f.Register(1, newRowFields(1, 40))
	f.Register(2, newRowFields(2, 40))

	f.Request(1, domain.FieldDescription)
	f.Apply()
	f.Request(2, domain.FieldQuantity)
	f.Apply()

	r1, _ := f.Fields(1)
	r2, _ := f.Fields(2)
	if r1.desc.Focused() {
		t.Error("expected row 1 description blurred")
	}
	if !r2.qty.Focused() {
		t.Error("expected row 2 quantity focused")
	}
}
