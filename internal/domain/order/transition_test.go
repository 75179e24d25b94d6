package order

import (
	"errors"
	"testing"
	"time"
)

func draftOrder(t *testing.T) PurchaseOrder {
	t.Helper()
	item := mustItem(t, "Steel Rods", 2, 100, 18)
	po, err := NewPurchaseOrder("PO-0001", "vendor-1", "Acme Metals",
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 4, 9, 0, 0, 0, 0, time.UTC),
		[]LineItem{item}, "")
	if err != nil {
		t.Fatalf("NewPurchaseOrder() failed: %v", err)
	}
	return po
}

func TestApplyTransition_DraftToSent(t *testing.T) {
	po := draftOrder(t)

	updated, err := ApplyTransition(po, StatusSent)
	if err != nil {
		t.Fatalf("ApplyTransition() failed: %v", err)
	}
	if updated.Status != StatusSent {
		t.Errorf("updated.Status = %s, want %s", updated.Status, StatusSent)
	}

	// Everything except status must be untouched.
	updated.Status = po.Status
	if updated.ID != po.ID || updated.PONumber != po.PONumber ||
		updated.VendorID != po.VendorID || updated.VendorName != po.VendorName ||
		!updated.Date.Equal(po.Date) || !updated.DueDate.Equal(po.DueDate) ||
		!updated.Subtotal.Equal(po.Subtotal) || !updated.TaxAmount.Equal(po.TaxAmount) ||
		!updated.Total.Equal(po.Total) || updated.Notes != po.Notes ||
		len(updated.Items) != len(po.Items) {
		t.Errorf("ApplyTransition() changed fields other than status:\n got %+v\nwant %+v", updated, po)
	}
}

func TestApplyTransition_DraftCannotSkipToApproved(t *testing.T) {
	po := draftOrder(t)

	_, err := ApplyTransition(po, StatusApproved)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("ApplyTransition() error = %v, want ErrInvalidTransition", err)
	}
	if po.Status != StatusDraft {
		t.Errorf("failed transition mutated order status to %s", po.Status)
	}
}

func TestApplyTransition_FullApprovalPath(t *testing.T) {
	po := draftOrder(t)

	for _, target := range []Status{StatusSent, StatusApproved, StatusCompleted} {
		updated, err := ApplyTransition(po, target)
		if err != nil {
			t.Fatalf("ApplyTransition(%s -> %s) failed: %v", po.Status, target, err)
		}
		if updated.Status != target {
			t.Fatalf("updated.Status = %s, want %s", updated.Status, target)
		}
		po = updated
	}
}

func TestApplyTransition_TerminalStates(t *testing.T) {
	for _, terminal := range []Status{StatusCompleted, StatusCancelled} {
		t.Run(string(terminal), func(t *testing.T) {
			po := draftOrder(t)
			po.Status = terminal

			for target := range validStatuses {
				got, err := ApplyTransition(po, target)
				if !errors.Is(err, ErrInvalidTransition) {
					t.Errorf("ApplyTransition(%s -> %s) error = %v, want ErrInvalidTransition", terminal, target, err)
				}
				if got.Status != terminal {
					t.Errorf("terminal order mutated to %s", got.Status)
				}
			}
		})
	}
}

func TestApplyTransition_UnknownTarget(t *testing.T) {
	po := draftOrder(t)

	_, err := ApplyTransition(po, Status("Shipped"))
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("ApplyTransition() error = %v, want ErrInvalidStatus", err)
	}
}
