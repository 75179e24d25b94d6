package order

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func mustItem(t *testing.T, name string, quantity int, unitPrice, taxPct int64) LineItem {
	t.Helper()
	item, err := NewLineItem("", name, quantity, decimal.NewFromInt(unitPrice), decimal.NewFromInt(taxPct))
	if err != nil {
		t.Fatalf("NewLineItem(%s) failed: %v", name, err)
	}
	return item
}

func TestComputeLineAmount(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		unitPrice decimal.Decimal
		expected  decimal.Decimal
		wantErr   bool
	}{
		{"two at hundred", 2, decimal.NewFromInt(100), decimal.NewFromInt(200), false},
		{"one at fractional price", 3, decimal.RequireFromString("19.99"), decimal.RequireFromString("59.97"), false},
		{"zero quantity", 0, decimal.NewFromInt(100), decimal.Zero, true},
		{"negative quantity", -1, decimal.NewFromInt(100), decimal.Zero, true},
		{"zero price", 2, decimal.Zero, decimal.Zero, true},
		{"negative price", 2, decimal.NewFromInt(-5), decimal.Zero, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeLineAmount(tt.quantity, tt.unitPrice)
			if tt.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("ComputeLineAmount() error = %v, want ErrValidation", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ComputeLineAmount() failed: %v", err)
			}
			if !got.Equal(tt.expected) {
				t.Errorf("ComputeLineAmount() = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestComputeTotals_SingleItem(t *testing.T) {
	item := mustItem(t, "Steel Rods", 2, 100, 18)

	if !item.Amount.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("item.Amount = %s, want 200", item.Amount)
	}

	totals := ComputeTotals([]LineItem{item})

	if !totals.Subtotal.Equal(decimal.NewFromInt(200)) {
		t.Errorf("Subtotal = %s, want 200", totals.Subtotal)
	}
	if !totals.TaxAmount.Equal(decimal.NewFromInt(36)) {
		t.Errorf("TaxAmount = %s, want 36", totals.TaxAmount)
	}
	if !totals.Total.Equal(decimal.NewFromInt(236)) {
		t.Errorf("Total = %s, want 236", totals.Total)
	}
}

func TestComputeTotals_Empty(t *testing.T) {
	totals := ComputeTotals(nil)

	if !totals.Subtotal.IsZero() || !totals.TaxAmount.IsZero() || !totals.Total.IsZero() {
		t.Errorf("ComputeTotals(nil) = %+v, want all-zero totals", totals)
	}
}

func TestComputeTotals_TotalIsSubtotalPlusTax(t *testing.T) {
	tests := []struct {
		name  string
		items []LineItem
	}{
		{"single item", []LineItem{mustItem(t, "Paper", 10, 5, 12)}},
		{"mixed tax rates", []LineItem{
			mustItem(t, "Paper", 10, 5, 12),
			mustItem(t, "Toner", 3, 80, 18),
			mustItem(t, "Exempt goods", 1, 450, 0),
		}},
		{"fractional amounts", []LineItem{
			mustItem(t, "Cable", 7, 13, 5),
			mustItem(t, "Connector", 33, 3, 28),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := ComputeTotals(tt.items)
			if !totals.Total.Equal(totals.Subtotal.Add(totals.TaxAmount)) {
				t.Errorf("Total = %s, want Subtotal %s + TaxAmount %s",
					totals.Total, totals.Subtotal, totals.TaxAmount)
			}
		})
	}
}
