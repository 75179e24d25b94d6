package order

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Totals holds the money amounts derived from an order's line items.
type Totals struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	Total     decimal.Decimal `json:"total"`
}

// ComputeLineAmount returns quantity × unitPrice. Both must be strictly
// positive for an item to be added to an order.
func ComputeLineAmount(quantity int, unitPrice decimal.Decimal) (decimal.Decimal, error) {
	if quantity <= 0 {
		return decimal.Zero, fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	if !unitPrice.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: unit price must be positive", ErrValidation)
	}
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))), nil
}

// ComputeTotals sums line amounts and per-line tax over the item snapshot.
// An empty item list yields all-zero totals; rejecting empty orders is the
// creation path's concern, not this function's. Display rounding is left to
// the presentation layer.
func ComputeTotals(items []LineItem) Totals {
	subtotal := decimal.Zero
	taxAmount := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Amount)
		taxAmount = taxAmount.Add(item.Amount.Mul(item.TaxPercentage).Div(hundred))
	}
	return Totals{
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Total:     subtotal.Add(taxAmount),
	}
}
