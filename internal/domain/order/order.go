package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem represents one product entry on a purchase order. Amount is
// computed once at construction from quantity and unit price; there is no
// edit path for items after they are added, only append and remove.
type LineItem struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TaxPercentage decimal.Decimal `json:"tax_percentage"`
	Amount        decimal.Decimal `json:"amount"`
}

// PurchaseOrder records items requested from a vendor, the order's lifecycle
// status, and totals frozen from the item snapshot at creation time.
type PurchaseOrder struct {
	ID         string          `json:"id"`
	PONumber   string          `json:"po_number"`
	VendorID   string          `json:"vendor_id"`
	VendorName string          `json:"vendor_name"`
	Date       time.Time       `json:"date"`
	DueDate    time.Time       `json:"due_date"`
	Items      []LineItem      `json:"items"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	TaxAmount  decimal.Decimal `json:"tax_amount"`
	Total      decimal.Decimal `json:"total"`
	Status     Status          `json:"status"`
	Notes      string          `json:"notes,omitempty"`
}

// NewLineItem builds a line item with its amount derived from quantity and
// unit price. A product ID is generated when none is supplied.
func NewLineItem(productID, productName string, quantity int, unitPrice, taxPercentage decimal.Decimal) (LineItem, error) {
	if strings.TrimSpace(productName) == "" {
		return LineItem{}, fmt.Errorf("%w: product name is required", ErrValidation)
	}

	amount, err := ComputeLineAmount(quantity, unitPrice)
	if err != nil {
		return LineItem{}, err
	}

	if taxPercentage.IsNegative() || taxPercentage.GreaterThan(hundred) {
		return LineItem{}, fmt.Errorf("%w: tax percentage must be between 0 and 100", ErrValidation)
	}

	if productID == "" {
		productID = uuid.NewString()
	}

	return LineItem{
		ID:            uuid.NewString(),
		ProductID:     productID,
		ProductName:   productName,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		TaxPercentage: taxPercentage,
		Amount:        amount,
	}, nil
}

// NewPurchaseOrder assembles a Draft order from vendor details, dates and a
// non-empty item snapshot. Subtotal, tax and total are computed here and
// never kept in sync afterwards; the only mutation path after creation is
// ApplyTransition. Due date ordering relative to the order date is not
// validated.
func NewPurchaseOrder(poNumber, vendorID, vendorName string, date, dueDate time.Time, items []LineItem, notes string) (PurchaseOrder, error) {
	if strings.TrimSpace(vendorName) == "" {
		return PurchaseOrder{}, fmt.Errorf("%w: vendor name is required", ErrValidation)
	}
	if len(items) == 0 {
		return PurchaseOrder{}, fmt.Errorf("%w: at least one line item is required", ErrValidation)
	}

	if vendorID == "" {
		vendorID = uuid.NewString()
	}

	totals := ComputeTotals(items)

	return PurchaseOrder{
		ID:         uuid.NewString(),
		PONumber:   poNumber,
		VendorID:   vendorID,
		VendorName: vendorName,
		Date:       date,
		DueDate:    dueDate,
		Items:      append([]LineItem(nil), items...),
		Subtotal:   totals.Subtotal,
		TaxAmount:  totals.TaxAmount,
		Total:      totals.Total,
		Status:     StatusDraft,
		Notes:      notes,
	}, nil
}
