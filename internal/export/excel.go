// Package export renders purchase orders into downloadable documents.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/orderdesk/po-backoffice/internal/domain/order"
)

const dateLayout = "2006-01-02"

// OrderBookXLSX renders the order collection as a spreadsheet with one row
// per order, in the collection's insertion order.
func OrderBookXLSX(orders []order.PurchaseOrder) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetName(sheet, "Purchase Orders"); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	sheet = "Purchase Orders"

	headers := []string{"PO Number", "Vendor", "Date", "Due Date", "Subtotal", "Tax", "Total", "Status", "Notes"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header %q: %w", header, err)
		}
	}

	for row, po := range orders {
		values := []interface{}{
			po.PONumber,
			po.VendorName,
			po.Date.Format(dateLayout),
			po.DueDate.Format(dateLayout),
			po.Subtotal.InexactFloat64(),
			po.TaxAmount.InexactFloat64(),
			po.Total.InexactFloat64(),
			po.Status.String(),
			po.Notes,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write order %s: %w", po.PONumber, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
