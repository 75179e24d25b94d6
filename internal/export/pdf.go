package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/orderdesk/po-backoffice/internal/domain/order"
)

// OrderDocumentPDF renders a single purchase order as a printable A4
// document: header, vendor and date block, items table, totals, notes.
func OrderDocumentPDF(po order.PurchaseOrder) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Purchase Order "+po.PONumber)
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, "Vendor: "+po.VendorName)
	pdf.Ln(6)
	pdf.Cell(0, 6, "Date: "+po.Date.Format(dateLayout))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Due Date: "+po.DueDate.Format(dateLayout))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Status: %s (%s)", po.Status, po.Status.Description()))
	pdf.Ln(10)

	// Items table
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(80, 7, "Product", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 7, "Qty", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 7, "Unit Price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(20, 7, "Tax %", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, "Amount", "1", 0, "R", false, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, item := range po.Items {
		pdf.CellFormat(80, 7, item.ProductName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 7, item.UnitPrice.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 7, item.TaxPercentage.String(), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, item.Amount.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	// Totals block
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(150, 6, "Subtotal:", "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 6, po.Subtotal.StringFixed(2), "", 0, "R", false, 0, "")
	pdf.Ln(6)
	pdf.CellFormat(150, 6, "Tax:", "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 6, po.TaxAmount.StringFixed(2), "", 0, "R", false, 0, "")
	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(150, 6, "Total:", "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 6, po.Total.StringFixed(2), "", 0, "R", false, 0, "")
	pdf.Ln(10)

	if po.Notes != "" {
		pdf.SetFont("Arial", "I", 10)
		pdf.MultiCell(0, 5, "Notes: "+po.Notes, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render document for %s: %w", po.PONumber, err)
	}
	return buf.Bytes(), nil
}
