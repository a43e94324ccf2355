package infra

// pdf.go — receipt generation using go-pdf/fpdf.
// Generates A4 documents with the business name header, a title per receipt
// kind, the record's detail rows and the derived balance figures. Every
// monetary figure printed here is taken from the record / ledger output —
// nothing is recomputed in the PDF layer.
//
// Output files land in storagePath/{kind}_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/newstarted0004/surti-khaman/internal/ledger"
	"github.com/newstarted0004/surti-khaman/internal/model"

	"github.com/go-pdf/fpdf"
)

const (
	pdfMargin   = 15.0
	pdfRowH     = 8.0
	pdfLabelW   = 70.0
	pdfHeaderSz = 18.0
)

// PDFGenerator renders the printable receipts. BusinessName appears in the
// header of every document.
type PDFGenerator struct {
	businessName string
	storagePath  string
}

func NewPDFGenerator(businessName, storagePath string) *PDFGenerator {
	return &PDFGenerator{businessName: businessName, storagePath: storagePath}
}

func (g *PDFGenerator) newDoc(title string) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 2*pdfMargin

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", pdfHeaderSz)
	pdf.CellFormat(contentW, 10, g.businessName, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(contentW, 8, title, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.Line(pdfMargin, pdf.GetY(), pageW-pdfMargin, pdf.GetY())
	pdf.Ln(4)

	return pdf
}

func (g *PDFGenerator) row(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(pdfLabelW, pdfRowH, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, pdfRowH, value, "", 1, "L", false, 0, "")
}

func (g *PDFGenerator) totalRow(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(pdfLabelW, pdfRowH+2, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, pdfRowH+2, value, "", 1, "L", false, 0, "")
}

func (g *PDFGenerator) write(pdf *fpdf.Fpdf, kind string, id string) (string, error) {
	if err := os.MkdirAll(g.storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}
	filePath := filepath.Join(g.storagePath, fmt.Sprintf("%s_%s.pdf", kind, id))
	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}

// GenerateDailySalePDF renders the daily sale receipt.
func (g *PDFGenerator) GenerateDailySalePDF(sale *model.DailySale) (string, error) {
	pdf := g.newDoc("Daily Sale Receipt")

	g.row(pdf, "Date:", sale.Date.Format("02/01/2006"))
	pdf.Ln(4)
	g.totalRow(pdf, "Total Amount:", "Rs. "+sale.TotalAmount.StringFixed(2))

	g.footer(pdf)
	return g.write(pdf, model.ReceiptDailySale, sale.ID.String())
}

// GeneratePurchasePDF renders a purchase receipt including the outstanding
// balance toward the shop.
func (g *PDFGenerator) GeneratePurchasePDF(p *model.Purchase) (string, error) {
	pdf := g.newDoc("Purchase Receipt")

	if p.Shop != nil {
		g.row(pdf, "Shop:", p.Shop.Name)
	}
	if p.Item != nil {
		item := p.Item.Name
		if p.Item.Unit != "" {
			item += " (" + p.Item.Unit + ")"
		}
		g.row(pdf, "Item:", item)
	}
	g.row(pdf, "Quantity:", p.Quantity)
	g.row(pdf, "Date:", p.Date.Format("02/01/2006")+"  "+p.PurchaseTime)
	g.row(pdf, "Amount:", "Rs. "+p.Amount.StringFixed(2))
	pdf.Ln(4)
	g.row(pdf, "Total Bill:", "Rs. "+p.TotalBill.StringFixed(2))
	g.row(pdf, "Paid:", "Rs. "+p.PaidAmount.StringFixed(2))
	g.totalRow(pdf, "Remaining:", "Rs. "+p.RemainingAmount.StringFixed(2))

	g.footer(pdf)
	return g.write(pdf, model.ReceiptPurchase, p.ID.String())
}

// GenerateBulkSalePDF renders a bulk sale receipt including the customer's
// outstanding balance.
func (g *PDFGenerator) GenerateBulkSalePDF(b *model.BulkSale) (string, error) {
	pdf := g.newDoc("Bulk Sale Receipt")

	if b.Customer != nil {
		g.row(pdf, "Customer:", b.Customer.ShopName)
		if b.Customer.OwnerName != nil {
			g.row(pdf, "Owner:", *b.Customer.OwnerName)
		}
	}
	if b.Product != nil {
		g.row(pdf, "Product:", b.Product.Name)
	}
	g.row(pdf, "Quantity:", b.Quantity.StringFixed(3)+" kg")
	g.row(pdf, "Price/kg:", "Rs. "+b.PricePerKg.StringFixed(2))
	g.row(pdf, "Date:", b.Date.Format("02/01/2006"))
	pdf.Ln(4)
	g.row(pdf, "Total:", "Rs. "+b.TotalAmount.StringFixed(2))
	g.row(pdf, "Paid:", "Rs. "+b.PaidAmount.StringFixed(2))
	g.totalRow(pdf, "Remaining:", "Rs. "+b.RemainingAmount.StringFixed(2))

	g.footer(pdf)
	return g.write(pdf, model.ReceiptBulkSale, b.ID.String())
}

// GenerateWorkerReportPDF renders a worker's payroll reconciliation over a
// range. The summary comes pre-derived from the ledger engine.
func (g *PDFGenerator) GenerateWorkerReportPDF(w *model.Worker, sum ledger.WorkerSummary, r ledger.DateRange) (string, error) {
	pdf := g.newDoc("Worker Salary Report")

	g.row(pdf, "Worker:", w.Name)
	if w.ContactNumber != nil {
		g.row(pdf, "Contact:", *w.ContactNumber)
	}
	g.row(pdf, "Period:", r.Start.Format("02/01/2006")+" - "+r.End.Format("02/01/2006"))
	pdf.Ln(4)
	g.row(pdf, "Present Days:", fmt.Sprintf("%d", sum.PresentDays))
	g.row(pdf, "Per Day Salary:", "Rs. "+w.PerDaySalary.StringFixed(2))
	g.row(pdf, "Total Salary:", "Rs. "+sum.TotalSalary.StringFixed(2))
	g.row(pdf, "Advances:", "Rs. "+sum.TotalAdvances.StringFixed(2))
	g.row(pdf, "Payments:", "Rs. "+sum.TotalPayments.StringFixed(2))
	pdf.Ln(2)
	g.totalRow(pdf, "Remaining:", "Rs. "+sum.Remaining.StringFixed(2))

	g.footer(pdf)
	return g.write(pdf, model.ReceiptWorkerReport, w.ID.String())
}

func (g *PDFGenerator) footer(pdf *fpdf.Fpdf) {
	pdf.Ln(8)
	pageW, _ := pdf.GetPageSize()
	pdf.Line(pdfMargin, pdf.GetY(), pageW-pdfMargin, pdf.GetY())
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 5, "Thank you!", "", 1, "C", false, 0, "")
}
