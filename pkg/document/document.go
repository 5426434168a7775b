// pkg/document/document.go

// Package document renders a printable single-page PDF for an invoice:
// header band, bill-to block, item table and totals, in fixed order.
package document

import (
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/sg-invoicing/pkg/invoice"
)

// Renderer draws invoice PDFs. The zero value is not usable; fill in
// the letterhead fields.
type Renderer struct {
	BusinessName   string
	CurrencySymbol string
}

// Render writes the PDF for rec to path. Rendering itself cannot fail;
// errors come from the final file write and propagate unchanged.
func (r Renderer) Render(rec invoice.Record, path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// core fonts are cp1252, currency symbols and accented client
	// names need translating
	p := page{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor(""), symbol: r.CurrencySymbol}
	pdf.AddPage()

	p.header(r.BusinessName, rec.InvoiceNumber)
	p.billTo(rec.Client, rec.Date, rec.Amount)
	p.itemsHeader()
	subtotal := p.item(rec.Quantity, rec.Rate)
	p.totals(subtotal)

	return pdf.OutputFileAndClose(path)
}

type page struct {
	pdf    *gofpdf.Fpdf
	tr     func(string) string
	symbol string
}

// money formats an amount as currency: symbol plus exactly two decimal
// places, no thousands separators.
func (p page) money(v decimal.Decimal) string {
	return p.tr(p.symbol + v.StringFixed(2))
}

func (p page) header(business, number string) {
	p.pdf.SetFont("Arial", "", 12)
	p.pdf.CellFormat(100, 20, p.tr(business), "", 0, "L", false, 0, "")
	p.pdf.SetFont("Arial", "B", 24)
	p.pdf.CellFormat(90, 20, "INVOICE", "", 1, "R", false, 0, "")

	p.pdf.SetFont("Arial", "", 12)
	p.pdf.CellFormat(100, 10, "", "", 0, "L", false, 0, "")
	p.pdf.CellFormat(90, 10, "# "+number, "", 1, "R", false, 0, "")
}

func (p page) billTo(client, date string, amount decimal.Decimal) {
	p.pdf.CellFormat(0, 20, "", "", 1, "L", false, 0, "")
	p.pdf.CellFormat(30, 10, "Bill To:", "", 1, "L", false, 0, "")
	p.pdf.SetFont("Arial", "B", 12)
	p.pdf.CellFormat(100, 10, p.tr(client), "", 0, "L", false, 0, "")

	p.pdf.SetFont("Arial", "", 12)
	p.pdf.CellFormat(40, 10, "Date:", "", 0, "L", false, 0, "")
	p.pdf.CellFormat(50, 10, date, "", 1, "R", false, 0, "")

	p.pdf.CellFormat(100, 10, "", "", 0, "L", false, 0, "")
	p.pdf.CellFormat(40, 10, "Balance Due:", "", 0, "L", false, 0, "")
	p.pdf.CellFormat(50, 10, p.money(amount), "", 1, "R", false, 0, "")
}

func (p page) itemsHeader() {
	p.pdf.SetFillColor(50, 50, 50)
	p.pdf.SetTextColor(255, 255, 255)
	p.pdf.CellFormat(100, 10, "Item", "1", 0, "L", true, 0, "")
	p.pdf.CellFormat(30, 10, "Quantity", "1", 0, "C", true, 0, "")
	p.pdf.CellFormat(30, 10, "Rate", "1", 0, "C", true, 0, "")
	p.pdf.CellFormat(30, 10, "Amount", "1", 1, "C", true, 0, "")
	p.pdf.SetTextColor(0, 0, 0)
}

// item draws the single line-item row and returns its amount as the
// subtotal.
func (p page) item(qty, rate decimal.Decimal) decimal.Decimal {
	amount := qty.Mul(rate)
	p.pdf.CellFormat(100, 10, "", "1", 0, "L", false, 0, "")
	p.pdf.CellFormat(30, 10, qty.String(), "1", 0, "C", false, 0, "")
	p.pdf.CellFormat(30, 10, p.money(rate), "1", 0, "C", false, 0, "")
	p.pdf.CellFormat(30, 10, p.money(amount), "1", 1, "C", false, 0, "")
	return amount
}

func (p page) totals(subtotal decimal.Decimal) {
	rows := []struct {
		label string
		value string
	}{
		{"Subtotal:", p.money(subtotal)},
		{"Tax (0%):", p.money(decimal.Zero)},
		{"Total:", p.money(subtotal)},
	}
	for _, row := range rows {
		p.pdf.CellFormat(130, 10, "", "", 0, "L", false, 0, "")
		p.pdf.CellFormat(30, 10, row.label, "", 0, "R", false, 0, "")
		p.pdf.CellFormat(30, 10, row.value, "", 1, "R", false, 0, "")
	}
}
