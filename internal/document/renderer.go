package document

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/HemInfotech/hem_api/internal/config"
)

const (
	fontFamily = "Helvetica"
	margin     = 15.0
	lineHeight = 5.0
)

// item table column widths in mm, summing to the A4 printable width
var colWidths = [4]float64{15, 120, 20, 25}

var (
	warrantyText = []string{
		"Warranty: All components carry the manufacturer's warranty from the date of invoice.",
		"Physical damage, burn marks and liquid damage are not covered.",
	}
	termsText = []string{
		"1. Prices are valid for 7 days from the date of this quotation.",
		"2. 100% payment against delivery unless agreed otherwise in writing.",
		"3. Goods once sold will not be taken back or exchanged.",
		"4. Delivery subject to stock availability at the time of order.",
		"5. Subject to local jurisdiction only.",
	}
)

// Renderer lays out quotations on A4 pages with the company letterhead.
type Renderer struct {
	company  config.CompanyConfig
	printer  *message.Printer
	compress bool
}

// NewRenderer builds a Renderer. An unparseable locale falls back to English.
func NewRenderer(company config.CompanyConfig, locale string) *Renderer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Renderer{
		company:  company,
		printer:  message.NewPrinter(tag),
		compress: true,
	}
}

// SetCompression toggles stream compression. Uncompressed output keeps page
// text readable in the raw bytes.
func (r *Renderer) SetCompression(on bool) {
	r.compress = on
}

// FormatGrouped prints an amount with locale thousands separators. Whole
// amounts print without decimals (12,345); anything else prints cents
// (2,500.50).
func (r *Renderer) FormatGrouped(d decimal.Decimal) string {
	d = d.Round(2)
	digits := 0
	if !d.Equal(d.Truncate(0)) {
		digits = 2
	}
	return r.printer.Sprintf("%v", number.Decimal(d.InexactFloat64(),
		number.MinFractionDigits(digits), number.MaxFractionDigits(digits)))
}

// FormatPlain prints an amount with two decimals and no grouping.
func FormatPlain(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Render produces the PDF bytes for q.
func (r *Renderer) Render(q *Quotation) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.compress)
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetTitle(fmt.Sprintf("Quotation %d", q.ID), false)
	pdf.SetCreator(r.company.Name, false)
	pdf.SetCreationDate(q.Date)
	pdf.AliasNbPages("")

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont(fontFamily, "I", 8)
		pdf.CellFormat(0, 6, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	r.letterhead(pdf, tr)
	r.recipient(pdf, tr, q)
	r.itemTable(pdf, tr, q.Lines)
	r.summary(pdf, q)
	r.footer(pdf, tr)
	r.signature(pdf, tr)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render quotation %d: %w", q.ID, err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) letterhead(pdf *fpdf.Fpdf, tr func(string) string) {
	pdf.SetFont(fontFamily, "B", 18)
	pdf.CellFormat(0, 9, tr(r.company.Name), "", 1, "C", false, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	for _, l := range []string{r.company.AddressLine1, r.company.AddressLine2} {
		if l != "" {
			pdf.CellFormat(0, lineHeight, tr(l), "", 1, "C", false, 0, "")
		}
	}
	y := pdf.GetY() + 2
	pageW, _ := pdf.GetPageSize()
	pdf.Line(margin, y, pageW-margin, y)
	pdf.SetY(y + 4)
}

func (r *Renderer) recipient(pdf *fpdf.Fpdf, tr func(string) string, q *Quotation) {
	top := pdf.GetY()

	pdf.SetFont(fontFamily, "B", 10)
	pdf.CellFormat(100, lineHeight, "TO,", "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	for _, l := range q.To.lines() {
		pdf.CellFormat(100, lineHeight, tr(l), "", 1, "L", false, 0, "")
	}
	bottom := pdf.GetY()

	pdf.SetXY(margin+100, top)
	pdf.SetFont(fontFamily, "", 10)
	pdf.CellFormat(0, lineHeight, "Date: "+q.Date.Format("02-01-2006"), "", 2, "R", false, 0, "")
	pdf.SetFont(fontFamily, "B", 14)
	pdf.CellFormat(0, 8, "QUOTATION", "", 1, "R", false, 0, "")

	if pdf.GetY() < bottom {
		pdf.SetY(bottom)
	}
	pdf.Ln(4)

	subject := q.Subject
	if subject == "" {
		subject = DefaultSubject
	}
	pdf.SetFont(fontFamily, "B", 10)
	pdf.CellFormat(18, lineHeight, "Subject:", "", 0, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	pdf.MultiCell(0, lineHeight, tr(subject), "", "L", false)
	pdf.Ln(3)
}

func (r *Renderer) tableHeader(pdf *fpdf.Fpdf) {
	pdf.SetFont(fontFamily, "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range []string{"Sr.", "Description", "Qty", "Amount"} {
		align := "C"
		if i == 1 {
			align = "L"
		}
		ln := 0
		if i == len(colWidths)-1 {
			ln = 1
		}
		pdf.CellFormat(colWidths[i], 7, h, "1", ln, align, true, 0, "")
	}
	pdf.SetFont(fontFamily, "", 9)
}

func (r *Renderer) itemTable(pdf *fpdf.Fpdf, tr func(string) string, lines []Line) {
	r.tableHeader(pdf)
	_, pageH := pdf.GetPageSize()
	_, _, _, bottomMargin := pdf.GetMargins()

	for i, l := range lines {
		var text []string
		for _, part := range l.describe() {
			text = append(text, pdf.SplitText(tr(part), colWidths[1]-2)...)
		}
		if len(text) == 0 {
			text = []string{""}
		}
		h := lineHeight * float64(len(text))

		if pdf.GetY()+h > pageH-bottomMargin {
			pdf.AddPage()
			r.tableHeader(pdf)
		}

		x, y := pdf.GetXY()
		pdf.CellFormat(colWidths[0], h, strconv.Itoa(i+1), "1", 0, "C", false, 0, "")
		pdf.MultiCell(colWidths[1], lineHeight, strings.Join(text, "\n"), "1", "L", false)
		pdf.SetXY(x+colWidths[0]+colWidths[1], y)
		pdf.CellFormat(colWidths[2], h, strconv.Itoa(l.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[3], h, FormatPlain(l.Amount), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(2)
}

func (r *Renderer) summary(pdf *fpdf.Fpdf, q *Quotation) {
	labelW := colWidths[0] + colWidths[1] + colWidths[2]
	rows := []struct {
		label string
		value decimal.Decimal
		bold  bool
	}{
		{"Sub Total", q.Subtotal, false},
		{"GST @ 18%", q.Tax, false},
		{"Grand Total", q.GrandTotal, true},
	}
	for _, row := range rows {
		style := ""
		if row.bold {
			style = "B"
		}
		pdf.SetFont(fontFamily, style, 10)
		pdf.CellFormat(labelW, 6, row.label, "", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], 6, "Rs. "+r.FormatGrouped(row.value), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)
}

func (r *Renderer) footer(pdf *fpdf.Fpdf, tr func(string) string) {
	pdf.SetFont(fontFamily, "", 8)
	for _, l := range warrantyText {
		pdf.MultiCell(0, 4, tr(l), "", "L", false)
	}
	pdf.Ln(2)

	pdf.SetFont(fontFamily, "B", 8)
	pdf.CellFormat(0, 4, tr("GSTIN: "+r.company.GSTIN), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 4, "Bank Details", "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 8)
	for _, l := range []string{
		"Bank: " + r.company.BankName,
		"A/C No: " + r.company.BankAccount,
		"IFSC: " + r.company.BankIFSC,
	} {
		pdf.CellFormat(0, 4, tr(l), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	pdf.SetFont(fontFamily, "B", 8)
	pdf.CellFormat(0, 4, "Terms & Conditions", "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 8)
	for _, l := range termsText {
		pdf.MultiCell(0, 4, tr(l), "", "L", false)
	}
	pdf.Ln(8)
}

func (r *Renderer) signature(pdf *fpdf.Fpdf, tr func(string) string) {
	pdf.SetFont(fontFamily, "B", 10)
	pdf.CellFormat(0, lineHeight, tr("For "+r.company.Name), "", 1, "R", false, 0, "")
	pdf.Ln(12)
	pdf.SetFont(fontFamily, "", 10)
	pdf.CellFormat(0, lineHeight, "Authorised Signatory", "", 1, "R", false, 0, "")
}
