// Package document renders stored quotations as printable PDF documents.
package document

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultSubject is printed when a quotation has no custom name.
const DefaultSubject = "Quotation for Electronic Components"

// Recipient is the TO block. Blank fields are left out of the document.
type Recipient struct {
	Name  string
	Email string
	Phone string
}

// Line is one row of the item table.
type Line struct {
	ProductName string
	Model       string
	Description string
	Quantity    int
	Amount      decimal.Decimal
}

// Quotation is everything the renderer needs. It is built by the caller from
// the stored header, its snapshot lines and the GST breakdown.
type Quotation struct {
	ID         int
	Date       time.Time
	Subject    string
	To         *Recipient
	Lines      []Line
	Subtotal   decimal.Decimal
	Tax        decimal.Decimal
	GrandTotal decimal.Decimal
}

// describe stacks the non-blank description parts of a line.
func (l Line) describe() []string {
	var out []string
	for _, s := range []string{l.ProductName, l.Model, l.Description} {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (r *Recipient) lines() []string {
	if r == nil {
		return nil
	}
	var out []string
	if r.Name != "" {
		out = append(out, r.Name)
	}
	if r.Email != "" {
		out = append(out, "Email: "+r.Email)
	}
	if r.Phone != "" {
		out = append(out, "Phone: "+r.Phone)
	}
	return out
}
