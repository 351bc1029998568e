package service

import (
	"github.com/shopspring/decimal"

	"github.com/HemInfotech/hem_api/internal/models"
)

// GSTRate is the fixed goods and services tax applied on documents.
var GSTRate = decimal.RequireFromString("0.18")

// LineAmount returns unitPrice * quantity.
func LineAmount(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// SubtotalOf sums the submitted lines. Missing prices count as zero and
// missing quantities as one.
func SubtotalOf(lines []models.LineItemInput) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(LineAmount(l.Price(), l.Qty()))
	}
	return total
}

// SubtotalOfStored sums stored snapshot rows.
func SubtotalOfStored(rows []models.QuotationProduct) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Amount())
	}
	return total
}

// PriceWithGST returns the GST breakdown of subtotal. Tax and grand total are
// rounded to whole currency units, half away from zero.
func PriceWithGST(subtotal decimal.Decimal) models.Pricing {
	tax := subtotal.Mul(GSTRate).Round(0)
	return models.Pricing{
		Subtotal:   subtotal,
		Tax:        tax,
		GrandTotal: subtotal.Add(tax).Round(0),
	}
}
