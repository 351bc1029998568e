package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quotation types accepted in custom_type.
const (
	QuotationTypeFixed  = "fixed"
	QuotationTypeCustom = "custom"
)

// Quotation is the stored header. TotalPrice is the pre-tax subtotal computed
// when the quotation was last written.
type Quotation struct {
	ID         int             `db:"id" json:"id"`
	ClientID   int             `db:"client_id" json:"client_id"`
	PackageID  *int            `db:"package_id" json:"package_id"`
	CustomName *string         `db:"custom_name" json:"custom_name"`
	CustomType string          `db:"custom_type" json:"custom_type"`
	TotalPrice decimal.Decimal `db:"total_price" json:"total_price"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at" json:"updated_at"`
}

// Subject returns the custom name, or def when none is set.
func (q *Quotation) Subject(def string) string {
	if q.CustomName != nil && *q.CustomName != "" {
		return *q.CustomName
	}
	return def
}

// QuotationProduct is a snapshot row owned by exactly one quotation.
type QuotationProduct struct {
	ID          int             `db:"id" json:"id"`
	QuotationID int             `db:"quotation_id" json:"quotation_id"`
	ComponentID int             `db:"component_id" json:"component_id"`
	ProductID   int             `db:"product_id" json:"product_id"`
	Quantity    int             `db:"quantity" json:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price" json:"unit_price"`
}

// Amount is unit price times quantity.
func (p QuotationProduct) Amount() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// QuotationSummary is a list row: the header plus joined display names.
type QuotationSummary struct {
	Quotation
	ClientName  string `db:"client_name" json:"client_name"`
	PackageName string `db:"package_name" json:"package_name"`
}

// QuotationLineItemView is a stored line with catalog display fields resolved
// by its product reference.
type QuotationLineItemView struct {
	QuotationProduct
	Amount decimal.Decimal `json:"amount"`
	ProductDetails
}

// Pricing is the GST breakdown of a subtotal.
type Pricing struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// QuotationDetail is the getById result.
type QuotationDetail struct {
	Quotation
	Products []QuotationLineItemView `json:"products"`
	Pricing  Pricing                 `json:"pricing"`
}
