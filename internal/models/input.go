package models

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// LooseDecimal accepts a JSON number, a numeric string or anything else.
// Values that are not numeric decode as zero with Valid set to false, so a
// malformed price never fails the request.
type LooseDecimal struct {
	Decimal decimal.Decimal
	Valid   bool
}

// UnmarshalJSON implements json.Unmarshaler and never returns an error.
func (d *LooseDecimal) UnmarshalJSON(b []byte) error {
	d.Decimal, d.Valid = decimal.Zero, false
	raw := strings.TrimSpace(string(bytes.Trim(bytes.TrimSpace(b), `"`)))
	if raw == "" || raw == "null" {
		return nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	d.Decimal, d.Valid = v, true
	return nil
}

var (
	minInt32 = decimal.NewFromInt(math.MinInt32)
	maxInt32 = decimal.NewFromInt(math.MaxInt32)
)

// LooseInt is the integer counterpart of LooseDecimal. Fractional values are
// truncated. Values outside the INTEGER column range decode as invalid.
type LooseInt struct {
	Int   int
	Valid bool
}

// UnmarshalJSON implements json.Unmarshaler and never returns an error.
func (n *LooseInt) UnmarshalJSON(b []byte) error {
	n.Int, n.Valid = 0, false
	raw := strings.TrimSpace(string(bytes.Trim(bytes.TrimSpace(b), `"`)))
	if raw == "" || raw == "null" {
		return nil
	}
	if i, err := strconv.ParseInt(raw, 10, 32); err == nil {
		n.Int, n.Valid = int(i), true
		return nil
	}
	f, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	f = f.Truncate(0)
	if f.LessThan(minInt32) || f.GreaterThan(maxInt32) {
		return nil
	}
	n.Int, n.Valid = int(f.IntPart()), true
	return nil
}

// LineItemInput is one submitted product line.
type LineItemInput struct {
	ComponentID int          `json:"component_id"`
	ProductID   int          `json:"product_id"`
	Quantity    LooseInt     `json:"quantity"`
	UnitPrice   LooseDecimal `json:"unit_price"`
}

// Qty returns the quantity, defaulting to 1 when missing or not positive.
func (l LineItemInput) Qty() int {
	if !l.Quantity.Valid || l.Quantity.Int < 1 {
		return 1
	}
	return l.Quantity.Int
}

// Price returns the unit price rounded to cents, zero when missing or
// malformed.
func (l LineItemInput) Price() decimal.Decimal {
	if !l.UnitPrice.Valid {
		return decimal.Zero
	}
	return l.UnitPrice.Decimal.Round(2)
}

// CreateQuotationRequest is the POST /api/quotations body.
type CreateQuotationRequest struct {
	ClientID   int             `json:"client_id"`
	PackageID  *int            `json:"package_id"`
	CustomName *string         `json:"custom_name"`
	CustomType *string         `json:"custom_type"`
	Products   []LineItemInput `json:"products"`
}

// UpdateQuotationRequest is the PUT /api/quotations/:id body.
type UpdateQuotationRequest struct {
	CustomName *string         `json:"custom_name"`
	CustomType *string         `json:"custom_type"`
	Products   []LineItemInput `json:"products"`
}
