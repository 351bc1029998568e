package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Package is a reusable template of line items used to pre-populate a quotation.
type Package struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Type      string    `db:"type" json:"type"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// PackageProduct is one line of a package template. It carries no price; the
// price is read from the catalog when the package is looked up.
type PackageProduct struct {
	ID          int `db:"id" json:"id"`
	PackageID   int `db:"package_id" json:"package_id"`
	ComponentID int `db:"component_id" json:"component_id"`
	ProductID   int `db:"product_id" json:"product_id"`
	Quantity    int `db:"quantity" json:"quantity"`
}

// PackageLineItemView is a package line enriched with live catalog data.
// UnitPrice is null when the product no longer exists.
type PackageLineItemView struct {
	PackageProduct
	UnitPrice decimal.NullDecimal `json:"unit_price"`
	ProductDetails
}
