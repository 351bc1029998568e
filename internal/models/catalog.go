package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Inventory is a component category (e.g. "Processor", "RAM").
type Inventory struct {
	ID            int    `db:"id" json:"id"`
	ComponentName string `db:"component_name" json:"component_name"`
	Description   string `db:"description" json:"description"`
}

// Component is a catalog product that can be placed on a package or quotation.
// Nullable text columns are coalesced to "" by the repository.
type Component struct {
	ID            int             `db:"id" json:"id"`
	InventoryID   int             `db:"inventory_id" json:"inventory_id"`
	ProductName   string          `db:"product_name" json:"product_name"`
	Model         string          `db:"model" json:"model"`
	Img           string          `db:"img" json:"img"`
	UnitPrice     decimal.Decimal `db:"unit_price" json:"unit_price"`
	Availability  string          `db:"availability" json:"availability"`
	TotalQuantity int             `db:"total_quantity" json:"total_quantity"`
	Description   string          `db:"description" json:"description"`
	SrNo          string          `db:"sr_no" json:"sr_no"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

// ProductDetails holds the display fields copied from a Component onto a
// package or quotation line. A zero value means the product did not resolve.
type ProductDetails struct {
	ProductName      string              `json:"product_name"`
	Model            string              `json:"model"`
	Availability     string              `json:"availability"`
	Description      string              `json:"description"`
	ComponentName    string              `json:"component_name"`
	CatalogUnitPrice decimal.NullDecimal `json:"catalog_unit_price"`
	TotalQuantity    *int                `json:"total_quantity"`
}

// DetailsFrom copies the display fields of c. A nil component yields blank
// strings and null numbers.
func DetailsFrom(c *Component, categoryName string) ProductDetails {
	d := ProductDetails{ComponentName: categoryName}
	if c == nil {
		return d
	}
	qty := c.TotalQuantity
	d.ProductName = c.ProductName
	d.Model = c.Model
	d.Availability = c.Availability
	d.Description = c.Description
	d.CatalogUnitPrice = decimal.NewNullDecimal(c.UnitPrice)
	d.TotalQuantity = &qty
	return d
}
