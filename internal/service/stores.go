package service

import (
	"context"

	"github.com/HemInfotech/hem_api/internal/models"
)

// ClientStore is the read side of the clients table.
type ClientStore interface {
	GetByID(ctx context.Context, id int) (*models.Client, error)
	List(ctx context.Context) ([]models.Client, error)
}

// PackageStore reads package templates.
type PackageStore interface {
	GetByID(ctx context.Context, id int) (*models.Package, error)
	List(ctx context.Context) ([]models.Package, error)
	ListProducts(ctx context.Context, packageID int) ([]models.PackageProduct, error)
}

// CatalogStore resolves catalog products and their categories in batch.
type CatalogStore interface {
	GetByIDs(ctx context.Context, ids []int) (map[int]*models.Component, error)
	CategoryNames(ctx context.Context, ids []int) (map[int]string, error)
}

// QuotationStore persists quotation headers with their line snapshots.
// Implementations return sql.ErrNoRows for unknown ids.
type QuotationStore interface {
	Create(ctx context.Context, q *models.Quotation, items []models.QuotationProduct) error
	Update(ctx context.Context, q *models.Quotation, items []models.QuotationProduct) error
	GetByID(ctx context.Context, id int) (*models.Quotation, error)
	ListItems(ctx context.Context, quotationID int) ([]models.QuotationProduct, error)
	ListSummaries(ctx context.Context) ([]models.QuotationSummary, error)
	Delete(ctx context.Context, id int) error
}
