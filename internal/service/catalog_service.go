package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/HemInfotech/hem_api/internal/models"
)

// CatalogService resolves package templates and stored lines against the
// component catalog. It never writes.
type CatalogService struct {
	clients  ClientStore
	packages PackageStore
	catalog  CatalogStore
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(clients ClientStore, packages PackageStore, catalog CatalogStore) *CatalogService {
	return &CatalogService{clients: clients, packages: packages, catalog: catalog}
}

// Clients lists every client for the quotation form dropdown.
func (s *CatalogService) Clients(ctx context.Context) ([]models.Client, error) {
	return s.clients.List(ctx)
}

// Packages lists every package for the quotation form dropdown.
func (s *CatalogService) Packages(ctx context.Context) ([]models.Package, error) {
	return s.packages.List(ctx)
}

// PackageProducts returns the lines of packageID enriched with the current
// catalog data. Unknown packages yield an empty slice; lines whose product
// was deleted are kept with blank display fields.
func (s *CatalogService) PackageProducts(ctx context.Context, packageID int) ([]models.PackageLineItemView, error) {
	lines, err := s.packages.ListProducts(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("list package products: %w", err)
	}

	productIDs := make([]int, len(lines))
	categoryIDs := make([]int, len(lines))
	for i, l := range lines {
		productIDs[i] = l.ProductID
		categoryIDs[i] = l.ComponentID
	}

	products, categories, err := s.resolve(ctx, productIDs, categoryIDs)
	if err != nil {
		return nil, err
	}

	views := make([]models.PackageLineItemView, 0, len(lines))
	for _, l := range lines {
		p := products[l.ProductID]
		view := models.PackageLineItemView{
			PackageProduct: l,
			ProductDetails: models.DetailsFrom(p, categories[l.ComponentID]),
		}
		if p != nil {
			view.UnitPrice = decimal.NewNullDecimal(p.UnitPrice)
		}
		views = append(views, view)
	}
	return views, nil
}

// EnrichStored attaches catalog display fields to stored quotation lines by
// their own product reference. The stored price and quantity are untouched.
func (s *CatalogService) EnrichStored(ctx context.Context, rows []models.QuotationProduct) ([]models.QuotationLineItemView, error) {
	productIDs := make([]int, len(rows))
	categoryIDs := make([]int, len(rows))
	for i, r := range rows {
		productIDs[i] = r.ProductID
		categoryIDs[i] = r.ComponentID
	}

	products, categories, err := s.resolve(ctx, productIDs, categoryIDs)
	if err != nil {
		return nil, err
	}

	views := make([]models.QuotationLineItemView, 0, len(rows))
	for _, r := range rows {
		views = append(views, models.QuotationLineItemView{
			QuotationProduct: r,
			Amount:           r.Amount(),
			ProductDetails:   models.DetailsFrom(products[r.ProductID], categories[r.ComponentID]),
		})
	}
	return views, nil
}

func (s *CatalogService) resolve(ctx context.Context, productIDs, categoryIDs []int) (map[int]*models.Component, map[int]string, error) {
	products, err := s.catalog.GetByIDs(ctx, uniqueIDs(productIDs))
	if err != nil {
		return nil, nil, fmt.Errorf("resolve products: %w", err)
	}
	categories, err := s.catalog.CategoryNames(ctx, uniqueIDs(categoryIDs))
	if err != nil {
		return nil, nil, fmt.Errorf("resolve categories: %w", err)
	}
	return products, categories, nil
}

func uniqueIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
