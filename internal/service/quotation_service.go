package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/HemInfotech/hem_api/internal/models"
	"github.com/HemInfotech/hem_api/internal/utils"
)

// QuotationService implements quotation persistence: create, full-replace
// update, enriched read, list and delete.
type QuotationService struct {
	quotations QuotationStore
	clients    ClientStore
	packages   PackageStore
	catalog    *CatalogService
}

// NewQuotationService constructs a QuotationService.
func NewQuotationService(quotations QuotationStore, clients ClientStore, packages PackageStore, catalog *CatalogService) *QuotationService {
	return &QuotationService{
		quotations: quotations,
		clients:    clients,
		packages:   packages,
		catalog:    catalog,
	}
}

// Create validates the request, stores the header with its pre-tax subtotal
// and one snapshot row per submitted line. It returns the new id.
func (s *QuotationService) Create(ctx context.Context, req *models.CreateQuotationRequest) (int, error) {
	if req.ClientID <= 0 {
		return 0, utils.ErrInvalidClient
	}
	customType, err := normalizeCustomType(req.CustomType)
	if err != nil {
		return 0, err
	}

	if _, err := s.clients.GetByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, utils.ErrClientNotFound
		}
		return 0, fmt.Errorf("load client: %w", err)
	}
	if req.PackageID != nil {
		if _, err := s.packages.GetByID(ctx, *req.PackageID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return 0, utils.ErrPackageNotFound
			}
			return 0, fmt.Errorf("load package: %w", err)
		}
	}

	q := &models.Quotation{
		ClientID:   req.ClientID,
		PackageID:  req.PackageID,
		CustomName: req.CustomName,
		CustomType: customType,
		TotalPrice: SubtotalOf(req.Products),
	}
	items := snapshotRows(req.Products)

	if err := s.quotations.Create(ctx, q, items); err != nil {
		return 0, fmt.Errorf("create quotation: %w", err)
	}

	log.Info().
		Int("quotation_id", q.ID).
		Int("client_id", q.ClientID).
		Int("items", len(items)).
		Str("total_price", q.TotalPrice.StringFixed(2)).
		Msg("quotation created")
	return q.ID, nil
}

// Update rewrites the header fields and replaces the entire line set. An
// absent custom_type keeps the stored one.
func (s *QuotationService) Update(ctx context.Context, id int, req *models.UpdateQuotationRequest) error {
	var customType string
	if req.CustomType != nil && *req.CustomType != "" {
		t, err := normalizeCustomType(req.CustomType)
		if err != nil {
			return err
		}
		customType = t
	}

	q := &models.Quotation{
		ID:         id,
		CustomName: req.CustomName,
		CustomType: customType,
		TotalPrice: SubtotalOf(req.Products),
	}
	items := snapshotRows(req.Products)

	if err := s.quotations.Update(ctx, q, items); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrQuotationNotFound
		}
		return fmt.Errorf("update quotation: %w", err)
	}

	log.Info().
		Int("quotation_id", id).
		Int("items", len(items)).
		Str("total_price", q.TotalPrice.StringFixed(2)).
		Msg("quotation updated")
	return nil
}

// GetByID returns the header, its enriched snapshot lines and the GST
// breakdown of the stored lines.
func (s *QuotationService) GetByID(ctx context.Context, id int) (*models.QuotationDetail, error) {
	q, err := s.quotations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrQuotationNotFound
		}
		return nil, fmt.Errorf("load quotation: %w", err)
	}

	rows, err := s.quotations.ListItems(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load quotation products: %w", err)
	}

	products, err := s.catalog.EnrichStored(ctx, rows)
	if err != nil {
		return nil, err
	}

	return &models.QuotationDetail{
		Quotation: *q,
		Products:  products,
		Pricing:   PriceWithGST(SubtotalOfStored(rows)),
	}, nil
}

// List returns every quotation with client and package names, newest first.
func (s *QuotationService) List(ctx context.Context) ([]models.QuotationSummary, error) {
	return s.quotations.ListSummaries(ctx)
}

// Delete removes a quotation and all of its lines.
func (s *QuotationService) Delete(ctx context.Context, id int) error {
	if err := s.quotations.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrQuotationNotFound
		}
		return fmt.Errorf("delete quotation: %w", err)
	}
	log.Info().Int("quotation_id", id).Msg("quotation deleted")
	return nil
}

// Client returns the client of a quotation, or nil when it no longer exists.
func (s *QuotationService) Client(ctx context.Context, clientID int) (*models.Client, error) {
	c, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load client: %w", err)
	}
	return c, nil
}

func normalizeCustomType(t *string) (string, error) {
	if t == nil || *t == "" {
		return models.QuotationTypeFixed, nil
	}
	switch *t {
	case models.QuotationTypeFixed, models.QuotationTypeCustom:
		return *t, nil
	}
	return "", utils.ErrInvalidCustomType
}

// snapshotRows converts submitted lines into rows using the same defaults as
// SubtotalOf, so the stored rows always add up to the stored total.
func snapshotRows(lines []models.LineItemInput) []models.QuotationProduct {
	rows := make([]models.QuotationProduct, len(lines))
	for i, l := range lines {
		rows[i] = models.QuotationProduct{
			ComponentID: l.ComponentID,
			ProductID:   l.ProductID,
			Quantity:    l.Qty(),
			UnitPrice:   l.Price(),
		}
	}
	return rows
}
