package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/HemInfotech/hem_api/internal/database"
	"github.com/HemInfotech/hem_api/internal/models"
)

// QuotationRepository handles data access for quotations and their line
// snapshots. Every write that touches both tables runs in one transaction.
type QuotationRepository struct {
	db *sqlx.DB
}

// NewQuotationRepository creates a new QuotationRepository.
func NewQuotationRepository(db *sqlx.DB) *QuotationRepository {
	return &QuotationRepository{db: db}
}

const quotationColumns = `id, client_id, package_id, custom_name, custom_type, total_price, created_at, updated_at`

// Create inserts the header and its line rows. On success q.ID and the
// timestamps are populated, as are the ids of items.
func (r *QuotationRepository) Create(ctx context.Context, q *models.Quotation, items []models.QuotationProduct) error {
	const insert = `
        INSERT INTO quotation (client_id, package_id, custom_name, custom_type, total_price)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := tx.QueryRowxContext(ctx, insert,
			q.ClientID,
			q.PackageID,
			q.CustomName,
			q.CustomType,
			q.TotalPrice,
		).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return fmt.Errorf("insert quotation: %w", err)
		}
		return insertItems(ctx, tx, q.ID, items)
	})
}

// Update rewrites the editable header fields and replaces the full line set.
// An empty CustomType keeps the stored one. It returns sql.ErrNoRows when the quotation does not exist, in which case
// nothing is changed.
func (r *QuotationRepository) Update(ctx context.Context, q *models.Quotation, items []models.QuotationProduct) error {
	const update = `
        UPDATE quotation
        SET custom_name = $1, custom_type = COALESCE(NULLIF($2, ''), custom_type), total_price = $3, updated_at = NOW()
        WHERE id = $4
        RETURNING client_id, package_id, custom_type, created_at, updated_at`

	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := tx.QueryRowxContext(ctx, update,
			q.CustomName,
			q.CustomType,
			q.TotalPrice,
			q.ID,
		).Scan(&q.ClientID, &q.PackageID, &q.CustomType, &q.CreatedAt, &q.UpdatedAt); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return sql.ErrNoRows
			}
			return fmt.Errorf("update quotation: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM quotation_product WHERE quotation_id = $1`, q.ID); err != nil {
			return fmt.Errorf("delete quotation products: %w", err)
		}
		return insertItems(ctx, tx, q.ID, items)
	})
}

// insertItems writes one snapshot row per item for quotationID.
func insertItems(ctx context.Context, tx *sqlx.Tx, quotationID int, items []models.QuotationProduct) error {
	const insert = `
        INSERT INTO quotation_product (quotation_id, component_id, product_id, quantity, unit_price)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`

	for i := range items {
		items[i].QuotationID = quotationID
		if err := tx.QueryRowxContext(ctx, insert,
			quotationID,
			items[i].ComponentID,
			items[i].ProductID,
			items[i].Quantity,
			items[i].UnitPrice,
		).Scan(&items[i].ID); err != nil {
			return fmt.Errorf("insert quotation product %d: %w", i, err)
		}
	}
	return nil
}

// GetByID returns the quotation header or sql.ErrNoRows.
func (r *QuotationRepository) GetByID(ctx context.Context, id int) (*models.Quotation, error) {
	var q models.Quotation
	if err := r.db.GetContext(ctx, &q, `SELECT `+quotationColumns+` FROM quotation WHERE id = $1 LIMIT 1`, id); err != nil {
		return nil, err
	}
	return &q, nil
}

// ListItems returns the stored line rows of a quotation in insertion order.
func (r *QuotationRepository) ListItems(ctx context.Context, quotationID int) ([]models.QuotationProduct, error) {
	const q = `
        SELECT id, quotation_id, component_id, product_id, quantity, unit_price
        FROM quotation_product
        WHERE quotation_id = $1
        ORDER BY id`

	items := []models.QuotationProduct{}
	if err := r.db.SelectContext(ctx, &items, q, quotationID); err != nil {
		return nil, err
	}
	return items, nil
}

// ListSummaries returns every header joined to its client and package names,
// newest id first. Missing join targets yield empty names.
func (r *QuotationRepository) ListSummaries(ctx context.Context) ([]models.QuotationSummary, error) {
	const q = `
        SELECT q.id, q.client_id, q.package_id, q.custom_name, q.custom_type, q.total_price,
               q.created_at, q.updated_at,
               COALESCE(c.name, '') AS client_name,
               COALESCE(p.name, '') AS package_name
        FROM quotation q
        LEFT JOIN clients c ON c.id = q.client_id
        LEFT JOIN package p ON p.id = q.package_id
        ORDER BY q.id DESC`

	summaries := []models.QuotationSummary{}
	if err := r.db.SelectContext(ctx, &summaries, q); err != nil {
		return nil, err
	}
	return summaries, nil
}

// Delete removes the line rows and then the header in one transaction. It
// returns sql.ErrNoRows when the quotation does not exist.
func (r *QuotationRepository) Delete(ctx context.Context, id int) error {
	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var found int
		if err := tx.QueryRowxContext(ctx, `SELECT id FROM quotation WHERE id = $1 FOR UPDATE`, id).Scan(&found); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return sql.ErrNoRows
			}
			return fmt.Errorf("lock quotation: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM quotation_product WHERE quotation_id = $1`, id); err != nil {
			return fmt.Errorf("delete quotation products: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM quotation WHERE id = $1`, id); err != nil {
			return fmt.Errorf("delete quotation: %w", err)
		}
		return nil
	})
}
