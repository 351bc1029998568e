package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/HemInfotech/hem_api/internal/models"
)

// PackageRepository handles data access for package templates.
type PackageRepository struct {
	db *sqlx.DB
}

// NewPackageRepository creates a new PackageRepository.
func NewPackageRepository(db *sqlx.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

// GetByID returns a single package by id, or sql.ErrNoRows.
func (r *PackageRepository) GetByID(ctx context.Context, id int) (*models.Package, error) {
	const q = `SELECT id, name, type, created_at, updated_at FROM package WHERE id = $1 LIMIT 1`

	var p models.Package
	if err := r.db.GetContext(ctx, &p, q, id); err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns every package, newest first.
func (r *PackageRepository) List(ctx context.Context) ([]models.Package, error) {
	const q = `SELECT id, name, type, created_at, updated_at FROM package ORDER BY id DESC`

	packages := []models.Package{}
	if err := r.db.SelectContext(ctx, &packages, q); err != nil {
		return nil, err
	}
	return packages, nil
}

// ListProducts returns the lines of a package in insertion order. An unknown
// package yields an empty slice.
func (r *PackageRepository) ListProducts(ctx context.Context, packageID int) ([]models.PackageProduct, error) {
	const q = `
        SELECT id, package_id, component_id, product_id, COALESCE(quantity, 1) AS quantity
        FROM package_product
        WHERE package_id = $1
        ORDER BY id`

	lines := []models.PackageProduct{}
	if err := r.db.SelectContext(ctx, &lines, q, packageID); err != nil {
		if err == sql.ErrNoRows {
			return lines, nil
		}
		return nil, err
	}
	return lines, nil
}
