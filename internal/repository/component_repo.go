package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/HemInfotech/hem_api/internal/models"
)

// ComponentRepository reads the component catalog and its categories.
type ComponentRepository struct {
	db *sqlx.DB
}

// NewComponentRepository creates a new ComponentRepository.
func NewComponentRepository(db *sqlx.DB) *ComponentRepository {
	return &ComponentRepository{db: db}
}

// toInt64s converts ids for pq.Array, which binds []int64 natively.
func toInt64s(ids []int) []int64 {
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return out
}

// GetByIDs returns the components with the given ids keyed by id. Ids that do
// not resolve are simply absent from the map.
func (r *ComponentRepository) GetByIDs(ctx context.Context, ids []int) (map[int]*models.Component, error) {
	result := make(map[int]*models.Component, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	const q = `
        SELECT id, inventory_id, product_name,
               COALESCE(model, '') AS model,
               COALESCE(img, '') AS img,
               COALESCE(unit_price, 0) AS unit_price,
               COALESCE(availability, '') AS availability,
               COALESCE(total_quantity, 0) AS total_quantity,
               COALESCE(description, '') AS description,
               COALESCE(sr_no, '') AS sr_no,
               created_at, updated_at
        FROM component
        WHERE id = ANY($1)`

	var components []models.Component
	if err := r.db.SelectContext(ctx, &components, q, pq.Array(toInt64s(ids))); err != nil {
		return nil, err
	}
	for i := range components {
		result[components[i].ID] = &components[i]
	}
	return result, nil
}

// CategoryNames returns inventory.component_name keyed by inventory id.
func (r *ComponentRepository) CategoryNames(ctx context.Context, ids []int) (map[int]string, error) {
	result := make(map[int]string, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	rows, err := r.db.QueryxContext(ctx, `SELECT id, component_name FROM inventory WHERE id = ANY($1)`, pq.Array(toInt64s(ids)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id   int
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		result[id] = name
	}
	return result, rows.Err()
}
