package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/HemInfotech/hem_api/internal/models"
)

// ClientRepository provides read access to the clients table.
type ClientRepository struct {
	db *sqlx.DB
}

// NewClientRepository creates a new ClientRepository.
func NewClientRepository(db *sqlx.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

const clientColumns = `id, lead_id, name, COALESCE(email, '') AS email, COALESCE(phone, '') AS phone,
    COALESCE(whatsapp, '') AS whatsapp, COALESCE(reference, '') AS reference,
    COALESCE(remark, '') AS remark, created_at`

// GetByID finds a client by numeric id. It returns sql.ErrNoRows when absent.
func (r *ClientRepository) GetByID(ctx context.Context, id int) (*models.Client, error) {
	var c models.Client
	if err := r.db.GetContext(ctx, &c, `SELECT `+clientColumns+` FROM clients WHERE id = $1 LIMIT 1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return &c, nil
}

// List retrieves all clients, newest first.
func (r *ClientRepository) List(ctx context.Context) ([]models.Client, error) {
	clients := []models.Client{}
	if err := r.db.SelectContext(ctx, &clients, `SELECT `+clientColumns+` FROM clients ORDER BY id DESC`); err != nil {
		return nil, err
	}
	return clients, nil
}
