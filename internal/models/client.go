package models

import "time"

// Client is a converted lead. Quotations reference clients but never modify them.
type Client struct {
	ID        int       `db:"id" json:"id"`
	LeadID    *int      `db:"lead_id" json:"lead_id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	Whatsapp  string    `db:"whatsapp" json:"whatsapp"`
	Reference string    `db:"reference" json:"reference"`
	Remark    string    `db:"remark" json:"remark"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
