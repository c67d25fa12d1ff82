package entity

import "time"

// Product names are stored with underscores in place of spaces; display
// code swaps them back.
type Product struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Price        float64   `db:"price"`
	Description  string    `db:"description"`
	CategoryID   string    `db:"category_id"`
	CategoryName string    `db:"category_name"`
	IsSale       bool      `db:"is_sale"`
	SalePrice    float64   `db:"sale_price"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type Category struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}
