package models

// Product is a catalog item sold through the bot. Products are created
// outside the bot and are read-only here.
type Product struct {
	ID          string  `db:"id"`
	Title       string  `db:"title"`
	Description *string `db:"description"`
	Price       int64   `db:"price"`
	IsActive    bool    `db:"is_active"`
}
