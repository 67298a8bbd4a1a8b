package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/nlklfor/tgBot-metallurg/internal/models"
)

// ProductRepository reads catalog items. The bot never writes products.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository wires the repository to the shared database pool.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// FindByID looks a product up by its identifier.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (models.Product, bool, error) {
	var product models.Product
	err := r.db.GetContext(ctx, &product, `
		SELECT id, title, description, price, is_active
		FROM products
		WHERE id = ?`,
		id,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, false, nil
	}
	if err != nil {
		return models.Product{}, false, fmt.Errorf("find product by id: %w", err)
	}
	return product, true, nil
}
