package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProductFindByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	product, ok, err := repo.FindByID(ctx, testProductID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, testProductID, product.ID)
	require.Equal(t, int64(5000), product.Price)
	require.True(t, product.IsActive)
	require.Nil(t, product.Description)
}

func TestProductFindByIDMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)

	_, ok, err := repo.FindByID(context.Background(), "no_such_product")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestProductInactiveIsStillReadable(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	_, err := db.Exec(`
		INSERT INTO products (id, title, description, price, is_active)
		VALUES ('off_sale', 'Снято с продажи', 'архив', 100, 0)`)
	require.NoError(t, err)

	product, ok, err := repo.FindByID(ctx, "off_sale")
	require.NoError(t, err)
	require.True(t, ok)
	require.False(t, product.IsActive)
	require.NotNil(t, product.Description)
}
