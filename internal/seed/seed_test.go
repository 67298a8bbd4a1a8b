package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	coredatabase "github.com/nlklfor/tgBot-metallurg/core/database"
	"github.com/nlklfor/tgBot-metallurg/migrations"
)

func TestDemoSeedIsIdempotent(t *testing.T) {
	db, err := coredatabase.Connect(coredatabase.Config{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, coredatabase.RunMigrations(db, migrations.FS))

	ctx := context.Background()
	seeder := Demo()
	require.NoError(t, seeder.Seed(ctx, db))
	require.NoError(t, seeder.Seed(ctx, db))

	var products, orders int
	require.NoError(t, db.Get(&products, `SELECT COUNT(*) FROM products WHERE id = ?`, demoProductID))
	require.NoError(t, db.Get(&orders, `SELECT COUNT(*) FROM orders WHERE tracking_code = ?`, demoTrackingCode))
	require.Equal(t, 1, products)
	require.Equal(t, 1, orders)

	var status string
	require.NoError(t, db.Get(&status, `SELECT status FROM orders WHERE tracking_code = ?`, demoTrackingCode))
	require.Equal(t, "PAID", status)
}
