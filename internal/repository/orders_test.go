package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	coredatabase "github.com/nlklfor/tgBot-metallurg/core/database"
	"github.com/nlklfor/tgBot-metallurg/internal/models"
	"github.com/nlklfor/tgBot-metallurg/migrations"
)

const testProductID = "test_metal_001"

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := coredatabase.Connect(coredatabase.Config{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, coredatabase.RunMigrations(db, migrations.FS))

	_, err = db.Exec(`
		INSERT INTO products (id, title, description, price, is_active)
		VALUES (?, ?, NULL, ?, 1)`,
		testProductID, "Тестовый металлопрокат", 5000,
	)
	require.NoError(t, err)
	return db
}

func TestCreateGeneratesUniqueTrackingCodes(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	first, err := repo.Create(ctx, 100, testProductID, "")
	require.NoError(t, err)
	second, err := repo.Create(ctx, 100, testProductID, "")
	require.NoError(t, err)

	require.Len(t, first.TrackingCode, trackingCodeLength)
	require.Len(t, second.TrackingCode, trackingCodeLength)
	require.NotEqual(t, first.TrackingCode, second.TrackingCode)
	require.Equal(t, models.StatusCreated, first.Status)
	require.NotEmpty(t, first.ID)
	require.False(t, first.CreatedAt.IsZero())
}

func TestCreateHonorsProvidedCode(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	order, err := repo.Create(ctx, 42, testProductID, "CUSTOM0001")
	require.NoError(t, err)
	require.Equal(t, "CUSTOM0001", order.TrackingCode)

	// A duplicate explicit code must surface the constraint, not retry.
	_, err = repo.Create(ctx, 42, testProductID, "CUSTOM0001")
	require.Error(t, err)
}

func TestFindByTrackingCode(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, 7, testProductID, "")
	require.NoError(t, err)

	found, ok, err := repo.FindByTrackingCode(ctx, created.TrackingCode)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, created.TrackingCode, found.TrackingCode)
	require.Equal(t, int64(7), found.UserID)
	require.Equal(t, testProductID, found.ProductID)

	_, ok, err = repo.FindByTrackingCode(ctx, "NOPE000000")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, 7, testProductID, "")
	require.NoError(t, err)

	updated, ok, err := repo.UpdateStatus(ctx, created.TrackingCode, models.StatusDelivered)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, models.StatusDelivered, updated.Status)

	// Same status again is a no-op that still reports the order.
	again, ok, err := repo.UpdateStatus(ctx, created.TrackingCode, models.StatusDelivered)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, models.StatusDelivered, again.Status)
}

func TestUpdateStatusUnknownCodeWritesNothing(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	_, ok, err := repo.UpdateStatus(ctx, "MISSING001", models.StatusPaid)
	require.NoError(t, err)
	require.False(t, ok)

	var count int
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM orders`))
	require.Zero(t, count)
}

func TestListRecent(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	codes := []string{"CODE000001", "CODE000002", "CODE000003"}
	for i, code := range codes {
		order, err := repo.Create(ctx, int64(i+1), testProductID, code)
		require.NoError(t, err)
		_, err = db.Exec(`UPDATE orders SET created_at = ? WHERE tracking_code = ?`,
			base.Add(time.Duration(i)*time.Minute), order.TrackingCode)
		require.NoError(t, err)
	}

	recent, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.Equal(t, "CODE000003", recent[0].TrackingCode)
	require.Equal(t, "CODE000002", recent[1].TrackingCode)
}

func TestNewTrackingCode(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		code := NewTrackingCode()
		require.Len(t, code, trackingCodeLength)
		_, dup := seen[code]
		require.False(t, dup, "generated code repeated: %s", code)
		seen[code] = struct{}{}
	}
}
