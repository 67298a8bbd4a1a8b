// Package seed loads demo catalog data used for smoke-testing the bot.
package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"log/slog"

	"github.com/nlklfor/tgBot-metallurg/core/bootstrap"
	"github.com/nlklfor/tgBot-metallurg/core/logger"
	"github.com/nlklfor/tgBot-metallurg/internal/models"
)

const (
	demoProductID    = "test_metal_001"
	demoTrackingCode = "TEST123456"
	demoBuyerID      = 123456789
)

// Demo returns a seeder that inserts the demo product and order.
// Inserts are keyed on fixed identifiers and skipped when present, so
// repeated startups leave the data untouched.
func Demo() bootstrap.Seeder {
	return bootstrap.SeederFunc(run)
}

func run(ctx context.Context, db *sqlx.DB) error {
	if err := seedProduct(ctx, db); err != nil {
		return err
	}
	return seedOrder(ctx, db)
}

func seedProduct(ctx context.Context, db *sqlx.DB) error {
	var exists int
	err := db.GetContext(ctx, &exists, `SELECT COUNT(*) FROM products WHERE id = ?`, demoProductID)
	if err != nil {
		return fmt.Errorf("seed: check product: %w", err)
	}
	if exists > 0 {
		return nil
	}

	description := "Тестовый товар для проверки оформления заказа."
	_, err = db.ExecContext(ctx, `
		INSERT INTO products (id, title, description, price, is_active)
		VALUES (?, ?, ?, ?, 1)`,
		demoProductID, "Тестовый металлопрокат", description, 5000,
	)
	if err != nil {
		return fmt.Errorf("seed: insert product: %w", err)
	}
	logger.SEED.Info("demo product created",
		slog.String("event", "seed.product"),
		slog.String("product_id", demoProductID),
	)
	return nil
}

func seedOrder(ctx context.Context, db *sqlx.DB) error {
	var exists int
	err := db.GetContext(ctx, &exists, `SELECT COUNT(*) FROM orders WHERE tracking_code = ?`, demoTrackingCode)
	if err != nil {
		return fmt.Errorf("seed: check order: %w", err)
	}
	if exists > 0 {
		return nil
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO orders (id, tracking_code, user_id, product_id, status)
		VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), demoTrackingCode, demoBuyerID, demoProductID, models.StatusPaid,
	)
	if err != nil {
		return fmt.Errorf("seed: insert order: %w", err)
	}
	logger.SEED.Info("demo order created",
		slog.String("event", "seed.order"),
		slog.String("tracking_code", demoTrackingCode),
	)
	return nil
}
