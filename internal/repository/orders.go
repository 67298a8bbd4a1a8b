package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nlklfor/tgBot-metallurg/core/logger"
	"github.com/nlklfor/tgBot-metallurg/internal/models"
	"log/slog"
)

const trackingCodeLength = 10

// maxCodeAttempts bounds the collision-retry loop for generated codes.
const maxCodeAttempts = 5

// OrderRepository persists orders. All SQL touching the orders table
// lives here.
type OrderRepository struct {
	db *sqlx.DB
}

// NewOrderRepository wires the repository to the shared database pool.
func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts a new order with status CREATED. When trackingCode is
// empty a short code is generated from a random UUID; generation retries
// on collision so the unique constraint never surfaces to callers.
func (r *OrderRepository) Create(ctx context.Context, userID int64, productID, trackingCode string) (models.Order, error) {
	order := models.Order{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProductID: productID,
		Status:    models.StatusCreated,
		CreatedAt: time.Now().UTC(),
	}

	attempts := 1
	generated := trackingCode == ""
	if generated {
		attempts = maxCodeAttempts
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		code := trackingCode
		if generated {
			code = NewTrackingCode()
		}
		order.TrackingCode = code

		_, err := r.db.NamedExecContext(ctx, `
			INSERT INTO orders (id, tracking_code, user_id, product_id, status, created_at)
			VALUES (:id, :tracking_code, :user_id, :product_id, :status, :created_at)`,
			order,
		)
		if err == nil {
			logger.SVCOrders.Info("order created",
				slog.String("event", "order.create"),
				slog.String("tracking_code", order.TrackingCode),
				slog.Int64("user_id", userID),
				slog.String("product_id", productID),
			)
			return order, nil
		}
		lastErr = err
		if !generated || !isUniqueViolation(err) {
			break
		}
		logger.SVCOrders.Warn("tracking code collision",
			slog.String("event", "order.create.retry"),
			slog.String("tracking_code", code),
			slog.Int("attempt", attempt),
		)
	}
	return models.Order{}, fmt.Errorf("create order: %w", lastErr)
}

// FindByTrackingCode looks an order up by its code. A missing order is a
// normal outcome reported via the bool, not an error.
func (r *OrderRepository) FindByTrackingCode(ctx context.Context, code string) (models.Order, bool, error) {
	var order models.Order
	err := r.db.GetContext(ctx, &order, `
		SELECT id, tracking_code, user_id, product_id, status, created_at
		FROM orders
		WHERE tracking_code = ?`,
		code,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, false, nil
	}
	if err != nil {
		return models.Order{}, false, fmt.Errorf("find order by code: %w", err)
	}
	return order, true, nil
}

// UpdateStatus sets a new status on the order identified by code and
// returns the updated row. Unknown codes report found=false and write
// nothing.
func (r *OrderRepository) UpdateStatus(ctx context.Context, code string, status models.OrderStatus) (models.Order, bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = ? WHERE tracking_code = ?`,
		status, code,
	)
	if err != nil {
		return models.Order{}, false, fmt.Errorf("update order status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Order{}, false, fmt.Errorf("update order status: %w", err)
	}
	if affected == 0 {
		return models.Order{}, false, nil
	}

	order, found, err := r.FindByTrackingCode(ctx, code)
	if err != nil || !found {
		return models.Order{}, found, err
	}
	logger.SVCOrders.Info("order status updated",
		slog.String("event", "order.set_status"),
		slog.String("tracking_code", code),
		slog.String("new_status", string(status)),
	)
	return order, true, nil
}

// ListRecent returns up to limit orders, newest first.
func (r *OrderRepository) ListRecent(ctx context.Context, limit int) ([]models.Order, error) {
	if limit <= 0 {
		limit = 10
	}
	var orders []models.Order
	err := r.db.SelectContext(ctx, &orders, `
		SELECT id, tracking_code, user_id, product_id, status, created_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list recent orders: %w", err)
	}
	return orders, nil
}

// NewTrackingCode derives a short shareable code from a random UUID.
func NewTrackingCode() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return hex[:trackingCodeLength]
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
