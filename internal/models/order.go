package models

import "time"

// Order is a confirmed purchase. The tracking code is the only identifier
// shared with users and is immutable once assigned; rows are never deleted.
type Order struct {
	ID           string      `db:"id"`
	TrackingCode string      `db:"tracking_code"`
	UserID       int64       `db:"user_id"`
	ProductID    string      `db:"product_id"`
	Status       OrderStatus `db:"status"`
	CreatedAt    time.Time   `db:"created_at"`
}
