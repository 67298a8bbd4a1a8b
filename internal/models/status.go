package models

import (
	"fmt"
	"strings"
)

// OrderStatus is the lifecycle stage of an order. Values are stored
// verbatim in the orders table.
type OrderStatus string

const (
	StatusCreated   OrderStatus = "CREATED"
	StatusPaid      OrderStatus = "PAID"
	StatusInTransit OrderStatus = "IN_TRANSIT"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

var statusLabels = map[OrderStatus]string{
	StatusCreated:   "🔵 created",
	StatusPaid:      "🟡 paid",
	StatusInTransit: "🟠 in_transit",
	StatusDelivered: "🟢 delivered",
	StatusCancelled: "🔴 cancelled",
}

// AllStatuses returns every status in lifecycle order.
func AllStatuses() []OrderStatus {
	return []OrderStatus{StatusCreated, StatusPaid, StatusInTransit, StatusDelivered, StatusCancelled}
}

// Label returns the user-facing representation shown in chat replies.
func (s OrderStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Valid reports whether the status belongs to the enumerated set.
func (s OrderStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// ParseStatus resolves a status name case-insensitively. The error message
// lists the accepted names so handlers can relay it to the admin as-is.
func ParseStatus(raw string) (OrderStatus, error) {
	candidate := OrderStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if candidate.Valid() {
		return candidate, nil
	}
	return "", fmt.Errorf("unknown status %q; allowed: %s", raw, strings.Join(StatusNames(), ", "))
}

// StatusNames returns the canonical status names in lifecycle order.
func StatusNames() []string {
	all := AllStatuses()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = string(s)
	}
	return names
}
