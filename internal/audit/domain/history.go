package domain

import (
	"errors"
	"time"

	order "github.com/dmehra2102/ecommerce-store/internal/order/domain"
)

var (
	ErrUnknownEvent   = errors.New("unknown order event")
	ErrMalformedEvent = errors.New("malformed order event")
)

// StatusEntry is one line of an order's status history. From is empty for
// the entry recorded at creation.
type StatusEntry struct {
	OrderID    string
	EventType  string
	From       *order.OrderStatus
	To         order.OrderStatus
	OccurredAt time.Time
	RecordedAt time.Time
}
