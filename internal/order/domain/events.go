package domain

import "time"

const (
	EventOrderCreated       = "OrderCreated"
	EventOrderStatusChanged = "OrderStatusChanged"
)

type OrderCreated struct {
	OrderID    string      `json:"order_id"`
	Customer   string      `json:"customer"`
	TotalCents int64       `json:"total_cents"`
	Items      []OrderItem `json:"items"`
	Status     OrderStatus `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
}

type OrderStatusChanged struct {
	OrderID   string      `json:"order_id"`
	From      OrderStatus `json:"from"`
	To        OrderStatus `json:"to"`
	ChangedAt time.Time   `json:"changed_at"`
}
